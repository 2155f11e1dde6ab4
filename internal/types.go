package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type Source int

const (
	// 技術評論社
	SourceSoftwareDesign Source = 1
	SourceWebDBPress     Source = 2
	// CQ出版
	SourceInterface         Source = 11
	SourceTransistorGijutsu Source = 12
	// 日経BP
	SourceNikkeiSoftware Source = 21
	SourceNikkeiLinux    Source = 22
)

var sourceNames = map[Source]string{
	SourceSoftwareDesign:    "SOFTWARE_DESIGN",
	SourceWebDBPress:        "WEB_DB_PRESS",
	SourceInterface:         "INTERFACE",
	SourceTransistorGijutsu: "TRANSISTOR_GIJUTSU",
	SourceNikkeiSoftware:    "NIKKEI_SOFTWARE",
	SourceNikkeiLinux:       "NIKKEI_LINUX",
}

func (s Source) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SOURCE(%d)", int(s))
}

// Key is the lower-case, dash-separated form used on the command line.
func (s Source) Key() string {
	return strings.ReplaceAll(strings.ToLower(s.String()), "_", "-")
}

type StoreLink struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

type MagazineRecord struct {
	Name        string      `json:"name" yaml:"name"`
	Number      string      `json:"number" yaml:"number"`
	Price       string      `json:"price" yaml:"price"`
	ReleaseDate string      `json:"release_date" yaml:"release_date"`
	URL         string      `json:"url" yaml:"url"`
	TopOutlines []string    `json:"top_outlines" yaml:"top_outlines"`
	StoreLinks  []StoreLink `json:"store_links" yaml:"store_links"`
}

// NewMagazineRecord returns a record with only name and url set and empty,
// non-nil sequences.
func NewMagazineRecord(name, url string) MagazineRecord {
	return MagazineRecord{
		Name:        name,
		URL:         url,
		TopOutlines: []string{},
		StoreLinks:  []StoreLink{},
	}
}

// JSON renders the record as indented UTF-8 JSON. Non-ASCII text and HTML
// characters in URLs are written literally.
func (m MagazineRecord) JSON() (string, error) {
	if m.TopOutlines == nil {
		m.TopOutlines = []string{}
	}
	if m.StoreLinks == nil {
		m.StoreLinks = []StoreLink{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
