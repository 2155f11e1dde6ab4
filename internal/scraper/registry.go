package scraper

import (
	"context"
	"strconv"

	"itmagazines/internal"
	"itmagazines/internal/fetch"
)

type extractFunc func(ctx context.Context, f fetch.Fetcher) (internal.MagazineRecord, error)

type Entry struct {
	Source    internal.Source
	Name      string
	Publisher string
	URL       string
	extract   extractFunc
}

// registry is kept in declaration order; ScrapeAll walks it as is.
var registry = []Entry{
	{Source: internal.SourceSoftwareDesign, Name: "Software Design", Publisher: "技術評論社", URL: "http://gihyo.jp/magazine/SD", extract: scrapeSoftwareDesign},
	{Source: internal.SourceWebDBPress, Name: "WEB+DB PRESS", Publisher: "技術評論社", URL: "https://gihyo.jp/magazine/wdpress", extract: scrapeWebDBPress},
	{Source: internal.SourceInterface, Name: "Interface", Publisher: "CQ出版", URL: "https://interface.cqpub.co.jp/", extract: scrapeInterface},
	{Source: internal.SourceTransistorGijutsu, Name: "トランジスタ技術", Publisher: "CQ出版", URL: "https://toragi.cqpub.co.jp/", extract: scrapeTransistorGijutsu},
	{Source: internal.SourceNikkeiSoftware, Name: "日経ソフトウエア", Publisher: "日経BP", URL: "https://info.nikkeibp.co.jp/media/NSW/", extract: scrapeNikkeiSoftware},
	{Source: internal.SourceNikkeiLinux, Name: "日経Linux", Publisher: "日経BP", URL: "https://info.nikkeibp.co.jp/media/LIN/", extract: scrapeNikkeiLinux},
}

func Sources() []internal.Source {
	out := make([]internal.Source, 0, len(registry))
	for _, e := range registry {
		out = append(out, e.Source)
	}
	return out
}

func Entries() []Entry {
	return append([]Entry(nil), registry...)
}

func lookup(src internal.Source) (Entry, bool) {
	for _, e := range registry {
		if e.Source == src {
			return e, true
		}
	}
	return Entry{}, false
}

// ParseSource accepts a CLI key ("nikkei-linux"), an enum name
// ("NIKKEI_LINUX") or a numeric code ("22").
func ParseSource(value string) (internal.Source, bool) {
	for _, e := range registry {
		switch value {
		case e.Source.Key(), e.Source.String(), strconv.Itoa(int(e.Source)):
			return e.Source, true
		}
	}
	return 0, false
}
