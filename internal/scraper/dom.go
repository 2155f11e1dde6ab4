package scraper

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"itmagazines/internal"
	"itmagazines/internal/util"
)

// strippedText concatenates every text node under the first element of sel,
// each trimmed on its own. Empty when sel is empty.
func strippedText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	var b strings.Builder
	walkText(sel.Get(0), func(n *html.Node) bool {
		b.WriteString(strings.TrimSpace(n.Data))
		return false
	})
	return b.String()
}

// findString returns the first text node under sel matching re, trimmed.
func findString(sel *goquery.Selection, re *regexp.Regexp) string {
	if sel.Length() == 0 {
		return ""
	}
	found := ""
	walkText(sel.Get(0), func(n *html.Node) bool {
		if re.MatchString(n.Data) {
			found = strings.TrimSpace(n.Data)
			return true
		}
		return false
	})
	return found
}

func walkText(n *html.Node, visit func(*html.Node) bool) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if visit(c) {
				return true
			}
		case html.ElementNode:
			if c.Data == "script" || c.Data == "style" {
				continue
			}
			if walkText(c, visit) {
				return true
			}
		}
	}
	return false
}

func withText(sel *goquery.Selection, re *regexp.Regexp) *goquery.Selection {
	return sel.FilterFunction(func(_ int, s *goquery.Selection) bool {
		return re.MatchString(strippedText(s))
	}).First()
}

func withExactText(sel *goquery.Selection, text string) *goquery.Selection {
	return sel.FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strippedText(s) == text
	}).First()
}

func withAttr(sel *goquery.Selection, attr string, re *regexp.Regexp) *goquery.Selection {
	return sel.FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, ok := s.Attr(attr)
		return ok && re.MatchString(v)
	}).First()
}

// href returns the trimmed href of the first element in sel. Absolute hrefs
// are returned as written; relative ones are resolved against the document
// URL when one is known.
func href(doc *goquery.Document, sel *goquery.Selection) string {
	raw, ok := sel.First().Attr("href")
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return ""
	}
	ref, err := url.Parse(raw)
	if err != nil || ref.IsAbs() {
		return raw
	}
	if doc == nil || doc.Url == nil {
		return raw
	}
	return doc.Url.ResolveReference(ref).String()
}

// recordBuilder collects fields for one extraction and hands out the final
// record once.
type recordBuilder struct {
	rec internal.MagazineRecord
}

func newRecord(name, pageURL string) *recordBuilder {
	return &recordBuilder{rec: internal.NewMagazineRecord(name, pageURL)}
}

func (b *recordBuilder) setNumber(v string) {
	b.rec.Number = v
}

func (b *recordBuilder) setURL(v string) {
	b.rec.URL = v
}

func (b *recordBuilder) setReleaseDate(text string) {
	b.rec.ReleaseDate = util.ExtractDate(text)
}

func (b *recordBuilder) setPrice(text string) {
	b.rec.Price = util.ExtractPrice(text)
}

func (b *recordBuilder) addTopic(category, title string) {
	if topic := util.JoinLabel(category, title); topic != "" {
		b.rec.TopOutlines = append(b.rec.TopOutlines, topic)
	}
}

func (b *recordBuilder) addStoreLink(name, link string) {
	if link == "" {
		return
	}
	b.rec.StoreLinks = append(b.rec.StoreLinks, internal.StoreLink{Name: name, URL: link})
}

func (b *recordBuilder) build() internal.MagazineRecord {
	rec := b.rec
	rec.TopOutlines = append([]string{}, rec.TopOutlines...)
	rec.StoreLinks = append([]internal.StoreLink{}, rec.StoreLinks...)
	return rec
}
