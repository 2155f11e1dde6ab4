package scraper

import (
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"itmagazines/internal"
	"itmagazines/internal/fetch"
)

var (
	reNikkeiRelease = regexp.MustCompile(`発売日`)
	reNikkeiPrice   = regexp.MustCompile(`価格`)
	reAmazon        = regexp.MustCompile(`amazon`)
	reRakutenBooks  = regexp.MustCompile(`books.rakuten`)
	reFeaturePrefix = regexp.MustCompile(`【特集`)
)

func scrapeNikkeiSoftware(ctx context.Context, f fetch.Fetcher) (internal.MagazineRecord, error) {
	return scrapeNikkeiBP(ctx, f, "日経ソフトウエア", "https://info.nikkeibp.co.jp/media/NSW/", func(b *goquery.Selection) bool {
		return strippedText(b) == "【特集】"
	})
}

func scrapeNikkeiLinux(ctx context.Context, f fetch.Fetcher) (internal.MagazineRecord, error) {
	return scrapeNikkeiBP(ctx, f, "日経Linux", "https://info.nikkeibp.co.jp/media/LIN/", func(b *goquery.Selection) bool {
		return reFeaturePrefix.MatchString(strippedText(b))
	})
}

// scrapeNikkeiBP reads the cover text block of a nikkeibp.co.jp media page.
// isFeature selects the <b> labels whose parent paragraph is a topic.
func scrapeNikkeiBP(ctx context.Context, f fetch.Fetcher, name, pageURL string, isFeature func(*goquery.Selection) bool) (internal.MagazineRecord, error) {
	rec := newRecord(name, pageURL)

	doc, err := f.Fetch(ctx, pageURL)
	if err != nil {
		return internal.MagazineRecord{}, err
	}

	cover := doc.Find("div.articleBody").First().Find("div.cover-txt").First()
	if cover.Length() == 0 {
		return rec.build(), nil
	}

	rec.setNumber(strings.TrimSpace(strings.ReplaceAll(strippedText(cover.Find("p.Title").First()), "最新号", "")))
	rec.setReleaseDate(findString(cover, reNikkeiRelease))
	rec.setPrice(findString(cover, reNikkeiPrice))

	cover.Find("b").Each(func(_ int, b *goquery.Selection) {
		if isFeature(b) {
			rec.addTopic("", strippedText(b.Parent()))
		}
	})

	rec.addStoreLink("Amazon", href(doc, withAttr(cover.Find("a"), "href", reAmazon)))
	rec.addStoreLink("Rakutenブックス", href(doc, withAttr(cover.Find("a"), "href", reRakutenBooks)))

	return rec.build(), nil
}
