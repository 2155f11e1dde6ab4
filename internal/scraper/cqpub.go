package scraper

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"itmagazines/internal"
	"itmagazines/internal/fetch"
)

const cqWebShop = "CQ出版WebShop"

// Both CQ出版 magazines link from the top page to a per-issue detail page.
// A missing link leaves the record with its name only.

func scrapeInterface(ctx context.Context, f fetch.Fetcher) (internal.MagazineRecord, error) {
	rec := newRecord("Interface", "")

	index, err := f.Fetch(ctx, "https://interface.cqpub.co.jp/")
	if err != nil {
		return internal.MagazineRecord{}, err
	}
	detailURL := href(index, index.Find("div.latest-info").First().Find("a"))
	if detailURL == "" {
		return rec.build(), nil
	}
	rec.setURL(detailURL)

	doc, err := f.Fetch(ctx, detailURL)
	if err != nil {
		return internal.MagazineRecord{}, err
	}

	salesInfo := doc.Find("div.latest-info").First()
	rec.setNumber(strippedText(salesInfo.Find("h2").First()))
	priceText := strippedText(salesInfo.Find(".price").First())
	rec.setReleaseDate(priceText)
	rec.setPrice(priceText)

	doc.Find("h3.title01").Each(func(_ int, h3 *goquery.Selection) {
		rec.addTopic("", strippedText(h3))
	})

	buy := salesInfo.Find(`img[title="書籍の購入"]`).First()
	rec.addStoreLink(cqWebShop, href(doc, buy.Parent()))

	return rec.build(), nil
}

func scrapeTransistorGijutsu(ctx context.Context, f fetch.Fetcher) (internal.MagazineRecord, error) {
	const name = "トランジスタ技術"
	rec := newRecord(name, "")

	index, err := f.Fetch(ctx, "https://toragi.cqpub.co.jp/")
	if err != nil {
		return internal.MagazineRecord{}, err
	}
	detailURL := href(index, index.Find("section#sec01").First().Find("div.book").First().Find("a"))
	if detailURL == "" {
		return rec.build(), nil
	}
	rec.setURL(detailURL)

	doc, err := f.Fetch(ctx, detailURL)
	if err != nil {
		return internal.MagazineRecord{}, err
	}

	salesInfo := doc.Find("div.latest-info").First()
	if title := salesInfo.Find("h2.book-title").First(); title.Length() > 0 {
		rec.setNumber(name + " " + strippedText(title))
	}
	issueDate := strippedText(salesInfo.Find("div.issue-date").First())
	rec.setReleaseDate(issueDate)
	rec.setPrice(issueDate)

	salesInfo.Find("dl.tokushu, dl.furoku").Each(func(_ int, dl *goquery.Selection) {
		rec.addTopic(
			strippedText(dl.Find("dt").First()),
			strippedText(dl.Find("dd").First()),
		)
	})

	rec.addStoreLink(cqWebShop, href(doc, withExactText(salesInfo.Find("a"), "書籍の購入")))

	return rec.build(), nil
}
