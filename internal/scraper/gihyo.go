package scraper

import (
	"context"
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"itmagazines/internal"
	"itmagazines/internal/fetch"
)

// gihyo.jp magazine pages share one layout; only the issue label differs.
var (
	reGihyoMonthly = regexp.MustCompile(`月号`)
	reGihyoVolume  = regexp.MustCompile(`Vol.`)
	reReleaseLabel = regexp.MustCompile(`発売`)
	reListPrice    = regexp.MustCompile(`定価`)
)

func scrapeSoftwareDesign(ctx context.Context, f fetch.Fetcher) (internal.MagazineRecord, error) {
	return scrapeGihyo(ctx, f, "Software Design", "http://gihyo.jp/magazine/SD", reGihyoMonthly)
}

func scrapeWebDBPress(ctx context.Context, f fetch.Fetcher) (internal.MagazineRecord, error) {
	return scrapeGihyo(ctx, f, "WEB+DB PRESS", "https://gihyo.jp/magazine/wdpress", reGihyoVolume)
}

func scrapeGihyo(ctx context.Context, f fetch.Fetcher, name, pageURL string, numberPattern *regexp.Regexp) (internal.MagazineRecord, error) {
	rec := newRecord(name, pageURL)

	doc, err := f.Fetch(ctx, pageURL)
	if err != nil {
		return internal.MagazineRecord{}, err
	}

	salesInfo := doc.Find("div#newPublishedInfo").First()
	rec.setNumber(strippedText(withText(salesInfo.Find("a"), numberPattern)))

	information := salesInfo.Find("div.information").First()
	rec.setReleaseDate(findString(information, reReleaseLabel))
	rec.setPrice(findString(information, reListPrice))

	doc.Find("div#magazineTopOutline").First().Find("li").Each(func(_ int, li *goquery.Selection) {
		rec.addTopic(
			strippedText(li.Find("span.category").First()),
			strippedText(li.Find("span.title").First()),
		)
	})

	doc.Find("dl.storeLink01").First().Find("li").Each(func(_ int, li *goquery.Selection) {
		anchor := li.Find("a").First()
		rec.addStoreLink(strippedText(anchor), href(doc, anchor))
	})

	return rec.build(), nil
}
