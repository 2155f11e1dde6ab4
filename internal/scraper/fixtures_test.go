package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
)

// fakeFetcher serves inline HTML keyed by URL and records the URLs requested.
type fakeFetcher struct {
	mu     sync.Mutex
	pages  map[string]string
	fail   map[string]error
	called []string
}

func (f *fakeFetcher) Fetch(_ context.Context, rawURL string) (*goquery.Document, error) {
	f.mu.Lock()
	f.called = append(f.called, rawURL)
	f.mu.Unlock()

	if err, ok := f.fail[rawURL]; ok {
		return nil, err
	}
	page, ok := f.pages[rawURL]
	if !ok {
		return nil, fmt.Errorf("unexpected status 404 from %s", rawURL)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, err
	}
	doc.Url, _ = url.Parse(rawURL)
	return doc, nil
}

var errConnRefused = errors.New("connection refused")

const softwareDesignPage = `<html><body>
<div id="newPublishedInfo">
  <p class="cover"><a href="/magazine/SD/archive/2024/202404"><img src="cover.jpg" alt=""></a></p>
  <h3><a href="/magazine/SD/archive/2024/202404">Software Design 2024年4月号</a></h3>
  <div class="information">
    <ul>
      <li>2024年3月18日発売</li>
      <li>定価1,342円（本体1,220円＋税10%）</li>
      <li>ISBN 978-4-297-14083-6</li>
    </ul>
  </div>
</div>
<div id="magazineTopOutline">
  <ul>
    <li><span class="category">第1特集</span> <span class="title">今こそ学ぶ Linuxコマンド</span></li>
    <li><span class="category">第2特集</span> <span class="title">Goで作るCLIツール</span></li>
    <li><span class="title">一般記事 TypeScript型入門</span></li>
  </ul>
</div>
<dl class="storeLink01">
  <dt>購入</dt>
  <dd><ul>
    <li><a href="https://www.amazon.co.jp/dp/4297140837?tag=gihyo&amp;ref=sd">Amazon</a></li>
    <li><a href="https://books.rakuten.co.jp/rb/17800000/">楽天ブックス</a></li>
    <li>準備中</li>
  </ul></dd>
</dl>
</body></html>`

const webDBPressPage = `<html><body>
<div id="newPublishedInfo">
  <h3><a href="/magazine/wdpress/archive/2024/vol139">WEB+DB PRESS Vol.139</a></h3>
  <div class="information"><p>2024年2月24日発売</p><p>定価1,628円（本体1,480円＋税10%）</p></div>
</div>
<dl class="storeLink01"><dd><ul><li><a href="https://gihyo.jp/dp/ebook/2024/978-4-297-14054-6">Gihyo Digital Publishing</a></li></ul></dd></dl>
</body></html>`

const interfaceIndexPage = `<html><body>
<div class="latest-info"><a href="/magazine/202405/"><img src="cover.jpg"></a></div>
</body></html>`

const interfaceDetailPage = `<html><body>
<div class="latest-info">
  <h2>Interface 2024年5月号</h2>
  <p class="price">2024年3月25日発売 / 定価1,200円(税込)</p>
  <a href="https://shop.cqpub.co.jp/hanbai/books/MIF/MIF202405.html"><img src="buy.png" title="書籍の購入"></a>
</div>
<h3 class="title01">特集 ラズパイ5 徹底活用</h3>
<h3 class="title01">別冊付録 C言語入門</h3>
<h3 class="other">対象外</h3>
</body></html>`

const transistorIndexPage = `<html><body>
<section id="sec01">
  <div class="book"><a href="https://toragi.cqpub.co.jp/magazine/202405/"><img src="cover.jpg"></a></div>
</section>
</body></html>`

const transistorDetailPage = `<html><body>
<div class="latest-info">
  <h2 class="book-title">2024年5月号</h2>
  <div class="issue-date">発売日：2024年4月10日　特別価格 ￥1,400(税込)</div>
  <dl class="tokushu"><dt>特集</dt><dd>電子回路シミュレーション入門</dd></dl>
  <dl class="furoku"><dt>付録</dt><dd>基板設計ガイド</dd></dl>
  <dl class="tokushu"><dd>ラズパイで計測</dd></dl>
  <a href="https://shop.cqpub.co.jp/hanbai/books/MTR/MTR202405.html">書籍の購入</a>
  <a href="https://toragi.cqpub.co.jp/contents/">書籍の購入方法</a>
</div>
</body></html>`

const nikkeiSoftwarePage = `<html><body>
<div class="articleBody">
  <div class="cover-txt">
    <p class="Title">最新号2024年5月号</p>
    <p>発売日：2024年3月22日</p>
    <p>価格：1,650円（税込）</p>
    <p><b>【特集】</b>Pythonで始めるデータ分析</p>
    <p><b>【特集】</b>生成AIアプリ開発</p>
    <p><b>【連載】</b>C#入門</p>
    <p><a href="https://www.amazon.co.jp/日経ソフトウエア-2024年5月号/dp/B0CW1ABCDE">Amazonで購入</a>
       <a href="https://books.rakuten.co.jp/rb/17812345/">楽天ブックスで購入</a></p>
  </div>
</div>
</body></html>`

const nikkeiLinuxPage = `<html><body>
<div class="articleBody">
  <div class="cover-txt">
    <p class="Title">最新号 2024年5月号</p>
    <p>発売日 2024/4/8</p>
    <p>価格 ¥1,980</p>
    <p><b>【特集1】</b>Ubuntu 24.04 LTS 完全ガイド</p>
    <p><b>【特集2】</b>シェルスクリプト再入門</p>
    <p><a href="https://books.rakuten.co.jp/rb/17900000/">楽天ブックス</a></p>
  </div>
</div>
</body></html>`

func allPages() map[string]string {
	return map[string]string{
		"http://gihyo.jp/magazine/SD":                    softwareDesignPage,
		"https://gihyo.jp/magazine/wdpress":              webDBPressPage,
		"https://interface.cqpub.co.jp/":                 interfaceIndexPage,
		"https://interface.cqpub.co.jp/magazine/202405/": interfaceDetailPage,
		"https://toragi.cqpub.co.jp/":                    transistorIndexPage,
		"https://toragi.cqpub.co.jp/magazine/202405/":    transistorDetailPage,
		"https://info.nikkeibp.co.jp/media/NSW/":         nikkeiSoftwarePage,
		"https://info.nikkeibp.co.jp/media/LIN/":         nikkeiLinuxPage,
	}
}
