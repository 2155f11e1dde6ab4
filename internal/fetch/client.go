package fetch

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"

	"itmagazines/internal/config"
)

// Fetcher retrieves a URL and returns the parsed document.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*goquery.Document, error)
}

type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

type Client struct {
	http *resty.Client
}

func NewClient(cfg config.Config) *Client {
	dialer := &net.Dialer{Timeout: cfg.ConnectTimeout()}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext
	transport.TLSHandshakeTimeout = cfg.ConnectTimeout()

	client := resty.New()
	client.SetTransport(transport)
	client.SetTimeout(cfg.ReadTimeout())
	client.SetHeader("User-Agent", cfg.HTTPUserAgent)
	client.SetHeader("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	client.SetHeader("Accept-Language", "ja,en;q=0.5")

	return &Client{http: client}
}

func (c *Client) Fetch(ctx context.Context, rawURL string) (*goquery.Document, error) {
	resp, err := c.http.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", rawURL, err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &StatusError{URL: rawURL, StatusCode: resp.StatusCode()}
	}

	body, err := charset.NewReader(bytes.NewReader(resp.Body()), resp.Header().Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", rawURL, err)
	}
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", rawURL, err)
	}

	// relative links on the page resolve against the final URL after redirects
	if raw := resp.RawResponse; raw != nil && raw.Request != nil && raw.Request.URL != nil {
		doc.Url = raw.Request.URL
	} else if u, err := url.Parse(rawURL); err == nil {
		doc.Url = u
	}
	return doc, nil
}
