package scraper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"itmagazines/internal"
	"itmagazines/internal/fetch"
)

var ErrInvalidSource = errors.New("invalid source")

// SourceError ties a fetch failure to the magazine it happened for.
type SourceError struct {
	Source internal.Source
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

type Scraper struct {
	fetcher     fetch.Fetcher
	logger      zerolog.Logger
	concurrency int
}

type Option func(*Scraper)

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Scraper) {
		s.logger = logger
	}
}

// WithConcurrency bounds how many sources are scraped at once. Values below
// 2 keep the sequential path.
func WithConcurrency(n int) Option {
	return func(s *Scraper) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func New(fetcher fetch.Fetcher, opts ...Option) *Scraper {
	s := &Scraper{
		fetcher:     fetcher,
		logger:      zerolog.Nop(),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scraper) ScrapeOne(ctx context.Context, src internal.Source) (internal.MagazineRecord, error) {
	entry, ok := lookup(src)
	if !ok {
		return internal.MagazineRecord{}, fmt.Errorf("%w: %d", ErrInvalidSource, int(src))
	}

	start := time.Now()
	s.logger.Info().Str("source", src.String()).Msg("scraping")
	rec, err := entry.extract(ctx, s.fetcher)
	if err != nil {
		return internal.MagazineRecord{}, &SourceError{Source: src, Err: err}
	}
	s.logger.Info().Str("source", src.String()).Dur("elapsed", time.Since(start)).Msg("done")
	return rec, nil
}

func (s *Scraper) ScrapeAll(ctx context.Context) ([]internal.MagazineRecord, error) {
	return s.Scrape(ctx, Sources())
}

// Scrape returns one record per source in the order given. The first failure
// aborts the batch and no records are returned.
func (s *Scraper) Scrape(ctx context.Context, sources []internal.Source) ([]internal.MagazineRecord, error) {
	if s.concurrency < 2 {
		out := make([]internal.MagazineRecord, 0, len(sources))
		for _, src := range sources {
			rec, err := s.ScrapeOne(ctx, src)
			if err != nil {
				return nil, err
			}
			out = append(out, rec)
		}
		return out, nil
	}

	out := make([]internal.MagazineRecord, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			rec, err := s.ScrapeOne(gctx, src)
			if err != nil {
				return err
			}
			out[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ScrapeKeepGoing isolates failures per source: records of healthy sources
// keep their relative order and every failure is returned alongside.
func (s *Scraper) ScrapeKeepGoing(ctx context.Context, sources []internal.Source) ([]internal.MagazineRecord, []*SourceError) {
	records := make([]*internal.MagazineRecord, len(sources))
	failures := make([]*SourceError, len(sources))

	limit := s.concurrency
	if limit < 1 {
		limit = 1
	}
	g := new(errgroup.Group)
	g.SetLimit(limit)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			rec, err := s.ScrapeOne(ctx, src)
			if err != nil {
				var srcErr *SourceError
				if !errors.As(err, &srcErr) {
					srcErr = &SourceError{Source: src, Err: err}
				}
				s.logger.Warn().Str("source", src.String()).Err(srcErr.Err).Msg("scrape failed")
				failures[i] = srcErr
				return nil
			}
			records[i] = &rec
			return nil
		})
	}
	_ = g.Wait()

	out := make([]internal.MagazineRecord, 0, len(sources))
	var errs []*SourceError
	for i := range sources {
		if records[i] != nil {
			out = append(out, *records[i])
		}
		if failures[i] != nil {
			errs = append(errs, failures[i])
		}
	}
	return out, errs
}
