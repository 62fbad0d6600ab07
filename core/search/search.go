// core/search/search.go
package search

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"fastagrep-core/genome"
	"fastagrep-core/scan"
)

// ErrEmptyPattern rejects zero-length patterns; the scan kernel is
// undefined for them.
var ErrEmptyPattern = errors.New("search: empty pattern")

// SegmentStats describes one finished partition scan. Delivered to
// Config.OnSegment as segments complete.
type SegmentStats struct {
	Index   int
	Lo, Hi  int
	Matches int
	Elapsed time.Duration
}

// Config controls a Searcher.
type Config struct {
	// Workers is the number of concurrent segment scans per Search
	// call; 0 or less means runtime.NumCPU().
	Workers int
	// OnSegment, when non-nil, receives per-segment stats. It may be
	// called from multiple goroutines and must be safe for that.
	OnSegment func(SegmentStats)
}

type scanFunc func(seq []byte, valid, lo, hi int, pattern []byte) ([]int, error)

// Searcher runs exact-pattern searches over an immutable Store. It
// keeps no state between calls and is safe for concurrent use.
type Searcher struct {
	cfg    Config
	scanFn scanFunc
}

// New creates a Searcher.
func New(cfg Config) *Searcher {
	return &Searcher{
		cfg: cfg,
		scanFn: func(seq []byte, valid, lo, hi int, pattern []byte) ([]int, error) {
			return scan.Range(seq, valid, lo, hi, pattern), nil
		},
	}
}

// Search returns every offset at which pattern occurs in st, strictly
// ascending. The valid range is partitioned across the configured
// worker count and each segment scans the shared buffer independently;
// the Store's immutability is what makes that safe without locking.
// Per-segment results are concatenated in partition order, not
// completion order, so output is deterministic under scheduling jitter.
//
// If any segment fails, the remaining segments are cancelled and the
// error is returned with no partial result. A pattern longer than the
// buffer, or with no occurrence, yields a nil slice and no error.
func (s *Searcher) Search(ctx context.Context, st *genome.Store, pattern []byte) ([]int, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	workers := s.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	seq := st.Bytes()
	valid := st.Len()
	parts := scan.Plan(valid, workers)
	results := make([][]int, len(parts))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range parts {
		i, p := i, p
		g.Go(func() error {
			start := time.Now()
			hits, err := s.scanSegment(gctx, seq, valid, p, pattern)
			if err != nil {
				return fmt.Errorf("segment %d [%d,%d): %w", i, p.Lo, p.Hi, err)
			}
			results[i] = hits
			if s.cfg.OnSegment != nil {
				s.cfg.OnSegment(SegmentStats{
					Index:   i,
					Lo:      p.Lo,
					Hi:      p.Hi,
					Matches: len(hits),
					Elapsed: time.Since(start),
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	if total == 0 {
		return nil, nil
	}
	out := make([]int, 0, total)
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

// scanBlock bounds how many candidate starts a segment covers between
// context checks, so a failed sibling aborts large scans promptly.
const scanBlock = 1 << 16

func (s *Searcher) scanSegment(ctx context.Context, seq []byte, valid int, p scan.Partition, pattern []byte) ([]int, error) {
	var hits []int
	for lo := p.Lo; lo < p.Hi; lo += scanBlock {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hi := lo + scanBlock
		if hi > p.Hi {
			hi = p.Hi
		}
		block, err := s.scanFn(seq, valid, lo, hi, pattern)
		if err != nil {
			return nil, err
		}
		hits = append(hits, block...)
	}
	return hits, nil
}
