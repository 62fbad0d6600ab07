// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sync"
	"time"

	"fastagrep-core/genome"
	"fastagrep-core/search"
	"fastagrep/internal/cli"
	"fastagrep/internal/output"
	"fastagrep/internal/version"
)

// RunContext parses argv, loads the sequence file, optionally runs the
// parallel search, and writes results to stdout. It returns the
// process exit code: 0 success (including "not found"), 2 usage
// errors, 3 load/search/write failures.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("fastagrep")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		// Register flags so Usage prints defaults.
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, 2)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flush(outw, stderr, 0)
		}
		fmt.Fprintln(stderr, err)
		return flush(outw, stderr, 2)
	}
	if opts.Version {
		fmt.Fprintf(outw, "fastagrep version %s\n", version.Version)
		return flush(outw, stderr, 0)
	}

	loadStart := time.Now()
	var st *genome.Store
	if opts.Mmap {
		st, err = genome.LoadMapped(opts.Path)
	} else {
		st, err = genome.Load(opts.Path)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	loadElapsed := time.Since(loadStart)
	if !opts.Quiet {
		fmt.Fprintf(stderr, "loaded %s: %d bytes in %s\n", opts.Path, st.Len(), loadElapsed)
	}
	if !opts.HasPattern {
		return flush(outw, stderr, 0)
	}

	cfg := search.Config{Workers: opts.Threads}
	if opts.Verbose && !opts.Quiet {
		var segMu sync.Mutex // segments report concurrently
		cfg.OnSegment = func(s search.SegmentStats) {
			segMu.Lock()
			defer segMu.Unlock()
			fmt.Fprintf(stderr, "segment %d [%d,%d): %d matches in %s\n",
				s.Index, s.Lo, s.Hi, s.Matches, s.Elapsed)
		}
	}

	searchStart := time.Now()
	offsets, err := search.New(cfg).Search(parent, st, []byte(opts.Pattern))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	searchElapsed := time.Since(searchStart)
	if !opts.Quiet {
		fmt.Fprintf(stderr, "search %q: %d matches in %s\n", opts.Pattern, len(offsets), searchElapsed)
	}

	switch opts.Output {
	case cli.OutputJSON:
		err = output.WriteJSON(outw, output.Report{
			Path:     opts.Path,
			Pattern:  opts.Pattern,
			Offsets:  offsets,
			LoadMS:   float64(loadElapsed) / float64(time.Millisecond),
			SearchMS: float64(searchElapsed) / float64(time.Millisecond),
		})
	default:
		err = output.WriteText(outw, opts.Pattern, offsets)
	}
	if output.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return flush(outw, stderr, 0)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); output.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
