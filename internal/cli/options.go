// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"fastagrep/internal/version"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Options holds all CLI flags and positional arguments.
type Options struct {
	Path       string
	Pattern    string
	HasPattern bool // false = load-and-time only

	Threads int
	Mmap    bool

	Output  string // text | json
	Quiet   bool
	Verbose bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: parallel exact-pattern search over FASTA-style sequence files

Version: %s

Usage:
  %s [flags] <file> [pattern]

With only <file>, the sequence is loaded and timed; no search runs.
Use '-' to read from stdin. Gzip and zstd input are decompressed.

Flags:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")
	fs.BoolVar(&opt.Mmap, "mmap", false, "load via memory mapping (plain local files) [false]")
	fs.StringVar(&opt.Output, "output", OutputText, "output format: text | json [text]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress timing reports on stderr [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "report per-segment progress on stderr [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	args := fs.Args()
	switch len(args) {
	case 1:
		opt.Path = args[0]
	case 2:
		opt.Path = args[0]
		opt.Pattern = args[1]
		opt.HasPattern = true
	default:
		return opt, errors.New("expected <file> [pattern]")
	}

	if opt.Output != OutputText && opt.Output != OutputJSON {
		return opt, fmt.Errorf("invalid --output %q (use text or json)", opt.Output)
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be >= 0")
	}
	return opt, nil
}
