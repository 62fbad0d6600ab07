// core/genome/load.go
package genome

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// ErrTooLarge reports a source that cannot be indexed by a single
// in-memory buffer.
var ErrTooLarge = errors.New("file too large for in-memory buffer")

const (
	maxBuf  = int(^uint(0) >> 1)
	maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader handles "-" (stdin) plus transparent gzip and zstd,
// detected by magic number or file suffix. The returned size is the
// on-disk size (0 for stdin), used as an allocation hint and for the
// ErrTooLarge check.
func openReader(path string) (io.ReadCloser, int64, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), 0, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	st, err := fh.Stat()
	if err != nil {
		_ = fh.Close()
		return nil, 0, err
	}
	var sig [4]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, 0, err
	}
	switch {
	case (n >= 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, 0, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, st.Size(), nil
	case (n == 4 && sig[0] == 0x28 && sig[1] == 0xb5 && sig[2] == 0x2f && sig[3] == 0xfd) || strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, 0, err
		}
		return &multiReadCloser{Reader: zr, closers: []io.Closer{zr.IOReadCloser(), fh}}, st.Size(), nil
	}
	return fh, st.Size(), nil
}

// Load reads a FASTA-style file into an immutable Store.
//
// Every line is uppercased and appended verbatim with its terminator
// dropped. Header lines are NOT filtered: a leading ">name" line
// becomes part of the searchable buffer. That matches the historical
// loader this tool replaces; filtering would shift every downstream
// offset, so it is kept as documented behavior.
//
// "-" reads stdin; gzip and zstd input are decompressed transparently.
func Load(path string) (*Store, error) {
	rc, size, err := openReader(path)
	if err != nil {
		return nil, fmt.Errorf("genome: open %s: %w", path, err)
	}
	defer func() { _ = rc.Close() }()
	if size > int64(maxBuf) {
		return nil, fmt.Errorf("genome: %s: %w", path, ErrTooLarge)
	}
	st, err := load(rc, int(size))
	if err != nil {
		return nil, fmt.Errorf("genome: read %s: %w", path, err)
	}
	return st, nil
}

func load(r io.Reader, sizeHint int) (*Store, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	if sizeHint < 1<<10 {
		sizeHint = 1 << 10
	}
	data := make([]byte, 0, sizeHint)
	for sc.Scan() {
		for _, c := range sc.Bytes() {
			if c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
			data = append(data, c)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &Store{data: data, valid: len(data)}, nil
}
