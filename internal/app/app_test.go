// internal/app/app_test.go
package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFasta(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "genome.fa")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestRunSearchFindsOffsets(t *testing.T) {
	path := writeFasta(t, "aacgtacgtaa\n")

	code, out, errOut := run(t, path, "ACGT")
	assert.Equal(t, 0, code)
	assert.Equal(t, "found ACGT at 1\nfound ACGT at 5\n", out)
	assert.Contains(t, errOut, "loaded "+path)
	assert.Contains(t, errOut, "search \"ACGT\"")
}

func TestRunNotFoundIsSuccess(t *testing.T) {
	path := writeFasta(t, "ACGT\n")

	code, out, _ := run(t, "--quiet", path, "GGGG")
	assert.Equal(t, 0, code)
	assert.Equal(t, "not found\n", out)
}

func TestRunLoadOnly(t *testing.T) {
	path := writeFasta(t, "ACGT\n")

	code, out, errOut := run(t, path)
	assert.Equal(t, 0, code)
	assert.Empty(t, out, "no search, no stdout output")
	assert.Contains(t, errOut, "loaded ")
}

func TestRunQuietSuppressesTiming(t *testing.T) {
	path := writeFasta(t, "ACGT\n")

	code, _, errOut := run(t, "--quiet", path)
	assert.Equal(t, 0, code)
	assert.Empty(t, errOut)
}

func TestRunVerboseReportsSegments(t *testing.T) {
	path := writeFasta(t, "aacgtacgtaa\n")

	code, _, errOut := run(t, "--verbose", "--threads", "2", path, "ACGT")
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "segment 0 ")
	assert.Contains(t, errOut, "segment 1 ")
}

func TestRunJSONOutput(t *testing.T) {
	path := writeFasta(t, "aacgtacgtaa\n")

	code, out, _ := run(t, "--quiet", "--output", "json", path, "ACGT")
	require.Equal(t, 0, code)

	var rep struct {
		Pattern string `json:"pattern"`
		Count   int    `json:"count"`
		Offsets []int  `json:"offsets"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "ACGT", rep.Pattern)
	assert.Equal(t, 2, rep.Count)
	assert.Equal(t, []int{1, 5}, rep.Offsets)
}

func TestRunMmapLoader(t *testing.T) {
	path := writeFasta(t, "aacgtacgtaa\n")

	code, out, _ := run(t, "--quiet", "--mmap", path, "ACGT")
	assert.Equal(t, 0, code)
	assert.Equal(t, "found ACGT at 1\nfound ACGT at 5\n", out)
}

func TestRunLoadFailureExitsNonZero(t *testing.T) {
	code, out, errOut := run(t, "--quiet", filepath.Join(t.TempDir(), "missing.fa"), "ACGT")
	assert.Equal(t, 3, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "missing.fa")
}

func TestRunEmptyPatternFails(t *testing.T) {
	path := writeFasta(t, "ACGT\n")

	code, _, errOut := run(t, "--quiet", path, "")
	assert.Equal(t, 3, code)
	assert.Contains(t, errOut, "empty pattern")
}

func TestRunUsageErrors(t *testing.T) {
	code, _, errOut := run(t, "--output", "xml", "genome.fa")
	assert.Equal(t, 2, code)
	assert.NotEmpty(t, errOut)

	code, out, _ := run(t)
	assert.Equal(t, 2, code)
	assert.True(t, strings.Contains(out, "Usage"))
	assert.Contains(t, out, "threads", "bare invocation must list registered flags")
}

func TestRunVersion(t *testing.T) {
	code, out, _ := run(t, "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "fastagrep version")
}
