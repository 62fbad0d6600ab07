// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// WriteText prints one "found <pattern> at <offset>" line per match,
// or a single "not found" line when offsets is empty.
func WriteText(w io.Writer, pattern string, offsets []int) error {
	if len(offsets) == 0 {
		_, err := fmt.Fprintln(w, "not found")
		return err
	}
	for _, off := range offsets {
		if _, err := fmt.Fprintf(w, "found %s at %d\n", pattern, off); err != nil {
			return err
		}
	}
	return nil
}
