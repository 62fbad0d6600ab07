// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
)

// Report is the document emitted by --output json.
type Report struct {
	Path     string  `json:"path"`
	Pattern  string  `json:"pattern"`
	Count    int     `json:"count"`
	Offsets  []int   `json:"offsets"`
	LoadMS   float64 `json:"load_ms"`
	SearchMS float64 `json:"search_ms"`
}

// WriteJSON emits one Report followed by a newline.
func WriteJSON(w io.Writer, r Report) error {
	if r.Offsets == nil {
		r.Offsets = []int{}
	}
	r.Count = len(r.Offsets)
	return json.NewEncoder(w).Encode(r)
}
