// core/genome/store.go
package genome

// Store holds a loaded sequence as a flat buffer of nucleotide bytes
// plus the count of leading bytes that are valid. The backing buffer
// may be larger than the valid count because line terminators are
// dropped during loading; everything past valid is unused padding.
//
// A Store is never mutated after construction, so any number of
// goroutines may read it concurrently without locking.
type Store struct {
	data  []byte
	valid int
}

// NewStore wraps an already-normalized buffer. valid is clamped to
// [0, len(data)].
func NewStore(data []byte, valid int) *Store {
	if valid < 0 {
		valid = 0
	}
	if valid > len(data) {
		valid = len(data)
	}
	return &Store{data: data, valid: valid}
}

// Bytes returns the valid portion of the buffer. Callers must not
// modify it.
func (s *Store) Bytes() []byte { return s.data[:s.valid] }

// Len returns the number of valid bytes.
func (s *Store) Len() int { return s.valid }

// Cap returns the size of the backing buffer including any padding
// past the valid region.
func (s *Store) Cap() int { return len(s.data) }
