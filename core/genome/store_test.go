package genome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStoreClampsValid(t *testing.T) {
	buf := []byte("ACGTNN")

	st := NewStore(buf, 4)
	assert.Equal(t, []byte("ACGT"), st.Bytes())
	assert.Equal(t, 4, st.Len())
	assert.Equal(t, len(buf), st.Cap())

	assert.Equal(t, 0, NewStore(buf, -1).Len())
	assert.Equal(t, len(buf), NewStore(buf, 100).Len())
}
