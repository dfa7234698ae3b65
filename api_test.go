package meow

import (
	"hash"
	"io"
	"strings"
	"testing"

	"github.com/zeebo/assert"
)

var _ hash.Hash = (*Hasher)(nil)

func TestHasher(t *testing.T) {
	buf := testBuffer()

	for _, w := range widths {
		impl := mustNew(t, w)
		h := NewHasher(impl, Seed64(3))

		for b := buf; len(b) > 0; {
			n := min(len(b), 777)
			_, err := h.Write(b[:n])
			assert.NoError(t, err)
			b = b[n:]
		}

		exp := impl.Sum(Seed64(3), buf)
		assert.Equal(t, h.Digest(), exp)
		assert.Equal(t, h.Sum([]byte("x")), append([]byte("x"), exp[:]...))
		assert.Equal(t, h.Size(), 16)
		assert.Equal(t, h.BlockSize(), w.BlockSize())

		h.Reset()
		assert.Equal(t, h.Digest(), impl.Sum(Seed64(3), nil))
	}
}

func TestHasherCopy(t *testing.T) {
	h := NewHasher(Impl{}, Seed{})
	_, err := io.Copy(h, strings.NewReader("some data"))
	assert.NoError(t, err)
	assert.Equal(t, h.Digest().String(), "932BC75B-90F23D12-13F4315F-1F14EEA4")

	h.Reset()
	_, err = h.WriteString("some data")
	assert.NoError(t, err)
	assert.Equal(t, h.Digest().String(), "932BC75B-90F23D12-13F4315F-1F14EEA4")
}
