package meow

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestDigestViews(t *testing.T) {
	var d Digest
	for i := range d {
		d[i] = byte(i)
	}

	assert.Equal(t, d.U32(0), uint32(0x03020100))
	assert.Equal(t, d.U32(3), uint32(0x0f0e0d0c))
	assert.Equal(t, d.U64(0), uint64(0x0706050403020100))
	assert.Equal(t, d.U64(1), uint64(0x0f0e0d0c0b0a0908))

	lo, hi := d.U128()
	assert.Equal(t, lo, d.U64(0))
	assert.Equal(t, hi, d.U64(1))
}

func TestDigestEqual(t *testing.T) {
	a := Digest{1, 2, 3}
	b := a
	assert.That(t, a.Equal(b))
	assert.That(t, Equal(a, b))

	for i := range b {
		c := a
		c[i] ^= 0x80
		assert.That(t, !Equal(a, c))
	}
}

func TestDigestText(t *testing.T) {
	d := mustNew(t, Width128).Sum(Seed{}, testBuffer())
	assert.Equal(t, d.String(), "01461F31-44B37202-B0D1D70A-09455BA5")

	text, err := d.MarshalText()
	assert.NoError(t, err)

	var got Digest
	assert.NoError(t, got.UnmarshalText(text))
	assert.Equal(t, got, d)

	lower, err := ParseDigest("01461f31-44b37202-b0d1d70a-09455ba5")
	assert.NoError(t, err)
	assert.Equal(t, lower, d)

	for _, s := range []string{
		"",
		"01461F31-44B37202-B0D1D70A-09455BA",
		"01461F31 44B37202-B0D1D70A-09455BA5",
		"01461F3G-44B37202-B0D1D70A-09455BA5",
		"+1461F31-44B37202-B0D1D70A-09455BA5",
	} {
		_, err := ParseDigest(s)
		assert.Error(t, err)
	}
}

func TestSeed(t *testing.T) {
	assert.Equal(t, Seed64(1), Seed{1})
	assert.Equal(t, Seed128(1, 2), Seed{0: 1, 8: 2})

	s, err := SeedFromBytes([]byte{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, s, Seed{1, 2, 3})

	_, err = SeedFromBytes(make([]byte, 17))
	assert.Error(t, err)
}
