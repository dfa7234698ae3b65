package meow

// Hasher is a hash.Hash for meow. Meow only hashes contiguous spans, so a
// Hasher keeps every written byte in memory and hashes them all at once in
// Sum. Prefer Impl.Sum when the data is already in one slice.
type Hasher struct {
	impl Impl
	seed Seed
	buf  []byte
}

// NewHasher returns a Hasher using impl and seed.
func NewHasher(impl Impl, seed Seed) *Hasher {
	return &Hasher{impl: impl, seed: seed}
}

// Write implements part of the hash.Hash interface. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.buf = append(h.buf, p...)
	return len(p), nil
}

// WriteString is like Write but for strings.
func (h *Hasher) WriteString(s string) (int, error) {
	h.buf = append(h.buf, s...)
	return len(s), nil
}

// Reset implements part of the hash.Hash interface. It causes the Hasher to
// act as if it was newly created, keeping its buffer for reuse.
func (h *Hasher) Reset() {
	h.buf = h.buf[:0]
}

// Size implements part of the hash.Hash interface. It returns the number of
// bytes the hash will output.
func (h *Hasher) Size() int {
	return Size
}

// BlockSize implements part of the hash.Hash interface. It returns the block
// size of the kernel.
func (h *Hasher) BlockSize() int {
	return h.impl.Width().BlockSize()
}

// Sum implements part of the hash.Hash interface. It appends the digest of
// everything written so far to b and returns it.
func (h *Hasher) Sum(b []byte) []byte {
	d := h.Digest()
	return append(b, d[:]...)
}

// Digest returns the digest of everything written so far.
func (h *Hasher) Digest() Digest {
	return h.impl.Sum(h.seed, h.buf)
}
