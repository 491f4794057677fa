// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

// Package adler32 implements the Adler-32 checksum defined in RFC 1950,
// computed incrementally over an arbitrarily chunked stream of bytes.
//
// Adler-32 detects accidental corruption only. It is not a cryptographic
// hash and must never be used for security purposes.
package adler32

// Size is the number of bytes Sum appends.
const Size = 4

const (
	// mod is the largest prime smaller than 65536 (see RFC 1950).
	mod = 65521
	// maxBatch is the longest run of bytes which can be summed without
	// reducing modulo mod and still keep both sums inside 32 bits: s1 never
	// exceeds 65520 + 255*3800 and s2 stays below 2^31.
	maxBatch = 3800
)

// Digest holds a running Adler-32 checksum built from two sums: s1 is the sum
// of all bytes consumed so far, s2 is the sum of all intermediate s1 values,
// both modulo 65521. The checksum reported by Sum32 packs them as
// (s2 << 16) | s1.
//
// The zero value is not a valid digest. Create one with New or call Reset
// before first use.
//
// A Digest is not safe for concurrent use. Callers sharing an instance
// between goroutines must serialize all calls themselves.
type Digest struct {
	s1, s2 uint32
}

// New returns a Digest in the initial state, reporting checksum 1.
func New() *Digest {
	return &Digest{s1: 1}
}

// Reset puts the digest back in the initial state.
func (d *Digest) Reset() {
	d.s1 = 1
	d.s2 = 0
}

// Sum32 returns the checksum of all bytes consumed so far. It can be called
// at any time; a digest which consumed nothing reports 1.
func (d *Digest) Sum32() uint32 {
	return d.s2<<16 | d.s1
}

// UpdateByte consumes a single byte. It is equivalent to Update with a
// one-byte range and never fails.
func (d *Digest) UpdateByte(b byte) {
	d.s1 = (d.s1 + uint32(b)) % mod
	d.s2 = (d.s2 + d.s1) % mod
}

// Update consumes count bytes of buf in order, starting at offset.
//
// The call is rejected without touching the checksum when buf is nil
// (IsInvalidArgument), when offset or count is negative, when offset points
// at or past the end of buf - also for count == 0 - or when the range
// overruns buf (all IsOutOfRange).
func (d *Digest) Update(buf []byte, offset, count int) error {
	switch {
	case buf == nil:
		return invalidArgumentError{msg: "nil buffer"}
	case offset < 0:
		return outOfRangeError{msg: "negative offset"}
	case count < 0:
		return outOfRangeError{msg: "negative count"}
	case offset >= len(buf):
		return outOfRangeError{msg: "offset at or past the end of buffer"}
	case count > len(buf)-offset:
		return outOfRangeError{msg: "offset plus count past the end of buffer"}
	}
	d.update(buf[offset : offset+count])
	return nil
}

// Write consumes all of p. It implements io.Writer, so a *Digest can be used
// everywhere a hash.Hash32 is expected. It never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	d.update(p)
	return len(p), nil
}

// Sum appends the packed checksum in big-endian order (the network order of
// RFC 1950) and returns the resulting slice.
func (d *Digest) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

func (d *Digest) Size() int {
	return Size
}

func (d *Digest) BlockSize() int {
	return 1
}

// update defers the modulo reduction: raw sums are accumulated over runs of
// at most maxBatch bytes and reduced once per run.
func (d *Digest) update(p []byte) {
	s1, s2 := d.s1, d.s2
	for len(p) > 0 {
		batch := p
		if len(batch) > maxBatch {
			batch = batch[:maxBatch]
		}
		p = p[len(batch):]
		for _, b := range batch {
			s1 += uint32(b)
			s2 += s1
		}
		s1 %= mod
		s2 %= mod
	}
	d.s1, d.s2 = s1, s2
}

// Checksum returns the Adler-32 checksum of data.
func Checksum(data []byte) uint32 {
	d := New()
	d.update(data)
	return d.Sum32()
}
