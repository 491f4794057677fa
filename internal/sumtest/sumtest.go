// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

package sumtest

import (
	"math/rand"
	"testing"

	"github.com/elgopher/adler/checksum"
	"github.com/stretchr/testify/require"
)

// Naive computes Adler-32 the straightforward way, reducing both sums after
// every byte. Optimized implementations are compared against it.
func Naive(data []byte) uint32 {
	const mod = 65521
	var s1, s2 uint32 = 1, 0
	for _, b := range data {
		s1 = (s1 + uint32(b)) % mod
		s2 = (s2 + s1) % mod
	}
	return s2<<16 | s1
}

func Pattern(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func Random(size int, seed int64) []byte {
	data := make([]byte, size)
	rand.New(rand.NewSource(seed)).Read(data)
	return data
}

func Write(t *testing.T, sum checksum.Sum, data []byte) {
	n, err := sum.Write(data)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
}
