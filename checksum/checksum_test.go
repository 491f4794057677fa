// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

package checksum_test

import (
	"fmt"
	"testing"

	"github.com/elgopher/adler/checksum"
	"github.com/elgopher/adler/fake"
	"github.com/elgopher/adler/internal/sumtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgorithm_Name(t *testing.T) {
	t.Run("should report lower-case alphanumeric name", func(t *testing.T) {
		tests := map[string]checksum.Algorithm{
			"adler32": checksum.Adler32,
			"crc32":   checksum.CRC32,
			"crc64":   checksum.CRC64,
			"sha512":  checksum.SHA512,
			"md5":     checksum.MD5,
			"fnv32":   checksum.FNV32,
			"fnv32a":  checksum.FNV32a,
			"fnv64":   checksum.FNV64,
			"fnv64a":  checksum.FNV64a,
			"fnv128":  checksum.FNV128,
			"fnv128a": checksum.FNV128a,
		}
		for expectedName, algorithm := range tests {
			t.Run(expectedName, func(t *testing.T) {
				assert.Equal(t, expectedName, algorithm.Name())
			})
		}
	})
}

func TestHashSum_Marshal(t *testing.T) {
	tests := map[string]struct {
		algorithm   checksum.Algorithm
		expectedSum string
	}{
		"adler32": {
			algorithm:   checksum.Adler32,
			expectedSum: "0400019b",
		},
		"crc32": {
			algorithm:   checksum.CRC32,
			expectedSum: "adf3f363",
		},
		"crc64": {
			algorithm:   checksum.CRC64,
			expectedSum: "3408641350000000",
		},
		"sha512": {
			algorithm:   checksum.SHA512,
			expectedSum: "77c7ce9a5d86bb386d443bb96390faa120633158699c8844c30b13ab0bf92760b7e4416aea397db91b4ac0e5dd56b8ef7e4b066162ab1fdc088319ce6defc876",
		},
		"md5": {
			algorithm:   checksum.MD5,
			expectedSum: "8d777f385d3dfec8815d20f7496026dc",
		},
		"fnv32": {
			algorithm:   checksum.FNV32,
			expectedSum: "74cb23bd",
		},
		"fnv32a": {
			algorithm:   checksum.FNV32a,
			expectedSum: "d872e2a5",
		},
		"fnv64": {
			algorithm:   checksum.FNV64,
			expectedSum: "14dfb87eecce7a1d",
		},
		"fnv64a": {
			algorithm:   checksum.FNV64a,
			expectedSum: "855b556730a34a05",
		},
		"fnv128": {
			algorithm:   checksum.FNV128,
			expectedSum: "66ab729108757277b806e89c746322b5",
		},
		"fnv128a": {
			algorithm:   checksum.FNV128a,
			expectedSum: "695b598c64757277b806e9704d5d6a5d",
		},
		"fake": {
			algorithm:   fake.Algorithm{FixedSum: []byte{1, 2, 3, 4}},
			expectedSum: "01020304",
		},
	}

	t.Run("should marshal sum", func(t *testing.T) {
		for name, test := range tests {
			t.Run(name, func(t *testing.T) {
				sum := test.algorithm.NewSum()
				sumtest.Write(t, sum, []byte("data"))
				// when
				bytes := sum.Marshal()
				// then
				assert.Equal(t, test.expectedSum, fmt.Sprintf("%x", bytes))
			})
		}
	})

	t.Run("should marshal sum after two writes", func(t *testing.T) {
		for name, test := range tests {
			t.Run(name, func(t *testing.T) {
				sum := test.algorithm.NewSum()
				sumtest.Write(t, sum, []byte("da"))
				sumtest.Write(t, sum, []byte("ta"))
				// when
				bytes := sum.Marshal()
				// then
				assert.Equal(t, test.expectedSum, fmt.Sprintf("%x", bytes))
			})
		}
	})

	t.Run("should marshal sum of each new sum independently", func(t *testing.T) {
		algorithm := checksum.Adler32
		first := algorithm.NewSum()
		sumtest.Write(t, first, []byte("data"))
		// when
		second := algorithm.NewSum()
		// then
		assert.NotEqual(t, first.Marshal(), second.Marshal())
	})
}

func TestEncodeSum(t *testing.T) {
	t.Run("should pad algorithm name with zeros", func(t *testing.T) {
		sum := []byte{0x04, 0x00, 0x01, 0x9b}
		// when
		encoded, err := checksum.EncodeSum("adler32", sum)
		// then
		require.NoError(t, err)
		expected := append([]byte("adler32\x00"), sum...)
		assert.Equal(t, expected, encoded)
	})

	t.Run("should accept 8 character name", func(t *testing.T) {
		encoded, err := checksum.EncodeSum("abcdefgh", []byte{1})
		require.NoError(t, err)
		assert.Equal(t, []byte("abcdefgh\x01"), encoded)
	})

	t.Run("should accept empty sum", func(t *testing.T) {
		encoded, err := checksum.EncodeSum("crc32", nil)
		require.NoError(t, err)
		assert.Len(t, encoded, 8)
	})

	t.Run("should return error for invalid name", func(t *testing.T) {
		tests := map[string]string{
			"empty name":    "",
			"too long name": "abcdefghi",
		}
		for name, algorithmName := range tests {
			t.Run(name, func(t *testing.T) {
				encoded, err := checksum.EncodeSum(algorithmName, []byte{1})
				assert.Error(t, err)
				assert.Nil(t, encoded)
			})
		}
	})
}

func TestDecodeSum(t *testing.T) {
	t.Run("should decode what was encoded", func(t *testing.T) {
		tests := map[string]struct {
			algorithm string
			sum       []byte
		}{
			"adler32":          {algorithm: "adler32", sum: []byte{0x04, 0x00, 0x01, 0x9b}},
			"single character": {algorithm: "a", sum: []byte{0xFF}},
			"8 characters":     {algorithm: "abcdefgh", sum: []byte{1, 2, 3}},
		}
		for name, test := range tests {
			t.Run(name, func(t *testing.T) {
				encoded, err := checksum.EncodeSum(test.algorithm, test.sum)
				require.NoError(t, err)
				// when
				algorithm, sum, err := checksum.DecodeSum(encoded)
				// then
				require.NoError(t, err)
				assert.Equal(t, test.algorithm, algorithm)
				assert.Equal(t, test.sum, sum)
			})
		}
	})

	t.Run("should decode empty sum", func(t *testing.T) {
		algorithm, sum, err := checksum.DecodeSum([]byte("md5\x00\x00\x00\x00\x00"))
		require.NoError(t, err)
		assert.Equal(t, "md5", algorithm)
		assert.Empty(t, sum)
	})

	t.Run("should return error when encoded sum is too short", func(t *testing.T) {
		tests := map[string][]byte{
			"nil":         nil,
			"empty":       {},
			"seven bytes": []byte("adler32"),
		}
		for name, encoded := range tests {
			t.Run(name, func(t *testing.T) {
				algorithm, sum, err := checksum.DecodeSum(encoded)
				assert.Error(t, err)
				assert.Empty(t, algorithm)
				assert.Nil(t, sum)
			})
		}
	})
}
