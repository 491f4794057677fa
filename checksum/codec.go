// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

package checksum

import (
	"bytes"
	"errors"
	"fmt"
)

const nameLen = 8

// EncodeSum prepends the algorithm name to the marshaled sum. The name takes
// a fixed 8 bytes and is padded with zeros.
func EncodeSum(algorithm string, sum []byte) ([]byte, error) {
	if algorithm == "" {
		return nil, errors.New("empty algorithm name")
	}
	if len(algorithm) > nameLen {
		return nil, fmt.Errorf("algorithm name longer than %d characters: %s", nameLen, algorithm)
	}
	encoded := make([]byte, nameLen+len(sum))
	copy(encoded, algorithm)
	copy(encoded[nameLen:], sum)
	return encoded, nil
}

// DecodeSum splits data encoded with EncodeSum back into the algorithm name
// and the marshaled sum.
func DecodeSum(encoded []byte) (algorithm string, sum []byte, err error) {
	if len(encoded) < nameLen {
		return "", nil, fmt.Errorf("encoded sum shorter than %d bytes", nameLen)
	}
	name := bytes.TrimRight(encoded[:nameLen], "\x00")
	return string(name), encoded[nameLen:], nil
}
