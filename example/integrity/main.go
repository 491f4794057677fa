package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/elgopher/adler/checksum"
	"github.com/elgopher/adler/integrity"
	"github.com/elgopher/yala/adapter/console"
)

// This program shows how to verify the integrity of data kept in memory.
// The checksum is persisted next to the data and verified when the data is
// read back.
func main() {
	integrity.SetLoggerAdapter(console.StdoutAdapter()) // enable logging

	var stored bytes.Buffer
	var storedSum []byte

	persistSum := func(algorithm string, sum []byte) error {
		encoded, err := checksum.EncodeSum(algorithm, sum)
		if err != nil {
			return err
		}
		storedSum = encoded
		return nil
	}
	expectedSum := func(algorithm string) ([]byte, error) {
		decodedAlgorithm, sum, err := checksum.DecodeSum(storedSum)
		if err != nil {
			return nil, err
		}
		if decodedAlgorithm != algorithm {
			return nil, fmt.Errorf("sum was persisted with different algorithm: %s", decodedAlgorithm)
		}
		return sum, nil
	}

	writer, err := integrity.NewWriter(nopWriteCloser{&stored}, persistSum)
	panicIfError(err)

	_, err = writer.Write([]byte("Some very long data :)"))
	if err != nil {
		_ = writer.Close()
		panic(err)
	}
	panicIfError(writer.Close())

	data, err := readBack(stored.Bytes(), expectedSum)
	panicIfError(err)
	fmt.Println("Data read back:", data)

	corrupted := stored.Bytes()
	corrupted[0] = 'X'
	_, err = readBack(corrupted, expectedSum)
	fmt.Println("Corruption detected:", integrity.IsChecksumMismatch(err))
}

func readBack(data []byte, expectedSum integrity.ExpectedSum) (string, error) {
	reader, err := integrity.NewReader(io.NopCloser(bytes.NewReader(data)), expectedSum)
	if err != nil {
		return "", err
	}
	content, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	if err := reader.Close(); err != nil {
		return "", err
	}
	return string(content), nil
}

type nopWriteCloser struct {
	io.Writer
}

func (w nopWriteCloser) Close() error {
	return nil
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}
