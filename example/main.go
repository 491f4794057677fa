package main

import (
	"fmt"

	"github.com/elgopher/adler/adler32"
)

// This program shows how to calculate a checksum of data arriving in pieces.
func main() {
	digest := adler32.New()

	digest.UpdateByte('W')

	err := digest.Update([]byte("xxikipediaxx"), 2, 8)
	panicIfError(err)

	_, err = fmt.Fprint(digest, "!") // Digest implements standard io.Writer interface
	panicIfError(err)

	fmt.Printf("Checksum calculated in pieces: 0x%08x\n", digest.Sum32())
	fmt.Printf("Checksum calculated at once:   0x%08x\n", adler32.Checksum([]byte("Wikipedia!")))
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}
