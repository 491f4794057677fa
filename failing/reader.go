// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

// Package failing provides decorators failing on chosen operations
package failing

import (
	"errors"
	"io"
)

func Read(decorated io.ReadCloser) io.ReadCloser {
	reader := decorateReader(decorated)
	reader.read = func([]byte) (int, error) {
		return 0, errors.New("read failed")
	}
	return reader
}

func ReaderClose(decorated io.ReadCloser) io.ReadCloser {
	reader := decorateReader(decorated)
	reader.close = func() error {
		return errors.New("close failed")
	}
	return reader
}

func decorateReader(reader io.ReadCloser) *readCloser {
	return &readCloser{
		read:  reader.Read,
		close: reader.Close,
	}
}

type readCloser struct {
	read  func(p []byte) (int, error)
	close func() error
}

func (r *readCloser) Read(p []byte) (int, error) {
	return r.read(p)
}

func (r *readCloser) Close() error {
	return r.close()
}
