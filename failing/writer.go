package failing

import (
	"errors"
	"io"
)

func Write(decorated io.WriteCloser) io.WriteCloser {
	writer := decorateWriter(decorated)
	writer.write = func([]byte) (int, error) {
		return 0, errors.New("write failed")
	}
	return writer
}

func WriterClose(decorated io.WriteCloser) io.WriteCloser {
	writer := decorateWriter(decorated)
	writer.close = func() error {
		return errors.New("close failed")
	}
	return writer
}

func decorateWriter(writer io.WriteCloser) *writeCloser {
	return &writeCloser{
		write: writer.Write,
		close: writer.Close,
	}
}

type writeCloser struct {
	write func(p []byte) (int, error)
	close func() error
}

func (w *writeCloser) Write(p []byte) (int, error) {
	return w.write(p)
}

func (w *writeCloser) Close() error {
	return w.close()
}
