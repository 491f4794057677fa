// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

// Package integrity verifies that data read back from a store is exactly the
// data which was written before.
package integrity

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/elgopher/adler/checksum"
)

// ExpectedSum returns the marshaled sum persisted when the data was written.
type ExpectedSum func(algorithm string) ([]byte, error)

// PersistSum stores the marshaled sum once all data was written.
type PersistSum func(algorithm string, sum []byte) error

// NewReader decorates the reader with a running checksum. Close verifies the
// checksum against the one returned by expectedSum and reports a mismatch
// with an error which can be tested with IsChecksumMismatch. The decorated
// reader is closed either way.
func NewReader(reader io.ReadCloser, expectedSum ExpectedSum, options ...Option) (io.ReadCloser, error) {
	if reader == nil {
		return nil, errors.New("nil reader")
	}
	if expectedSum == nil {
		return nil, errors.New("nil expectedSum")
	}
	opts, err := applyOptions(options)
	if err != nil {
		return nil, err
	}
	return &checksumReader{
		reader:      reader,
		sum:         opts.algorithm.NewSum(),
		name:        opts.name,
		algorithm:   opts.algorithm.Name(),
		expectedSum: expectedSum,
	}, nil
}

// NewWriter decorates the writer with a running checksum. Close passes the
// marshaled sum to persistSum before closing the decorated writer.
func NewWriter(writer io.WriteCloser, persistSum PersistSum, options ...Option) (io.WriteCloser, error) {
	if writer == nil {
		return nil, errors.New("nil writer")
	}
	if persistSum == nil {
		return nil, errors.New("nil persistSum")
	}
	opts, err := applyOptions(options)
	if err != nil {
		return nil, err
	}
	return &checksumWriter{
		writer:     writer,
		sum:        opts.algorithm.NewSum(),
		name:       opts.name,
		algorithm:  opts.algorithm.Name(),
		persistSum: persistSum,
	}, nil
}

type Option func(*Options) error

type Options struct {
	algorithm checksum.Algorithm
	name      string
}

var algorithmNameRegex = regexp.MustCompile("^[a-z0-9]+$")

// Algorithm replaces the default adler32 checksum algorithm.
func Algorithm(algorithm checksum.Algorithm) Option {
	return func(options *Options) error {
		if algorithm == nil {
			return errors.New("nil algorithm")
		}
		if !algorithmNameRegex.MatchString(algorithm.Name()) {
			return fmt.Errorf("invalid algorithm name: %s", algorithm.Name())
		}
		options.algorithm = algorithm
		return nil
	}
}

// Name sets the name used in logs and in checksum mismatch errors.
func Name(name string) Option {
	return func(options *Options) error {
		if name == "" {
			return errors.New("empty name")
		}
		options.name = name
		return nil
	}
}

func applyOptions(options []Option) (*Options, error) {
	opts := &Options{
		algorithm: checksum.Adler32,
		name:      "data",
	}
	for _, apply := range options {
		if apply == nil {
			continue
		}
		if err := apply(opts); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}
	return opts, nil
}

type checksumReader struct {
	reader      io.ReadCloser
	name        string
	sum         checksum.Sum
	algorithm   string
	expectedSum ExpectedSum
}

func (c *checksumReader) Read(p []byte) (int, error) {
	n, err := c.reader.Read(p)
	if n > 0 {
		if _, sumErr := c.sum.Write(p[:n]); sumErr != nil {
			return n, fmt.Errorf("error updating checksum: %w", sumErr)
		}
	}
	return n, err
}

func (c *checksumReader) Close() error {
	expected, err := c.expectedSum(c.algorithm)
	if err != nil {
		_ = c.reader.Close()
		return err
	}
	if !bytes.Equal(c.sum.Marshal(), expected) {
		_ = c.reader.Close()
		log.With("name", c.name).With("algorithm", c.algorithm).
			Warn(context.Background(), "checksum mismatch")
		return checksumMismatchError{msg: fmt.Sprintf("checksum mismatch for %s", c.name)}
	}
	return c.reader.Close()
}

type checksumWriter struct {
	writer     io.WriteCloser
	name       string
	sum        checksum.Sum
	algorithm  string
	persistSum PersistSum
}

func (c *checksumWriter) Write(p []byte) (n int, err error) {
	if n, err := c.sum.Write(p); err != nil {
		return n, err
	}
	return c.writer.Write(p)
}

func (c *checksumWriter) Close() error {
	sum := c.sum.Marshal()
	if err := c.persistSum(c.algorithm, sum); err != nil {
		_ = c.writer.Close()
		return err
	}
	log.With("name", c.name).With("algorithm", c.algorithm).
		Debug(context.Background(), "checksum persisted")
	return c.writer.Close()
}
