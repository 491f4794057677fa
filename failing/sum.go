// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

package failing

import (
	"errors"

	"github.com/elgopher/adler/checksum"
)

func SumWrite(decorated checksum.Algorithm) checksum.Algorithm {
	return &algorithm{
		name: decorated.Name(),
		newSum: func() checksum.Sum {
			sum := decorateSum(decorated.NewSum())
			sum.write = func([]byte) (int, error) {
				return 0, errors.New("sum write failed")
			}
			return sum
		},
	}
}

type algorithm struct {
	name   string
	newSum func() checksum.Sum
}

func (a *algorithm) Name() string {
	return a.name
}

func (a *algorithm) NewSum() checksum.Sum {
	return a.newSum()
}

func decorateSum(decorated checksum.Sum) *sum {
	return &sum{
		write:   decorated.Write,
		marshal: decorated.Marshal,
	}
}

type sum struct {
	write   func(p []byte) (int, error)
	marshal func() []byte
}

func (s *sum) Write(p []byte) (int, error) {
	return s.write(p)
}

func (s *sum) Marshal() []byte {
	return s.marshal()
}
