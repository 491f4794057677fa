// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

package adler32

// IsInvalidArgument returns true when err reports a missing buffer.
func IsInvalidArgument(err error) bool {
	_, ok := err.(invalidArgumentError)
	return ok
}

// IsOutOfRange returns true when err reports an offset or count outside the
// buffer.
func IsOutOfRange(err error) bool {
	_, ok := err.(outOfRangeError)
	return ok
}

type invalidArgumentError struct {
	msg string
}

func (e invalidArgumentError) Error() string {
	return e.msg
}

type outOfRangeError struct {
	msg string
}

func (e outOfRangeError) Error() string {
	return e.msg
}
