package integrity

func IsChecksumMismatch(err error) bool {
	_, ok := err.(checksumMismatchError)
	return ok
}

type checksumMismatchError struct {
	msg string
}

func (e checksumMismatchError) Error() string {
	return e.msg
}
