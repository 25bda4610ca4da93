package testutil

import (
	"errors"
	"io"
	"strings"
)

// ErrBrokenPipe is returned by readers built with FailingReader
var ErrBrokenPipe = errors.New("broken pipe")

type failingReader struct {
	data io.Reader
	err  error
}

// FailingReader returns a reader that yields data and then fails with err
// instead of io.EOF
func FailingReader(data string, err error) io.Reader {
	return &failingReader{data: strings.NewReader(data), err: err}
}

func (r *failingReader) Read(p []byte) (int, error) {
	n, err := r.data.Read(p)
	if err == io.EOF {
		return n, r.err
	}
	return n, err
}
