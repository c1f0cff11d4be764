package recq

import (
	"fmt"
)

// DataError reports input that could not be decoded into values.
type DataError struct {
	Data []byte
	Off  int
	Err  error
	Msg  string
}

func dataErrf(data []byte, off int, err error, format string, args ...any) error {
	return &DataError{data, off, err, fmt.Sprintf(format, args...)}
}

func (e *DataError) Unwrap() error {
	return e.Err
}

func (e *DataError) Error() string {
	const prefixLen = 48
	const suffixLen = 16
	n := len(e.Data)
	var excerpt string
	if n <= prefixLen+suffixLen {
		excerpt = fmt.Sprintf("%q", e.Data)
	} else {
		excerpt = fmt.Sprintf("%q...%q", e.Data[:prefixLen], e.Data[n-suffixLen:])
	}
	if e.Err != nil {
		return fmt.Sprintf("%s at offset %d: %v: (%d) %s", e.Msg, e.Off, e.Err, n, excerpt)
	} else {
		return fmt.Sprintf("%s at offset %d: (%d) %s", e.Msg, e.Off, n, excerpt)
	}
}
