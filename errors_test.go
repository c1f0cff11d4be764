package recq

import (
	"errors"
	"strings"
	"testing"
)

func TestDataError_ErrorAndUnwrap(t *testing.T) {
	t.Run("small data", func(t *testing.T) {
		inner := errors.New("inner")
		err := dataErrf([]byte(`{"a"`), 4, inner, "oops")
		var de *DataError
		if !errors.As(err, &de) {
			t.Fatalf("err = %T, wanted *DataError", err)
		}
		if !errors.Is(err, inner) {
			t.Fatalf("errors.Is(err, inner) = false, wanted true")
		}
		s := err.Error()
		if !strings.Contains(s, "oops") || !strings.Contains(s, "inner") || !strings.Contains(s, "(4)") || !strings.Contains(s, "offset 4") {
			t.Fatalf("err.Error() = %q, wanted message with oops/inner/(4)/offset", s)
		}
	})

	t.Run("large data includes prefix+suffix", func(t *testing.T) {
		data := []byte(strings.Repeat("x", 200))
		err := dataErrf(data, 0, nil, "oops")
		s := err.Error()
		if !strings.Contains(s, "(200)") || !strings.Contains(s, "...") {
			t.Fatalf("err.Error() = %q, wanted message with (200) and ...", s)
		}
		if errors.Unwrap(err) != nil {
			t.Fatalf("Unwrap = %v, wanted nil", errors.Unwrap(err))
		}
	})
}
