package recq

import (
	"log/slog"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func valueAttr(key string, v Value) slog.Attr {
	return slog.Any(key, v)
}
