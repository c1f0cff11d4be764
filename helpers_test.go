package recq

import (
	"log/slog"
	"reflect"
	"testing"
)

func init() {
	slog.SetLogLoggerLevel(slog.LevelDebug)
}

func books() Collection {
	return CollectionOf(
		map[string]any{"id": 1, "title": "English course", "author": map[string]any{"first_name": "Joe", "last_name": "Doe"}, "year": 2009},
		map[string]any{"id": 2, "title": "Italian course", "author": map[string]any{"first_name": "Pico", "last_name": "Pallino"}, "year": 2010},
		map[string]any{"id": 3, "title": "German course", "author": map[string]any{"first_name": "Max", "last_name": "Musterman"}, "year": 2009},
	)
}

func ids(vs []Value) []float64 {
	var result []float64
	for _, v := range vs {
		id, _ := v.Get("id")
		result = append(result, id.Number())
	}
	return result
}

func eq[T comparable](t testing.TB, a, e T) {
	if a != e {
		t.Helper()
		t.Fatalf("** got %v, wanted %v", a, e)
	}
}

func deepEqual[T any](t testing.TB, a, e T) {
	if !reflect.DeepEqual(a, e) {
		t.Helper()
		t.Errorf("** got %v, wanted %v", a, e)
	}
}

func valueEqual(t testing.TB, a, e Value) {
	if !LooseEqual(a, e) || a.Kind() != e.Kind() {
		t.Helper()
		t.Errorf("** got %v (%v), wanted %v (%v)", a, a.Kind(), e, e.Kind())
	}
}

func isempty[T any, S ~[]T](t testing.TB, a S) {
	if len(a) > 0 {
		t.Helper()
		t.Errorf("** got %v, wanted empty slice", a)
	}
}
