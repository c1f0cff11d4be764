package recq

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestOpString(t *testing.T) {
	eq(t, OpDelete.String(), "DELETE")
	eq(t, OpDeleteWhere.String(), "DELETE.WHERE")
	eq(t, Op(99).String(), "UNKNOWN")
}

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestMutationsAreLogged(t *testing.T) {
	buf := captureLog(t)

	c := books()
	DeleteByID(&c, Int(2))
	DeleteByID(&c, Int(2))
	UpdateByID(c, Int(1), RecordOf(map[string]any{"title": "X"}))

	out := buf.String()
	for _, want := range []string{`msg="recq: DELETE" id=2 index=1`, `msg="recq: DELETE.NOOP" id=2`, `msg="recq: UPDATE" id=1 fields=1`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
