package recq

import "log/slog"

// Op names a collection mutation in log output.
type Op int

const (
	OpNone Op = iota
	OpUpdate
	OpDelete
	OpDeleteCopy
	OpDeleteWhere
	OpDeleteAt
)

var opNames = [...]string{
	OpNone:        "NONE",
	OpUpdate:      "UPDATE",
	OpDelete:      "DELETE",
	OpDeleteCopy:  "DELETE.COPY",
	OpDeleteWhere: "DELETE.WHERE",
	OpDeleteAt:    "DELETE.AT",
}

func (op Op) String() string {
	if op >= 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return "UNKNOWN"
}

func logChange(op Op, applied bool, attrs ...any) {
	msg := "recq: " + op.String()
	if !applied {
		msg += ".NOOP"
	}
	slog.Debug(msg, attrs...)
}
