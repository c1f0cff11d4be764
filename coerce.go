package recq

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// LooseEqual compares two values tolerating cross-type equivalence the way
// JavaScript's == operator does: 2 equals "2", true equals 1, null equals
// undefined, ["a","b"] equals "a,b". Two containers are compared structurally.
func LooseEqual(a, b Value) bool {
	if a.kind == b.kind {
		switch a.kind {
		case Undefined, Null:
			return true
		case Bool:
			return a.b == b.b
		case Number:
			return a.n == b.n
		case String:
			return a.s == b.s
		case List:
			if len(a.l) != len(b.l) {
				return false
			}
			for i := range a.l {
				if !LooseEqual(a.l[i], b.l[i]) {
					return false
				}
			}
			return true
		case Map:
			if len(a.m) != len(b.m) {
				return false
			}
			for k, x := range a.m {
				y, ok := b.m[k]
				if !ok || !LooseEqual(x, y) {
					return false
				}
			}
			return true
		}
		return false
	}

	if a.IsNullish() || b.IsNullish() {
		return a.IsNullish() && b.IsNullish()
	}

	switch {
	case a.kind == Number && b.kind == String:
		return a.n == toNumber(b.s)
	case a.kind == String && b.kind == Number:
		return toNumber(a.s) == b.n
	case a.kind == Bool:
		return LooseEqual(Num(boolToNumber(a.b)), b)
	case b.kind == Bool:
		return LooseEqual(a, Num(boolToNumber(b.b)))
	case isContainer(a) && !isContainer(b):
		return LooseEqual(Str(toPrimitiveString(a)), b)
	case isContainer(b) && !isContainer(a):
		return LooseEqual(a, Str(toPrimitiveString(b)))
	}
	return false
}

// StrictEqual compares two values without coercion. Scalars compare by kind
// and value (NaN equals nothing); lists and maps compare by identity.
func StrictEqual(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Undefined, Null:
		return true
	case Bool:
		return a.b == b.b
	case Number:
		return a.n == b.n
	case String:
		return a.s == b.s
	case List:
		return len(a.l) == len(b.l) && len(a.l) > 0 && &a.l[0] == &b.l[0]
	case Map:
		return a.m != nil && reflect.ValueOf(a.m).UnsafePointer() == reflect.ValueOf(b.m).UnsafePointer()
	}
	return false
}

func isContainer(v Value) bool {
	return v.kind == List || v.kind == Map
}

func boolToNumber(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// toNumber converts a string to a number the way JavaScript's Number() does.
// Strings that are not numeric literals yield NaN.
func toNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return parseRadix(s[2:], 16)
		case 'o', 'O':
			return parseRadix(s[2:], 8)
		case 'b', 'B':
			return parseRadix(s[2:], 2)
		}
	}
	if !isDecimalLiteral(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

func parseRadix(digits string, base int) float64 {
	var f float64
	for i := 0; i < len(digits); i++ {
		d := digitValue(digits[i])
		if d < 0 || d >= base {
			return math.NaN()
		}
		f = f*float64(base) + float64(d)
	}
	return f
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// isDecimalLiteral matches [+-]? (digits [. digits?] | . digits) ([eE] [+-]? digits)?
func isDecimalLiteral(s string) bool {
	i, n := 0, len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intDigits := skipDigits(s, i) - i
	i += intDigits
	fracDigits := 0
	if i < n && s[i] == '.' {
		i++
		fracDigits = skipDigits(s, i) - i
		i += fracDigits
	}
	if intDigits == 0 && fracDigits == 0 {
		return false
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expDigits := skipDigits(s, i) - i
		if expDigits == 0 {
			return false
		}
		i += expDigits
	}
	return i == n
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

// toPrimitiveString renders a value the way JavaScript's String() does,
// which is what == compares a container against.
func toPrimitiveString(v Value) string {
	switch v.kind {
	case Undefined:
		return "undefined"
	case Null:
		return "null"
	case Bool:
		return strconv.FormatBool(v.b)
	case Number:
		return numberToString(v.n)
	case String:
		return v.s
	case List:
		var buf strings.Builder
		for i, x := range v.l {
			if i > 0 {
				buf.WriteByte(',')
			}
			if !x.IsNullish() {
				buf.WriteString(toPrimitiveString(x))
			}
		}
		return buf.String()
	default:
		return "[object Object]"
	}
}

func numberToString(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[0]
	exp = strings.TrimLeft(exp[1:], "0")
	if exp == "" {
		exp = "0"
	}
	return mant + "e" + string(sign) + exp
}
