package recq

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"sort"
	"time"
)

type Kind uint8

const (
	Undefined Kind = iota
	Null
	Bool
	Number
	String
	List
	Map
)

var kindNames = [...]string{
	Undefined: "undefined",
	Null:      "null",
	Bool:      "bool",
	Number:    "number",
	String:    "string",
	List:      "list",
	Map:       "map",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a loosely-typed record field. The zero Value is Undefined, which
// stands for an absent field; Null is an explicit null.
//
// List and Map values share their storage with every copy of the Value, so
// mutating the Record returned by Value.Map mutates whatever holds the Value.
// Use Clone for an independent copy.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	l    []Value
	m    Record
}

// Record is a single entity, usually carrying an "id" field.
type Record map[string]Value

var NullValue = Value{kind: Null}

func BoolValue(b bool) Value      { return Value{kind: Bool, b: b} }
func Num(n float64) Value         { return Value{kind: Number, n: n} }
func Int(n int) Value             { return Value{kind: Number, n: float64(n)} }
func Str(s string) Value          { return Value{kind: String, s: s} }
func ListOf(items ...Value) Value { return Value{kind: List, l: items} }

// MapOf wraps r without copying it. A nil r becomes an empty map.
func MapOf(r Record) Value {
	if r == nil {
		r = Record{}
	}
	return Value{kind: Map, m: r}
}

func (v Value) Kind() Kind        { return v.kind }
func (v Value) IsUndefined() bool { return v.kind == Undefined }
func (v Value) IsNull() bool      { return v.kind == Null }

// IsNullish reports whether v is Null or Undefined.
func (v Value) IsNullish() bool { return v.kind == Null || v.kind == Undefined }

// IsScalar reports whether v is a Number or a String, the two kinds an id can have.
func (v Value) IsScalar() bool { return v.kind == Number || v.kind == String }

func (v Value) Bool() bool      { return v.b }
func (v Value) Number() float64 { return v.n }
func (v Value) Str() string     { return v.s }
func (v Value) List() []Value   { return v.l }
func (v Value) Map() Record     { return v.m }

// Get returns the member key of a Map value. It never panics; non-Map values
// have no members.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != Map {
		return Value{}, false
	}
	x, ok := v.m[key]
	return x, ok
}

// Len returns the number of elements of a List or members of a Map.
func (v Value) Len() int {
	switch v.kind {
	case List:
		return len(v.l)
	case Map:
		return len(v.m)
	default:
		return 0
	}
}

// Truthy reports whether v is truthy: everything except Undefined, Null,
// false, 0, NaN and the empty string. Empty lists and maps are truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case Undefined, Null:
		return false
	case Bool:
		return v.b
	case Number:
		return v.n != 0 && !math.IsNaN(v.n)
	case String:
		return v.s != ""
	default:
		return true
	}
}

// Clone returns a deep copy of v that shares no storage with it.
func (v Value) Clone() Value {
	switch v.kind {
	case List:
		if v.l == nil {
			return v
		}
		l := make([]Value, len(v.l))
		for i, x := range v.l {
			l[i] = x.Clone()
		}
		return Value{kind: List, l: l}
	case Map:
		return Value{kind: Map, m: v.m.Clone()}
	default:
		return v
	}
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	c := make(Record, len(r))
	for k, x := range r {
		c[k] = x.Clone()
	}
	return c
}

// Keys returns the member names of r in sorted order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Of converts JSON-like Go data into a Value. It accepts the shapes produced
// by encoding/json and msgpack decoders, plus Value, Record and []Value.
// Unsupported types panic.
func Of(x any) Value {
	v, err := convert(x)
	if err != nil {
		panic(err)
	}
	return v
}

func convert(x any) (Value, error) {
	switch x := x.(type) {
	case nil:
		return NullValue, nil
	case Value:
		return x, nil
	case Record:
		return MapOf(x), nil
	case []Value:
		return ListOf(x...), nil
	case bool:
		return BoolValue(x), nil
	case string:
		return Str(x), nil
	case []byte:
		return Str(string(x)), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Str(string(x)), nil
		}
		return Num(f), nil
	case time.Time:
		return Str(x.Format(time.RFC3339Nano)), nil
	case int:
		return Num(float64(x)), nil
	case int8:
		return Num(float64(x)), nil
	case int16:
		return Num(float64(x)), nil
	case int32:
		return Num(float64(x)), nil
	case int64:
		return Num(float64(x)), nil
	case uint:
		return Num(float64(x)), nil
	case uint8:
		return Num(float64(x)), nil
	case uint16:
		return Num(float64(x)), nil
	case uint32:
		return Num(float64(x)), nil
	case uint64:
		return Num(float64(x)), nil
	case float32:
		return Num(float64(x)), nil
	case float64:
		return Num(x), nil
	case []any:
		return convertList(len(x), func(i int) any { return x[i] })
	case map[string]any:
		r := make(Record, len(x))
		for k, e := range x {
			v, err := convert(e)
			if err != nil {
				return Value{}, err
			}
			r[k] = v
		}
		return MapOf(r), nil
	case map[any]any:
		r := make(Record, len(x))
		for k, e := range x {
			v, err := convert(e)
			if err != nil {
				return Value{}, err
			}
			r[fmt.Sprint(k)] = v
		}
		return MapOf(r), nil
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return convertList(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			r := make(Record, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				v, err := convert(iter.Value().Interface())
				if err != nil {
					return Value{}, err
				}
				r[iter.Key().String()] = v
			}
			return MapOf(r), nil
		}
	}
	return Value{}, fmt.Errorf("recq: cannot convert %T to a Value", x)
}

func convertList(n int, item func(i int) any) (Value, error) {
	l := make([]Value, n)
	for i := range l {
		v, err := convert(item(i))
		if err != nil {
			return Value{}, err
		}
		l[i] = v
	}
	return ListOf(l...), nil
}

// RecordOf is a shorthand for Of(m).Map().
func RecordOf(m map[string]any) Record {
	return Of(m).Map()
}

// Interface converts v back into plain Go data: nil, bool, float64, string,
// []any and map[string]any. Undefined becomes nil.
func (v Value) Interface() any {
	switch v.kind {
	case Bool:
		return v.b
	case Number:
		return v.n
	case String:
		return v.s
	case List:
		l := make([]any, len(v.l))
		for i, x := range v.l {
			l[i] = x.Interface()
		}
		return l
	case Map:
		m := make(map[string]any, len(v.m))
		for k, x := range v.m {
			m[k] = x.Interface()
		}
		return m
	default:
		return nil
	}
}

// String renders v as compact JSON; Undefined renders as "undefined".
func (v Value) String() string {
	if v.kind == Undefined {
		return "undefined"
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("<%s: %v>", v.kind, err)
	}
	return string(raw)
}

func (v Value) LogValue() slog.Value {
	switch v.kind {
	case Bool:
		return slog.BoolValue(v.b)
	case Number:
		return slog.Float64Value(v.n)
	case String:
		return slog.StringValue(v.s)
	default:
		return slog.StringValue(v.String())
	}
}
