package recq

import "strings"

const (
	// NegationMarker prefixes a query key to invert that field's result.
	NegationMarker = "!"

	// NotNull is the match value that tests a field for truthiness.
	NotNull = "not_null"

	idField = "id"
)

// predicate is one compiled query key/value pair.
type predicate struct {
	key    string
	path   []string
	negate bool
	want   Value
}

func compilePredicate(key string, want Value) predicate {
	p := predicate{key: key, want: want}
	if rest, ok := strings.CutPrefix(key, NegationMarker); ok {
		p.negate = true
		key = rest
	}
	p.path = splitPath(key)
	return p
}

// derefsID reports whether the path ends in an "id" segment, in which case an
// embedded related record is compared by its own id.
func (p *predicate) derefsID() bool {
	return p.path[len(p.path)-1] == idField
}

func (p *predicate) eval(v Value) bool {
	field, ok := resolveSegments(v, p.path)
	if !ok {
		field = NullValue
	}
	field = field.Clone()

	if p.derefsID() {
		if inner, ok := field.Get(idField); ok {
			field = inner
		}
	}

	var raw bool
	switch {
	case field.kind == List:
		raw = containsLoose(field.l, p.want)
	case p.want.kind == String && p.want.s == NotNull:
		raw = field.Truthy()
	default:
		raw = LooseEqual(field, p.want)
	}
	return raw != p.negate
}

// Evaluate decides a single query predicate against v.
//
// A key of the form "!path" negates the result. If the field at path holds a
// list, the predicate passes when want is loosely equal to any element. A want
// of "not_null" passes when the field is truthy. Otherwise the field and want
// are compared with LooseEqual. A path whose last segment is "id" and that
// resolves to a map carrying its own "id" compares that inner id instead.
func Evaluate(v Value, key string, want Value) bool {
	p := compilePredicate(key, want)
	return p.eval(v)
}

// containsLoose is the membership rule of query predicates: the query value
// must be found in the record's list.
func containsLoose(list []Value, want Value) bool {
	for _, x := range list {
		if LooseEqual(x, want) {
			return true
		}
	}
	return false
}
