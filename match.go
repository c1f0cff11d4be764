package recq

// Query maps query keys (dot-separated field paths, optionally prefixed with
// "!") to match values. All keys must match for a record to match.
type Query map[string]Value

// QueryOf builds a Query from JSON-like data, see Of.
func QueryOf(m map[string]any) Query {
	q := make(Query, len(m))
	for k, x := range m {
		q[k] = Of(x)
	}
	return q
}

type matcher []predicate

func compileQuery(q Query) matcher {
	m := make(matcher, 0, len(q))
	for k, want := range q {
		m = append(m, compilePredicate(k, want))
	}
	return m
}

func (m matcher) match(v Value) bool {
	for i := range m {
		if !m[i].eval(v) {
			return false
		}
	}
	return true
}

// Matches reports whether v satisfies every predicate of q. An empty query
// matches everything.
func Matches(v Value, q Query) bool {
	return compileQuery(q).match(v)
}

// FilterFirst returns a one-element slice holding the first element of c
// that matches q, or nil if none does.
func FilterFirst(c Collection, q Query) []Value {
	return filter(c, compileQuery(q), true)
}

// FilterAll returns the elements of c that match q, in collection order.
// Map elements are returned by reference.
func FilterAll(c Collection, q Query) []Value {
	return filter(c, compileQuery(q), false)
}

func filter(c Collection, m matcher, first bool) []Value {
	var result []Value
	for _, v := range c {
		if m.match(v) {
			result = append(result, v)
			if first {
				break
			}
		}
	}
	return result
}
