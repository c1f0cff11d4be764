package recq

import "strings"

const pathSep = "."

func splitPath(path string) []string {
	return strings.Split(path, pathSep)
}

// Resolve looks up a dot-separated field path ("author.last_name") inside v.
// Only Map values are traversed. It returns false if any segment is missing
// or an intermediate value is not a Map; it never panics.
func Resolve(v Value, path string) (Value, bool) {
	return resolveSegments(v, splitPath(path))
}

func resolveSegments(v Value, segs []string) (Value, bool) {
	for _, seg := range segs {
		x, ok := v.Get(seg)
		if !ok {
			return Value{}, false
		}
		v = x
	}
	return v, true
}

// Assign stores x at path inside v. Intermediate maps are not created: if
// any of them is missing or is not a Map, Assign does nothing and returns
// false.
func Assign(v Value, path string, x Value) bool {
	segs := splitPath(path)
	last := len(segs) - 1
	parent, ok := resolveSegments(v, segs[:last])
	if !ok || parent.kind != Map || parent.m == nil {
		return false
	}
	parent.m[segs[last]] = x
	return true
}
