package recq

import "strconv"

// ExtractID reduces a record, a raw id or null to a raw id. Records yield
// their "id" member and numbers and strings yield themselves. Null, Undefined
// and anything else yield (Value{}, false).
func ExtractID(v Value) (Value, bool) {
	if v.IsNullish() {
		return Value{}, false
	}
	if id, ok := elementID(v); ok {
		return id, true
	}
	if v.IsScalar() {
		return v, true
	}
	return Value{}, false
}

// ExtractIDs applies ExtractID to every element. Null elements stay Null;
// elements without an id leave an Undefined gap.
func ExtractIDs(vs []Value) []Value {
	if vs == nil {
		return nil
	}
	ids := make([]Value, len(vs))
	for i, v := range vs {
		if v.IsNullish() {
			ids[i] = NullValue
		} else if id, ok := ExtractID(v); ok {
			ids[i] = id
		}
	}
	return ids
}

// ExtractNestedID reduces a relationship field of r to the related id: a
// scalar stays as is, an embedded record yields its "id", and a list yields
// a list with every element reduced the same way. Missing, null or
// unrecognized fields yield Null.
func ExtractNestedID(r Record, field string) Value {
	return extractNestedID(MapOf(r), field)
}

// extractNestedID reads container[key], where container is a Map or a List
// indexed by the decimal key. A List value recurses with itself as the
// container and each index as the key.
func extractNestedID(container Value, key string) Value {
	v, ok := member(container, key)
	if !ok || v.IsNullish() {
		return NullValue
	}
	switch v.kind {
	case Number, String:
		return v
	case List:
		ids := make([]Value, len(v.l))
		for i := range v.l {
			ids[i] = extractNestedID(v, strconv.Itoa(i))
		}
		return ListOf(ids...)
	case Map:
		if id, ok := elementID(v); ok {
			return id
		}
	}
	return NullValue
}

func member(container Value, key string) (Value, bool) {
	if container.kind == List {
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(container.l) {
			return Value{}, false
		}
		return container.l[i], true
	}
	return container.Get(key)
}
