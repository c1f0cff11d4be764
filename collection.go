package recq

import "slices"

// Collection is an ordered sequence of records. Elements are normally Map
// values, but raw scalar ids are allowed too.
//
// Functions taking *Collection mutate it in place; functions taking a
// Collection either leave it alone or, where documented, mutate the records
// it holds.
type Collection []Value

// CollectionOf builds a Collection of records from JSON-like data, see Of.
func CollectionOf(items ...any) Collection {
	c := make(Collection, len(items))
	for i, x := range items {
		c[i] = Of(x)
	}
	return c
}

// RetrieveFirst returns the first element of c matching q.
func RetrieveFirst(c Collection, q Query) (Value, bool) {
	if c == nil {
		return Value{}, false
	}
	found := FilterFirst(c, q)
	if len(found) == 0 {
		return Value{}, false
	}
	return found[0], true
}

func idQuery(id Value) Query {
	return Query{idField: id}
}

// RetrieveByIDs looks up each id in turn and returns the matches in the
// order of ids. Ids without a match are skipped.
func RetrieveByIDs(c Collection, ids []Value) []Value {
	found := make([]Value, 0, len(ids))
	for _, id := range ids {
		if v, ok := RetrieveFirst(c, idQuery(id)); ok {
			found = append(found, v)
		}
	}
	return found
}

// RetrieveAll returns every element of c matching q. Returned records are
// the collection's own, not copies.
func RetrieveAll(c Collection, q Query) []Value {
	if c == nil {
		return nil
	}
	return FilterAll(c, q)
}

// UpdateByID finds the record with the given id and shallow-merges patch
// into it. It returns false if no record has that id.
func UpdateByID(c Collection, id Value, patch Record) bool {
	v, ok := RetrieveFirst(c, idQuery(id))
	if !ok {
		logChange(OpUpdate, false, valueAttr("id", id))
		return false
	}
	if v.kind == Map {
		for k, x := range patch {
			v.m[k] = x
		}
	}
	logChange(OpUpdate, true, valueAttr("id", id), "fields", len(patch))
	return true
}

// elementID returns the "id" member of a record element.
func elementID(v Value) (Value, bool) {
	return v.Get(idField)
}

// DeleteByID removes the first element whose id is strictly equal to id, or
// which is itself equal to id for collections of raw ids.
func DeleteByID(c *Collection, id Value) {
	if c == nil {
		return
	}
	for i, v := range *c {
		if eid, ok := elementID(v); (ok && StrictEqual(eid, id)) || StrictEqual(v, id) {
			*c = slices.Delete(*c, i, i+1)
			logChange(OpDelete, true, valueAttr("id", id), "index", i)
			return
		}
	}
	logChange(OpDelete, false, valueAttr("id", id))
}

// DeleteByIDToNew returns a new collection without the records whose id is
// strictly equal to id. c is left untouched.
func DeleteByIDToNew(c Collection, id Value) Collection {
	result := make(Collection, 0, len(c))
	for _, v := range c {
		if eid, ok := elementID(v); ok && StrictEqual(eid, id) {
			continue
		}
		result = append(result, v)
	}
	logChange(OpDeleteCopy, len(result) != len(c), valueAttr("id", id), "removed", len(c)-len(result))
	return result
}

// fieldMatcher is the matcher used by DeleteWhere. Unlike Query predicates,
// it compares top-level fields directly and strictly, with no paths, no
// negation and no "not_null". A list match value passes when the record's
// field is found in it.
type fieldMatcher Query

func (m fieldMatcher) match(v Value) bool {
	for k, want := range m {
		field, _ := v.Get(k)
		if want.kind == List {
			if !containsStrict(want.l, field) {
				return false
			}
		} else if !StrictEqual(field, want) {
			return false
		}
	}
	return true
}

// containsStrict is the membership rule of DeleteWhere: the record's value
// must be found in the query's list.
func containsStrict(list []Value, field Value) bool {
	for _, x := range list {
		if StrictEqual(x, field) {
			return true
		}
	}
	return false
}

// DeleteWhere removes every element matching q using direct, strict field
// equality (see fieldMatcher) and returns the removed indexes, highest
// first. Indexes refer to positions before the call.
func DeleteWhere(c *Collection, q Query) []int {
	if c == nil {
		return nil
	}
	m := fieldMatcher(q)
	var removed []int
	for i := len(*c) - 1; i >= 0; i-- {
		if m.match((*c)[i]) {
			*c = slices.Delete(*c, i, i+1)
			removed = append(removed, i)
		}
	}
	logChange(OpDeleteWhere, len(removed) > 0, "indexes", removed)
	return removed
}

// DeleteAtIndexes removes the elements at the given positions, keeping the
// relative order of the rest. Out-of-range indexes are ignored.
func DeleteAtIndexes(c *Collection, indexes []int) {
	if c == nil || len(*c) == 0 || len(indexes) == 0 {
		return
	}
	items := *c
	mask := make([]bool, len(items))
	for _, i := range indexes {
		if i >= 0 && i < len(mask) {
			mask[i] = true
		}
	}
	offset := 0
	for i, v := range items {
		if !mask[i] {
			items[offset] = v
			offset++
		}
	}
	clear(items[offset:])
	*c = items[:offset]
	logChange(OpDeleteAt, offset != len(items), "removed", len(items)-offset)
}
