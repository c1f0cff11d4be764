/*
Package recq queries, updates and deletes records held in plain in-memory
collections, for the cases where a real database would be overkill.

We implement:

1. Values, a tagged union of undefined, null, bool, number, string, list and
map, so that untyped JSON-like records can be handled generically.

2. Queries, maps from field paths to match values, evaluated by linear scan.

3. Collection operations built on queries: retrieve, update by id, delete by
id (in place or into a new collection), delete by query and delete by index.

4. Id helpers reducing embedded related records to their ids.

# Queries

**Field paths.**
Keys are dot-separated paths into nested maps (“author.last_name”). A path
that runs into a missing field or a non-map resolves to null; it is never an
error.

**Negation.**
A key prefixed with “!” inverts the result of that key only.

**Lists.**
If the record's field holds a list, the predicate passes when the match value
equals any element.

**not_null.**
The match value "not_null" passes when the field is truthy: not null, not
false, not 0 and not an empty string.

**Equality.**
Comparison is loose (see LooseEqual): the number 2 matches the string "2".

**Ids.**
A path ending in “id” that resolves to a map with its own “id” member is
compared by that inner id, so {"author.id": 7} matches an embedded author
record with id 7.

# Deleting by query

DeleteWhere deliberately uses a different, simpler matcher: top-level fields
only, strict equality, and a list match value means “the record's field is one
of these”. It scans from the end so that removals do not shift unvisited
elements, and reports the removed positions highest first.

# Encoding

Values encode to JSON and MsgPack; see Encoding.
*/
package recq
