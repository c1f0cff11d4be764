package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andreyvit/recq"
)

const booksJSON = `[
{"id":1,"title":"English course","author":{"id":10,"last_name":"Doe"},"year":2009},
{"id":2,"title":"Italian course","author":{"id":11,"last_name":"Pallino"},"year":2010},
{"id":3,"title":"German course","author":{"id":12,"last_name":"Musterman"},"year":2009}
]`

func run(t testing.TB, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a := &app{stdin: strings.NewReader(stdin), stdout: &stdout, stderr: &stderr}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestFind(t *testing.T) {
	out, _, err := run(t, booksJSON, "find", `{"year":2009}`)
	if err != nil {
		t.Fatal(err)
	}
	c := must(recq.JSON.DecodeCollection([]byte(out)))
	if len(c) != 2 {
		t.Fatalf("find returned %d records, wanted 2: %s", len(c), out)
	}

	out, _, err = run(t, booksJSON, "find", "--first", `{"!title":"English course"}`)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"title":"Italian course"`) || strings.HasPrefix(out, "[") {
		t.Fatalf("find --first = %s", out)
	}

	out, _, err = run(t, booksJSON, "find", "--first", `{"year":1999}`)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "null" {
		t.Fatalf("find --first (no match) = %q, wanted null", out)
	}

	if _, _, err := run(t, booksJSON, "find", `[1]`); err == nil {
		t.Fatalf("find with a non-object query succeeded")
	}
}

func TestGet(t *testing.T) {
	out, _, err := run(t, booksJSON, "get", "2", "99", "1")
	if err != nil {
		t.Fatal(err)
	}
	c := must(recq.JSON.DecodeCollection([]byte(out)))
	if len(c) != 2 {
		t.Fatalf("get returned %d records, wanted 2", len(c))
	}
	first, _ := c[0].Get("id")
	if first.Number() != 2 {
		t.Fatalf("get order = %s", out)
	}
}

func TestUpdate(t *testing.T) {
	out, _, err := run(t, booksJSON, "update", "2", `{"title":"Corso di Italiano"}`)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"title":"Corso di Italiano"`) || !strings.Contains(out, `"last_name":"Pallino"`) {
		t.Fatalf("update = %s", out)
	}

	if _, _, err := run(t, booksJSON, "update", "42", `{"title":"X"}`); err == nil {
		t.Fatalf("update of a missing id succeeded")
	}
}

func TestDelete(t *testing.T) {
	out, _, err := run(t, booksJSON, "delete", "2")
	if err != nil {
		t.Fatal(err)
	}
	if n := len(must(recq.JSON.DecodeCollection([]byte(out)))); n != 2 {
		t.Fatalf("delete left %d records, wanted 2", n)
	}

	out, _, err = run(t, booksJSON, "delete", "--copy", "7")
	if err != nil {
		t.Fatal(err)
	}
	if n := len(must(recq.JSON.DecodeCollection([]byte(out)))); n != 3 {
		t.Fatalf("delete --copy left %d records, wanted 3", n)
	}
}

func TestDeleteWhere(t *testing.T) {
	out, errOut, err := run(t, booksJSON, "delete-where", `{"year":2009}`)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(errOut, "[2 0]") {
		t.Fatalf("delete-where stderr = %q", errOut)
	}
	if n := len(must(recq.JSON.DecodeCollection([]byte(out)))); n != 1 {
		t.Fatalf("delete-where left %d records, wanted 1", n)
	}
}

func TestDeleteAt(t *testing.T) {
	out, _, err := run(t, booksJSON, "delete-at", "0", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Italian") || strings.Contains(out, "English") || strings.Contains(out, "German") {
		t.Fatalf("delete-at = %s", out)
	}
	if _, _, err := run(t, booksJSON, "delete-at", "x"); err == nil {
		t.Fatalf("delete-at with a bad index succeeded")
	}
}

func TestIDs(t *testing.T) {
	out, _, err := run(t, booksJSON, "ids")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "[1,2,3]" {
		t.Fatalf("ids = %q", out)
	}

	out, _, err = run(t, booksJSON, "ids", "author")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "[10,11,12]" {
		t.Fatalf("ids author = %q", out)
	}
}

func TestInPlaceMsgPack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "books.msgpack")
	c := must(recq.JSON.DecodeCollection([]byte(booksJSON)))
	if err := os.WriteFile(path, must(recq.MsgPack.EncodeCollection(c)), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := run(t, "", "-f", path, "-i", "delete", "1"); err != nil {
		t.Fatal(err)
	}

	out, _, err := run(t, "", "-f", path, "--out-format", "json", "dump")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "2 elements") {
		t.Fatalf("dump after in-place delete = %q", out)
	}

	if _, _, err := run(t, booksJSON, "-i", "delete", "1"); err == nil {
		t.Fatalf("--in-place on stdin succeeded")
	}
}

func TestOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if _, _, err := run(t, booksJSON, "-o", path, "find", `{"id":3}`); err != nil {
		t.Fatal(err)
	}
	data := must(os.ReadFile(path))
	if !strings.Contains(string(data), "German course") {
		t.Fatalf("output file = %s", data)
	}
}

func TestParseArg(t *testing.T) {
	if v := parseArg("2"); v.Kind() != recq.Number || v.Number() != 2 {
		t.Fatalf("parseArg(2) = %v", v)
	}
	if v := parseArg("abc"); v.Kind() != recq.String || v.Str() != "abc" {
		t.Fatalf("parseArg(abc) = %v", v)
	}
	if v := parseArg(`"2"`); v.Kind() != recq.String || v.Str() != "2" {
		t.Fatalf("parseArg(\"2\") = %v", v)
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
