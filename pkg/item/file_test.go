package item_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dataitem/pkg/item"
	"github.com/goliatone/go-dataitem/pkg/serialize"
)

func writeTempFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFileSaveCheckValue(t *testing.T) {
	it := item.NewFileSave("out", "txt")
	if !it.CheckValue("report.txt") {
		t.Fatalf("save target rejected a plain path")
	}
	if !it.CheckValue(filepath.Join(t.TempDir(), "does-not-exist-yet.txt")) {
		t.Fatalf("save target must not require an existing file")
	}
	if it.CheckValue("") {
		t.Fatalf("save target accepted the empty path")
	}
	if it.CheckValue(42) {
		t.Fatalf("save target accepted an int")
	}
}

func TestFileSaveFromStringAddsExtension(t *testing.T) {
	cases := []struct {
		name  string
		item  *item.FileSaveItem
		input string
		want  string
	}{
		{"completes from first filter", item.NewFileSave("f", "txt", "csv"), "report", "report.txt"},
		{"keeps existing extension", item.NewFileSave("f", "txt"), "report.csv", "report.csv"},
		{"wildcard first filter", item.NewFileSave("f"), "report", "report"},
		{"dotted filter spelling", item.NewFileSave("f", ".dat"), "dump", "dump.dat"},
		{"star filter spelling", item.NewFileSave("f", "*.log"), "trace", "trace.log"},
		{"all files first", item.NewFileSave("f", "txt", "*").AllFilesFirst(), "report", "report"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.item.FromString(tc.input)
			if !ok {
				t.Fatalf("FromString(%q) failed", tc.input)
			}
			if got != tc.want {
				t.Fatalf("FromString(%q) = %v, want %q", tc.input, got, tc.want)
			}
		})
	}

	if _, ok := item.NewFileSave("f", "txt").FromString(""); ok {
		t.Fatalf("FromString(\"\") succeeded")
	}
}

func TestFileSaveAutoHelp(t *testing.T) {
	if got := item.NewFileSave("f").AutoHelp(nil); got != "all file types" {
		t.Fatalf("AutoHelp() = %q", got)
	}
	if got := item.NewFileSave("f", "txt", "csv").AutoHelp(nil); got != "supported file types: *.txt, *.csv" {
		t.Fatalf("AutoHelp() = %q", got)
	}
}

func TestFileOpenCheckValue(t *testing.T) {
	dir := t.TempDir()
	existing := writeTempFile(t, dir, "in.txt")

	it := item.NewFileOpen("in", "txt")
	if !it.CheckValue(existing) {
		t.Fatalf("open rejected an existing file")
	}
	if it.CheckValue(filepath.Join(dir, "missing.txt")) {
		t.Fatalf("open accepted a missing file")
	}
	if it.CheckValue(dir) {
		t.Fatalf("open accepted a directory")
	}
	if it.CheckValue(nil) {
		t.Fatalf("open accepted nil")
	}
}

func TestFilesOpenCheckValue(t *testing.T) {
	dir := t.TempDir()
	a := writeTempFile(t, dir, "a.txt")
	b := writeTempFile(t, dir, "b.txt")

	it := item.NewFilesOpen("in", "txt")
	if !it.CheckValue([]string{a, b}) {
		t.Fatalf("rejected existing files")
	}
	if !it.CheckValue([]string{}) {
		t.Fatalf("empty selection must pass vacuously")
	}
	if it.CheckValue([]string{a, filepath.Join(dir, "missing.txt")}) {
		t.Fatalf("accepted a sequence with a missing file")
	}
	if it.CheckValue("not-a-slice") {
		t.Fatalf("accepted a bare string")
	}
}

func TestFilesOpenFromString(t *testing.T) {
	it := item.NewFilesOpen("in", "txt")

	got, ok := it.FromString(`["a", "b.csv"]`)
	if !ok {
		t.Fatalf("FromString(json array) failed")
	}
	if diff := cmp.Diff([]string{"a.txt", "b.csv"}, got); diff != "" {
		t.Fatalf("FromString mismatch (-want +got):\n%s", diff)
	}

	got, ok = it.FromString("single")
	if !ok {
		t.Fatalf("FromString(single path) failed")
	}
	if diff := cmp.Diff([]string{"single.txt"}, got); diff != "" {
		t.Fatalf("FromString mismatch (-want +got):\n%s", diff)
	}

	if _, ok := it.FromString(`["a", 42]`); ok {
		t.Fatalf("FromString accepted a non-string array entry")
	}
}

func TestFilesOpenRoundTrip(t *testing.T) {
	it := item.NewFilesOpen("in")
	rec := newTestRecord()
	rec.SetValue(it, []string{"a.txt", "b.txt"})

	buf := serialize.NewBuffer()
	if err := it.Serialize(rec, buf); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	out := newTestRecord()
	if err := it.Deserialize(out, buf); err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	v, _ := out.Value(it)
	if diff := cmp.Diff([]string{"a.txt", "b.txt"}, v); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDirectoryCheckValue(t *testing.T) {
	dir := t.TempDir()
	file := writeTempFile(t, dir, "f.txt")

	it := item.NewDirectory("workdir")
	if !it.CheckValue(dir) {
		t.Fatalf("rejected an existing directory")
	}
	if it.CheckValue(file) {
		t.Fatalf("accepted a regular file")
	}
	if it.CheckValue(filepath.Join(dir, "missing")) {
		t.Fatalf("accepted a missing path")
	}
}
