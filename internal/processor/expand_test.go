package processor_test

import (
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"pregoogle/internal/processor"
)

func TestExpandTargetsPlainPaths(t *testing.T) {
	got, err := processor.ExpandTargets([]string{"a.jpg", "b.jpg", "a.jpg"}, processor.ExpandOptions{})
	if err != nil {
		t.Fatalf("ExpandTargets returned error: %v", err)
	}
	if want := []string{"a.jpg", "b.jpg"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExpandTargetsGlob(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.jpg")
	b := touch(t, dir, "b.jpg")
	touch(t, dir, "c.png")

	got, err := processor.ExpandTargets([]string{filepath.Join(dir, "*.jpg")}, processor.ExpandOptions{})
	if err != nil {
		t.Fatalf("ExpandTargets returned error: %v", err)
	}
	if want := []string{a, b}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}

	none, err := processor.ExpandTargets([]string{filepath.Join(dir, "*.tif")}, processor.ExpandOptions{})
	if err != nil || len(none) != 0 {
		t.Fatalf("expected no matches, got %q, %v", none, err)
	}
}

func TestExpandTargetsRecursive(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.JPG")
	b := touch(t, dir, filepath.Join("sub", "deeper", "b.jpeg"))
	touch(t, dir, filepath.Join("sub", "notes.txt"))

	got, err := processor.ExpandTargets([]string{dir}, processor.ExpandOptions{
		Recursive:  true,
		Extensions: []string{".jpg", "jpeg"},
	})
	if err != nil {
		t.Fatalf("ExpandTargets returned error: %v", err)
	}
	sort.Strings(got)
	want := []string{a, b}
	sort.Strings(want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExpandTargetsRecursiveDefaultsToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.jpg")
	t.Chdir(dir)

	got, err := processor.ExpandTargets(nil, processor.ExpandOptions{Recursive: true})
	if err != nil {
		t.Fatalf("ExpandTargets returned error: %v", err)
	}
	if want := []string{"a.jpg"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExpandTargetsBadPattern(t *testing.T) {
	if _, err := processor.ExpandTargets([]string{"[*"}, processor.ExpandOptions{}); err == nil {
		t.Fatal("expected error for malformed pattern")
	}
}
