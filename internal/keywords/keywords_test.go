package keywords

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFilterKeepsOnlyAcceptedInPriorityOrder(t *testing.T) {
	list := NewAcceptedList([]string{"Dog", "Cat", "Horse", "Bird"})
	raw := []string{"Bird", "Unknown", "Cat", "Dog", "Cat", "cat", "Bird"}

	got := list.Filter(raw)
	want := []string{"Dog", "Cat", "Bird"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Filter = %v, want %v", got, want)
	}
}

func TestFilterProperties(t *testing.T) {
	list := NewAcceptedList([]string{"a", "b", "c", "d", "e"})
	inputs := [][]string{
		nil,
		{"x", "y"},
		{"e", "d", "c", "b", "a"},
		{"c", "c", "c"},
		{"b", "z", "a", "b", "e", "q", "a"},
	}
	for _, raw := range inputs {
		got := list.Filter(raw)
		seen := map[string]bool{}
		last := -1
		for _, word := range got {
			pos := list.Position(word)
			if pos < 0 {
				t.Fatalf("Filter(%v) returned unaccepted %q", raw, word)
			}
			if seen[word] {
				t.Fatalf("Filter(%v) returned duplicate %q", raw, word)
			}
			seen[word] = true
			if pos <= last {
				t.Fatalf("Filter(%v) = %v is not in priority order", raw, got)
			}
			last = pos
		}
	}
}

func TestAcceptedListFirstPositionWins(t *testing.T) {
	list := NewAcceptedList([]string{"a", "b", "a"})
	if pos := list.Position("a"); pos != 0 {
		t.Fatalf("expected first position, got %d", pos)
	}
	if pos := list.Position("missing"); pos != -1 {
		t.Fatalf("expected -1 for missing word, got %d", pos)
	}
}

func TestTidyStripsFirstMatchingSuffixOnly(t *testing.T) {
	list := NewTidyList([]string{"(hund)", "(sted)", "sted)"})
	cases := map[string]string{
		"Fido (hund)":         "Fido",
		"Hytta (sted)":        "Hytta",
		"Fido (hund) (sted)":  "Fido (hund)",
		"Oslo":                "Oslo",
		"  Pus (hund)":        "Pus",
		"(hund)":              "",
		"Hundekjeks (hunden)": "Hundekjeks (hunden)",
	}
	for in, want := range cases {
		if got := list.Tidy(in); got != want {
			t.Errorf("Tidy(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTidyIsIdempotentForDefaults(t *testing.T) {
	lists, err := Load("", "")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	for _, word := range lists.Accepted.words {
		once := lists.Tidy.Tidy(word)
		if twice := lists.Tidy.Tidy(once); twice != once {
			t.Fatalf("tidy not idempotent for %q: %q then %q", word, once, twice)
		}
	}
}

func TestParseSkipsEmptyLines(t *testing.T) {
	list := ParseAccepted("Dog\r\n\r\nCat\n\nBird\n")
	if list.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", list.Len())
	}
	if list.Position("Cat") != 1 {
		t.Fatalf("expected Cat at position 1, got %d", list.Position("Cat"))
	}
	tidy := ParseTidy("\n (x)\n")
	if tidy.Len() != 1 || tidy.Tidy("a (x)") != "a" {
		t.Fatalf("unexpected tidy list: len=%d", tidy.Len())
	}
}

func TestLoadReadsFiles(t *testing.T) {
	dir := t.TempDir()
	accepted := filepath.Join(dir, "accepted.txt")
	tidy := filepath.Join(dir, "tidy.txt")
	if err := os.WriteFile(accepted, []byte("One\nTwo\n"), 0o644); err != nil {
		t.Fatalf("write accepted: %v", err)
	}
	if err := os.WriteFile(tidy, []byte("(n)\n"), 0o644); err != nil {
		t.Fatalf("write tidy: %v", err)
	}

	lists, err := Load(accepted, tidy)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if lists.Accepted.Len() != 2 || lists.Tidy.Len() != 1 {
		t.Fatalf("unexpected lengths: %d %d", lists.Accepted.Len(), lists.Tidy.Len())
	}

	if _, err := Load(filepath.Join(dir, "missing.txt"), ""); err == nil {
		t.Fatal("expected error for missing accepted file")
	}
}

func TestNilListsAreSafe(t *testing.T) {
	var accepted *AcceptedList
	if got := accepted.Filter([]string{"a"}); len(got) != 0 {
		t.Fatalf("expected empty result from nil list, got %v", got)
	}
	var tidy *TidyList
	if got := tidy.Tidy("a (x)"); got != "a (x)" {
		t.Fatalf("expected passthrough from nil tidy list, got %q", got)
	}
}
