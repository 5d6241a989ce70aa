package charset

import "testing"

func TestRepairReplacesKnownPairs(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"aring", "Bl├Ñb├¦r", "Blåb├¦r"},
		{"oslash", "S├©r", "Sør"},
		{"ae", "V├ªrøy", "Værøy"},
		{"untouched", "Oslo", "Oslo"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Repair(tc.in); got != tc.want {
				t.Fatalf("Repair(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRepairResolvesAdjacentPairs(t *testing.T) {
	in := "├Ñ├Ñ"
	if got := Repair(in); got != "åå" {
		t.Fatalf("expected åå, got %q", got)
	}
	mixed := "├©├ª├Ñ"
	if got := Repair(mixed); got != "øæå" {
		t.Fatalf("expected øæå, got %q", got)
	}
}

func TestRepairIsIdempotent(t *testing.T) {
	once := Repair("Tr├©ndelag")
	if twice := Repair(once); twice != once {
		t.Fatalf("second pass changed %q to %q", once, twice)
	}
}

func TestDecodeWindows1252(t *testing.T) {
	got, err := Decode([]byte{'B', 0xE6, 'r', 0xF8, 'y'}, "")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got != "Bærøy" {
		t.Fatalf("unexpected decode: %q", got)
	}
}

func TestEncodeComposesBeforeEncoding(t *testing.T) {
	got, err := Encode("a\u030a", "cp1252")
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if got != "\xe5" {
		t.Fatalf("expected single cp1252 byte, got %q", got)
	}
}

func TestEncodeReplacesUnsupportedRunes(t *testing.T) {
	got, err := Encode("漢", "cp1252")
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if got != "\x1a" {
		t.Fatalf("expected replacement byte, got %q", got)
	}
}

func TestLookupRejectsUnknownLabel(t *testing.T) {
	if _, _, err := Lookup("klingon-8"); err == nil {
		t.Fatal("expected error for unknown charset")
	}
	if _, name, err := Lookup("cp1252"); err != nil || name != "windows-1252" {
		t.Fatalf("unexpected lookup result: name=%q err=%v", name, err)
	}
}

func TestEncodeNeverWritesCharacterReferences(t *testing.T) {
	got, err := Encode("Łódź * 15. mars 2010", "windows-1252")
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if got != "\x1a\xf3d\x1a * 15. mars 2010" {
		t.Fatalf("unexpected encoding %q", got)
	}
}

func TestExifToolName(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"cp1252", "cp1252"},
		{"Latin1", "cp1252"},
		{"iso-8859-1", "cp1252"},
		{" windows-1252 ", "cp1252"},
		{"", "cp1252"},
		{"utf8", "UTF8"},
		{"windows-1251", "cp1251"},
		{"cp1250", "cp1250"},
		{"macintosh", "cp10000"},
	}
	for _, tc := range cases {
		got, err := ExifToolName(tc.label)
		if err != nil {
			t.Fatalf("ExifToolName(%q) returned error: %v", tc.label, err)
		}
		if got != tc.want {
			t.Fatalf("ExifToolName(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}
}

func TestExifToolNameRejectsUnwritableCharsets(t *testing.T) {
	for _, label := range []string{"klingon-8", "iso-8859-2", "shift_jis"} {
		if _, err := ExifToolName(label); err == nil {
			t.Fatalf("expected error for %q", label)
		}
	}
}
