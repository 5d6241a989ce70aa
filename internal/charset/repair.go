package charset

import "strings"

// boxLead is the code point the broken pairs start with (0xC3 read as CP850).
const boxLead = '├'

var repairs = []struct {
	broken string
	fixed  string
}{
	{string([]rune{boxLead, 'Ñ'}), "å"},
	{string([]rune{boxLead, '©'}), "ø"},
	{string([]rune{boxLead, 'ª'}), "æ"},
}

// Repair replaces every known mis-encoded pair in text with the accented
// letter it stands for. Replacement repeats until no pair is left.
func Repair(text string) string {
	if !strings.ContainsRune(text, boxLead) {
		return text
	}
	for _, r := range repairs {
		for strings.Contains(text, r.broken) {
			text = strings.ReplaceAll(text, r.broken, r.fixed)
		}
	}
	return text
}
