package title

import (
	"strings"

	"pregoogle/internal/keywords"
	"pregoogle/internal/metadata"
)

const (
	partSeparator = " * "
	listSeparator = ", "
	lastSeparator = " & "
)

// Composer turns metadata fields into a title. It is safe for concurrent use;
// all of its state is read-only after construction.
type Composer struct {
	accepted *keywords.AcceptedList
	tidy     *keywords.TidyList
	dates    DateFormatter
}

// NewComposer builds a Composer from loaded keyword lists and a date locale.
func NewComposer(lists keywords.Lists, locale string) (*Composer, error) {
	dates, err := NewDateFormatter(locale)
	if err != nil {
		return nil, err
	}
	return &Composer{accepted: lists.Accepted, tidy: lists.Tidy, dates: dates}, nil
}

// Compose builds the title for one file. Missing fields contribute nothing;
// the only error is ErrDateParse for a malformed creation date.
func (c *Composer) Compose(fields metadata.Fields) (string, error) {
	var b strings.Builder

	switch {
	case fields.Caption != "":
		b.WriteString(fields.Caption)
	case fields.ObjectName != "":
		b.WriteString(fields.ObjectName)
	default:
		b.WriteString(c.Keywords(fields.Keywords))
	}

	if fields.Headline != "" {
		if b.Len() > 0 {
			b.WriteString(" (")
			b.WriteString(fields.Headline)
			b.WriteString(")")
		} else {
			b.WriteString(fields.Headline)
		}
	}

	appendPart(&b, Location(fields))

	date, err := c.Date(fields.DateCreated)
	if err != nil {
		return "", err
	}
	appendPart(&b, date)

	return strings.ReplaceAll(b.String(), `"`, "'"), nil
}

// Keywords filters, orders and tidies raw keywords and renders them as a
// natural list.
func (c *Composer) Keywords(raw []string) string {
	return JoinNatural(c.tidy.TidyAll(c.accepted.Filter(raw)))
}

// Date renders a creation date field, or "" when the field is empty.
func (c *Composer) Date(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	date, err := ParseCreateDate(raw)
	if err != nil {
		return "", err
	}
	return c.dates.Format(date), nil
}

// Location picks the most specific location: sub-location, city, then
// province or state.
func Location(fields metadata.Fields) string {
	switch {
	case fields.SubLocation != "":
		return fields.SubLocation
	case fields.City != "":
		return fields.City
	default:
		return fields.Province
	}
}

// JoinNatural joins words as "a", "a & b", "a, b & c".
func JoinNatural(words []string) string {
	var b strings.Builder
	for i, word := range words {
		switch {
		case i == 0:
		case i == len(words)-1:
			b.WriteString(lastSeparator)
		default:
			b.WriteString(listSeparator)
		}
		b.WriteString(word)
	}
	return b.String()
}

func appendPart(b *strings.Builder, part string) {
	if part == "" {
		return
	}
	if b.Len() > 0 {
		b.WriteString(partSeparator)
	}
	b.WriteString(part)
}
