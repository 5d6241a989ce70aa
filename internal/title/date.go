package title

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// ErrDateParse reports a creation date that is present but not laid out as
// YYYY:MM:DD.
var ErrDateParse = errors.New("date parse failure")

// longDate renders a date in one locale's long format.
type longDate struct {
	months [12]string
	format func(day int, month string, year int) string
}

var norwegianMonths = [12]string{
	"januar", "februar", "mars", "april", "mai", "juni",
	"juli", "august", "september", "oktober", "november", "desember",
}

var supportedLocales = []language.Tag{
	language.MustParse("nb"),
	language.Danish,
	language.Swedish,
	language.English,
}

var longDates = []longDate{
	{months: norwegianMonths, format: func(d int, m string, y int) string { return fmt.Sprintf("%d. %s %d", d, m, y) }},
	{
		months: [12]string{"januar", "februar", "marts", "april", "maj", "juni", "juli", "august", "september", "oktober", "november", "december"},
		format: func(d int, m string, y int) string { return fmt.Sprintf("%d. %s %d", d, m, y) },
	},
	{
		months: [12]string{"januari", "februari", "mars", "april", "maj", "juni", "juli", "augusti", "september", "oktober", "november", "december"},
		format: func(d int, m string, y int) string { return fmt.Sprintf("%d %s %d", d, m, y) },
	},
	{
		months: [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		format: func(d int, m string, y int) string { return fmt.Sprintf("%d %s %d", d, m, y) },
	},
}

var localeMatcher = language.NewMatcher(supportedLocales)

// DateFormatter renders creation dates in the long format of one locale.
type DateFormatter struct {
	layout longDate
	tag    language.Tag
}

// NewDateFormatter picks the closest supported locale for the given BCP 47
// tag. Unsupported locales fall back to Norwegian Bokmål.
func NewDateFormatter(locale string) (DateFormatter, error) {
	requested, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return DateFormatter{}, fmt.Errorf("title locale %q: %w", locale, err)
	}
	_, index, confidence := localeMatcher.Match(requested)
	if confidence == language.No {
		index = 0
	}
	return DateFormatter{layout: longDates[index], tag: supportedLocales[index]}, nil
}

// Locale returns the locale the formatter renders in.
func (f DateFormatter) Locale() language.Tag {
	return f.tag
}

// Format renders t as a long date, for example "15. mars 2010".
func (f DateFormatter) Format(t time.Time) string {
	layout := f.layout
	if layout.format == nil {
		layout = longDates[0]
	}
	return layout.format(t.Day(), layout.months[t.Month()-1], t.Year())
}

// ParseCreateDate reads the date part of an EXIF timestamp
// ("2010:03:15 18:22:01"). Only the fixed-width year, month and day digits
// are used; everything after the day is ignored.
func ParseCreateDate(value string) (time.Time, error) {
	if len(value) < 10 {
		return time.Time{}, fmt.Errorf("%w: %q is shorter than YYYY:MM:DD", ErrDateParse, value)
	}
	year, err := strconv.Atoi(value[0:4])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: year in %q: %w", ErrDateParse, value, err)
	}
	month, err := strconv.Atoi(value[5:7])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month in %q: %w", ErrDateParse, value, err)
	}
	day, err := strconv.Atoi(value[8:10])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: day in %q: %w", ErrDateParse, value, err)
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range values; a changed field means the input was invalid.
	if year < 1 || date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q is not a calendar date", ErrDateParse, value)
	}
	return date, nil
}
