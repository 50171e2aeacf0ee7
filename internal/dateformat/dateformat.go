/*
Package dateformat re-renders "<Month> <Day>, <Year>" date labels into other
calendar notations, optionally randomising the month and day.
*/
package dateformat

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
	"github.com/samber/lo"
)

var (
	ErrMalformedDate = errors.New("malformed date")
	ErrInvalidDate   = errors.New("invalid calendar date")
	ErrUnknownFormat = errors.New("unknown date format")
)

const (
	BritishDaysNumbers  = "British days_numbers"
	BritishDaysLetters  = "British days_letters"
	AmericanDaysNumbers = "American days_numbers"
	AmericanDaysLetters = "American days_letters"
)

var strftimeFormats = []string{
	"%d-%B-%Y",
	"%m-%d-%Y",
	"%m/%d/%Y",
	"%d-%b-%Y",
	"%Y-%m-%d",
	"%b %d %Y",
	"%b. %d, %Y",
	"%B. %d, %Y",
	"%d %B %Y",
}

var textualFormats = []string{
	BritishDaysNumbers,
	BritishDaysLetters,
	AmericanDaysNumbers,
	AmericanDaysLetters,
}

var datePattern = regexp.MustCompile(`(\w+) (\d+), (\d{4})`)

var monthsByName = func() map[string]time.Month {
	m := make(map[string]time.Month, 12)
	for month := time.January; month <= time.December; month++ {
		m[strings.ToLower(month.String())] = month
	}
	return m
}()

// Date holds the components extracted from a label.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) Time() (time.Time, error) {
	if d.Month < time.January || d.Month > time.December || d.Day < 1 || d.Day > DaysIn(d.Year, d.Month) {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, d.Year, int(d.Month), d.Day)
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC), nil
}

// Options controls a single Reformat call.
type Options struct {
	ChangeMonth bool
	ChangeDay   bool
	// Format forces a target format; empty picks one at random.
	Format string
}

func DefaultOptions() Options {
	return Options{ChangeMonth: true, ChangeDay: true}
}

// Formats returns every supported target format.
func Formats() []string {
	return append(append([]string{}, strftimeFormats...), textualFormats...)
}

func IsTextual(format string) bool {
	return lo.Contains(textualFormats, format)
}

// DaysIn reports the number of days in month for the given year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Parse extracts month, day and year from the first "<Month> <Day>, <Year>"
// occurrence in s.
func Parse(s string) (Date, error) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return Date{}, fmt.Errorf("%w: %q does not match <Month> <Day>, <Year>", ErrMalformedDate, s)
	}

	month, ok := monthsByName[strings.ToLower(m[1])]
	if !ok {
		return Date{}, fmt.Errorf("%w: unknown month %q", ErrMalformedDate, m[1])
	}

	day, err := strconv.Atoi(m[2])
	if err != nil {
		return Date{}, fmt.Errorf("%w: day %q: %v", ErrMalformedDate, m[2], err)
	}

	year, err := strconv.Atoi(m[3])
	if err != nil {
		return Date{}, fmt.Errorf("%w: year %q: %v", ErrMalformedDate, m[3], err)
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// Reformat renders label in another format. rng drives month, day and format
// selection.
func Reformat(label string, opts Options, rng *rand.Rand) (string, error) {
	d, err := Parse(label)
	if err != nil {
		return "", err
	}

	if opts.ChangeMonth {
		d.Month = time.Month(rng.IntN(12) + 1)
	}
	if opts.ChangeDay {
		d.Day = rng.IntN(DaysIn(d.Year, d.Month)) + 1
	}

	format := opts.Format
	if format == "" {
		all := Formats()
		format = all[rng.IntN(len(all))]
	}

	return Render(d, format)
}

// Render writes d using format, which must be one of Formats.
func Render(d Date, format string) (string, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}

	month := t.Month().String()
	year := strconv.Itoa(t.Year())

	switch format {
	case BritishDaysNumbers:
		return Ordinal(t.Day()) + " " + month + " " + year, nil
	case BritishDaysLetters:
		return "the " + capitalize(OrdinalWord(t.Day())) + " of " + month + ", " + year, nil
	case AmericanDaysNumbers:
		return month + " " + Ordinal(t.Day()) + ", " + year, nil
	case AmericanDaysLetters:
		return month + " the " + capitalize(OrdinalWord(t.Day())) + ", " + year, nil
	}

	if !lo.Contains(strftimeFormats, format) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return strftime.Format(format, t), nil
}

// ParseFormatted reads back a string produced by Render with a strftime format.
func ParseFormatted(format, s string) (Date, error) {
	if !lo.Contains(strftimeFormats, format) {
		return Date{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	t, err := strftime.Parse(format, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q as %q: %v", ErrMalformedDate, s, format, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var labelPattern = regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December) \d{1,2}, \d{4}\b`)

// FindLabel locates the first "<Month> <Day>, <Year>" label in s and returns
// its byte offsets.
func FindLabel(s string) (start, end int, ok bool) {
	loc := labelPattern.FindStringIndex(s)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}
