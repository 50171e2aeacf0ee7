package dateformat

import "strconv"

var ordinalWords = [...]string{
	"first", "second", "third", "fourth", "fifth", "sixth", "seventh",
	"eighth", "ninth", "tenth", "eleventh", "twelfth", "thirteenth",
	"fourteenth", "fifteenth", "sixteenth", "seventeenth", "eighteenth",
	"nineteenth", "twentieth", "twenty-first", "twenty-second",
	"twenty-third", "twenty-fourth", "twenty-fifth", "twenty-sixth",
	"twenty-seventh", "twenty-eighth", "twenty-ninth", "thirtieth",
	"thirty-first",
}

// Ordinal returns the numeric ordinal of day, e.g. "22nd".
func Ordinal(day int) string {
	suffix := "th"
	switch {
	case day%100 >= 11 && day%100 <= 13:
	case day%10 == 1:
		suffix = "st"
	case day%10 == 2:
		suffix = "nd"
	case day%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(day) + suffix
}

// OrdinalWord spells out a day of month, e.g. "twenty-second". Days outside
// 1..31 fall back to Ordinal.
func OrdinalWord(day int) string {
	if day < 1 || day > len(ordinalWords) {
		return Ordinal(day)
	}
	return ordinalWords[day-1]
}
