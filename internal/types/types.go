package types

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var ErrInvalidParagraph = errors.New("invalid paragraph")

// Paragraph is one contract paragraph with the character offsets of its
// embedded date. Offsets count code points, not bytes.
type Paragraph struct {
	Text      string `json:"paragraph" yaml:"paragraph"`
	DateStart int    `json:"date_index_start" yaml:"date_index_start"`
	DateEnd   int    `json:"date_index_end" yaml:"date_index_end"`
}

// NewParagraph builds a Paragraph from byte offsets into text, such as the
// ones returned by the regexp package.
func NewParagraph(text string, byteStart, byteEnd int) Paragraph {
	return Paragraph{
		Text:      text,
		DateStart: utf8.RuneCountInString(text[:byteStart]),
		DateEnd:   utf8.RuneCountInString(text[:byteEnd]),
	}
}

// Example is a single generated training record.
type Example struct {
	Paragraph string `json:"paragraph"`
	Date      string `json:"date"`
}

type Spans struct {
	Before string
	Date   string
	After  string
}

func (p Paragraph) Validate() error {
	if !utf8.ValidString(p.Text) {
		return fmt.Errorf("%w: text is not valid UTF-8", ErrInvalidParagraph)
	}
	n := utf8.RuneCountInString(p.Text)
	if p.DateStart < 0 || p.DateStart >= p.DateEnd || p.DateEnd > n {
		return fmt.Errorf("%w: date offsets [%d:%d] out of range for text of %d characters",
			ErrInvalidParagraph, p.DateStart, p.DateEnd, n)
	}
	return nil
}

// byteOffsets maps the character offsets to byte offsets into Text.
// Offsets must already be validated.
func (p Paragraph) byteOffsets() (start, end int) {
	start, end = len(p.Text), len(p.Text)
	n := 0
	for i := range p.Text {
		if n == p.DateStart {
			start = i
		}
		if n == p.DateEnd {
			end = i
			break
		}
		n++
	}
	return start, end
}

// Split cuts the paragraph around its date. The character right after the
// date is dropped, so the separator added on recombination is not doubled.
func (p Paragraph) Split() (Spans, error) {
	if err := p.Validate(); err != nil {
		return Spans{}, err
	}

	start, end := p.byteOffsets()

	after := ""
	if end < len(p.Text) {
		_, width := utf8.DecodeRuneInString(p.Text[end:])
		after = p.Text[end+width:]
	}

	return Spans{
		Before: p.Text[:start],
		Date:   p.Text[start:end],
		After:  after,
	}, nil
}
