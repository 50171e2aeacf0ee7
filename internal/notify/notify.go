/*
Package notify reports the outcome of an augmentation run on the console and,
when SMTP is configured, by email.
*/
package notify

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shanehull/dateaug/internal/pipeline"
)

// NotificationData is everything a run report renders.
type NotificationData struct {
	RunID     string
	OutputDir string
	Started   time.Time
	Elapsed   time.Duration
	Summaries []pipeline.Summary
}

func (d NotificationData) TotalExamples() int {
	total := 0
	for _, s := range d.Summaries {
		total += s.Examples
	}
	return total
}

func (d NotificationData) Skipped() int {
	n := 0
	for _, s := range d.Summaries {
		if s.Skipped {
			n++
		}
	}
	return n
}

// ElapsedRounded is the run duration rounded to whole seconds.
func (d NotificationData) ElapsedRounded() time.Duration {
	return d.Elapsed.Round(time.Second)
}

type RenderedMessage struct {
	Subject string
	Text    string
	HTML    string
}

// ReportRun prints a run summary to w.
func ReportRun(w io.Writer, data NotificationData) {
	fmt.Fprintln(w, "\n===========================================")
	fmt.Fprintf(w, "✅ %d EXAMPLES GENERATED FROM %d PARAGRAPHS\n", data.TotalExamples(), len(data.Summaries))
	fmt.Fprintln(w, "===========================================")
	fmt.Fprint(w, renderPlainText(data))
	fmt.Fprintln(w, "===========================================")
}

func subject(data NotificationData) string {
	return fmt.Sprintf("dateaug: %d examples from %d paragraphs", data.TotalExamples(), len(data.Summaries))
}

func renderPlainText(data NotificationData) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Run:      %s\n", data.RunID))
	sb.WriteString(fmt.Sprintf("Started:  %s\n", data.Started.Format("02 Jan 2006 3:04 PM")))
	sb.WriteString(fmt.Sprintf("Elapsed:  %s\n", data.ElapsedRounded()))
	sb.WriteString(fmt.Sprintf("Output:   %s\n\n", data.OutputDir))

	for _, s := range data.Summaries {
		sb.WriteString(fmt.Sprintf("--- PARAGRAPH #%d ---\n", s.Index))
		if s.Skipped {
			sb.WriteString(fmt.Sprintf("Skipped (already augmented): %d examples in %s\n", s.Examples, s.Output))
			continue
		}
		sb.WriteString(fmt.Sprintf("Before fragments: %d (unique %d)\n", s.Before, s.BeforeUnique))
		sb.WriteString(fmt.Sprintf("After fragments:  %d (unique %d)\n", s.After, s.AfterUnique))
		sb.WriteString(fmt.Sprintf("Paired:           %d\n", s.Paired))
		sb.WriteString(fmt.Sprintf("Examples:         %d\n", s.Examples))
		sb.WriteString(fmt.Sprintf("File:             %s\n", s.Output))
	}

	return sb.String()
}
