package notify

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "gopkg.in/mail.v2"

	"github.com/shanehull/dateaug/internal/pipeline"
)

func sampleData() NotificationData {
	return NotificationData{
		RunID:     "5f1c2d3e-run",
		OutputDir: "/tmp/out",
		Started:   time.Date(2024, time.March, 3, 14, 5, 0, 0, time.UTC),
		Elapsed:   95*time.Second + 345678*time.Microsecond,
		Summaries: []pipeline.Summary{
			{Index: 1, Before: 207, BeforeUnique: 200, After: 207, AfterUnique: 201, Paired: 207, Examples: 207, Output: "/tmp/out/augmentation_paragraph_number_1.json"},
			{Index: 2, Skipped: true, Examples: 200, Output: "/tmp/out/augmentation_paragraph_number_2.json"},
		},
	}
}

func TestNotificationTotals(t *testing.T) {
	data := sampleData()
	assert.Equal(t, 407, data.TotalExamples())
	assert.Equal(t, 1, data.Skipped())
}

func TestRender(t *testing.T) {
	msg, err := NewHTMLEmailRenderer().Render(sampleData())
	require.NoError(t, err)

	assert.Equal(t, "dateaug: 407 examples from 2 paragraphs", msg.Subject)
	assert.Contains(t, msg.HTML, "207 (200)")
	assert.Contains(t, msg.HTML, "1 resumed")
	assert.Contains(t, msg.HTML, "augmentation_paragraph_number_2.json")
	assert.Contains(t, msg.Text, "Before fragments: 207 (unique 200)")
	assert.Contains(t, msg.Text, "Skipped (already augmented): 200 examples")
	assert.Contains(t, msg.Text, "03 Mar 2024 2:05 PM")
	assert.Contains(t, msg.Text, "Elapsed:  1m35s\n")
	assert.Contains(t, msg.HTML, "<td>1m35s</td>")
	assert.NotContains(t, msg.HTML, "1m35.345678s")
}

func TestReportRun(t *testing.T) {
	var buf bytes.Buffer
	ReportRun(&buf, sampleData())
	assert.Contains(t, buf.String(), "407 EXAMPLES GENERATED FROM 2 PARAGRAPHS")
	assert.Contains(t, buf.String(), "--- PARAGRAPH #2 ---")
}

func TestEmailSender(t *testing.T) {
	cfg := EmailConfig{SMTPServer: "smtp.example.com", SMTPPort: 587, SMTPUser: "bot@example.com", SMTPPass: "secret", ToEmail: "team@example.com"}

	t.Run("sends multipart message", func(t *testing.T) {
		s := NewEmailSender(cfg, nil)

		var sent bytes.Buffer
		s.send = func(m *gomail.Message) error {
			assert.Equal(t, []string{"bot@example.com"}, m.GetHeader("From"))
			_, err := m.WriteTo(&sent)
			return err
		}

		require.NoError(t, EmailRun(s, NewHTMLEmailRenderer(), sampleData()))
		assert.Contains(t, sent.String(), "text/html")
		assert.Contains(t, sent.String(), "text/plain")
	})

	t.Run("disabled config sends nothing", func(t *testing.T) {
		s := NewEmailSender(EmailConfig{SMTPServer: "smtp.example.com"}, nil)
		s.send = func(*gomail.Message) error {
			t.Fatal("send must not be called")
			return nil
		}
		assert.NoError(t, s.Send(&RenderedMessage{Subject: "x", Text: "y"}))
	})

	t.Run("returns send errors", func(t *testing.T) {
		s := NewEmailSender(cfg, nil)
		boom := errors.New("connection refused")
		s.send = func(*gomail.Message) error { return boom }

		assert.ErrorIs(t, s.Send(&RenderedMessage{Subject: "x", Text: "y"}), boom)
	})
}
