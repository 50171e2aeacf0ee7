package augment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemInstruction(t *testing.T) {
	s := systemInstruction(Request{Task: TaskSynonym, AugP: 0.6})
	assert.Contains(t, s, "60% of the words")

	s = systemInstruction(Request{Task: TaskComplete, ModelHint: "xlnet-base-cased"})
	assert.Contains(t, s, "xlnet-base-cased")

	s = systemInstruction(Request{Task: TaskTranslate, From: English, To: Arabic})
	assert.Contains(t, s, "from English to Arabic")
}

func TestUserPrompt(t *testing.T) {
	assert.Equal(t, "hello", userPrompt(Request{Task: TaskTranslate, Text: "hello"}))
	assert.Contains(t, userPrompt(Request{Task: TaskAntonym, Text: "hello", Count: 4}), "Produce 4 rewrites")
}

func TestLeadingWords(t *testing.T) {
	assert.Equal(t, "a b ", leadingWords("  a   b ", 5))
	assert.Equal(t, "a b ", leadingWords("a b c d", 2))
	assert.Equal(t, " ", leadingWords("", 3))
}
