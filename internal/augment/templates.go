package augment

import (
	"fmt"
	"math"
	"strings"
)

const baseInstruction = `
You are a data augmentation engine for a legal-contract date extraction model.

You receive a fragment of a contract paragraph. The fragment is cut right before or right after a date, so it may start or end mid-sentence. Never add, remove or rewrite dates, and never complete the fragment past its cut point unless asked to.

Return a JSON array of strings. Each string is one independent rewrite of the fragment. Rewrites must differ from each other and from the input.
`

var taskInstructions = map[Task]string{
	TaskSynonym: `
# [TASK]
Replace roughly %d%% of the words with WordNet-style synonyms. Keep word order, punctuation, defined terms in quotes and section numbers unchanged.`,

	TaskAntonym: `
# [TASK]
Replace one or two words with their antonyms (e.g. "earlier" -> "later", "grant" -> "deny"). Keep everything else unchanged, including punctuation.`,

	TaskContextualInsert: `
# [TASK]
Behave like the masked language model %s. Insert single words that the model would predict as likely at random positions. Insert no more than three words per rewrite.`,

	TaskContextualSubstitute: `
# [TASK]
Behave like the masked language model %s. Substitute up to three words with the words that model would predict as most likely in context.`,

	TaskComplete: `
# [TASK]
Behave like the autoregressive model %s. The input is the start of a sentence. Continue it into one complete, plausible contract sentence ending with a period. Each rewrite must start with the exact input text.`,
}

const translateInstruction = `
You are a professional legal translator. Translate the text from %s to %s.

Return a JSON array holding exactly one string: the translation. Do not explain, do not add notes, keep quoted defined terms quoted.
`

func systemInstruction(req Request) string {
	if req.Task == TaskTranslate {
		return fmt.Sprintf(translateInstruction, req.From.Name(), req.To.Name())
	}

	task, ok := taskInstructions[req.Task]
	if !ok {
		return baseInstruction
	}

	switch req.Task {
	case TaskSynonym:
		task = fmt.Sprintf(task, int(math.Round(req.AugP*100)))
	case TaskContextualInsert, TaskContextualSubstitute, TaskComplete:
		task = fmt.Sprintf(task, req.ModelHint)
	}

	return baseInstruction + task
}

func userPrompt(req Request) string {
	if req.Task == TaskTranslate {
		return req.Text
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Produce %d rewrites of the following fragment.\n", req.Count))
	sb.WriteString("---\n")
	sb.WriteString(req.Text)
	sb.WriteString("\n---\n")
	return sb.String()
}
