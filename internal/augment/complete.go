package augment

import (
	"context"
	"strings"
)

// CompleteBefore rewrites the text preceding a date. The opening words are
// continued by the completion model; when the text has several sentences
// its last, unfinished sentence (the one leading into the date) is
// paraphrased and appended.
func (a *Augmenter) CompleteBefore(ctx context.Context, text string, n int) ([]string, error) {
	generated, err := a.complete(ctx, leadingWords(text, a.cfg.BeforeTextLimit), n)
	if err != nil {
		return nil, err
	}

	idx := strings.LastIndex(text, ".")
	if idx == -1 {
		return generated, nil
	}

	lastPart := sliceFrom(text, idx+2)
	if strings.TrimSpace(lastPart) == "" {
		return generated, nil
	}

	paraphrased, err := a.synonym(ctx, lastPart, a.cfg.CompletionAugP, n)
	if err != nil {
		return nil, err
	}

	count := min(len(generated), len(paraphrased))
	out := make([]string, 0, count)
	for i := range count {
		sentence := generated[i]
		if !strings.HasSuffix(sentence, ".") {
			sentence += "."
		}
		out = append(out, sentence+" "+paraphrased[i])
	}
	return out, nil
}

// CompleteAfter rewrites the text following a date. The sentence holding
// the date is paraphrased and the next sentence is regenerated from its
// opening words.
func (a *Augmenter) CompleteAfter(ctx context.Context, text string, n int) ([]string, error) {
	idx := strings.Index(text, ".")
	if idx == -1 {
		return a.complete(ctx, leadingWords(text, a.cfg.AfterTextLimit), n)
	}

	paraphrased, err := a.synonym(ctx, text[:idx], a.cfg.CompletionAugP, n)
	if err != nil {
		return nil, err
	}

	rest := sliceFrom(text, idx+2)
	if strings.TrimSpace(rest) == "" {
		out := make([]string, 0, len(paraphrased))
		for _, p := range paraphrased {
			out = append(out, p+".")
		}
		return out, nil
	}

	generated, err := a.complete(ctx, leadingWords(rest, a.cfg.AfterTextLimit), n)
	if err != nil {
		return nil, err
	}

	count := min(len(generated), len(paraphrased))
	out := make([]string, 0, count)
	for i := range count {
		out = append(out, paraphrased[i]+". "+generated[i])
	}
	return out, nil
}

func sliceFrom(s string, i int) string {
	if i >= len(s) {
		return ""
	}
	return s[i:]
}
