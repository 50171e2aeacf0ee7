package augment

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Backtranslate round-trips original and every generated string through
// lang and back to English. The result holds one translation per input with
// duplicates removed.
func (a *Augmenter) Backtranslate(ctx context.Context, lang Language, original string, generated []string) ([]string, error) {
	inputs := append([]string{original}, generated...)
	out := make([]string, 0, len(inputs))

	for _, text := range inputs {
		translated, err := a.roundTrip(ctx, lang, text)
		if err != nil {
			return nil, err
		}
		out = append(out, translated)
	}

	unique := lo.Uniq(out)
	a.logger.Debug("backtranslated",
		zap.String("language", string(lang)),
		zap.Int("inputs", len(inputs)),
		zap.Int("unique", len(unique)))

	return unique, nil
}

func (a *Augmenter) BacktranslateGerman(ctx context.Context, original string, generated []string) ([]string, error) {
	return a.Backtranslate(ctx, German, original, generated)
}

func (a *Augmenter) BacktranslateRussian(ctx context.Context, original string, generated []string) ([]string, error) {
	return a.Backtranslate(ctx, Russian, original, generated)
}

func (a *Augmenter) BacktranslateArabic(ctx context.Context, original string, generated []string) ([]string, error) {
	return a.Backtranslate(ctx, Arabic, original, generated)
}

func (a *Augmenter) roundTrip(ctx context.Context, lang Language, text string) (string, error) {
	foreign, err := a.translate(ctx, text, English, lang)
	if err != nil {
		return "", err
	}
	return a.translate(ctx, foreign, lang, English)
}

func (a *Augmenter) translate(ctx context.Context, text string, from, to Language) (string, error) {
	out, err := a.run(ctx, Request{Task: TaskTranslate, Text: text, Count: 1, From: from, To: to})
	if err != nil {
		return "", err
	}
	if len(out) == 0 {
		return "", fmt.Errorf("translate %s->%s: %w", from, to, ErrEmptyResponse)
	}
	return out[0], nil
}
