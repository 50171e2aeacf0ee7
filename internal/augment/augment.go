/*
Package augment exposes the paraphrasing strategies used to grow a contract
paragraph into many training examples. Every strategy takes a text and a
requested example count and returns the rewrites it could produce.
*/
package augment

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

const unknownToken = "[UNK]"

// Config holds the per-strategy parameters.
type Config struct {
	SynonymAugP     float64
	CompletionAugP  float64
	BeforeTextLimit int
	AfterTextLimit  int
	ContextualModel string
	CompletionModel string
}

func DefaultConfig() Config {
	return Config{
		SynonymAugP:     0.5,
		CompletionAugP:  0.6,
		BeforeTextLimit: 11,
		AfterTextLimit:  9,
		ContextualModel: "nlpaueb/legal-bert-base-uncased",
		CompletionModel: "xlnet-base-cased",
	}
}

type Augmenter struct {
	gen    Generator
	cfg    Config
	logger *zap.Logger
}

func New(gen Generator, cfg Config, logger *zap.Logger) *Augmenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Augmenter{gen: gen, cfg: cfg, logger: logger}
}

// Synonym substitutes words with synonyms.
func (a *Augmenter) Synonym(ctx context.Context, text string, n int) ([]string, error) {
	return a.synonym(ctx, text, a.cfg.SynonymAugP, n)
}

func (a *Augmenter) synonym(ctx context.Context, text string, augP float64, n int) ([]string, error) {
	return a.run(ctx, Request{Task: TaskSynonym, Text: text, Count: n, AugP: augP})
}

// Antonym substitutes words with their opposite meaning.
func (a *Augmenter) Antonym(ctx context.Context, text string, n int) ([]string, error) {
	return a.run(ctx, Request{Task: TaskAntonym, Text: text, Count: n})
}

// ContextualInsert injects words a masked language model predicts as likely.
func (a *Augmenter) ContextualInsert(ctx context.Context, text string, n int) ([]string, error) {
	out, err := a.run(ctx, Request{Task: TaskContextualInsert, Text: text, Count: n, ModelHint: a.cfg.ContextualModel})
	if err != nil {
		return nil, err
	}
	return stripUnknown(out), nil
}

// ContextualSubstitute replaces words with masked language model predictions.
func (a *Augmenter) ContextualSubstitute(ctx context.Context, text string, n int) ([]string, error) {
	out, err := a.run(ctx, Request{Task: TaskContextualSubstitute, Text: text, Count: n, ModelHint: a.cfg.ContextualModel})
	if err != nil {
		return nil, err
	}
	return stripUnknown(out), nil
}

func (a *Augmenter) complete(ctx context.Context, prefix string, n int) ([]string, error) {
	return a.run(ctx, Request{Task: TaskComplete, Text: prefix, Count: n, ModelHint: a.cfg.CompletionModel})
}

func (a *Augmenter) run(ctx context.Context, req Request) ([]string, error) {
	out, err := a.gen.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s augmentation failed: %w", req.Task, err)
	}

	cleaned := clean(out)
	a.logger.Debug("augmented",
		zap.String("task", string(req.Task)),
		zap.Int("requested", req.Count),
		zap.Int("returned", len(cleaned)))

	return cleaned, nil
}

func clean(in []string) []string {
	return lo.FilterMap(in, func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(norm.NFC.String(s))
		return s, s != ""
	})
}

// stripUnknown removes unknown-word tokens and the gaps they leave, dropping
// fragments that held nothing else.
func stripUnknown(in []string) []string {
	return clean(lo.Map(in, func(s string, _ int) string {
		return strings.Join(strings.Fields(strings.ReplaceAll(s, unknownToken, " ")), " ")
	}))
}

// leadingWords returns the first limit words of text followed by a space.
func leadingWords(text string, limit int) string {
	tokens := strings.Fields(text)
	if len(tokens) > limit {
		tokens = tokens[:limit]
	}
	return strings.Join(tokens, " ") + " "
}
