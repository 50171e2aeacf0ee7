/*
Package pipeline drives the augmentation of contract paragraphs: it splits
each paragraph around its date, grows both sides through every augmentation
strategy, re-renders the date and recombines the pieces into training
examples.
*/
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shanehull/dateaug/internal/augment"
	"github.com/shanehull/dateaug/internal/dateformat"
	"github.com/shanehull/dateaug/internal/history"
	"github.com/shanehull/dateaug/internal/output"
	"github.com/shanehull/dateaug/internal/types"
)

var ErrNoAugmentations = errors.New("augmentation produced no fragments")

// Augmenter is the set of strategies the pipeline runs on each text span.
type Augmenter interface {
	Synonym(ctx context.Context, text string, n int) ([]string, error)
	Antonym(ctx context.Context, text string, n int) ([]string, error)
	ContextualInsert(ctx context.Context, text string, n int) ([]string, error)
	ContextualSubstitute(ctx context.Context, text string, n int) ([]string, error)
	CompleteBefore(ctx context.Context, text string, n int) ([]string, error)
	CompleteAfter(ctx context.Context, text string, n int) ([]string, error)
	Backtranslate(ctx context.Context, lang augment.Language, original string, generated []string) ([]string, error)
}

type Options struct {
	// Count is the number of rewrites requested from each strategy.
	Count       int
	MinExamples int
	Seed        uint64
	Workers     int
	Languages   []augment.Language
	Date        dateformat.Options
	Resume      bool
}

func DefaultOptions() Options {
	return Options{
		Count:       5,
		MinExamples: 200,
		Workers:     1,
		Languages:   []augment.Language{augment.German, augment.Russian, augment.Arabic},
		Date:        dateformat.DefaultOptions(),
	}
}

// Summary describes the outcome for one paragraph.
type Summary struct {
	Index        int
	Skipped      bool
	Before       int
	BeforeUnique int
	After        int
	AfterUnique  int
	Paired       int
	Examples     int
	Output       string
}

type Pipeline struct {
	aug     Augmenter
	writer  *output.Writer
	history *history.Manager
	opts    Options
	logger  *zap.Logger
}

// New builds a Pipeline. history may be nil, in which case nothing is
// recorded and Resume has no effect.
func New(aug Augmenter, writer *output.Writer, hist *history.Manager, opts Options, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Pipeline{aug: aug, writer: writer, history: hist, opts: opts, logger: logger}
}

// Run processes every paragraph and stops at the first error.
func (p *Pipeline) Run(ctx context.Context, paragraphs []types.Paragraph) ([]Summary, error) {
	summaries := make([]Summary, len(paragraphs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)

	for i, para := range paragraphs {
		index := i + 1
		g.Go(func() error {
			s, err := p.processParagraph(ctx, index, para)
			if err != nil {
				return fmt.Errorf("paragraph %d: %w", index, err)
			}
			summaries[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (p *Pipeline) processParagraph(ctx context.Context, index int, para types.Paragraph) (Summary, error) {
	logger := p.logger.With(zap.Int("paragraph", index))

	if p.opts.Resume && p.history != nil {
		if entry, ok := p.history.Completed(para, p.writer.Path(index)); ok {
			logger.Info("already augmented, skipping", zap.String("output", entry.Output))
			return Summary{Index: index, Skipped: true, Examples: entry.Examples, Output: entry.Output}, nil
		}
	}

	spans, err := para.Split()
	if err != nil {
		return Summary{}, err
	}

	rng := rand.New(rand.NewPCG(p.opts.Seed, uint64(index)))

	logger.Info("augmenting text before the date")
	before, err := p.augmentSpan(ctx, logger, spans.Before, p.aug.CompleteBefore)
	if err != nil {
		return Summary{}, err
	}

	dates := make([]string, 0, len(before))
	for range before {
		d, err := dateformat.Reformat(spans.Date, p.opts.Date, rng)
		if err != nil {
			return Summary{}, err
		}
		dates = append(dates, d)
	}
	logger.Info("dates generated", zap.Int("generated", len(dates)))

	logger.Info("augmenting text after the date")
	after, err := p.augmentSpan(ctx, logger, spans.After, p.aug.CompleteAfter)
	if err != nil {
		return Summary{}, err
	}

	if len(before) == 0 || len(after) == 0 {
		return Summary{}, fmt.Errorf("%w: before=%d after=%d", ErrNoAugmentations, len(before), len(after))
	}

	examples, paired := combine(before, dates, after, p.opts.MinExamples, rng, logger)

	path, err := p.writer.Write(index, examples)
	if err != nil {
		return Summary{}, err
	}
	if p.history != nil {
		if err := p.history.Record(para, path, len(examples)); err != nil {
			return Summary{}, err
		}
	}

	logger.Info("paragraph written", zap.String("output", path), zap.Int("examples", len(examples)))

	return Summary{
		Index:        index,
		Before:       len(before),
		BeforeUnique: len(lo.Uniq(before)),
		After:        len(after),
		AfterUnique:  len(lo.Uniq(after)),
		Paired:       paired,
		Examples:     len(examples),
		Output:       path,
	}, nil
}
