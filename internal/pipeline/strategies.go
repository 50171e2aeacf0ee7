package pipeline

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/shanehull/dateaug/internal/augment"
)

type completeFunc func(ctx context.Context, text string, n int) ([]string, error)

type strategy struct {
	name string
	run  func(ctx context.Context, text string, acc []string) ([]string, error)
}

func (p *Pipeline) strategies(complete completeFunc) []strategy {
	n := p.opts.Count
	fixed := func(name string, fn completeFunc) strategy {
		return strategy{name: name, run: func(ctx context.Context, text string, _ []string) ([]string, error) {
			return fn(ctx, text, n)
		}}
	}

	list := []strategy{
		fixed("synonym", p.aug.Synonym),
		fixed("antonym", p.aug.Antonym),
		fixed("contextual insert", p.aug.ContextualInsert),
		fixed("contextual substitute", p.aug.ContextualSubstitute),
		fixed("completion", complete),
	}

	for _, lang := range p.opts.Languages {
		list = append(list, strategy{
			name: fmt.Sprintf("%s backtranslation", lang.Name()),
			run: func(ctx context.Context, text string, acc []string) ([]string, error) {
				return p.aug.Backtranslate(ctx, lang, text, acc)
			},
		})
	}
	return list
}

// augmentSpan runs text through every strategy in order. Backtranslation
// steps see everything generated before them.
func (p *Pipeline) augmentSpan(ctx context.Context, logger *zap.Logger, text string, complete completeFunc) ([]string, error) {
	list := p.strategies(complete)

	var acc []string
	for i, s := range list {
		out, err := s.run(ctx, text, acc)
		if err != nil {
			return nil, err
		}
		acc = append(acc, out...)
		logger.Debug(fmt.Sprintf("[%d/%d] %s done", i+1, len(list), s.name), zap.Int("returned", len(out)))
	}

	logger.Info("span augmented",
		zap.Int("generated", len(acc)),
		zap.Int("unique", len(lo.Uniq(acc))))

	return acc, nil
}

var _ Augmenter = (*augment.Augmenter)(nil)
