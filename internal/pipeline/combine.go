package pipeline

import (
	"math/rand/v2"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/shanehull/dateaug/internal/types"
)

// attemptsPerExample bounds the random draws spent on padding.
const attemptsPerExample = 50

func join(before, date, after string) string {
	return before + " " + date + " " + after
}

// combine pairs before[i], dates[i] and after[i], then pads with random
// recombinations until minExamples distinct paragraphs exist or the
// combination space is exhausted. It returns the examples and the number
// produced by pairing.
func combine(before, dates, after []string, minExamples int, rng *rand.Rand, logger *zap.Logger) ([]types.Example, int) {
	paired := min(len(before), len(after), len(dates))

	examples := make([]types.Example, 0, max(paired, minExamples))
	seen := make(map[string]struct{}, cap(examples))

	for i := range paired {
		text := join(before[i], dates[i], after[i])
		seen[text] = struct{}{}
		examples = append(examples, types.Example{Paragraph: text, Date: dates[i]})
	}
	logger.Info("paragraphs paired",
		zap.Int("paired", paired),
		zap.Int("unique", len(seen)))

	if len(examples) >= minExamples || len(dates) == 0 {
		return examples, paired
	}

	space := len(lo.Uniq(before)) * len(lo.Uniq(dates)) * len(lo.Uniq(after))
	budget := (minExamples - len(examples)) * attemptsPerExample

	for attempts := 0; len(examples) < minExamples && len(seen) < space && attempts < budget; attempts++ {
		b := before[rng.IntN(len(before))]
		a := after[rng.IntN(len(after))]
		d := dates[rng.IntN(len(dates))]

		text := join(b, d, a)
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		examples = append(examples, types.Example{Paragraph: text, Date: d})
	}

	if len(examples) < minExamples {
		logger.Warn("combination space exhausted before reaching the target",
			zap.Int("examples", len(examples)),
			zap.Int("target", minExamples),
			zap.Int("space", space))
	} else {
		logger.Info("paragraphs recombined", zap.Int("examples", len(examples)))
	}

	return examples, paired
}
