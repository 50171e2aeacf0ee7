package augment

import (
	"context"
	"errors"
)

var ErrEmptyResponse = errors.New("model returned no usable text")

// Task identifies the rewrite a Generator is asked to perform.
type Task string

const (
	TaskSynonym              Task = "synonym"
	TaskAntonym              Task = "antonym"
	TaskContextualInsert     Task = "contextual_insert"
	TaskContextualSubstitute Task = "contextual_substitute"
	TaskComplete             Task = "complete"
	TaskTranslate            Task = "translate"
)

type Language string

const (
	English Language = "en"
	German  Language = "de"
	Russian Language = "ru"
	Arabic  Language = "ar"
)

func (l Language) Name() string {
	switch l {
	case English:
		return "English"
	case German:
		return "German"
	case Russian:
		return "Russian"
	case Arabic:
		return "Arabic"
	}
	return string(l)
}

// Request describes one generation call.
type Request struct {
	Task  Task
	Text  string
	Count int
	// AugP is the share of words to rewrite for word-level tasks.
	AugP float64
	// ModelHint names the reference model whose behaviour the rewrite imitates.
	ModelHint string
	From, To  Language
}

// Generator produces up to Count rewrites of a request's text.
type Generator interface {
	Generate(ctx context.Context, req Request) ([]string, error)
}
