// Package ner extracts typed entities from resume text. A primary
// token-classification model is used when available; otherwise extraction
// falls back to a statistical tagger with a fixed confidence.
package ner

import (
	"context"
	"errors"
	"strings"
)

// ErrModelUnavailable is returned by classifiers that cannot serve
// predictions (missing weights, failed load). The engine treats it as a
// signal to fall back, never as a pipeline failure.
var ErrModelUnavailable = errors.New("token classification model unavailable")

// TaggedToken is one token of model output: its span in the source text, a
// BIO tag such as "B-SKILL", "I-SKILL" or "O", and the probability the model
// assigned to that tag.
type TaggedToken struct {
	Text        string
	Start       int
	End         int
	Tag         string
	Probability float64
}

// TokenClassifier produces a BIO tag and probability per token. It is the
// seam for plugging in a real token-classification model; implementations
// must be safe for concurrent use after construction.
type TokenClassifier interface {
	Classify(ctx context.Context, text string) ([]TaggedToken, error)
}

// bioTag is a parsed BIO label.
type bioTag struct {
	prefix     byte   // 'B', 'I' or 'O'
	entityType string // empty for O
}

// parseBIOTag splits a raw tag into its prefix and entity type. Anything that
// is not a well-formed B-/I- tag is treated as Outside.
func parseBIOTag(raw string) bioTag {
	switch {
	case strings.HasPrefix(raw, "B-") && len(raw) > 2:
		return bioTag{prefix: 'B', entityType: raw[2:]}
	case strings.HasPrefix(raw, "I-") && len(raw) > 2:
		return bioTag{prefix: 'I', entityType: raw[2:]}
	default:
		return bioTag{prefix: 'O'}
	}
}
