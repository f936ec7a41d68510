package ner

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/talentsift/resume-parser/internal/observability"
	"github.com/talentsift/resume-parser/internal/types"
)

// minEntityConfidence is the emit threshold for decoded entities: a run whose
// weakest token falls below it is discarded.
const minEntityConfidence = 0.5

// Engine runs the ensemble extraction: the primary classifier with BIO
// decoding when present, the fallback tagger otherwise. Safe for concurrent
// use once constructed.
type Engine struct {
	classifier TokenClassifier
	fallback   fallbackTagger
	logger     *logrus.Logger
}

// fallbackTagger is the secondary extraction path. Implementations must not
// return partial results together with an error.
type fallbackTagger interface {
	extract(text string) ([]types.ExtractedEntity, error)
}

// Option configures an Engine.
type Option func(*Engine)

// WithClassifier installs the primary token-classification model. Without it
// every extraction uses the fallback tagger.
func WithClassifier(c TokenClassifier) Option {
	return func(e *Engine) { e.classifier = c }
}

// WithLogger replaces the default logger.
func WithLogger(l *logrus.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine builds an extraction engine. The fallback tagger is always
// available; the primary classifier is optional.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		fallback: newProseTagger(),
		logger:   logrus.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractEntities returns the typed entities found in text. It never returns
// an error: primary-model failures shift to the fallback path, and fallback
// failures yield an empty slice.
func (e *Engine) ExtractEntities(ctx context.Context, text string) []types.ExtractedEntity {
	if e.classifier == nil {
		return e.extractFallback(text)
	}

	tokens, err := e.classifier.Classify(ctx, text)
	if err != nil {
		e.logger.WithError(err).Warn("primary NER model failed, using fallback")
		return e.extractFallback(text)
	}

	entities := decodeBIO(text, tokens)
	for _, ent := range entities {
		observability.EntitiesExtracted.WithLabelValues(ent.Type).Inc()
	}
	return entities
}

func (e *Engine) extractFallback(text string) []types.ExtractedEntity {
	observability.FallbackExtractions.Inc()

	entities, err := e.fallback.extract(text)
	if err != nil {
		e.logger.WithError(err).Warn("fallback NER failed, returning no entities")
		return []types.ExtractedEntity{}
	}
	for _, ent := range entities {
		observability.EntitiesExtracted.WithLabelValues(ent.Type).Inc()
	}
	return entities
}

// bioAccumulator is the decoding state machine: either idle, or building one
// entity whose confidence is the minimum probability seen across its tokens.
type bioAccumulator struct {
	building   bool
	entityType string
	start      int
	end        int
	minProb    float64
}

func (a *bioAccumulator) open(tag bioTag, tok TaggedToken) {
	a.building = true
	a.entityType = tag.entityType
	a.start = tok.Start
	a.end = tok.End
	a.minProb = tok.Probability
}

func (a *bioAccumulator) extend(tok TaggedToken) {
	a.end = tok.End
	if tok.Probability < a.minProb {
		a.minProb = tok.Probability
	}
}

// close emits the pending entity if it clears the confidence threshold and
// resets the accumulator.
func (a *bioAccumulator) close(text string, out []types.ExtractedEntity) []types.ExtractedEntity {
	if a.building && a.minProb >= minEntityConfidence {
		out = append(out, types.ExtractedEntity{
			Text:       text[a.start:a.end],
			Type:       a.entityType,
			Start:      a.start,
			End:        a.end,
			Confidence: a.minProb,
		})
	}
	a.building = false
	return out
}

// decodeBIO merges contiguous same-type tagged tokens into entities in a
// single pass. Special tokens with zero-width offsets are skipped without
// touching the accumulator state; a Begin tag, an Outside tag, or a type
// change closes the pending entity.
func decodeBIO(text string, tokens []TaggedToken) []types.ExtractedEntity {
	entities := []types.ExtractedEntity{}
	var acc bioAccumulator

	for _, tok := range tokens {
		if tok.Start == tok.End {
			continue // padding / special token
		}

		tag := parseBIOTag(tok.Tag)
		switch tag.prefix {
		case 'B':
			entities = acc.close(text, entities)
			acc.open(tag, tok)
		case 'I':
			if acc.building && tag.entityType == acc.entityType {
				acc.extend(tok)
				continue
			}
			// An Inside tag with no open entity (or the wrong type) starts
			// a fresh run rather than extending across a type boundary.
			entities = acc.close(text, entities)
			acc.open(tag, tok)
		case 'O':
			entities = acc.close(text, entities)
		}
	}

	return acc.close(text, entities)
}
