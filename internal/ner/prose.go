package ner

import (
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/talentsift/resume-parser/internal/types"
)

// fallbackConfidence is assigned to every fallback entity: the statistical
// tagger exposes no per-token probabilities.
const fallbackConfidence = 0.8

// proseTagger adapts the prose statistical entity tagger to the fallback
// extraction path.
type proseTagger struct{}

func newProseTagger() proseTagger {
	return proseTagger{}
}

func (proseTagger) extract(text string) ([]types.ExtractedEntity, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}

	proseEnts := doc.Entities()
	entities := make([]types.ExtractedEntity, 0, len(proseEnts))

	// prose reports entity text without offsets; recover spans by scanning
	// forward so repeated mentions map to successive occurrences.
	cursor := 0
	for _, ent := range proseEnts {
		start := strings.Index(text[cursor:], ent.Text)
		if start >= 0 {
			start += cursor
		} else {
			start = strings.Index(text, ent.Text)
		}
		if start < 0 {
			continue
		}
		end := start + len(ent.Text)
		cursor = end

		entities = append(entities, types.ExtractedEntity{
			Text:       ent.Text,
			Type:       ent.Label,
			Start:      start,
			End:        end,
			Confidence: fallbackConfidence,
		})
	}

	return entities, nil
}
