// Package skills matches taxonomy skills and certifications against resume
// text, scoring each mention with context-sensitive confidence bonuses.
package skills

import (
	"fmt"
	"regexp"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/jdkato/prose/v2"

	"github.com/talentsift/resume-parser/internal/taxonomy"
	"github.com/talentsift/resume-parser/internal/types"
)

// Confidence model: a bare mention starts at the base; an adjacent
// experience/proficiency phrase and an applied-usage phrase each add an
// independent bonus, capped at 1.
const (
	baseConfidence          = 0.5
	experienceBonus         = 0.2
	usageBonus              = 0.15
	certificationConfidence = 0.9
)

// experienceTemplates signal duration or proficiency near the skill name.
var experienceTemplates = []string{
	`%s.*\d+.*year`,
	`\d+.*year.*%s`,
	`expert.*%s`,
	`proficient.*%s`,
	`advanced.*%s`,
}

// usageTemplates signal the skill was applied, not just listed.
var usageTemplates = []string{
	`project.*%s`,
	`developed.*%s`,
	`implemented.*%s`,
	`used.*%s`,
}

var certificationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)AWS Certified`),
	regexp.MustCompile(`(?i)Microsoft Certified`),
	regexp.MustCompile(`(?i)Google Cloud Certified`),
	regexp.MustCompile(`(?i)Cisco Certified`),
	regexp.MustCompile(`(?i)Oracle Certified`),
	regexp.MustCompile(`(?i)Red Hat Certified`),
	regexp.MustCompile(`CompTIA [A-Z]+\+?`),
	regexp.MustCompile(`\bPMP\b`),
	regexp.MustCompile(`(?i)Scrum Master`),
	regexp.MustCompile(`(?i)Six Sigma`),
}

// Extractor finds taxonomy skills in text. Construct once and share; the
// underlying taxonomy is read-only.
type Extractor struct {
	tax *taxonomy.Taxonomy
}

// New returns an Extractor over the given taxonomy.
func New(tax *taxonomy.Taxonomy) *Extractor {
	return &Extractor{tax: tax}
}

// Extract returns every taxonomy skill mentioned in text, deduplicated by
// canonical name, plus the certifications matched by the fixed pattern list.
func (e *Extractor) Extract(text string) ([]types.SkillMention, []types.Certification) {
	mentions := []types.SkillMention{}
	certs := []types.Certification{}
	if strings.TrimSpace(text) == "" {
		return mentions, certs
	}

	lower := strings.ToLower(text)
	sentences := segmentSentences(text)
	seen := mapset.NewSet[string]()

	for _, cat := range e.tax.Categories() {
		for _, skill := range e.tax.Skills(cat) {
			if !strings.Contains(lower, strings.ToLower(skill)) {
				continue
			}
			key := taxonomy.CanonicalKey(skill)
			if !seen.Add(key) {
				continue
			}
			mentions = append(mentions, types.SkillMention{
				Name:       skill,
				Category:   cat,
				Confidence: scoreConfidence(lower, skill),
				Context:    firstSentenceWith(sentences, skill),
			})
		}
	}

	seenCerts := mapset.NewSet[string]()
	for _, p := range certificationPatterns {
		for _, m := range p.FindAllString(text, -1) {
			if !seenCerts.Add(strings.ToLower(m)) {
				continue
			}
			certs = append(certs, types.Certification{
				Name:       m,
				Confidence: certificationConfidence,
			})
		}
	}

	return mentions, certs
}

// Names returns the canonical-key set of skills mentioned in text, for use by
// the match scorer.
func (e *Extractor) Names(text string) mapset.Set[string] {
	mentions, _ := e.Extract(text)
	names := mapset.NewSet[string]()
	for _, m := range mentions {
		names.Add(taxonomy.CanonicalKey(m.Name))
	}
	return names
}

// scoreConfidence computes the heuristic confidence of one skill mention over
// the lowercased document text.
func scoreConfidence(lowerText, skill string) float64 {
	quoted := regexp.QuoteMeta(strings.ToLower(skill))
	confidence := baseConfidence

	if anyTemplateMatches(experienceTemplates, quoted, lowerText) {
		confidence += experienceBonus
	}
	if anyTemplateMatches(usageTemplates, quoted, lowerText) {
		confidence += usageBonus
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

func anyTemplateMatches(templates []string, quotedSkill, lowerText string) bool {
	for _, tmpl := range templates {
		re, err := regexp.Compile(fmt.Sprintf(tmpl, quotedSkill))
		if err != nil {
			continue
		}
		if re.MatchString(lowerText) {
			return true
		}
	}
	return false
}

// segmentSentences splits text into sentences. Tagging and entity extraction
// are disabled; only segmentation is needed here. Returns nil when the text
// cannot be segmented, which downgrades context to an empty string.
func segmentSentences(text string) []prose.Sentence {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil
	}
	return doc.Sentences()
}

// firstSentenceWith returns the first sentence containing the skill,
// case-insensitively, or an empty string.
func firstSentenceWith(sentences []prose.Sentence, skill string) string {
	needle := strings.ToLower(skill)
	for _, s := range sentences {
		if strings.Contains(strings.ToLower(s.Text), needle) {
			return s.Text
		}
	}
	return ""
}
