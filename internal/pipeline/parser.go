// Package pipeline orchestrates the four extraction stages over one document
// and merges their outputs into a ParsedProfile.
package pipeline

import (
	"context"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/talentsift/resume-parser/internal/contact"
	"github.com/talentsift/resume-parser/internal/ner"
	"github.com/talentsift/resume-parser/internal/observability"
	"github.com/talentsift/resume-parser/internal/sections"
	"github.com/talentsift/resume-parser/internal/skills"
	"github.com/talentsift/resume-parser/internal/taxonomy"
	"github.com/talentsift/resume-parser/internal/types"
)

// Parser runs entity, contact, skill and section extraction over resume text.
// Construct once; it is immutable afterwards and safe for concurrent use.
type Parser struct {
	engine *ner.Engine
	skills *skills.Extractor
	logger *logrus.Entry
}

// Option configures a Parser.
type Option func(*Parser)

// WithEngine replaces the default entity extraction engine, e.g. to install
// a trained token classifier.
func WithEngine(engine *ner.Engine) Option {
	return func(p *Parser) { p.engine = engine }
}

// WithLogger attaches a logger; the default discards output.
func WithLogger(logger *logrus.Entry) Option {
	return func(p *Parser) { p.logger = logger }
}

// New builds a Parser over the given taxonomy.
func New(tax *taxonomy.Taxonomy, opts ...Option) *Parser {
	discard := logrus.New()
	discard.SetLevel(logrus.PanicLevel)

	p := &Parser{
		engine: ner.NewEngine(),
		skills: skills.New(tax),
		logger: logrus.NewEntry(discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Skills exposes the parser's skill extractor so the match scorer can share
// the same taxonomy-backed instance.
func (p *Parser) Skills() *skills.Extractor {
	return p.skills
}

// Parse extracts a structured profile from resume text. The four stages run
// concurrently; a stage that fails returns an empty result and the others
// proceed. Parse never returns an error: empty or whitespace-only input
// yields an empty profile.
func (p *Parser) Parse(ctx context.Context, text string) *types.ParsedProfile {
	profile := types.NewProfile()
	if strings.TrimSpace(text) == "" {
		return profile
	}

	var (
		entities  []types.ExtractedEntity
		contacts  types.ContactInfo
		mentions  []types.SkillMention
		certs     []types.Certification
		work      []types.WorkExperienceRecord
		education []types.EducationRecord
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(p.stage("entities", func() {
		entities = p.engine.ExtractEntities(gCtx, text)
	}))
	g.Go(p.stage("contact", func() {
		contacts = contact.Extract(text)
	}))
	g.Go(p.stage("skills", func() {
		mentions, certs = p.skills.Extract(text)
	}))
	g.Go(p.stage("sections", func() {
		work = sections.ExtractWorkExperience(text)
		education = sections.ExtractEducation(text)
	}))

	// Stage closures never return errors; failures are swallowed per stage.
	_ = g.Wait()

	if entities != nil {
		profile.Entities = entities
	}
	profile.Contact = contacts
	if mentions != nil {
		profile.Skills = mentions
	}
	if certs != nil {
		profile.Certifications = certs
	}
	if work != nil {
		profile.WorkExperience = work
	}
	if education != nil {
		profile.Education = education
	}

	p.logger.WithFields(logrus.Fields{
		"profile_id": profile.ID,
		"entities":   len(profile.Entities),
		"skills":     len(profile.Skills),
		"work":       len(profile.WorkExperience),
		"education":  len(profile.Education),
	}).Debug("document parsed")

	return profile
}

// stage wraps one extraction stage with timing and panic isolation. A failed
// stage leaves its output empty and increments the failure counter.
func (p *Parser) stage(name string, fn func()) func() error {
	return func() error {
		timer := prometheus.NewTimer(observability.StageDuration.WithLabelValues(name))
		defer timer.ObserveDuration()
		defer func() {
			if r := recover(); r != nil {
				observability.StageFailures.WithLabelValues(name).Inc()
				p.logger.WithFields(logrus.Fields{
					"stage": name,
					"panic": r,
				}).Warn("extraction stage failed")
			}
		}()
		fn()
		return nil
	}
}
