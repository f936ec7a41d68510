// Package match computes a multi-signal fit score between a resume and a job
// description: lexical TF-IDF similarity, semantic embedding similarity,
// taxonomy skill overlap, and an experience estimate, combined by weighted
// sum and squashed through a logistic curve.
package match

import (
	"fmt"
	"math"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sirupsen/logrus"

	"github.com/talentsift/resume-parser/internal/config"
	"github.com/talentsift/resume-parser/internal/observability"
	"github.com/talentsift/resume-parser/internal/sections"
	"github.com/talentsift/resume-parser/internal/skills"
	"github.com/talentsift/resume-parser/internal/taxonomy"
	"github.com/talentsift/resume-parser/internal/types"
)

// scoreConfidence reflects the maturity of the scoring heuristics, not the
// inputs; it is fixed per algorithm version.
const scoreConfidence = 0.85

// Skill-match blend between set similarity and requirement coverage.
const (
	jaccardWeight  = 0.6
	coverageWeight = 0.4

	// neutralSkillScore applies when the job names no identifiable skills;
	// an unknowable requirement should not zero the candidate out.
	neutralSkillScore = 0.5
)

// Scorer scores resumes against job descriptions. It is stateless across
// calls and safe for concurrent use.
type Scorer struct {
	skills   *skills.Extractor
	embedder Embedder
	params   config.Scoring
	logger   *logrus.Entry
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithEmbedder replaces the default hashing embedder, e.g. with a real
// sentence-encoder client.
func WithEmbedder(e Embedder) Option {
	return func(s *Scorer) { s.embedder = e }
}

// WithLogger attaches a logger; the default discards output.
func WithLogger(logger *logrus.Entry) Option {
	return func(s *Scorer) { s.logger = logger }
}

// NewScorer builds a Scorer over the given skill extractor and calibration.
func NewScorer(ex *skills.Extractor, params config.Scoring, opts ...Option) *Scorer {
	discard := logrus.New()
	discard.SetLevel(logrus.PanicLevel)

	s := &Scorer{
		skills:   ex,
		embedder: NewHashingEmbedder(0),
		params:   params,
		logger:   logrus.NewEntry(discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score computes the match between resume text and a job description. It
// never panics or returns an error; any internal failure degrades to a
// zero-score result with the detail attached.
func (s *Scorer) Score(resumeText string, job types.JobDescription) (result types.MatchResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.WithField("panic", r).Error("match scoring failed")
			result = types.MatchResult{
				Recommendation: types.NoMatch,
				Error:          fmt.Sprintf("scoring failed: %v", r),
			}
		}
	}()

	tfidf := tfidfSimilarity(resumeText, job.Text)
	semantic := cosine(s.embedder.Embed(resumeText), s.embedder.Embed(job.Text))
	skillScore := s.skillMatchScore(resumeText, job)
	expScore := s.experienceScore(resumeText, job)

	raw := s.params.TFIDFWeight*tfidf +
		s.params.SemanticWeight*semantic +
		s.params.SkillWeight*skillScore +
		s.params.ExperienceWeight*expScore

	overall := sigmoid(raw, s.params.SigmoidSteepness, s.params.SigmoidMidpoint)

	observability.MatchScores.Observe(overall)
	s.logger.WithFields(logrus.Fields{
		"tfidf":      tfidf,
		"semantic":   semantic,
		"skill":      skillScore,
		"experience": expScore,
		"overall":    overall,
	}).Debug("match scored")

	return types.MatchResult{
		OverallScore:       overall,
		TFIDFSimilarity:    tfidf,
		SemanticSimilarity: semantic,
		SkillMatchScore:    skillScore,
		ExperienceScore:    expScore,
		Confidence:         scoreConfidence,
		Recommendation:     types.RecommendationFor(overall),
	}
}

// skillMatchScore blends Jaccard similarity with coverage of the job's
// required skills. The job-side skill set comes from the RequiredSkills hint
// when present, otherwise from extracting the job text.
func (s *Scorer) skillMatchScore(resumeText string, job types.JobDescription) float64 {
	resumeSkills := s.skills.Names(resumeText)

	var jobSkills mapset.Set[string]
	if len(job.RequiredSkills) > 0 {
		jobSkills = mapset.NewSet[string]()
		for _, name := range job.RequiredSkills {
			jobSkills.Add(taxonomy.CanonicalKey(name))
		}
	} else {
		jobSkills = s.skills.Names(job.Text)
	}

	if jobSkills.Cardinality() == 0 {
		return neutralSkillScore
	}

	intersection := float64(resumeSkills.Intersect(jobSkills).Cardinality())
	union := float64(resumeSkills.Union(jobSkills).Cardinality())
	if union == 0 {
		return 0
	}

	jaccard := intersection / union
	coverage := intersection / float64(jobSkills.Cardinality())
	return jaccardWeight*jaccard + coverageWeight*coverage
}

// experienceScore approximates years of experience from the count of
// extracted work records and normalizes against the required-years hint or
// the configured career ceiling, clamped to 1.
func (s *Scorer) experienceScore(resumeText string, job types.JobDescription) float64 {
	records := sections.ExtractWorkExperience(resumeText)
	years := float64(len(records)) * s.params.YearsPerRecord

	ceiling := s.params.CeilingYears
	if job.RequiredYears > 0 {
		ceiling = float64(job.RequiredYears)
	}

	score := years / ceiling
	if score > 1 {
		score = 1
	}
	return score
}

func sigmoid(x, steepness, midpoint float64) float64 {
	return 1 / (1 + math.Exp(-steepness*(x-midpoint)))
}
