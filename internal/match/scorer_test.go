package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentsift/resume-parser/internal/config"
	"github.com/talentsift/resume-parser/internal/skills"
	"github.com/talentsift/resume-parser/internal/taxonomy"
	"github.com/talentsift/resume-parser/internal/types"
)

type panicEmbedder struct{}

func (panicEmbedder) Embed(string) []float64 { panic("no encoder loaded") }

func newTestScorer(opts ...Option) *Scorer {
	ex := skills.New(taxonomy.Default())
	return NewScorer(ex, config.Default().Scoring, opts...)
}

func TestScore_IdenticalTextsAreStrongMatch(t *testing.T) {
	text := "Experience\n" +
		"Senior Software Engineer at Acme, 2015 - present\n" +
		"Expert Python and Docker. Developed projects using Kubernetes.\n"
	s := newTestScorer()

	result := s.Score(text, types.JobDescription{Text: text})

	assert.InDelta(t, 1.0, result.TFIDFSimilarity, 1e-9)
	assert.InDelta(t, 1.0, result.SemanticSimilarity, 1e-9)
	assert.InDelta(t, 1.0, result.SkillMatchScore, 1e-9)
	assert.Greater(t, result.OverallScore, 0.8)
	assert.Equal(t, types.StrongMatch, result.Recommendation)
	assert.InDelta(t, scoreConfidence, result.Confidence, 1e-9)
	assert.Empty(t, result.Error)
}

func TestScore_NeutralSkillScoreWhenJobNamesNoSkills(t *testing.T) {
	s := newTestScorer()

	// The job text must not contain any taxonomy skill name, even by
	// substring ("R" and "Go" are easy to hit accidentally).
	result := s.Score(
		"Python developer with Docker experience",
		types.JobDescription{Text: "able and skilled people wanted"},
	)

	assert.InDelta(t, neutralSkillScore, result.SkillMatchScore, 1e-9)
}

func TestScore_Deterministic(t *testing.T) {
	s := newTestScorer()
	resume := "Senior Go engineer, 8 years of Kubernetes and PostgreSQL."
	job := types.JobDescription{Text: "Looking for a Go engineer with PostgreSQL."}

	first := s.Score(resume, job)
	second := s.Score(resume, job)

	assert.Equal(t, first, second)
}

func TestScore_RequiredSkillsHintOverridesExtraction(t *testing.T) {
	s := newTestScorer()

	// Resume mentions Python (and "R" via substring); job hint requires
	// Python and Go. Intersection 1, union 3, job set size 2:
	// 0.6*(1/3) + 0.4*(1/2) = 0.4.
	result := s.Score("Python developer", types.JobDescription{
		Text:           "able and skilled people wanted",
		RequiredSkills: []string{"Python", "Go"},
	})

	assert.InDelta(t, 0.4, result.SkillMatchScore, 1e-9)
}

func TestScore_RequiredYearsHintLowersCeiling(t *testing.T) {
	resume := "Experience\n" +
		"Software Engineer at Initech, 2015 - 2019\n" +
		"Experience\n" +
		"Data Scientist at Acme, 2019 - present\n"
	s := newTestScorer()

	capped := s.Score(resume, types.JobDescription{Text: "any", RequiredYears: 4})
	uncapped := s.Score(resume, types.JobDescription{Text: "any"})

	// Two records approximate four years: exactly the requirement, well
	// under the default fifteen-year ceiling.
	assert.InDelta(t, 1.0, capped.ExperienceScore, 1e-9)
	assert.InDelta(t, 4.0/15.0, uncapped.ExperienceScore, 1e-9)
}

func TestScore_PanicDegradesToZeroResult(t *testing.T) {
	s := newTestScorer(WithEmbedder(panicEmbedder{}))

	result := s.Score("Python developer", types.JobDescription{Text: "Go engineer"})

	assert.Zero(t, result.OverallScore)
	assert.Zero(t, result.Confidence)
	assert.Equal(t, types.NoMatch, result.Recommendation)
	assert.Contains(t, result.Error, "no encoder loaded")
}

func TestScore_EmptyInputs(t *testing.T) {
	s := newTestScorer()

	result := s.Score("", types.JobDescription{})

	require.Empty(t, result.Error)
	assert.Zero(t, result.TFIDFSimilarity)
	assert.Zero(t, result.SemanticSimilarity)
	assert.Zero(t, result.ExperienceScore)
	assert.InDelta(t, neutralSkillScore, result.SkillMatchScore, 1e-9)
	assert.Equal(t, types.NoMatch, result.Recommendation)
}

func TestSigmoid_MidpointAndExtremes(t *testing.T) {
	assert.InDelta(t, 0.5, sigmoid(0.5, 5, 0.5), 1e-9)
	assert.Greater(t, sigmoid(1.0, 5, 0.5), 0.9)
	assert.Less(t, sigmoid(0.0, 5, 0.5), 0.1)
}
