package types

// Recommendation buckets an overall match score into a hiring signal.
type Recommendation string

const (
	StrongMatch Recommendation = "strong_match"
	GoodMatch   Recommendation = "good_match"
	WeakMatch   Recommendation = "weak_match"
	NoMatch     Recommendation = "no_match"
)

// Recommendation thresholds: inclusive lower bounds on the overall score.
const (
	StrongMatchThreshold = 0.8
	GoodMatchThreshold   = 0.6
	WeakMatchThreshold   = 0.4
)

// RecommendationFor maps an overall score to its recommendation band.
// It is a pure function of the score; scoring code must not bucket scores
// any other way.
func RecommendationFor(score float64) Recommendation {
	switch {
	case score >= StrongMatchThreshold:
		return StrongMatch
	case score >= GoodMatchThreshold:
		return GoodMatch
	case score >= WeakMatchThreshold:
		return WeakMatch
	default:
		return NoMatch
	}
}

// JobDescription is the scoring input for the job side. Hints, when present,
// are authoritative: the scorer uses them instead of re-deriving the same
// information from the description text.
type JobDescription struct {
	Text           string   `json:"text"`
	Title          string   `json:"title,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	RequiredYears  int      `json:"required_years,omitempty" validate:"gte=0"`
}

// MatchResult holds the combined score and its component signals. All values
// lie in [0,1]. Error carries the failure detail when scoring degraded to a
// zero result; it is empty on success.
type MatchResult struct {
	OverallScore       float64        `json:"overall_score"`
	TFIDFSimilarity    float64        `json:"tfidf_similarity"`
	SemanticSimilarity float64        `json:"semantic_similarity"`
	SkillMatchScore    float64        `json:"skill_match_score"`
	ExperienceScore    float64        `json:"experience_score"`
	Confidence         float64        `json:"confidence"`
	Recommendation     Recommendation `json:"recommendation"`
	Error              string         `json:"error,omitempty"`
}
