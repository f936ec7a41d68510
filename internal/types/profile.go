// Package types defines the shared data structures exchanged between the
// extraction stages and the match scorer.
package types

import (
	"time"

	"github.com/google/uuid"
)

// ExtractedEntity is a typed span of text found by the entity extraction
// engine. Instances are immutable once produced; Start and End are byte
// offsets into the source text.
type ExtractedEntity struct {
	Text       string  `json:"text"`
	Type       string  `json:"type"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Confidence float64 `json:"confidence"`
}

// ContactInfo holds contact details located by pattern matching. Every field
// is optional; an empty string means the pattern found nothing.
type ContactInfo struct {
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
	GitHubURL   string `json:"github_url,omitempty"`
	WebsiteURL  string `json:"website_url,omitempty"`
}

// IsEmpty reports whether no contact field was populated.
func (c ContactInfo) IsEmpty() bool {
	return c == ContactInfo{}
}

// SkillMention is a taxonomy skill located in the text, with a heuristic
// confidence and the first sentence it appears in as supporting context.
type SkillMention struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Context    string  `json:"context,omitempty"`
}

// Certification is a credential matched against the fixed certification
// pattern list.
type Certification struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// WorkExperienceRecord is a single position extracted from the work
// experience section. Dates are kept as the raw strings matched in the text;
// no date parsing is attempted at this layer.
type WorkExperienceRecord struct {
	Title        string  `json:"title"`
	Organization string  `json:"organization,omitempty"`
	StartDate    string  `json:"start_date,omitempty"`
	EndDate      string  `json:"end_date,omitempty"`
	IsCurrent    bool    `json:"is_current"`
	RawContext   string  `json:"raw_context,omitempty"`
	Confidence   float64 `json:"confidence"`
}

// EducationRecord is a single degree extracted from the education section.
type EducationRecord struct {
	Degree       string  `json:"degree"`
	Organization string  `json:"organization,omitempty"`
	StartDate    string  `json:"start_date,omitempty"`
	EndDate      string  `json:"end_date,omitempty"`
	IsOngoing    bool    `json:"is_ongoing"`
	RawContext   string  `json:"raw_context,omitempty"`
	Confidence   float64 `json:"confidence"`
}

// ParsedProfile aggregates the output of all four extraction stages for one
// document. The pipeline holds no reference to it after returning; the caller
// owns it exclusively.
type ParsedProfile struct {
	ID             uuid.UUID              `json:"id"`
	ParsedAt       time.Time              `json:"parsed_at"`
	Entities       []ExtractedEntity      `json:"entities"`
	Contact        ContactInfo            `json:"contact"`
	Skills         []SkillMention         `json:"skills"`
	Certifications []Certification        `json:"certifications"`
	WorkExperience []WorkExperienceRecord `json:"work_experience"`
	Education      []EducationRecord      `json:"education"`
}

// NewProfile returns an empty profile stamped with a fresh ID and the current
// time. All slices are non-nil so callers and JSON consumers never see null.
func NewProfile() *ParsedProfile {
	return &ParsedProfile{
		ID:             uuid.New(),
		ParsedAt:       time.Now().UTC(),
		Entities:       []ExtractedEntity{},
		Skills:         []SkillMention{},
		Certifications: []Certification{},
		WorkExperience: []WorkExperienceRecord{},
		Education:      []EducationRecord{},
	}
}
