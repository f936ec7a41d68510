// Package sections slices resume text into labeled blocks and pulls
// structured work-experience and education records out of them. All extraction
// is pure pattern matching over strings; dates stay as the raw strings
// matched, parsing them is left to callers.
package sections

import (
	"regexp"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/talentsift/resume-parser/internal/types"
)

// Fixed heuristic confidences per record kind.
const (
	experienceConfidence = 0.7
	educationConfidence  = 0.8

	contextWindow = 200
)

var (
	experienceKeywords = []string{"experience", "work", "employment", "career", "position"}
	educationKeywords  = []string{"education", "academic", "qualification"}

	// Headers that terminate the current block when a different section
	// starts. Keyword containment is deliberately loose; resume headers are
	// messy ("WORK EXPERIENCE:", "Professional Experience").
	endKeywords = []string{"experience", "skills", "projects", "certifications", "references"}
)

var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(Senior|Jr|Junior|Lead|Principal|Chief)?\s*(Software|Data|Machine Learning|Full Stack|Front End|Back End|DevOps|Cloud)?\s*(Engineer|Developer|Analyst|Scientist|Manager|Director|Architect|Specialist)`),
	regexp.MustCompile(`(?i)(Product|Project|Program|Engineering|Technical|Marketing|Sales)\s*(Manager|Director|Lead|Coordinator)`),
	regexp.MustCompile(`(?i)(CTO|CEO|CIO|VP|Vice President)`),
	regexp.MustCompile(`(?i)(Consultant|Contractor|Freelancer|Intern|Trainee)`),
}

// Organization usually follows the title as "at <Capitalized Name>".
var companyPattern = regexp.MustCompile(`at\s+([A-Z][a-zA-Z\s&,.-]+?)(?:\n|,|\.|\s{2,})`)

// datePattern pairs a compiled range pattern with the capture-group indices of
// its start and end dates.
type datePattern struct {
	re         *regexp.Regexp
	start, end int
}

// Tried in order; the first hit wins.
var datePatterns = []datePattern{
	{regexp.MustCompile(`(?i)(\d{1,2}/\d{4})\s*-\s*(\d{1,2}/\d{4}|present)`), 1, 2},
	{regexp.MustCompile(`(?i)(\d{4})\s*-\s*(\d{4}|present)`), 1, 2},
	{regexp.MustCompile(`(?i)((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\.?\s+\d{4})\s*-\s*((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\.?\s+(?:\d{4}|present))`), 1, 2},
}

var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(Bachelor|Master|PhD|Doctorate|Associate|Graduate)\s*(of\s*)?(Arts|Science|Engineering|Business|Fine Arts|Laws)?`),
	regexp.MustCompile(`(B\.A\.|B\.S\.|M\.A\.|M\.S\.|Ph\.D\.|MBA|BBA|BCA|MCA)`),
	regexp.MustCompile(`(?i)(BS|BA|MS|MA|PhD|MBA)\s+in\s+([A-Za-z\s]+)`),
}

var institutionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(University|College|Institute|School)\s+of\s+([A-Za-z\s]+)`),
	regexp.MustCompile(`([A-Z][a-zA-Z\s]+)\s+(University|College|Institute)`),
	regexp.MustCompile(`\b(MIT|Stanford|Harvard|Berkeley|UCLA|USC|NYU|CMU)\b`),
}

var yearPattern = regexp.MustCompile(`(19|20)\d{2}`)

// ExtractWorkExperience returns one record per distinct job-title match found
// inside experience-flavored sections. Records are deduplicated by their match
// offset within a section so overlapping title patterns do not double-report
// the same position.
func ExtractWorkExperience(text string) []types.WorkExperienceRecord {
	records := []types.WorkExperienceRecord{}

	for _, section := range splitSections(text, experienceKeywords) {
		seen := mapset.NewThreadUnsafeSet[int]()
		for _, p := range titlePatterns {
			for _, loc := range p.FindAllStringIndex(section, -1) {
				title := strings.TrimSpace(section[loc[0]:loc[1]])
				if title == "" || !seen.Add(loc[0]) {
					continue
				}

				context := window(section, loc[1], contextWindow)
				start, end := findDateRange(context)

				rec := types.WorkExperienceRecord{
					Title:      title,
					StartDate:  start,
					EndDate:    end,
					IsCurrent:  strings.Contains(strings.ToLower(end), "present"),
					RawContext: context,
					Confidence: experienceConfidence,
				}
				if m := companyPattern.FindStringSubmatch(context); m != nil {
					rec.Organization = strings.TrimSpace(m[1])
				}
				records = append(records, rec)
			}
		}
	}

	return records
}

// ExtractEducation returns one record per distinct degree match inside the
// education section. The graduation year, when found, is stored as the end
// date.
func ExtractEducation(text string) []types.EducationRecord {
	records := []types.EducationRecord{}
	section := extractSection(text, educationKeywords)
	if section == "" {
		return records
	}

	seen := mapset.NewThreadUnsafeSet[int]()
	for _, p := range degreePatterns {
		for _, loc := range p.FindAllStringIndex(section, -1) {
			degree := strings.TrimSpace(section[loc[0]:loc[1]])
			if degree == "" || !seen.Add(loc[0]) {
				continue
			}

			ctxStart := loc[0] - 100
			if ctxStart < 0 {
				ctxStart = 0
			}
			context := section[ctxStart:min(len(section), loc[1]+contextWindow)]

			rec := types.EducationRecord{
				Degree:     degree,
				RawContext: context,
				Confidence: educationConfidence,
			}
			for _, ip := range institutionPatterns {
				if m := ip.FindString(context); m != "" {
					rec.Organization = strings.TrimSpace(m)
					break
				}
			}
			if year := yearPattern.FindString(context); year != "" {
				rec.EndDate = year
			}
			lower := strings.ToLower(context)
			rec.IsOngoing = strings.Contains(lower, "present") ||
				strings.Contains(lower, "expected") ||
				strings.Contains(lower, "in progress")

			records = append(records, rec)
		}
	}

	return records
}

// findDateRange tries each date-range pattern in order and returns the first
// start/end pair, or empty strings.
func findDateRange(context string) (string, string) {
	for _, dp := range datePatterns {
		if m := dp.re.FindStringSubmatch(context); m != nil {
			return m[dp.start], m[dp.end]
		}
	}
	return "", ""
}

// splitSections cuts text into blocks, starting a new block at every line that
// mentions one of the keywords. The prefix before the first such line is its
// own block, so titles above an explicit header are still visible.
func splitSections(text string, keywords []string) []string {
	lines := strings.Split(text, "\n")
	sections := []string{}
	current := []string{}

	for _, line := range lines {
		if containsAny(strings.ToLower(line), keywords) && len(current) > 0 {
			sections = append(sections, strings.Join(current, "\n"))
			current = current[:0]
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		sections = append(sections, strings.Join(current, "\n"))
	}
	return sections
}

// extractSection returns the block starting at the first line mentioning one
// of the keywords and ending just before a line that reads as a different
// section header.
func extractSection(text string, keywords []string) string {
	var sectionLines []string
	inSection := false

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)

		if containsAny(lower, keywords) {
			inSection = true
			sectionLines = append(sectionLines, line)
			continue
		}

		if inSection && strings.TrimSpace(line) != "" && !strings.HasPrefix(line, " ") {
			if containsAny(lower, endKeywords) && !containsAny(lower, keywords) {
				break
			}
		}

		if inSection {
			sectionLines = append(sectionLines, line)
		}
	}

	return strings.Join(sectionLines, "\n")
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// window returns up to n bytes of s starting at from.
func window(s string, from, n int) string {
	if from >= len(s) {
		return ""
	}
	return s[from:min(len(s), from+n)]
}
