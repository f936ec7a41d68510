// Package contact extracts contact details from resume text with ordered
// regular-expression patterns. Everything here is a pure function over
// strings so it stays unit-testable without any model dependency.
package contact

import (
	"regexp"
	"strings"

	"github.com/talentsift/resume-parser/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`(?i)[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// Phone patterns are tried in fixed order; the first hit wins.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),                      // national, optionally parenthesized
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{3,4}[-.\s]?\d{3,4}([-.\s]?\d{3,4})?`),   // international
		regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),                            // plain digits
	}

	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
	urlPattern      = regexp.MustCompile("https?://[^\\s<>\"{}|\\\\^`\\[\\]]+")
)

// Extract scans text for contact fields. Each field takes its first match;
// missing fields stay empty. Website extraction skips URLs already claimed by
// the LinkedIn and GitHub patterns.
func Extract(text string) types.ContactInfo {
	info := types.ContactInfo{}

	if m := emailPattern.FindString(text); m != "" {
		info.Email = m
	}

	for _, p := range phonePatterns {
		if m := p.FindString(text); m != "" {
			info.Phone = m
			break
		}
	}

	if m := linkedinPattern.FindString(text); m != "" {
		info.LinkedInURL = "https://" + m
	}
	if m := githubPattern.FindString(text); m != "" {
		info.GitHubURL = "https://" + m
	}

	for _, url := range urlPattern.FindAllString(text, -1) {
		lower := strings.ToLower(url)
		if strings.Contains(lower, "linkedin") || strings.Contains(lower, "github") {
			continue
		}
		info.WebsiteURL = url
		break
	}

	return info
}
