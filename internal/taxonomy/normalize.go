package taxonomy

import "strings"

// skillNormalizations maps common skill name variants to canonical names.
var skillNormalizations = map[string]string{
	"golang":       "Go",
	"go lang":      "Go",
	"javascript":   "JavaScript",
	"js":           "JavaScript",
	"typescript":   "TypeScript",
	"ts":           "TypeScript",
	"k8s":          "Kubernetes",
	"kubernetes":   "Kubernetes",
	"react.js":     "React",
	"reactjs":      "React",
	"vue":          "Vue.js",
	"vuejs":        "Vue.js",
	"node":         "Node.js",
	"nodejs":       "Node.js",
	"postgres":     "PostgreSQL",
	"py":           "Python",
	"sklearn":      "scikit-learn",
	"scikit learn": "scikit-learn",
	"tf":           "TensorFlow",
}

// NormalizeSkillName maps a skill name variant to its canonical form.
// Unknown names are trimmed and returned otherwise unchanged.
func NormalizeSkillName(name string) string {
	normalized := strings.TrimSpace(name)
	if normalized == "" {
		return ""
	}
	if canonical, ok := skillNormalizations[strings.ToLower(normalized)]; ok {
		return canonical
	}
	return normalized
}

// CanonicalKey returns the lowercase form used for dedup and set membership.
// Variants that normalize to the same canonical name share one key.
func CanonicalKey(name string) string {
	return strings.ToLower(NormalizeSkillName(name))
}
