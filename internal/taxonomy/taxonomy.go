// Package taxonomy holds the curated skill reference data used by the skill
// extractor and the match scorer. A Taxonomy is loaded once at initialization
// and is read-only afterward, so it is safe for unsynchronized concurrent use.
package taxonomy

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/talentsift/resume-parser/internal/schemas"
)

//go:embed taxonomy.schema.json
var taxonomySchema []byte

//go:embed default_taxonomy.json
var defaultTaxonomy []byte

// Taxonomy maps skill categories to their skill names and supports reverse
// lookup from a normalized skill name to its category.
type Taxonomy struct {
	categories map[string][]string
	categoryOf map[string]string // normalized skill name -> category
	all        []string          // every skill name, stable order
}

type taxonomyFile struct {
	Categories map[string][]string `json:"categories"`
}

// Default returns the built-in taxonomy. It panics only if the embedded data
// is corrupt, which is a build error, not a runtime condition.
func Default() *Taxonomy {
	tax, err := Parse(defaultTaxonomy)
	if err != nil {
		panic(fmt.Sprintf("embedded taxonomy is invalid: %v", err))
	}
	return tax
}

// LoadFile reads and parses a taxonomy JSON file.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates raw taxonomy JSON against the taxonomy schema and builds
// the lookup structures.
func Parse(data []byte) (*Taxonomy, error) {
	if err := schemas.ValidateBytes(taxonomySchema, data); err != nil {
		return nil, fmt.Errorf("taxonomy rejected: %w", err)
	}

	var file taxonomyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy JSON: %w", err)
	}

	tax := &Taxonomy{
		categories: make(map[string][]string, len(file.Categories)),
		categoryOf: make(map[string]string),
	}

	// Deterministic iteration keeps AllSkills ordering stable across loads.
	catNames := make([]string, 0, len(file.Categories))
	for name := range file.Categories {
		catNames = append(catNames, name)
	}
	sort.Strings(catNames)

	for _, cat := range catNames {
		for _, skill := range file.Categories[cat] {
			skill = strings.TrimSpace(skill)
			if skill == "" {
				continue
			}
			key := strings.ToLower(skill)
			if _, dup := tax.categoryOf[key]; dup {
				continue
			}
			tax.categories[cat] = append(tax.categories[cat], skill)
			tax.categoryOf[key] = cat
			tax.all = append(tax.all, skill)
		}
	}

	if len(tax.all) == 0 {
		return nil, fmt.Errorf("taxonomy contains no skills")
	}
	return tax, nil
}

// AllSkills returns every skill name in a stable order. The returned slice is
// shared and must not be modified.
func (t *Taxonomy) AllSkills() []string {
	return t.all
}

// Categories returns the category names in sorted order.
func (t *Taxonomy) Categories() []string {
	names := make([]string, 0, len(t.categories))
	for name := range t.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Skills returns the skill names in one category.
func (t *Taxonomy) Skills(category string) []string {
	return t.categories[category]
}

// CategoryOf returns the category of a skill name, matching
// case-insensitively. The second return value reports whether the skill is
// known.
func (t *Taxonomy) CategoryOf(skill string) (string, bool) {
	cat, ok := t.categoryOf[strings.ToLower(strings.TrimSpace(skill))]
	return cat, ok
}

// Len returns the total number of skills.
func (t *Taxonomy) Len() int {
	return len(t.all)
}
