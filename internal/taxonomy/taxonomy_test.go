package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsEmbeddedTaxonomy(t *testing.T) {
	tax := Default()

	assert.Greater(t, tax.Len(), 40)
	assert.Contains(t, tax.Categories(), "programming_languages")
	assert.Contains(t, tax.Categories(), "databases")

	cat, ok := tax.CategoryOf("Python")
	require.True(t, ok)
	assert.Equal(t, "programming_languages", cat)
}

func TestCategoryOf_CaseInsensitive(t *testing.T) {
	tax := Default()

	cat, ok := tax.CategoryOf("postgresql")
	require.True(t, ok)
	assert.Equal(t, "databases", cat)

	_, ok = tax.CategoryOf("underwater basket weaving")
	assert.False(t, ok)
}

func TestParse_RejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing categories", `{"skills": ["Go"]}`},
		{"wrong item type", `{"categories": {"langs": [1, 2]}}`},
		{"empty object", `{"categories": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParse_DeterministicOrderAndDedup(t *testing.T) {
	data := []byte(`{"categories": {
		"b_cat": ["Zebra", "Apple"],
		"a_cat": ["Apple", "Mango"]
	}}`)

	tax, err := Parse(data)
	require.NoError(t, err)

	// a_cat is processed first (sorted), so its "Apple" wins the dup.
	cat, ok := tax.CategoryOf("apple")
	require.True(t, ok)
	assert.Equal(t, "a_cat", cat)
	assert.Equal(t, []string{"Apple", "Mango", "Zebra"}, tax.AllSkills())
}

func TestNormalizeSkillName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"golang", "Go"},
		{"  js ", "JavaScript"},
		{"K8S", "Kubernetes"},
		{"postgres", "PostgreSQL"},
		{"Erlang", "Erlang"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeSkillName(tt.in), "input %q", tt.in)
	}
}

func TestCanonicalKey_MergesVariants(t *testing.T) {
	assert.Equal(t, CanonicalKey("golang"), CanonicalKey("Go"))
	assert.Equal(t, CanonicalKey("nodejs"), CanonicalKey("Node.js"))
}
