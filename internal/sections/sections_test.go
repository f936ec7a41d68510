package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractWorkExperience_SingleCurrentRole(t *testing.T) {
	text := "Professional Experience\n" +
		"Senior Software Engineer at Acme Corp, 2019 - present\n" +
		"Built the billing platform.\n"

	records := ExtractWorkExperience(text)

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "Senior Software Engineer", rec.Title)
	assert.Equal(t, "Acme Corp", rec.Organization)
	assert.Equal(t, "2019", rec.StartDate)
	assert.Equal(t, "present", rec.EndDate)
	assert.True(t, rec.IsCurrent)
	assert.InDelta(t, experienceConfidence, rec.Confidence, 1e-9)
	assert.NotEmpty(t, rec.RawContext)
}

func TestExtractWorkExperience_MultipleRolesAndDateFormats(t *testing.T) {
	text := "Work History\n" +
		"Software Engineer at Initech, 06/2015 - 08/2019\n" +
		"Lead Developer at Hooli, since then\n"

	records := ExtractWorkExperience(text)

	require.Len(t, records, 2)

	assert.Equal(t, "Software Engineer", records[0].Title)
	assert.Equal(t, "Initech", records[0].Organization)
	assert.Equal(t, "06/2015", records[0].StartDate)
	assert.Equal(t, "08/2019", records[0].EndDate)
	assert.False(t, records[0].IsCurrent)

	assert.Equal(t, "Lead Developer", records[1].Title)
	assert.Equal(t, "Hooli", records[1].Organization)
	assert.Empty(t, records[1].StartDate)
	assert.False(t, records[1].IsCurrent)
}

func TestExtractWorkExperience_MonthNameDates(t *testing.T) {
	text := "Experience\nData Analyst at Foo Labs, Jan 2020 - Mar 2022\n"

	records := ExtractWorkExperience(text)

	require.Len(t, records, 1)
	assert.Equal(t, "Jan 2020", records[0].StartDate)
	assert.Equal(t, "Mar 2022", records[0].EndDate)
	assert.False(t, records[0].IsCurrent)
}

func TestExtractWorkExperience_NoTitles(t *testing.T) {
	records := ExtractWorkExperience("I enjoy hiking and photography.")
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestExtractWorkExperience_DeduplicatesOverlappingPatterns(t *testing.T) {
	text := "Experience\nEngineering Manager at BigCo, 2018 - 2021\n"

	records := ExtractWorkExperience(text)

	offsets := map[string]int{}
	for _, r := range records {
		offsets[r.Title]++
	}
	for title, n := range offsets {
		assert.Equal(t, 1, n, "title %q reported more than once", title)
	}
}

func TestExtractEducation_DegreeInstitutionYear(t *testing.T) {
	text := "Education\n" +
		"Bachelor of Science in Computer Science\n" +
		"Stanford University, 2018\n" +
		"\n" +
		"Skills\nPython, Go\n"

	records := ExtractEducation(text)

	require.NotEmpty(t, records)
	rec := records[0]
	assert.Equal(t, "Bachelor of Science", rec.Degree)
	assert.Contains(t, rec.Organization, "Stanford University")
	assert.Equal(t, "2018", rec.EndDate)
	assert.False(t, rec.IsOngoing)
	assert.InDelta(t, educationConfidence, rec.Confidence, 1e-9)
}

func TestExtractEducation_StopsAtNextSection(t *testing.T) {
	text := "Education\n" +
		"MBA, 2016\n" +
		"Skills\n" +
		"PhD-level expertise in Go\n"

	records := ExtractEducation(text)

	require.NotEmpty(t, records)
	for _, r := range records {
		assert.NotEqual(t, "PhD", r.Degree, "degree matched outside the education section")
	}
}

func TestExtractEducation_OngoingDegree(t *testing.T) {
	text := "Education\nMaster of Science, expected 2027\n"

	records := ExtractEducation(text)

	require.NotEmpty(t, records)
	assert.Equal(t, "Master of Science", records[0].Degree)
	assert.True(t, records[0].IsOngoing)
}

func TestExtractEducation_NoSection(t *testing.T) {
	records := ExtractEducation("Senior Engineer at Acme, 2019 - present")
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestSplitSections_PrefixKeptAsOwnBlock(t *testing.T) {
	text := "Jane Smith\njane@example.com\nExperience\nEngineer at Acme\n"

	blocks := splitSections(text, experienceKeywords)

	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[0], "Jane Smith")
	assert.Contains(t, blocks[1], "Engineer at Acme")
}
