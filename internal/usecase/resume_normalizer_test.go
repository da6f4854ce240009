package usecase_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/usecase"
	"go-ats-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func mustParse(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestNormalizeExtractionEmptyReply(t *testing.T) {
	got := usecase.NormalizeExtraction(map[string]interface{}{})

	assert.Equal(t, "", got.FirstName)
	assert.Equal(t, "", got.Email)
	assert.NotNil(t, got.Skills)
	assert.NotNil(t, got.Education)
	assert.NotNil(t, got.Experience)
	assert.NotNil(t, got.Projects)
	assert.NotNil(t, got.Certifications)
	assert.Empty(t, got.Skills)

	// The empty result still serializes with every key present
	raw, err := json.Marshal(got)
	require.NoError(t, err)
	for _, key := range []string{"firstName", "email", "skills", "education", "experience", "projects", "certifications", "resumeUrl"} {
		assert.Contains(t, string(raw), `"`+key+`"`)
	}
}

func TestNormalizeExtractionPersonalInfoPlacement(t *testing.T) {
	t.Run("Should read nested PERSONAL_INFO", func(t *testing.T) {
		got := usecase.NormalizeExtraction(mustParse(t, `{
			"PERSONAL_INFO": {"firstName": "Priya", "lastName": "Sharma", "email": "priya@example.com"}
		}`))
		assert.Equal(t, "Priya", got.FirstName)
		assert.Equal(t, "Sharma", got.LastName)
		assert.Equal(t, "priya@example.com", got.Email)
	})

	t.Run("Should read nested personalInfo", func(t *testing.T) {
		got := usecase.NormalizeExtraction(mustParse(t, `{
			"personalInfo": {"firstName": "Arun", "phone": "+91 98765 43210"}
		}`))
		assert.Equal(t, "Arun", got.FirstName)
		assert.Equal(t, "+91 98765 43210", got.Phone)
	})

	t.Run("Should read top-level fields", func(t *testing.T) {
		got := usecase.NormalizeExtraction(mustParse(t, `{
			"firstName": "Neha", "currentTitle": "Data Scientist"
		}`))
		assert.Equal(t, "Neha", got.FirstName)
		assert.Equal(t, "Data Scientist", got.CurrentTitle)
	})

	t.Run("Should fall back to top level per field", func(t *testing.T) {
		got := usecase.NormalizeExtraction(mustParse(t, `{
			"personalInfo": {"firstName": "Ravi"},
			"lastName": "Kumar"
		}`))
		assert.Equal(t, "Ravi", got.FirstName)
		assert.Equal(t, "Kumar", got.LastName)
	})

	t.Run("Should ignore non-string values", func(t *testing.T) {
		got := usecase.NormalizeExtraction(mustParse(t, `{"firstName": 42, "email": null}`))
		assert.Equal(t, "", got.FirstName)
		assert.Equal(t, "", got.Email)
	})
}

func TestNormalizeExtractionCollectionKeys(t *testing.T) {
	t.Run("Should read UPPER_SNAKE collection keys", func(t *testing.T) {
		got := usecase.NormalizeExtraction(mustParse(t, `{
			"SKILLS": [{"name": "Go", "proficiencyLevel": "advanced"}],
			"EDUCATION": [{"institutionName": "IIT Delhi"}],
			"EXPERIENCE": [{"companyName": "Infosys", "title": "Engineer"}],
			"PROJECTS": [{"name": "Billing API"}],
			"CERTIFICATIONS": [{"name": "CKA"}]
		}`))
		require.Len(t, got.Skills, 1)
		assert.Equal(t, "Go", got.Skills[0].Name)
		require.Len(t, got.Education, 1)
		assert.Equal(t, "IIT Delhi", got.Education[0].InstitutionName)
		require.Len(t, got.Experience, 1)
		require.Len(t, got.Projects, 1)
		require.Len(t, got.Certifications, 1)
	})

	t.Run("Should read camelCase collection keys", func(t *testing.T) {
		got := usecase.NormalizeExtraction(mustParse(t, `{
			"skills": ["Python", "SQL"]
		}`))
		require.Len(t, got.Skills, 2)
		assert.Equal(t, "Python", got.Skills[0].Name)
		assert.Equal(t, domain.ProficiencyIntermediate, got.Skills[0].ProficiencyLevel)
	})

	t.Run("Should prefer UPPER_SNAKE when both are present", func(t *testing.T) {
		got := usecase.NormalizeExtraction(mustParse(t, `{
			"SKILLS": [{"name": "Kubernetes"}],
			"skills": [{"name": "Docker"}]
		}`))
		require.Len(t, got.Skills, 1)
		assert.Equal(t, "Kubernetes", got.Skills[0].Name)
	})

	t.Run("Should drop unreadable entries and keep the rest", func(t *testing.T) {
		got := usecase.NormalizeExtraction(mustParse(t, `{
			"education": [{"institutionName": "NIT Trichy"}, 17, {"institutionName": "Anna University"}]
		}`))
		require.Len(t, got.Education, 2)
		assert.Equal(t, "NIT Trichy", got.Education[0].InstitutionName)
		assert.Equal(t, "Anna University", got.Education[1].InstitutionName)
	})

	t.Run("Should tolerate a non-array collection value", func(t *testing.T) {
		got := usecase.NormalizeExtraction(mustParse(t, `{"skills": "Go, Python"}`))
		assert.Empty(t, got.Skills)
	})
}

func TestNormalizeExtractionSkillShapes(t *testing.T) {
	got := usecase.NormalizeExtraction(mustParse(t, `{
		"skills": [
			"Terraform",
			{"name": "Go", "proficiencyLevel": "expert", "yearsOfExperience": 5}
		]
	}`))
	require.Len(t, got.Skills, 2)

	assert.Equal(t, "Terraform", got.Skills[0].Name)
	assert.Equal(t, domain.ProficiencyIntermediate, got.Skills[0].ProficiencyLevel)
	assert.Nil(t, got.Skills[0].YearsOfExperience)

	assert.Equal(t, "Go", got.Skills[1].Name)
	assert.Equal(t, domain.ProficiencyExpert, got.Skills[1].ProficiencyLevel)
	require.NotNil(t, got.Skills[1].YearsOfExperience)
	assert.Equal(t, 5.0, *got.Skills[1].YearsOfExperience)
}

func TestNormalizeExtractionFullReply(t *testing.T) {
	got := usecase.NormalizeExtraction(mustParse(t, `{
		"personalInfo": {
			"firstName": "Priya", "lastName": "Sharma", "email": "priya@example.com",
			"location": "Bangalore", "linkedinUrl": "https://linkedin.com/in/priya"
		},
		"experience": [{
			"companyName": "Flipkart", "title": "SDE II", "startDate": "2021-06",
			"endDate": "Present", "isCurrent": true,
			"responsibilities": ["Owned checkout service"],
			"achievements": ["Cut p99 latency 40%"]
		}],
		"projects": [{"name": "Inventory sync", "technologies": ["Go", "Kafka"]}]
	}`))

	assert.Equal(t, "Bangalore", got.Location)
	require.Len(t, got.Experience, 1)
	assert.True(t, got.Experience[0].IsCurrent)
	assert.Equal(t, []string{"Owned checkout service"}, got.Experience[0].Responsibilities)
	require.Len(t, got.Projects, 1)
	assert.Equal(t, []string{"Go", "Kafka"}, got.Projects[0].Technologies)
	assert.Equal(t, "", got.ResumeURL)
}
