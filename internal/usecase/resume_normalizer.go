package usecase

import (
	"encoding/json"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/logger"
)

// NormalizeExtraction converts an untyped model reply into the canonical
// extraction shape. The model is tolerated, never trusted: personal info may
// sit under PERSONAL_INFO, personalInfo, or at the top level; collections may
// use UPPER_SNAKE or camelCase keys; skills may be bare strings. Anything
// missing or unreadable collapses to the zero value, so callers always get a
// fully populated struct.
func NormalizeExtraction(parsed map[string]interface{}) *domain.ResumeExtraction {
	personal := subObject(parsed, "PERSONAL_INFO", "personalInfo")
	if personal == nil {
		personal = parsed
	}

	out := &domain.ResumeExtraction{
		FirstName:      stringField(personal, parsed, "firstName"),
		LastName:       stringField(personal, parsed, "lastName"),
		Email:          stringField(personal, parsed, "email"),
		Phone:          stringField(personal, parsed, "phone"),
		CurrentTitle:   stringField(personal, parsed, "currentTitle"),
		CurrentCompany: stringField(personal, parsed, "currentCompany"),
		Location:       stringField(personal, parsed, "location"),
		LinkedinURL:    stringField(personal, parsed, "linkedinUrl"),
		PortfolioURL:   stringField(personal, parsed, "portfolioUrl"),
		Summary:        stringField(personal, parsed, "summary"),
		Skills:         []domain.SkillEntry{},
		Education:      []domain.EducationEntry{},
		Experience:     []domain.ExperienceEntry{},
		Projects:       []domain.ProjectEntry{},
		Certifications: []domain.CertificationEntry{},
	}

	decodeCollection(parsed, &out.Skills, "SKILLS", "skills")
	decodeCollection(parsed, &out.Education, "EDUCATION", "education")
	decodeCollection(parsed, &out.Experience, "EXPERIENCE", "experience")
	decodeCollection(parsed, &out.Projects, "PROJECTS", "projects")
	decodeCollection(parsed, &out.Certifications, "CERTIFICATIONS", "certifications")

	return out
}

// subObject returns the first key that holds a JSON object.
func subObject(m map[string]interface{}, keys ...string) map[string]interface{} {
	for _, key := range keys {
		if obj, ok := m[key].(map[string]interface{}); ok {
			return obj
		}
	}
	return nil
}

// stringField reads a string from the personal-info object, falling back to
// the top-level reply the way lenient models sometimes emit it.
func stringField(personal, top map[string]interface{}, key string) string {
	if s, ok := personal[key].(string); ok && s != "" {
		return s
	}
	if s, ok := top[key].(string); ok {
		return s
	}
	return ""
}

// decodeCollection finds the first matching key holding an array and decodes
// each element into dst's entry type. Elements that cannot be decoded are
// dropped rather than failing the whole reply.
func decodeCollection[T any](m map[string]interface{}, dst *[]T, keys ...string) {
	var items []interface{}
	for _, key := range keys {
		if arr, ok := m[key].([]interface{}); ok {
			items = arr
			break
		}
	}
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			continue
		}
		var entry T
		if err := json.Unmarshal(raw, &entry); err != nil {
			logger.Log.Warn("Dropping unreadable extraction entry", "error", err)
			continue
		}
		*dst = append(*dst, entry)
	}
}
