package domain

import (
	"context"
	"encoding/json"
	"strings"
)

// Proficiency levels for a candidate skill.
const (
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
	ProficiencyExpert       = "expert"
)

// ResumeUpload describes a spooled multipart upload handed to the pipeline.
type ResumeUpload struct {
	TempPath     string
	OriginalName string
	DeclaredMIME string
	Size         int64
}

// ResumeExtraction is the fully-defaulted, schema-conforming result of the
// ingestion pipeline. It is the only trusted shape in the system: the raw
// model reply stays an untyped map until the normalizer produces one of
// these. Every scalar defaults to "" and every collection to an empty slice.
type ResumeExtraction struct {
	FirstName      string               `json:"firstName"`
	LastName       string               `json:"lastName"`
	Email          string               `json:"email"`
	Phone          string               `json:"phone"`
	CurrentTitle   string               `json:"currentTitle"`
	CurrentCompany string               `json:"currentCompany"`
	Location       string               `json:"location"`
	LinkedinURL    string               `json:"linkedinUrl"`
	PortfolioURL   string               `json:"portfolioUrl"`
	Summary        string               `json:"summary"`
	Skills         []SkillEntry         `json:"skills"`
	Education      []EducationEntry     `json:"education"`
	Experience     []ExperienceEntry    `json:"experience"`
	Projects       []ProjectEntry       `json:"projects"`
	Certifications []CertificationEntry `json:"certifications"`
	ResumeURL      string               `json:"resumeUrl"`
}

// SkillEntry tolerates both the object shape the prompt asks for and a bare
// string, which the model (and edited payloads) sometimes produce.
type SkillEntry struct {
	Name              string   `json:"name"`
	ProficiencyLevel  string   `json:"proficiencyLevel"`
	YearsOfExperience *float64 `json:"yearsOfExperience"`
}

func (s *SkillEntry) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*s = SkillEntry{Name: name, ProficiencyLevel: ProficiencyIntermediate}
		return nil
	}
	type plain SkillEntry
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = SkillEntry(p)
	return nil
}

// Blank reports whether the entry carries no usable skill name.
func (s SkillEntry) Blank() bool {
	return strings.TrimSpace(s.Name) == ""
}

type EducationEntry struct {
	InstitutionName string   `json:"institutionName"`
	DegreeName      string   `json:"degreeName"`
	FieldOfStudy    string   `json:"fieldOfStudy"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
	GPA             *float64 `json:"gpa"`
	Percentage      *float64 `json:"percentage"`
	Honors          string   `json:"honors"`
	Description     string   `json:"description"`
}

type ExperienceEntry struct {
	CompanyName      string   `json:"companyName"`
	Title            string   `json:"title"`
	Location         string   `json:"location"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	IsCurrent        bool     `json:"isCurrent"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Achievements     []string `json:"achievements"`
}

type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Role         string   `json:"role"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
}

type CertificationEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	URL    string `json:"url"`
}

type ResumeUsecase interface {
	// Parse runs the full ingestion pipeline on an upload: format
	// normalization, text extraction, structured extraction, response
	// normalization, and durable storage of the original file.
	Parse(ctx context.Context, upload ResumeUpload) (*ResumeExtraction, error)
}
