package domain

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// ErrDuplicateEmail distinguishes the one constraint violation that gets a
// specific user-facing message instead of the generic failure.
var ErrDuplicateEmail = errors.New("a candidate with this email already exists")

// CandidateInput is the payload of a create submission: the normalized
// extraction (possibly user-edited) plus the stored resume reference.
type CandidateInput struct {
	FirstName      string               `json:"firstName" validate:"required"`
	LastName       string               `json:"lastName" validate:"required"`
	Email          string               `json:"email" validate:"required,email"`
	Phone          string               `json:"phone"`
	CurrentTitle   string               `json:"currentTitle"`
	CurrentCompany string               `json:"currentCompany"`
	Location       string               `json:"location"`
	LinkedinURL    string               `json:"linkedinUrl"`
	PortfolioURL   string               `json:"portfolioUrl"`
	Summary        string               `json:"summary"`
	ResumeURL      string               `json:"resumeUrl"`
	Skills         []SkillEntry         `json:"skills"`
	Education      []EducationEntry     `json:"education"`
	Experience     []ExperienceEntry    `json:"experience"`
	Projects       []ProjectEntry       `json:"projects"`
	Certifications []CertificationEntry `json:"certifications"`
}

// CandidateSummary is the slice of the new row returned after creation.
type CandidateSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// SavedCounts reports per-collection sizes of the submitted payload.
type SavedCounts struct {
	Skills     int `json:"skills"`
	Education  int `json:"education"`
	Experience int `json:"experience"`
	Projects   int `json:"projects"`
}

// ---------------------------------------------------------------------------
// Update payload. Child collections arrive in snake_case row shape (the edit
// form round-trips the read endpoint's rows) and are replaced wholesale.
// ---------------------------------------------------------------------------

type CandidateUpdateInput struct {
	FirstName      string             `json:"firstName" validate:"required"`
	LastName       string             `json:"lastName" validate:"required"`
	Email          string             `json:"email" validate:"required,email"`
	Phone          string             `json:"phone"`
	CurrentTitle   string             `json:"currentTitle"`
	CurrentCompany string             `json:"currentCompany"`
	Location       string             `json:"location"`
	LinkedinURL    string             `json:"linkedinUrl"`
	PortfolioURL   string             `json:"portfolioUrl"`
	Summary        string             `json:"summary"`
	Skills         []SkillUpdate      `json:"skills"`
	Education      []EducationUpdate  `json:"education"`
	Experience     []ExperienceUpdate `json:"experience"`
	Projects       []ProjectUpdate    `json:"projects"`
}

// SkillUpdate tolerates a bare string the same way SkillEntry does.
type SkillUpdate struct {
	SkillName         string   `json:"skill_name"`
	ProficiencyLevel  string   `json:"proficiency_level"`
	YearsOfExperience *float64 `json:"years_of_experience"`
}

func (s *SkillUpdate) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*s = SkillUpdate{SkillName: name}
		return nil
	}
	type plain SkillUpdate
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = SkillUpdate(p)
	return nil
}

type EducationUpdate struct {
	InstitutionName string `json:"institution_name"`
	DegreeName      string `json:"degree_name"`
	FieldOfStudy    string `json:"field_of_study_text"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	IsCurrent       bool   `json:"is_current"`
}

type ExperienceUpdate struct {
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location_text"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsCurrent   bool   `json:"is_current"`
	Description string `json:"description"`
}

type ProjectUpdate struct {
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// ---------------------------------------------------------------------------
// Read model: the stored candidate graph for display/edit pre-population.
// ---------------------------------------------------------------------------

type Candidate struct {
	ID                   string     `json:"id"`
	OrganizationID       string     `json:"organization_id"`
	FirstName            string     `json:"first_name"`
	LastName             string     `json:"last_name"`
	Email                string     `json:"email"`
	Phone                *string    `json:"phone"`
	CurrentTitle         *string    `json:"current_title"`
	CurrentCompany       *string    `json:"current_company"`
	CityID               *string    `json:"city_id"`
	CityName             *string    `json:"city_name"`
	CountryName          *string    `json:"country_name"`
	LinkedinURL          *string    `json:"linkedin_url"`
	PortfolioURL         *string    `json:"portfolio_url"`
	ProfileSummary       *string    `json:"profile_summary"`
	ResumeURL            *string    `json:"resume_url"`
	Status               string     `json:"status"`
	TotalExperienceYears *float64   `json:"total_experience_years"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

type CandidateSkillRow struct {
	ID                string   `json:"id"`
	SkillID           string   `json:"skill_id"`
	SkillName         string   `json:"skill_name"`
	CanonicalName     string   `json:"canonical_name"`
	ProficiencyLevel  *string  `json:"proficiency_level"`
	YearsOfExperience *float64 `json:"years_of_experience"`
	Source            *string  `json:"source"`
	SortOrder         int      `json:"sort_order"`
}

type CandidateEducationRow struct {
	ID              string     `json:"id"`
	InstitutionName string     `json:"institution_name"`
	DegreeName      *string    `json:"degree_name"`
	FieldOfStudy    *string    `json:"field_of_study_text"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	IsCurrent       bool       `json:"is_current"`
	GPA             *float64   `json:"gpa"`
	Percentage      *float64   `json:"percentage"`
	Honors          *string    `json:"honors"`
	Description     *string    `json:"description"`
	SortOrder       int        `json:"sort_order"`
}

type CandidateExperienceRow struct {
	ID               string     `json:"id"`
	CompanyName      string     `json:"company_name"`
	Title            string     `json:"title"`
	Location         *string    `json:"location_text"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	IsCurrent        bool       `json:"is_current"`
	Description      *string    `json:"description"`
	Responsibilities *string    `json:"responsibilities"`
	Achievements     *string    `json:"achievements"`
	SortOrder        int        `json:"sort_order"`
}

type CandidateProjectRow struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description"`
	Role         *string    `json:"role"`
	URL          *string    `json:"url"`
	Technologies []string   `json:"technologies"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	SortOrder    int        `json:"sort_order"`
}

type CandidateGraph struct {
	Candidate
	Skills     []CandidateSkillRow      `json:"skills"`
	Education  []CandidateEducationRow  `json:"education"`
	Experience []CandidateExperienceRow `json:"experience"`
	Projects   []CandidateProjectRow    `json:"projects"`
}

type CandidateRepository interface {
	// Create writes the whole candidate graph in one transaction and returns
	// the inserted identity row. Individual malformed child entries are
	// skipped; a failure on the candidate row itself aborts everything.
	Create(ctx context.Context, orgID string, in *CandidateInput) (*CandidateSummary, error)
	// Update re-resolves the location, updates the scalar columns, and
	// replaces every child collection inside one transaction.
	Update(ctx context.Context, orgID, candidateID string, in *CandidateUpdateInput) error
	GetByID(ctx context.Context, candidateID string) (*CandidateGraph, error)
}

type CandidateUsecase interface {
	Create(ctx context.Context, orgID string, in *CandidateInput) (*CandidateSummary, *SavedCounts, error)
	Update(ctx context.Context, orgID, candidateID string, in *CandidateUpdateInput) error
	Get(ctx context.Context, candidateID string) (*CandidateGraph, error)
}
