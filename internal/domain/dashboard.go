package domain

import (
	"context"
	"time"
)

// Pipeline stage types, in funnel order.
const (
	StageApplied   = "applied"
	StageScreening = "screening"
	StageInterview = "interview"
	StageOffer     = "offer"
	StageHired     = "hired"
)

type DashboardStats struct {
	TotalCandidates int `json:"total_candidates"`
	ActiveJobs      int `json:"active_jobs"`
	InterviewsToday int `json:"interviews_today"`
	OffersSent      int `json:"offers_sent"`
}

// CandidateCard is a row of the dashboard candidate list.
type CandidateCard struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Score       int    `json:"score"`
	Experience  string `json:"experience"`
	Status      string `json:"status"`
	AppliedDate string `json:"appliedDate"`
}

type JobCard struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Department    string `json:"department"`
	Location      string `json:"location"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	Applicants    int    `json:"applicants"`
	NewApplicants int    `json:"newApplicants"`
	Posted        string `json:"posted"`
	Salary        string `json:"salary"`
}

type InterviewCard struct {
	ID          string `json:"id"`
	Candidate   string `json:"candidate"`
	Position    string `json:"position"`
	Type        string `json:"type"`
	Time        string `json:"time"`
	Date        string `json:"date"`
	Interviewer string `json:"interviewer"`
	Status      string `json:"status"`
}

type PipelineStage struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

type ActivityItem struct {
	Action string `json:"action"`
	Detail string `json:"detail"`
	Time   string `json:"time"`
}

// Raw repository rows; presentation formatting happens in the usecase.

type CandidateRow struct {
	ID        string
	Name      string
	Title     *string
	Company   *string
	Location  *string
	Score     *float64
	Years     *float64
	Status    *string
	AppliedAt *time.Time
}

type JobRow struct {
	ID             string
	Title          string
	Department     *string
	Location       *string
	JobType        *string
	Status         string
	Applicants     *int
	NewApplicants  *int
	PublishedAt    *time.Time
	SalaryMin      *int64
	SalaryMax      *int64
	CurrencySymbol *string
}

type InterviewRow struct {
	ID            string
	Candidate     string
	Position      string
	InterviewType *string
	ScheduledAt   time.Time
	Status        string
	Interviewer   *string
}

type StageCount struct {
	StageType string
	Count     int
}

type ActivityRow struct {
	Type      string
	Action    string
	Detail    string
	Timestamp time.Time
}

type DashboardRepository interface {
	Stats(ctx context.Context, orgID string) (*DashboardStats, error)
	TopCandidates(ctx context.Context, orgID string, limit int) ([]CandidateRow, error)
	Jobs(ctx context.Context, orgID string) ([]JobRow, error)
	UpcomingInterviews(ctx context.Context, orgID string, limit int) ([]InterviewRow, error)
	PipelineCounts(ctx context.Context, orgID string) ([]StageCount, error)
	RecentActivity(ctx context.Context, orgID string, limit int) ([]ActivityRow, error)
}

type DashboardUsecase interface {
	Stats(ctx context.Context, orgID string) (*DashboardStats, error)
	Candidates(ctx context.Context, orgID string) ([]CandidateCard, error)
	Jobs(ctx context.Context, orgID string) ([]JobCard, error)
	Interviews(ctx context.Context, orgID string) ([]InterviewCard, error)
	Pipeline(ctx context.Context, orgID string) ([]PipelineStage, error)
	Activity(ctx context.Context, orgID string) ([]ActivityItem, error)
}
