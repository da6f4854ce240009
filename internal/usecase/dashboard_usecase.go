package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-ats-backend/internal/domain"
)

type dashboardUsecase struct {
	dashboardRepo domain.DashboardRepository
	now           func() time.Time
}

func NewDashboardUsecase(dashboardRepo domain.DashboardRepository) domain.DashboardUsecase {
	return &dashboardUsecase{
		dashboardRepo: dashboardRepo,
		now:           time.Now,
	}
}

func (u *dashboardUsecase) Stats(ctx context.Context, orgID string) (*domain.DashboardStats, error) {
	return u.dashboardRepo.Stats(ctx, orgID)
}

func (u *dashboardUsecase) Candidates(ctx context.Context, orgID string) ([]domain.CandidateCard, error) {
	rows, err := u.dashboardRepo.TopCandidates(ctx, orgID, 10)
	if err != nil {
		return nil, err
	}

	cards := make([]domain.CandidateCard, 0, len(rows))
	for _, row := range rows {
		card := domain.CandidateCard{
			ID:          row.ID,
			Name:        row.Name,
			Location:    "India",
			Score:       75,
			Experience:  "N/A",
			Status:      "active",
			AppliedDate: "Recently",
		}
		if row.Title != nil {
			card.Title = *row.Title
		}
		if row.Company != nil {
			card.Company = *row.Company
		}
		if row.Location != nil && *row.Location != "" {
			card.Location = *row.Location
		}
		if row.Score != nil && *row.Score != 0 {
			card.Score = int(*row.Score)
		}
		if row.Years != nil {
			card.Experience = fmt.Sprintf("%g years", *row.Years)
		}
		if row.Status != nil && *row.Status != "" {
			card.Status = *row.Status
		}
		if row.AppliedAt != nil {
			card.AppliedDate = formatTimeAgo(*row.AppliedAt, u.now())
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func (u *dashboardUsecase) Jobs(ctx context.Context, orgID string) ([]domain.JobCard, error) {
	rows, err := u.dashboardRepo.Jobs(ctx, orgID)
	if err != nil {
		return nil, err
	}

	cards := make([]domain.JobCard, 0, len(rows))
	for _, row := range rows {
		card := domain.JobCard{
			ID:         row.ID,
			Title:      row.Title,
			Department: "General",
			Location:   "India",
			Type:       formatJobType(row.JobType),
			Status:     row.Status,
			Posted:     "Recently",
			Salary:     formatSalary(row.SalaryMin, row.SalaryMax, row.CurrencySymbol),
		}
		if row.Department != nil && *row.Department != "" {
			card.Department = *row.Department
		}
		if row.Location != nil && *row.Location != "" {
			card.Location = *row.Location
		}
		if row.Status == "open" {
			card.Status = "Active"
		}
		if row.Applicants != nil {
			card.Applicants = *row.Applicants
		}
		if row.NewApplicants != nil {
			card.NewApplicants = *row.NewApplicants
		}
		if row.PublishedAt != nil {
			card.Posted = formatTimeAgo(*row.PublishedAt, u.now())
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func (u *dashboardUsecase) Interviews(ctx context.Context, orgID string) ([]domain.InterviewCard, error) {
	rows, err := u.dashboardRepo.UpcomingInterviews(ctx, orgID, 10)
	if err != nil {
		return nil, err
	}

	cards := make([]domain.InterviewCard, 0, len(rows))
	for _, row := range rows {
		card := domain.InterviewCard{
			ID:          row.ID,
			Candidate:   row.Candidate,
			Position:    row.Position,
			Type:        "Interview",
			Time:        formatClock(row.ScheduledAt),
			Date:        formatDay(row.ScheduledAt, u.now()),
			Interviewer: "TBD",
			Status:      capitalizeFirst(row.Status),
		}
		if row.InterviewType != nil && *row.InterviewType != "" {
			card.Type = *row.InterviewType
		}
		if row.Interviewer != nil && strings.TrimSpace(*row.Interviewer) != "" {
			card.Interviewer = *row.Interviewer
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Pipeline returns every funnel stage in order, zero-filled for stages with
// no applications yet.
func (u *dashboardUsecase) Pipeline(ctx context.Context, orgID string) ([]domain.PipelineStage, error) {
	counts, err := u.dashboardRepo.PipelineCounts(ctx, orgID)
	if err != nil {
		return nil, err
	}

	byStage := make(map[string]int, len(counts))
	for _, c := range counts {
		byStage[c.StageType] += c.Count
	}

	stages := make([]domain.PipelineStage, 0, len(stageOrder))
	for _, stage := range stageOrder {
		stages = append(stages, domain.PipelineStage{
			ID:    stage,
			Name:  stageNames[stage],
			Count: byStage[stage],
			Color: stageColors[stage],
		})
	}
	return stages, nil
}

func (u *dashboardUsecase) Activity(ctx context.Context, orgID string) ([]domain.ActivityItem, error) {
	rows, err := u.dashboardRepo.RecentActivity(ctx, orgID, 5)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ActivityItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.ActivityItem{
			Action: row.Action,
			Detail: row.Detail,
			Time:   formatTimeAgo(row.Timestamp, u.now()),
		})
	}
	return items, nil
}

var stageOrder = []string{
	domain.StageApplied,
	domain.StageScreening,
	domain.StageInterview,
	domain.StageOffer,
	domain.StageHired,
}

var stageNames = map[string]string{
	domain.StageApplied:   "New",
	domain.StageScreening: "Screening",
	domain.StageInterview: "Interview",
	domain.StageOffer:     "Offer",
	domain.StageHired:     "Hired",
}

var stageColors = map[string]string{
	domain.StageApplied:   "#00D4FF",
	domain.StageScreening: "#7B61FF",
	domain.StageInterview: "#FFB800",
	domain.StageOffer:     "#00E5A0",
	domain.StageHired:     "#FF6B35",
}

func formatTimeAgo(t, now time.Time) string {
	diff := now.Sub(t)
	mins := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	switch {
	case mins < 1:
		return "Just now"
	case mins < 60:
		return fmt.Sprintf("%d min ago", mins)
	case hours < 24:
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case days == 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

func formatClock(t time.Time) string {
	return t.Format("03:04 PM")
}

func formatDay(t, now time.Time) string {
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	tomorrow := now.AddDate(0, 0, 1)
	y3, m3, d3 := tomorrow.Date()
	if y1 == y3 && m1 == m3 && d1 == d3 {
		return "Tomorrow"
	}
	return t.Format("2 Jan")
}

func formatJobType(jobType *string) string {
	if jobType == nil || *jobType == "" {
		return "Full-time"
	}
	switch *jobType {
	case "full_time":
		return "Full-time"
	case "part_time":
		return "Part-time"
	case "contract":
		return "Contract"
	case "internship":
		return "Internship"
	default:
		return *jobType
	}
}

func formatSalary(min, max *int64, symbol *string) string {
	if min == nil && max == nil {
		return "Competitive"
	}
	sym := "₹"
	if symbol != nil && *symbol != "" {
		sym = *symbol
	}
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("%s%s - %s%s", sym, formatAmount(*min), sym, formatAmount(*max))
	case min != nil:
		return fmt.Sprintf("%s%s+", sym, formatAmount(*min))
	default:
		return fmt.Sprintf("Up to %s%s", sym, formatAmount(*max))
	}
}

// formatAmount abbreviates using Indian units: lakhs and crores.
func formatAmount(n int64) string {
	switch {
	case n >= 10000000:
		return fmt.Sprintf("%.1fCr", float64(n)/10000000)
	case n >= 100000:
		return fmt.Sprintf("%.1fL", float64(n)/100000)
	case n >= 1000:
		return fmt.Sprintf("%dK", n/1000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

func capitalizeFirst(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
