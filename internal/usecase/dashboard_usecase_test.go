package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/usecase"
)

type MockDashboardRepo struct {
	mock.Mock
}

func (m *MockDashboardRepo) Stats(ctx context.Context, orgID string) (*domain.DashboardStats, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockDashboardRepo) TopCandidates(ctx context.Context, orgID string, limit int) ([]domain.CandidateRow, error) {
	args := m.Called(ctx, orgID, limit)
	return args.Get(0).([]domain.CandidateRow), args.Error(1)
}

func (m *MockDashboardRepo) Jobs(ctx context.Context, orgID string) ([]domain.JobRow, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.JobRow), args.Error(1)
}

func (m *MockDashboardRepo) UpcomingInterviews(ctx context.Context, orgID string, limit int) ([]domain.InterviewRow, error) {
	args := m.Called(ctx, orgID, limit)
	return args.Get(0).([]domain.InterviewRow), args.Error(1)
}

func (m *MockDashboardRepo) PipelineCounts(ctx context.Context, orgID string) ([]domain.StageCount, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.StageCount), args.Error(1)
}

func (m *MockDashboardRepo) RecentActivity(ctx context.Context, orgID string, limit int) ([]domain.ActivityRow, error) {
	args := m.Called(ctx, orgID, limit)
	return args.Get(0).([]domain.ActivityRow), args.Error(1)
}

func strPtr(s string) *string       { return &s }
func f64Ptr(f float64) *float64     { return &f }
func i64Ptr(n int64) *int64         { return &n }
func intPtr(n int) *int             { return &n }
func timePtr(t time.Time) *time.Time { return &t }

func TestDashboardPipeline(t *testing.T) {
	mockRepo := new(MockDashboardRepo)
	uc := usecase.NewDashboardUsecase(mockRepo)

	t.Run("Should zero-fill missing stages in funnel order", func(t *testing.T) {
		mockRepo.On("PipelineCounts", mock.Anything, testOrgID).Return([]domain.StageCount{
			{StageType: domain.StageInterview, Count: 4},
			{StageType: domain.StageApplied, Count: 12},
		}, nil).Once()

		stages, err := uc.Pipeline(context.Background(), testOrgID)
		require.NoError(t, err)
		require.Len(t, stages, 5)

		assert.Equal(t, "applied", stages[0].ID)
		assert.Equal(t, "New", stages[0].Name)
		assert.Equal(t, 12, stages[0].Count)
		assert.Equal(t, "#00D4FF", stages[0].Color)

		assert.Equal(t, "screening", stages[1].ID)
		assert.Equal(t, 0, stages[1].Count)

		assert.Equal(t, "interview", stages[2].ID)
		assert.Equal(t, 4, stages[2].Count)

		assert.Equal(t, "offer", stages[3].ID)
		assert.Equal(t, "hired", stages[4].ID)
	})

	t.Run("Should sum duplicate stage names of the same type", func(t *testing.T) {
		mockRepo.On("PipelineCounts", mock.Anything, testOrgID).Return([]domain.StageCount{
			{StageType: domain.StageScreening, Count: 3},
			{StageType: domain.StageScreening, Count: 2},
		}, nil).Once()

		stages, err := uc.Pipeline(context.Background(), testOrgID)
		require.NoError(t, err)
		assert.Equal(t, 5, stages[1].Count)
	})
}

func TestDashboardCandidates(t *testing.T) {
	mockRepo := new(MockDashboardRepo)
	uc := usecase.NewDashboardUsecase(mockRepo)

	applied := time.Now().Add(-3 * time.Hour)
	mockRepo.On("TopCandidates", mock.Anything, testOrgID, 10).Return([]domain.CandidateRow{
		{
			ID:        "c-1",
			Name:      "Priya Sharma",
			Title:     strPtr("SDE II"),
			Company:   strPtr("Flipkart"),
			Location:  strPtr("Bangalore"),
			Score:     f64Ptr(88),
			Years:     f64Ptr(5.5),
			Status:    strPtr("screening"),
			AppliedAt: timePtr(applied),
		},
		{ID: "c-2", Name: "Arun Mehta"},
	}, nil)

	cards, err := uc.Candidates(context.Background(), testOrgID)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	assert.Equal(t, "SDE II", cards[0].Title)
	assert.Equal(t, 88, cards[0].Score)
	assert.Equal(t, "5.5 years", cards[0].Experience)
	assert.Equal(t, "3 hours ago", cards[0].AppliedDate)

	// Sparse row falls back to placeholders
	assert.Equal(t, "India", cards[1].Location)
	assert.Equal(t, 75, cards[1].Score)
	assert.Equal(t, "N/A", cards[1].Experience)
	assert.Equal(t, "active", cards[1].Status)
	assert.Equal(t, "Recently", cards[1].AppliedDate)
}

func TestDashboardJobs(t *testing.T) {
	mockRepo := new(MockDashboardRepo)
	uc := usecase.NewDashboardUsecase(mockRepo)

	published := time.Now().Add(-26 * time.Hour)
	mockRepo.On("Jobs", mock.Anything, testOrgID).Return([]domain.JobRow{
		{
			ID:            "j-1",
			Title:         "Backend Engineer",
			Department:    strPtr("Engineering"),
			JobType:       strPtr("full_time"),
			Status:        "open",
			Applicants:    intPtr(42),
			NewApplicants: intPtr(7),
			PublishedAt:   timePtr(published),
			SalaryMin:     i64Ptr(1500000),
			SalaryMax:     i64Ptr(2500000),
		},
		{ID: "j-2", Title: "Recruiter", Status: "closed"},
	}, nil)

	cards, err := uc.Jobs(context.Background(), testOrgID)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	assert.Equal(t, "Full-time", cards[0].Type)
	assert.Equal(t, "Active", cards[0].Status)
	assert.Equal(t, 42, cards[0].Applicants)
	assert.Equal(t, "Yesterday", cards[0].Posted)
	assert.Equal(t, "₹15.0L - ₹25.0L", cards[0].Salary)

	assert.Equal(t, "General", cards[1].Department)
	assert.Equal(t, "closed", cards[1].Status)
	assert.Equal(t, "Competitive", cards[1].Salary)
	assert.Equal(t, "Full-time", cards[1].Type)
}

func TestDashboardInterviews(t *testing.T) {
	mockRepo := new(MockDashboardRepo)
	uc := usecase.NewDashboardUsecase(mockRepo)

	scheduled := time.Date(2024, 3, 14, 14, 30, 0, 0, time.Local)
	mockRepo.On("UpcomingInterviews", mock.Anything, testOrgID, 10).Return([]domain.InterviewRow{
		{
			ID:            "i-1",
			Candidate:     "Priya Sharma",
			Position:      "Backend Engineer",
			InterviewType: strPtr("Technical Round"),
			ScheduledAt:   scheduled,
			Status:        "scheduled",
			Interviewer:   strPtr("Anil Kapoor"),
		},
		{ID: "i-2", Candidate: "Arun Mehta", Position: "Recruiter", ScheduledAt: scheduled, Status: "confirmed"},
	}, nil)

	cards, err := uc.Interviews(context.Background(), testOrgID)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	assert.Equal(t, "Technical Round", cards[0].Type)
	assert.Equal(t, "02:30 PM", cards[0].Time)
	assert.Equal(t, "14 Mar", cards[0].Date)
	assert.Equal(t, "Scheduled", cards[0].Status)

	assert.Equal(t, "Interview", cards[1].Type)
	assert.Equal(t, "TBD", cards[1].Interviewer)
	assert.Equal(t, "Confirmed", cards[1].Status)
}

func TestDashboardActivity(t *testing.T) {
	mockRepo := new(MockDashboardRepo)
	uc := usecase.NewDashboardUsecase(mockRepo)

	mockRepo.On("RecentActivity", mock.Anything, testOrgID, 5).Return([]domain.ActivityRow{
		{Type: "application", Action: "New application received", Detail: "Priya Sharma applied for Backend Engineer", Timestamp: time.Now().Add(-30 * time.Second)},
		{Type: "interview", Action: "Interview scheduled", Detail: "Arun Mehta - Technical Round", Timestamp: time.Now().Add(-45 * time.Minute)},
	}, nil)

	items, err := uc.Activity(context.Background(), testOrgID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Just now", items[0].Time)
	assert.Equal(t, "45 min ago", items[1].Time)
	assert.Equal(t, "New application received", items[0].Action)
}
