package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/usecase"
	"go-ats-backend/pkg/apperror"
)

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Create(ctx context.Context, orgID string, in *domain.CandidateInput) (*domain.CandidateSummary, error) {
	args := m.Called(ctx, orgID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateSummary), args.Error(1)
}

func (m *MockCandidateRepo) Update(ctx context.Context, orgID, candidateID string, in *domain.CandidateUpdateInput) error {
	return m.Called(ctx, orgID, candidateID, in).Error(0)
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, candidateID string) (*domain.CandidateGraph, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateGraph), args.Error(1)
}

const testOrgID = "a1b2c3d4-e5f6-7890-abcd-ef1234567890"

func validInput() *domain.CandidateInput {
	return &domain.CandidateInput{
		FirstName: "Priya",
		LastName:  "Sharma",
		Email:     "priya@example.com",
		Skills: []domain.SkillEntry{
			{Name: "Go", ProficiencyLevel: domain.ProficiencyAdvanced},
			{Name: "Postgres", ProficiencyLevel: domain.ProficiencyIntermediate},
		},
		Education:  []domain.EducationEntry{{InstitutionName: "IIT Delhi"}},
		Experience: []domain.ExperienceEntry{{CompanyName: "Flipkart", Title: "SDE II"}},
	}
}

func TestCandidateCreate(t *testing.T) {
	t.Run("Should reject missing mandatory fields", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo)

		in := validInput()
		in.Email = ""
		_, _, err := uc.Create(context.Background(), testOrgID, in)

		require.Error(t, err)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should return summary and submitted counts", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo)

		in := validInput()
		mockRepo.On("Create", mock.Anything, testOrgID, in).Return(&domain.CandidateSummary{
			ID: "c-1", FirstName: "Priya", LastName: "Sharma", Email: "priya@example.com",
		}, nil)

		summary, counts, err := uc.Create(context.Background(), testOrgID, in)
		require.NoError(t, err)
		assert.Equal(t, "c-1", summary.ID)
		assert.Equal(t, 2, counts.Skills)
		assert.Equal(t, 1, counts.Education)
		assert.Equal(t, 1, counts.Experience)
		assert.Equal(t, 0, counts.Projects)
	})

	t.Run("Should map duplicate email to a 400", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo)

		mockRepo.On("Create", mock.Anything, testOrgID, mock.Anything).Return(nil, domain.ErrDuplicateEmail)

		_, _, err := uc.Create(context.Background(), testOrgID, validInput())
		require.Error(t, err)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Contains(t, appErr.Message, "already exists")
	})
}

func TestCandidateUpdate(t *testing.T) {
	validUpdate := func() *domain.CandidateUpdateInput {
		return &domain.CandidateUpdateInput{
			FirstName: "Priya",
			LastName:  "Sharma",
			Email:     "priya@example.com",
		}
	}

	t.Run("Should reject missing mandatory fields", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo)

		in := validUpdate()
		in.FirstName = ""
		err := uc.Update(context.Background(), testOrgID, "c-1", in)

		require.Error(t, err)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Should map unknown candidate to a 404", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo)

		mockRepo.On("Update", mock.Anything, testOrgID, "missing", mock.Anything).Return(domain.ErrNotFound)

		err := uc.Update(context.Background(), testOrgID, "missing", validUpdate())
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})

	t.Run("Should pass through a clean update", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo)

		mockRepo.On("Update", mock.Anything, testOrgID, "c-1", mock.Anything).Return(nil)

		err := uc.Update(context.Background(), testOrgID, "c-1", validUpdate())
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestCandidateGet(t *testing.T) {
	t.Run("Should map unknown candidate to a 404", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo)

		mockRepo.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

		_, err := uc.Get(context.Background(), "missing")
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})

	t.Run("Should return the candidate graph", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo)

		graph := &domain.CandidateGraph{}
		graph.ID = "c-1"
		mockRepo.On("GetByID", mock.Anything, "c-1").Return(graph, nil)

		got, err := uc.Get(context.Background(), "c-1")
		require.NoError(t, err)
		assert.Equal(t, "c-1", got.ID)
	})
}
