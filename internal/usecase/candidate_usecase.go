package usecase

import (
	"context"
	"errors"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"
)

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository) domain.CandidateUsecase {
	return &candidateUsecase{candidateRepo: candidateRepo}
}

func (u *candidateUsecase) Create(ctx context.Context, orgID string, in *domain.CandidateInput) (*domain.CandidateSummary, *domain.SavedCounts, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" {
		return nil, nil, apperror.BadRequest("First name, last name, and email are required")
	}

	summary, err := u.candidateRepo.Create(ctx, orgID, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, nil, apperror.BadRequest("A candidate with this email already exists")
		}
		return nil, nil, err
	}

	// Counts reflect what was submitted; entries skipped during persistence
	// are logged, not surfaced.
	counts := &domain.SavedCounts{
		Skills:     len(in.Skills),
		Education:  len(in.Education),
		Experience: len(in.Experience),
		Projects:   len(in.Projects),
	}
	return summary, counts, nil
}

func (u *candidateUsecase) Update(ctx context.Context, orgID, candidateID string, in *domain.CandidateUpdateInput) error {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" {
		return apperror.BadRequest("First name, last name, and email are required")
	}

	err := u.candidateRepo.Update(ctx, orgID, candidateID, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Candidate not found")
		}
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return apperror.BadRequest("A candidate with this email already exists")
		}
		return err
	}
	return nil
}

func (u *candidateUsecase) Get(ctx context.Context, candidateID string) (*domain.CandidateGraph, error) {
	candidate, err := u.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, err
	}
	return candidate, nil
}
