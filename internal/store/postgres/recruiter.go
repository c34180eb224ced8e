package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SaiVignesh27/unified-platform/internal/apperrors"
	"github.com/SaiVignesh27/unified-platform/internal/models"
)

type RecruiterStore struct {
	db *gorm.DB
}

func NewRecruiterStore(db *gorm.DB) *RecruiterStore {
	return &RecruiterStore{db: db}
}

func (s *RecruiterStore) Create(ctx context.Context, recruiter *models.Recruiter) error {
	if err := s.db.WithContext(ctx).Create(recruiter).Error; err != nil {
		return apperrors.Unhandled("create recruiter", err)
	}
	return nil
}

func (s *RecruiterStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Recruiter, error) {
	var recruiter models.Recruiter
	err := s.db.WithContext(ctx).First(&recruiter, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("recruiter")
	}
	if err != nil {
		return nil, apperrors.Unhandled("get recruiter", err)
	}
	return &recruiter, nil
}

func (s *RecruiterStore) GetByEmail(ctx context.Context, email string) (*models.Recruiter, error) {
	var recruiter models.Recruiter
	err := s.db.WithContext(ctx).First(&recruiter, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("recruiter")
	}
	if err != nil {
		return nil, apperrors.Unhandled("get recruiter by email", err)
	}
	return &recruiter, nil
}

func (s *RecruiterStore) List(ctx context.Context) ([]models.Recruiter, error) {
	var recruiters []models.Recruiter
	if err := s.db.WithContext(ctx).Find(&recruiters).Error; err != nil {
		return nil, apperrors.Unhandled("list recruiters", err)
	}
	return recruiters, nil
}

func (s *RecruiterStore) Save(ctx context.Context, recruiter *models.Recruiter) error {
	if err := s.db.WithContext(ctx).Save(recruiter).Error; err != nil {
		return apperrors.Unhandled("save recruiter", err)
	}
	return nil
}
