package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SaiVignesh27/unified-platform/internal/apperrors"
	"github.com/SaiVignesh27/unified-platform/internal/models"
)

type ApplicationStore struct {
	db *gorm.DB
}

func NewApplicationStore(db *gorm.DB) *ApplicationStore {
	return &ApplicationStore{db: db}
}

func (s *ApplicationStore) Create(ctx context.Context, application *models.Application) error {
	if err := s.db.WithContext(ctx).Create(application).Error; err != nil {
		return apperrors.Unhandled("create application", err)
	}
	return nil
}

func (s *ApplicationStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	var application models.Application
	err := s.db.WithContext(ctx).First(&application, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("application")
	}
	if err != nil {
		return nil, apperrors.Unhandled("get application", err)
	}
	return &application, nil
}

func (s *ApplicationStore) FindByJobAndFreelancer(ctx context.Context, jobID, freelancerID uuid.UUID) (*models.Application, error) {
	var application models.Application
	err := s.db.WithContext(ctx).
		First(&application, "job_id = ? AND freelancer_id = ?", jobID, freelancerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("application")
	}
	if err != nil {
		return nil, apperrors.Unhandled("find application", err)
	}
	return &application, nil
}

func (s *ApplicationStore) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error) {
	var applications []models.Application
	err := s.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, apperrors.Unhandled("list applications by job", err)
	}
	return applications, nil
}

func (s *ApplicationStore) ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]models.Application, error) {
	var applications []models.Application
	err := s.db.WithContext(ctx).
		Where("freelancer_id = ?", freelancerID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, apperrors.Unhandled("list applications by freelancer", err)
	}
	return applications, nil
}

func (s *ApplicationStore) ListByJobIDs(ctx context.Context, jobIDs []uuid.UUID) ([]models.Application, error) {
	if len(jobIDs) == 0 {
		return nil, nil
	}
	var applications []models.Application
	err := s.db.WithContext(ctx).
		Where("job_id IN ?", jobIDs).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, apperrors.Unhandled("list applications by jobs", err)
	}
	return applications, nil
}

func (s *ApplicationStore) CountByJobIDs(ctx context.Context, jobIDs []uuid.UUID, status string) (int64, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}
	query := s.db.WithContext(ctx).Model(&models.Application{}).
		Where("job_id IN ?", jobIDs)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, apperrors.Unhandled("count applications", err)
	}
	return count, nil
}

func (s *ApplicationStore) Save(ctx context.Context, application *models.Application) error {
	if err := s.db.WithContext(ctx).Save(application).Error; err != nil {
		return apperrors.Unhandled("save application", err)
	}
	return nil
}
