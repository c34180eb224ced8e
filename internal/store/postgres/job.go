package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/SaiVignesh27/unified-platform/internal/apperrors"
	"github.com/SaiVignesh27/unified-platform/internal/models"
	"github.com/SaiVignesh27/unified-platform/internal/store"
)

type JobStore struct {
	db *gorm.DB
}

func NewJobStore(db *gorm.DB) *JobStore {
	return &JobStore{db: db}
}

func (s *JobStore) Create(ctx context.Context, job *models.Job) error {
	if err := s.db.WithContext(ctx).Create(job).Error; err != nil {
		return apperrors.Unhandled("create job", err)
	}
	return nil
}

func (s *JobStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := s.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("job")
	}
	if err != nil {
		return nil, apperrors.Unhandled("get job", err)
	}
	return &job, nil
}

func (s *JobStore) ListActive(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := s.db.WithContext(ctx).
		Where("status = ?", models.JobStatusActive).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, apperrors.Unhandled("list active jobs", err)
	}
	return jobs, nil
}

func (s *JobStore) Search(ctx context.Context, filter store.JobFilter) ([]models.Job, error) {
	query := s.db.WithContext(ctx).Model(&models.Job{}).
		Where("status = ?", models.JobStatusActive)
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if len(filter.Skills) > 0 {
		query = query.Where("skills_required && ?", pq.Array(filter.Skills))
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}

	var jobs []models.Job
	if err := query.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, apperrors.Unhandled("search jobs", err)
	}
	return jobs, nil
}

func (s *JobStore) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Job, error) {
	var jobs []models.Job
	err := s.db.WithContext(ctx).
		Where("recruiter_id = ?", recruiterID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, apperrors.Unhandled("list jobs by recruiter", err)
	}
	return jobs, nil
}

func (s *JobStore) CountByRecruiter(ctx context.Context, recruiterID uuid.UUID, status string) (int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Job{}).
		Where("recruiter_id = ?", recruiterID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, apperrors.Unhandled("count jobs", err)
	}
	return count, nil
}

func (s *JobStore) Save(ctx context.Context, job *models.Job) error {
	if err := s.db.WithContext(ctx).Save(job).Error; err != nil {
		return apperrors.Unhandled("save job", err)
	}
	return nil
}

func (s *JobStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id).Error; err != nil {
		return apperrors.Unhandled("delete job", err)
	}
	return nil
}
