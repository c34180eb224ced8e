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

type FreelancerStore struct {
	db *gorm.DB
}

func NewFreelancerStore(db *gorm.DB) *FreelancerStore {
	return &FreelancerStore{db: db}
}

func (s *FreelancerStore) Create(ctx context.Context, freelancer *models.Freelancer) error {
	if err := s.db.WithContext(ctx).Create(freelancer).Error; err != nil {
		return apperrors.Unhandled("create freelancer", err)
	}
	return nil
}

func (s *FreelancerStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Freelancer, error) {
	var freelancer models.Freelancer
	err := s.db.WithContext(ctx).First(&freelancer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("freelancer")
	}
	if err != nil {
		return nil, apperrors.Unhandled("get freelancer", err)
	}
	return &freelancer, nil
}

func (s *FreelancerStore) GetByEmail(ctx context.Context, email string) (*models.Freelancer, error) {
	var freelancer models.Freelancer
	err := s.db.WithContext(ctx).First(&freelancer, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("freelancer")
	}
	if err != nil {
		return nil, apperrors.Unhandled("get freelancer by email", err)
	}
	return &freelancer, nil
}

func (s *FreelancerStore) List(ctx context.Context) ([]models.Freelancer, error) {
	var freelancers []models.Freelancer
	if err := s.db.WithContext(ctx).Find(&freelancers).Error; err != nil {
		return nil, apperrors.Unhandled("list freelancers", err)
	}
	return freelancers, nil
}

func (s *FreelancerStore) Search(ctx context.Context, filter store.FreelancerFilter) ([]models.Freelancer, error) {
	query := s.db.WithContext(ctx).Model(&models.Freelancer{})
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("name ILIKE ? OR bio ILIKE ?", pattern, pattern)
	}
	if len(filter.Skills) > 0 {
		query = query.Where("skills && ?", pq.Array(filter.Skills))
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}

	var freelancers []models.Freelancer
	if err := query.Find(&freelancers).Error; err != nil {
		return nil, apperrors.Unhandled("search freelancers", err)
	}
	return freelancers, nil
}

func (s *FreelancerStore) Save(ctx context.Context, freelancer *models.Freelancer) error {
	if err := s.db.WithContext(ctx).Save(freelancer).Error; err != nil {
		return apperrors.Unhandled("save freelancer", err)
	}
	return nil
}
