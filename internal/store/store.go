// Package store defines the entity-store interfaces the services are written
// against. The postgres subpackage provides the gorm-backed implementation;
// tests substitute in-memory fakes.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/SaiVignesh27/unified-platform/internal/models"
)

// FreelancerFilter narrows freelancer searches. Zero values mean "any".
type FreelancerFilter struct {
	Query    string
	Skills   []string
	Location string
}

// JobFilter narrows job searches. Only active jobs are ever searched.
type JobFilter struct {
	Query    string
	Skills   []string
	Location string
}

type FreelancerStore interface {
	Create(ctx context.Context, freelancer *models.Freelancer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Freelancer, error)
	GetByEmail(ctx context.Context, email string) (*models.Freelancer, error)
	List(ctx context.Context) ([]models.Freelancer, error)
	Search(ctx context.Context, filter FreelancerFilter) ([]models.Freelancer, error)
	Save(ctx context.Context, freelancer *models.Freelancer) error
}

type RecruiterStore interface {
	Create(ctx context.Context, recruiter *models.Recruiter) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Recruiter, error)
	GetByEmail(ctx context.Context, email string) (*models.Recruiter, error)
	List(ctx context.Context) ([]models.Recruiter, error)
	Save(ctx context.Context, recruiter *models.Recruiter) error
}

type JobStore interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	ListActive(ctx context.Context) ([]models.Job, error)
	Search(ctx context.Context, filter JobFilter) ([]models.Job, error)
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Job, error)
	// CountByRecruiter counts the recruiter's jobs, optionally restricted
	// to one status ("" counts all).
	CountByRecruiter(ctx context.Context, recruiterID uuid.UUID, status string) (int64, error)
	Save(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ApplicationStore interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	// FindByJobAndFreelancer returns KindNotFound when the pair has not
	// applied; callers rely on that to enforce one application per pair.
	FindByJobAndFreelancer(ctx context.Context, jobID, freelancerID uuid.UUID) (*models.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error)
	ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]models.Application, error)
	ListByJobIDs(ctx context.Context, jobIDs []uuid.UUID) ([]models.Application, error)
	// CountByJobIDs counts applications across jobs, optionally restricted
	// to one status ("" counts all).
	CountByJobIDs(ctx context.Context, jobIDs []uuid.UUID, status string) (int64, error)
	Save(ctx context.Context, application *models.Application) error
}
