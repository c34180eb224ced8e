package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/SaiVignesh27/unified-platform/internal/apperrors"
	"github.com/SaiVignesh27/unified-platform/internal/models"
	"github.com/SaiVignesh27/unified-platform/internal/store"
)

// FreelancerService serves the public freelancer directory and owner-only
// profile updates.
type FreelancerService struct {
	freelancers  store.FreelancerStore
	applications store.ApplicationStore
	jobs         store.JobStore
}

func NewFreelancerService(freelancers store.FreelancerStore, applications store.ApplicationStore, jobs store.JobStore) *FreelancerService {
	return &FreelancerService{freelancers: freelancers, applications: applications, jobs: jobs}
}

func (s *FreelancerService) List(ctx context.Context) ([]models.Freelancer, error) {
	return s.freelancers.List(ctx)
}

func (s *FreelancerService) Search(ctx context.Context, filter store.FreelancerFilter) ([]models.Freelancer, error) {
	return s.freelancers.Search(ctx, filter)
}

func (s *FreelancerService) Get(ctx context.Context, id uuid.UUID) (*models.Freelancer, error) {
	return s.freelancers.GetByID(ctx, id)
}

type FreelancerProfileUpdate struct {
	Name     string
	Bio      string
	Location string
	Skills   []string
}

func (s *FreelancerService) UpdateProfile(ctx context.Context, id uuid.UUID, update FreelancerProfileUpdate) (*models.Freelancer, error) {
	freelancer, err := s.freelancers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Name != "" {
		freelancer.Name = update.Name
	}
	if update.Bio != "" {
		freelancer.Bio = update.Bio
	}
	if update.Location != "" {
		freelancer.Location = update.Location
	}
	if update.Skills != nil {
		freelancer.Skills = update.Skills
	}
	if err := s.freelancers.Save(ctx, freelancer); err != nil {
		return nil, err
	}
	return freelancer, nil
}

// JobSummary is the job view attached to a freelancer's own applications.
// Nil when the job was deleted out from under the application.
type JobSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Budget      string    `json:"budget"`
	Deadline    string    `json:"deadline"`
	RecruiterID uuid.UUID `json:"recruiterId"`
}

type ApplicationWithJob struct {
	models.Application
	Job *JobSummary `json:"job"`
}

// MyApplications lists the freelancer's applications with a job summary each.
// Orphaned applications (job deleted) are returned with a nil job.
func (s *FreelancerService) MyApplications(ctx context.Context, freelancerID uuid.UUID) ([]ApplicationWithJob, error) {
	applications, err := s.applications.ListByFreelancer(ctx, freelancerID)
	if err != nil {
		return nil, err
	}

	annotated := make([]ApplicationWithJob, 0, len(applications))
	for _, application := range applications {
		entry := ApplicationWithJob{Application: application}
		job, err := s.jobs.GetByID(ctx, application.JobID)
		switch {
		case err == nil:
			entry.Job = &JobSummary{
				ID:          job.ID,
				Title:       job.Title,
				Company:     job.Company,
				Budget:      job.Budget,
				Deadline:    job.Deadline,
				RecruiterID: job.RecruiterID,
			}
		case apperrors.Is(err, apperrors.KindNotFound):
			// Orphaned application; the job is gone.
		default:
			return nil, err
		}
		annotated = append(annotated, entry)
	}
	return annotated, nil
}

// RecruiterService serves the public recruiter directory and owner-only
// profile updates.
type RecruiterService struct {
	recruiters store.RecruiterStore
}

func NewRecruiterService(recruiters store.RecruiterStore) *RecruiterService {
	return &RecruiterService{recruiters: recruiters}
}

func (s *RecruiterService) List(ctx context.Context) ([]models.Recruiter, error) {
	return s.recruiters.List(ctx)
}

func (s *RecruiterService) Get(ctx context.Context, id uuid.UUID) (*models.Recruiter, error) {
	return s.recruiters.GetByID(ctx, id)
}

type RecruiterProfileUpdate struct {
	Name       string
	Company    string
	Bio        string
	Location   string
	Experience string
}

func (s *RecruiterService) UpdateProfile(ctx context.Context, id uuid.UUID, update RecruiterProfileUpdate) (*models.Recruiter, error) {
	recruiter, err := s.recruiters.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Name != "" {
		recruiter.Name = update.Name
	}
	if update.Company != "" {
		recruiter.Company = update.Company
	}
	if update.Bio != "" {
		recruiter.Bio = update.Bio
	}
	if update.Location != "" {
		recruiter.Location = update.Location
	}
	if update.Experience != "" {
		recruiter.Experience = update.Experience
	}
	if err := s.recruiters.Save(ctx, recruiter); err != nil {
		return nil, err
	}
	return recruiter, nil
}
