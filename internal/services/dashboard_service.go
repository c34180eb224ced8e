package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/SaiVignesh27/unified-platform/internal/apperrors"
	"github.com/SaiVignesh27/unified-platform/internal/models"
	"github.com/SaiVignesh27/unified-platform/internal/store"
)

// DashboardService re-derives summary statistics from the store on every
// call. Nothing is memoized; the numbers always reflect the current rows.
type DashboardService struct {
	jobs         store.JobStore
	applications store.ApplicationStore
	recruiters   store.RecruiterStore
}

func NewDashboardService(jobs store.JobStore, applications store.ApplicationStore, recruiters store.RecruiterStore) *DashboardService {
	return &DashboardService{jobs: jobs, applications: applications, recruiters: recruiters}
}

type RecruiterStats struct {
	TotalListings        int   `json:"totalListings"`
	SuccessfulHires      int   `json:"successfulHires"`
	TotalApplications    int64 `json:"totalApplications"`
	PendingApplications  int64 `json:"pendingApplications"`
	AcceptedApplications int64 `json:"acceptedApplications"`
	ActiveJobs           int64 `json:"activeJobs"`
	CompletedJobs        int64 `json:"completedJobs"`
}

// RecruiterStats reads the denormalized counters off the recruiter record and
// counts the rest directly from the job/application rows.
func (s *DashboardService) RecruiterStats(ctx context.Context, recruiterID uuid.UUID) (*RecruiterStats, error) {
	recruiter, err := s.recruiters.GetByID(ctx, recruiterID)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobs.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	jobIDs := make([]uuid.UUID, 0, len(jobs))
	for _, job := range jobs {
		jobIDs = append(jobIDs, job.ID)
	}

	stats := &RecruiterStats{
		TotalListings:   recruiter.TotalListings,
		SuccessfulHires: recruiter.SuccessfulHires,
	}
	if stats.TotalApplications, err = s.applications.CountByJobIDs(ctx, jobIDs, ""); err != nil {
		return nil, err
	}
	if stats.PendingApplications, err = s.applications.CountByJobIDs(ctx, jobIDs, models.ApplicationStatusPending); err != nil {
		return nil, err
	}
	if stats.AcceptedApplications, err = s.applications.CountByJobIDs(ctx, jobIDs, models.ApplicationStatusAccepted); err != nil {
		return nil, err
	}
	if stats.ActiveJobs, err = s.jobs.CountByRecruiter(ctx, recruiterID, models.JobStatusActive); err != nil {
		return nil, err
	}
	if stats.CompletedJobs, err = s.jobs.CountByRecruiter(ctx, recruiterID, models.JobStatusCompleted); err != nil {
		return nil, err
	}
	return stats, nil
}

// JobWithApplication is a job annotated with the calling freelancer's own
// application against it.
type JobWithApplication struct {
	models.Job
	ApplicationStatus string    `json:"applicationStatus"`
	ApplicationID     uuid.UUID `json:"applicationId"`
}

// FreelancerDashboardJobs returns every job the freelancer has applied to.
// Applications whose job was deleted are skipped, not errors; deleting a job
// leaves its applications behind.
func (s *DashboardService) FreelancerDashboardJobs(ctx context.Context, freelancerID uuid.UUID) ([]JobWithApplication, error) {
	applications, err := s.applications.ListByFreelancer(ctx, freelancerID)
	if err != nil {
		return nil, err
	}

	jobs := make([]JobWithApplication, 0, len(applications))
	for _, application := range applications {
		job, err := s.jobs.GetByID(ctx, application.JobID)
		if apperrors.Is(err, apperrors.KindNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, JobWithApplication{
			Job:               *job,
			ApplicationStatus: application.Status,
			ApplicationID:     application.ID,
		})
	}
	return jobs, nil
}

// RecruiterJobs lists the recruiter's own postings, newest first.
func (s *DashboardService) RecruiterJobs(ctx context.Context, recruiterID uuid.UUID) ([]models.Job, error) {
	return s.jobs.ListByRecruiter(ctx, recruiterID)
}
