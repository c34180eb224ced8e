package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SaiVignesh27/unified-platform/internal/apperrors"
	"github.com/SaiVignesh27/unified-platform/internal/models"
	"github.com/SaiVignesh27/unified-platform/internal/store"
)

// LifecycleService owns every state transition of jobs and applications,
// together with the denormalized side effects those transitions imply
// (recruiter listing cache, hire counter, freelancer project list).
//
// Operations that touch more than one entity issue their writes sequentially
// with no transaction and no rollback. A failure mid-sequence leaves the
// earlier writes in place; callers see the storage error and the store keeps
// the partial state. Concurrent writes against the same entity can lose
// updates; that race is a documented limitation, not something this layer
// locks against.
type LifecycleService struct {
	jobs         store.JobStore
	applications store.ApplicationStore
	recruiters   store.RecruiterStore
	freelancers  store.FreelancerStore
	log          *slog.Logger
}

func NewLifecycleService(
	jobs store.JobStore,
	applications store.ApplicationStore,
	recruiters store.RecruiterStore,
	freelancers store.FreelancerStore,
	log *slog.Logger,
) *LifecycleService {
	return &LifecycleService{
		jobs:         jobs,
		applications: applications,
		recruiters:   recruiters,
		freelancers:  freelancers,
		log:          log,
	}
}

// JobInput carries the mutable job fields for PostJob and UpdateJob.
type JobInput struct {
	Title          string
	Description    string
	Company        string
	Location       string
	SkillsRequired []string
	Budget         string
	Deadline       string
	Status         string
}

func (in JobInput) missingRequired() []string {
	var missing []string
	for _, field := range []struct {
		name, value string
	}{
		{"title", in.Title},
		{"description", in.Description},
		{"company", in.Company},
		{"budget", in.Budget},
		{"deadline", in.Deadline},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

// PostJob creates an active job for the recruiter and patches the recruiter's
// denormalized listing cache in the same operation.
func (s *LifecycleService) PostJob(ctx context.Context, recruiterID uuid.UUID, input JobInput) (*models.Job, error) {
	recruiter, err := s.recruiters.GetByID(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	if missing := input.missingRequired(); len(missing) > 0 {
		return nil, apperrors.New(apperrors.KindValidation, "missing required fields: "+strings.Join(missing, ", "))
	}

	job := &models.Job{
		RecruiterID:    recruiter.ID,
		RecruiterName:  recruiter.Name,
		Title:          input.Title,
		Description:    input.Description,
		Company:        input.Company,
		Location:       input.Location,
		SkillsRequired: input.SkillsRequired,
		Budget:         input.Budget,
		Deadline:       input.Deadline,
		Status:         models.JobStatusActive,
		Applications:   models.UUIDList{},
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	recruiter.ActiveListings = append(recruiter.ActiveListings, models.ActiveListing{
		ID:             job.ID,
		Title:          job.Title,
		SkillsRequired: job.SkillsRequired,
		Budget:         job.Budget,
		Deadline:       job.Deadline,
	})
	recruiter.TotalListings++
	if err := s.recruiters.Save(ctx, recruiter); err != nil {
		// The job row already exists; the listing cache is now stale.
		return nil, err
	}

	s.log.Info("job posted", "jobId", job.ID, "recruiterId", recruiter.ID)
	return job, nil
}

// UpdateJob patches the provided fields onto the job and re-syncs the
// matching entry in the recruiter's activeListings. Omitted fields keep their
// values, so the required fields enforced at creation cannot be blanked here.
// When no matching listing entry exists the cache sync is skipped; the
// listing stays stale rather than being rebuilt.
func (s *LifecycleService) UpdateJob(ctx context.Context, jobID, recruiterID uuid.UUID, input JobInput) (*models.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.RecruiterID != recruiterID {
		return nil, apperrors.Forbidden("not authorized to update this job")
	}
	if input.Status != "" && !isKnownJobStatus(input.Status) {
		return nil, apperrors.Validation("status", "must be active, completed, or cancelled")
	}

	if input.Title != "" {
		job.Title = input.Title
	}
	if input.Description != "" {
		job.Description = input.Description
	}
	if input.Company != "" {
		job.Company = input.Company
	}
	if input.Location != "" {
		job.Location = input.Location
	}
	if input.SkillsRequired != nil {
		job.SkillsRequired = input.SkillsRequired
	}
	if input.Budget != "" {
		job.Budget = input.Budget
	}
	if input.Deadline != "" {
		job.Deadline = input.Deadline
	}
	if input.Status != "" {
		job.Status = input.Status
	}
	if err := s.jobs.Save(ctx, job); err != nil {
		return nil, err
	}

	recruiter, err := s.recruiters.GetByID(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	synced := false
	for i := range recruiter.ActiveListings {
		if recruiter.ActiveListings[i].ID == job.ID {
			recruiter.ActiveListings[i] = models.ActiveListing{
				ID:             job.ID,
				Title:          job.Title,
				SkillsRequired: job.SkillsRequired,
				Budget:         job.Budget,
				Deadline:       job.Deadline,
			}
			synced = true
			break
		}
	}
	if synced {
		if err := s.recruiters.Save(ctx, recruiter); err != nil {
			return nil, err
		}
	} else {
		s.log.Warn("active listing entry missing, cache not re-synced", "jobId", job.ID, "recruiterId", recruiterID)
	}
	return job, nil
}

// DeleteJob removes the job and its listing-cache entry. Applications that
// reference the job are left behind; readers must tolerate the orphans.
func (s *LifecycleService) DeleteJob(ctx context.Context, jobID, recruiterID uuid.UUID) error {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.RecruiterID != recruiterID {
		return apperrors.Forbidden("not authorized to delete this job")
	}
	if err := s.jobs.Delete(ctx, jobID); err != nil {
		return err
	}

	recruiter, err := s.recruiters.GetByID(ctx, recruiterID)
	if err != nil {
		return err
	}
	listings := recruiter.ActiveListings[:0]
	for _, listing := range recruiter.ActiveListings {
		if listing.ID != jobID {
			listings = append(listings, listing)
		}
	}
	recruiter.ActiveListings = listings
	if err := s.recruiters.Save(ctx, recruiter); err != nil {
		return err
	}

	s.log.Info("job deleted", "jobId", jobID, "recruiterId", recruiterID)
	return nil
}

// Apply files a pending application for the freelancer. One application per
// (job, freelancer) pair, enforced by an existence check before insert.
func (s *LifecycleService) Apply(ctx context.Context, jobID, freelancerID uuid.UUID, coverLetter string) (*models.Application, error) {
	if _, err := s.freelancers.GetByID(ctx, freelancerID); err != nil {
		return nil, err
	}
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if _, err := s.applications.FindByJobAndFreelancer(ctx, jobID, freelancerID); err == nil {
		return nil, apperrors.Duplicate("you have already applied for this job")
	} else if !apperrors.Is(err, apperrors.KindNotFound) {
		return nil, err
	}

	application := &models.Application{
		JobID:        jobID,
		FreelancerID: freelancerID,
		CoverLetter:  coverLetter,
		Status:       models.ApplicationStatusPending,
		AppliedAt:    time.Now().UTC(),
	}
	if err := s.applications.Create(ctx, application); err != nil {
		return nil, err
	}

	job.Applications = append(job.Applications, application.ID)
	if err := s.jobs.Save(ctx, job); err != nil {
		return nil, err
	}
	return application, nil
}

// SetApplicationStatus writes the new status and, on acceptance, fans out to
// the recruiter's hire counter and the freelancer's active-project list.
// The status is written unconditionally: re-transitioning an application that
// is already accepted or rejected is not blocked, so a repeated accept bumps
// the counters again. Product has been asked whether that tolerance is
// intended; until then the behavior stands.
func (s *LifecycleService) SetApplicationStatus(ctx context.Context, applicationID, recruiterID uuid.UUID, newStatus string) (*models.Application, error) {
	if newStatus != models.ApplicationStatusAccepted && newStatus != models.ApplicationStatusRejected {
		return nil, apperrors.Validation("status", "must be accepted or rejected")
	}
	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.GetByID(ctx, application.JobID)
	if err != nil {
		return nil, err
	}
	if job.RecruiterID != recruiterID {
		return nil, apperrors.Forbidden("not authorized to update this application")
	}

	application.Status = newStatus
	if err := s.applications.Save(ctx, application); err != nil {
		return nil, err
	}

	if newStatus == models.ApplicationStatusAccepted {
		// Three documents mutate from this one action: application (above),
		// recruiter, freelancer. Sequential writes, no rollback.
		recruiter, err := s.recruiters.GetByID(ctx, recruiterID)
		if err != nil {
			return nil, err
		}
		recruiter.SuccessfulHires++
		if err := s.recruiters.Save(ctx, recruiter); err != nil {
			return nil, err
		}

		freelancer, err := s.freelancers.GetByID(ctx, application.FreelancerID)
		if err != nil {
			return nil, err
		}
		freelancer.ActiveProjects = append(freelancer.ActiveProjects, models.ActiveProject{
			ID:       job.ID,
			Title:    job.Title,
			Client:   job.Company,
			DueDate:  job.Deadline,
			Status:   models.ProjectStatusInProgress,
			Progress: 0,
		})
		if err := s.freelancers.Save(ctx, freelancer); err != nil {
			return nil, err
		}
		s.log.Info("application accepted", "applicationId", application.ID, "jobId", job.ID, "freelancerId", application.FreelancerID)
	}
	return application, nil
}

// UpdateProjectProgress patches one entry of the freelancer's active-project
// cache. Reaching 100 flips the entry to Completed.
func (s *LifecycleService) UpdateProjectProgress(ctx context.Context, freelancerID, projectID uuid.UUID, progress int) (models.ProjectList, error) {
	if progress < 0 || progress > 100 {
		return nil, apperrors.Validation("progress", "must be between 0 and 100")
	}
	freelancer, err := s.freelancers.GetByID(ctx, freelancerID)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range freelancer.ActiveProjects {
		if freelancer.ActiveProjects[i].ID == projectID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, apperrors.NotFound("project")
	}

	freelancer.ActiveProjects[index].Progress = progress
	if progress == 100 {
		freelancer.ActiveProjects[index].Status = models.ProjectStatusCompleted
	}
	if err := s.freelancers.Save(ctx, freelancer); err != nil {
		return nil, err
	}
	return freelancer.ActiveProjects, nil
}

func (s *LifecycleService) GetJob(ctx context.Context, jobID uuid.UUID) (*models.Job, error) {
	return s.jobs.GetByID(ctx, jobID)
}

func (s *LifecycleService) ListActiveJobs(ctx context.Context) ([]models.Job, error) {
	return s.jobs.ListActive(ctx)
}

func (s *LifecycleService) SearchJobs(ctx context.Context, filter store.JobFilter) ([]models.Job, error) {
	return s.jobs.Search(ctx, filter)
}

// FreelancerSummary is the applicant view a recruiter sees next to each
// application. Nil when the freelancer record no longer resolves.
type FreelancerSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Skills   []string  `json:"skills"`
	Rating   float64   `json:"rating"`
	Bio      string    `json:"bio"`
	Location string    `json:"location"`
}

type ApplicationWithFreelancer struct {
	models.Application
	Freelancer *FreelancerSummary `json:"freelancer"`
}

// ListJobApplications returns a job's applications with applicant summaries.
// Recruiter must own the job.
func (s *LifecycleService) ListJobApplications(ctx context.Context, jobID, recruiterID uuid.UUID) ([]ApplicationWithFreelancer, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.RecruiterID != recruiterID {
		return nil, apperrors.Forbidden("not authorized to view these applications")
	}
	applications, err := s.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return s.annotateFreelancers(ctx, applications)
}

// ListRecruiterApplications returns every application across the recruiter's
// jobs, with applicant summaries.
func (s *LifecycleService) ListRecruiterApplications(ctx context.Context, recruiterID uuid.UUID) ([]ApplicationWithFreelancer, error) {
	jobs, err := s.jobs.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	jobIDs := make([]uuid.UUID, 0, len(jobs))
	for _, job := range jobs {
		jobIDs = append(jobIDs, job.ID)
	}
	applications, err := s.applications.ListByJobIDs(ctx, jobIDs)
	if err != nil {
		return nil, err
	}
	return s.annotateFreelancers(ctx, applications)
}

func (s *LifecycleService) annotateFreelancers(ctx context.Context, applications []models.Application) ([]ApplicationWithFreelancer, error) {
	annotated := make([]ApplicationWithFreelancer, 0, len(applications))
	for _, application := range applications {
		entry := ApplicationWithFreelancer{Application: application}
		freelancer, err := s.freelancers.GetByID(ctx, application.FreelancerID)
		switch {
		case err == nil:
			entry.Freelancer = &FreelancerSummary{
				ID:       freelancer.ID,
				Name:     freelancer.Name,
				Email:    freelancer.Email,
				Skills:   freelancer.Skills,
				Rating:   freelancer.Rating,
				Bio:      freelancer.Bio,
				Location: freelancer.Location,
			}
		case apperrors.Is(err, apperrors.KindNotFound):
			// Vanished freelancer; keep the application with no summary.
		default:
			return nil, err
		}
		annotated = append(annotated, entry)
	}
	return annotated, nil
}

func isKnownJobStatus(status string) bool {
	switch status {
	case models.JobStatusActive, models.JobStatusCompleted, models.JobStatusCancelled:
		return true
	default:
		return false
	}
}
