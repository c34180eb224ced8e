// Package storetest provides in-memory store implementations for tests.
// Reads return copies, so mutations only stick after an explicit Save, the
// same contract the gorm-backed stores honor. Each store carries optional
// error hooks to exercise the no-rollback failure modes.
package storetest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/SaiVignesh27/unified-platform/internal/apperrors"
	"github.com/SaiVignesh27/unified-platform/internal/models"
	"github.com/SaiVignesh27/unified-platform/internal/store"
)

type Freelancers struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]models.Freelancer
	SaveErr error
}

func NewFreelancers() *Freelancers {
	return &Freelancers{byID: make(map[uuid.UUID]models.Freelancer)}
}

func (s *Freelancers) Create(ctx context.Context, freelancer *models.Freelancer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if freelancer.ID == uuid.Nil {
		freelancer.ID = uuid.New()
	}
	s.byID[freelancer.ID] = *freelancer
	return nil
}

func (s *Freelancers) GetByID(ctx context.Context, id uuid.UUID) (*models.Freelancer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	freelancer, ok := s.byID[id]
	if !ok {
		return nil, apperrors.NotFound("freelancer")
	}
	clone := freelancer
	return &clone, nil
}

func (s *Freelancers) GetByEmail(ctx context.Context, email string) (*models.Freelancer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, freelancer := range s.byID {
		if freelancer.Email == email {
			clone := freelancer
			return &clone, nil
		}
	}
	return nil, apperrors.NotFound("freelancer")
}

func (s *Freelancers) List(ctx context.Context) ([]models.Freelancer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	freelancers := make([]models.Freelancer, 0, len(s.byID))
	for _, freelancer := range s.byID {
		freelancers = append(freelancers, freelancer)
	}
	return freelancers, nil
}

func (s *Freelancers) Search(ctx context.Context, filter store.FreelancerFilter) ([]models.Freelancer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []models.Freelancer
	for _, freelancer := range s.byID {
		if filter.Query != "" &&
			!containsFold(freelancer.Name, filter.Query) &&
			!containsFold(freelancer.Bio, filter.Query) {
			continue
		}
		if len(filter.Skills) > 0 && !overlaps(freelancer.Skills, filter.Skills) {
			continue
		}
		if filter.Location != "" && !containsFold(freelancer.Location, filter.Location) {
			continue
		}
		matched = append(matched, freelancer)
	}
	return matched, nil
}

func (s *Freelancers) Save(ctx context.Context, freelancer *models.Freelancer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.byID[freelancer.ID] = *freelancer
	return nil
}

type Recruiters struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]models.Recruiter
	SaveErr error
}

func NewRecruiters() *Recruiters {
	return &Recruiters{byID: make(map[uuid.UUID]models.Recruiter)}
}

func (s *Recruiters) Create(ctx context.Context, recruiter *models.Recruiter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if recruiter.ID == uuid.Nil {
		recruiter.ID = uuid.New()
	}
	s.byID[recruiter.ID] = *recruiter
	return nil
}

func (s *Recruiters) GetByID(ctx context.Context, id uuid.UUID) (*models.Recruiter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recruiter, ok := s.byID[id]
	if !ok {
		return nil, apperrors.NotFound("recruiter")
	}
	clone := recruiter
	return &clone, nil
}

func (s *Recruiters) GetByEmail(ctx context.Context, email string) (*models.Recruiter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, recruiter := range s.byID {
		if recruiter.Email == email {
			clone := recruiter
			return &clone, nil
		}
	}
	return nil, apperrors.NotFound("recruiter")
}

func (s *Recruiters) List(ctx context.Context) ([]models.Recruiter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recruiters := make([]models.Recruiter, 0, len(s.byID))
	for _, recruiter := range s.byID {
		recruiters = append(recruiters, recruiter)
	}
	return recruiters, nil
}

func (s *Recruiters) Save(ctx context.Context, recruiter *models.Recruiter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.byID[recruiter.ID] = *recruiter
	return nil
}

type Jobs struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]models.Job
	order   []uuid.UUID
	SaveErr error
}

func NewJobs() *Jobs {
	return &Jobs{byID: make(map[uuid.UUID]models.Job)}
}

func (s *Jobs) Create(ctx context.Context, job *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	s.byID[job.ID] = *job
	s.order = append(s.order, job.ID)
	return nil
}

func (s *Jobs) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.byID[id]
	if !ok {
		return nil, apperrors.NotFound("job")
	}
	clone := job
	return &clone, nil
}

func (s *Jobs) ListActive(ctx context.Context) ([]models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var jobs []models.Job
	for _, id := range s.order {
		if job, ok := s.byID[id]; ok && job.Status == models.JobStatusActive {
			jobs = append(jobs, job)
		}
	}
	// Newest first, as the real store orders by created_at DESC.
	sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].CreatedAt.After(jobs[j].CreatedAt) })
	return jobs, nil
}

func (s *Jobs) Search(ctx context.Context, filter store.JobFilter) ([]models.Job, error) {
	active, err := s.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	var matched []models.Job
	for _, job := range active {
		if filter.Query != "" &&
			!containsFold(job.Title, filter.Query) &&
			!containsFold(job.Description, filter.Query) {
			continue
		}
		if len(filter.Skills) > 0 && !overlaps(job.SkillsRequired, filter.Skills) {
			continue
		}
		if filter.Location != "" && !containsFold(job.Location, filter.Location) {
			continue
		}
		matched = append(matched, job)
	}
	return matched, nil
}

func (s *Jobs) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var jobs []models.Job
	for _, id := range s.order {
		if job, ok := s.byID[id]; ok && job.RecruiterID == recruiterID {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (s *Jobs) CountByRecruiter(ctx context.Context, recruiterID uuid.UUID, status string) (int64, error) {
	jobs, err := s.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		return 0, err
	}
	var count int64
	for _, job := range jobs {
		if status == "" || job.Status == status {
			count++
		}
	}
	return count, nil
}

func (s *Jobs) Save(ctx context.Context, job *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.byID[job.ID] = *job
	return nil
}

func (s *Jobs) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
	return nil
}

type Applications struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]models.Application
	order   []uuid.UUID
	SaveErr error
}

func NewApplications() *Applications {
	return &Applications{byID: make(map[uuid.UUID]models.Application)}
}

func (s *Applications) Create(ctx context.Context, application *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if application.ID == uuid.Nil {
		application.ID = uuid.New()
	}
	s.byID[application.ID] = *application
	s.order = append(s.order, application.ID)
	return nil
}

func (s *Applications) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	application, ok := s.byID[id]
	if !ok {
		return nil, apperrors.NotFound("application")
	}
	clone := application
	return &clone, nil
}

func (s *Applications) FindByJobAndFreelancer(ctx context.Context, jobID, freelancerID uuid.UUID) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, application := range s.byID {
		if application.JobID == jobID && application.FreelancerID == freelancerID {
			clone := application
			return &clone, nil
		}
	}
	return nil, apperrors.NotFound("application")
}

func (s *Applications) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error) {
	return s.list(func(a models.Application) bool { return a.JobID == jobID }), nil
}

func (s *Applications) ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]models.Application, error) {
	return s.list(func(a models.Application) bool { return a.FreelancerID == freelancerID }), nil
}

func (s *Applications) ListByJobIDs(ctx context.Context, jobIDs []uuid.UUID) ([]models.Application, error) {
	wanted := make(map[uuid.UUID]bool, len(jobIDs))
	for _, id := range jobIDs {
		wanted[id] = true
	}
	return s.list(func(a models.Application) bool { return wanted[a.JobID] }), nil
}

func (s *Applications) CountByJobIDs(ctx context.Context, jobIDs []uuid.UUID, status string) (int64, error) {
	applications, _ := s.ListByJobIDs(ctx, jobIDs)
	var count int64
	for _, application := range applications {
		if status == "" || application.Status == status {
			count++
		}
	}
	return count, nil
}

func (s *Applications) Save(ctx context.Context, application *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.byID[application.ID] = *application
	return nil
}

func (s *Applications) list(keep func(models.Application) bool) []models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	var applications []models.Application
	for _, id := range s.order {
		if application, ok := s.byID[id]; ok && keep(application) {
			applications = append(applications, application)
		}
	}
	return applications
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func overlaps(have []string, want []string) bool {
	owned := make(map[string]bool, len(have))
	for _, skill := range have {
		owned[strings.ToLower(skill)] = true
	}
	for _, skill := range want {
		if owned[strings.ToLower(skill)] {
			return true
		}
	}
	return false
}
