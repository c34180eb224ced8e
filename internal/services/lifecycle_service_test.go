package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaiVignesh27/unified-platform/internal/apperrors"
	"github.com/SaiVignesh27/unified-platform/internal/models"
	"github.com/SaiVignesh27/unified-platform/internal/store/storetest"
)

type testEnv struct {
	freelancers  *storetest.Freelancers
	recruiters   *storetest.Recruiters
	jobs         *storetest.Jobs
	applications *storetest.Applications
	lifecycle    *LifecycleService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		freelancers:  storetest.NewFreelancers(),
		recruiters:   storetest.NewRecruiters(),
		jobs:         storetest.NewJobs(),
		applications: storetest.NewApplications(),
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	env.lifecycle = NewLifecycleService(env.jobs, env.applications, env.recruiters, env.freelancers, log)
	return env
}

func (env *testEnv) addRecruiter(t *testing.T, name, company string) *models.Recruiter {
	t.Helper()
	recruiter := &models.Recruiter{
		Name:    name,
		Email:   name + "@example.com",
		Role:    models.RoleRecruiter,
		Company: company,
	}
	require.NoError(t, env.recruiters.Create(context.Background(), recruiter))
	return recruiter
}

func (env *testEnv) addFreelancer(t *testing.T, name string, skills ...string) *models.Freelancer {
	t.Helper()
	freelancer := &models.Freelancer{
		Name:   name,
		Email:  name + "@example.com",
		Role:   models.RoleFreelancer,
		Skills: skills,
	}
	require.NoError(t, env.freelancers.Create(context.Background(), freelancer))
	return freelancer
}

func validJobInput() JobInput {
	return JobInput{
		Title:          "Backend Developer",
		Description:    "Build marketplace APIs",
		Company:        "TechCorp",
		Location:       "Remote",
		SkillsRequired: []string{"Go"},
		Budget:         "$100",
		Deadline:       "2026-12-01",
	}
}

func TestPostJob(t *testing.T) {
	ctx := context.Background()

	t.Run("creates job and patches recruiter caches", func(t *testing.T) {
		env := newTestEnv()
		recruiter := env.addRecruiter(t, "sarah", "TechCorp")

		job, err := env.lifecycle.PostJob(ctx, recruiter.ID, validJobInput())
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusActive, job.Status)
		assert.Equal(t, recruiter.ID, job.RecruiterID)

		stored, err := env.recruiters.GetByID(ctx, recruiter.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.TotalListings)
		require.Len(t, stored.ActiveListings, 1)
		assert.Equal(t, job.ID, stored.ActiveListings[0].ID)
		assert.Equal(t, job.Title, stored.ActiveListings[0].Title)
	})

	t.Run("unknown recruiter", func(t *testing.T) {
		env := newTestEnv()
		_, err := env.lifecycle.PostJob(ctx, uuid.New(), validJobInput())
		assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})

	t.Run("blank required fields", func(t *testing.T) {
		env := newTestEnv()
		recruiter := env.addRecruiter(t, "sarah", "TechCorp")

		input := validJobInput()
		input.Title = " "
		input.Budget = ""
		_, err := env.lifecycle.PostJob(ctx, recruiter.ID, input)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.KindValidation))
		assert.Contains(t, err.Error(), "title")
		assert.Contains(t, err.Error(), "budget")
	})
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("first application is pending, duplicate rejected", func(t *testing.T) {
		env := newTestEnv()
		recruiter := env.addRecruiter(t, "sarah", "TechCorp")
		freelancer := env.addFreelancer(t, "john", "Go")
		job, err := env.lifecycle.PostJob(ctx, recruiter.ID, validJobInput())
		require.NoError(t, err)

		application, err := env.lifecycle.Apply(ctx, job.ID, freelancer.ID, "hi")
		require.NoError(t, err)
		assert.Equal(t, models.ApplicationStatusPending, application.Status)
		assert.Equal(t, "hi", application.CoverLetter)

		storedJob, err := env.jobs.GetByID(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, models.UUIDList{application.ID}, storedJob.Applications)

		_, err = env.lifecycle.Apply(ctx, job.ID, freelancer.ID, "hi again")
		assert.True(t, apperrors.Is(err, apperrors.KindDuplicate))

		all, err := env.applications.ListByJob(ctx, job.ID)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("missing job", func(t *testing.T) {
		env := newTestEnv()
		freelancer := env.addFreelancer(t, "john")
		_, err := env.lifecycle.Apply(ctx, uuid.New(), freelancer.ID, "hi")
		assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})
}

func TestSetApplicationStatus(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*testEnv, *models.Recruiter, *models.Freelancer, *models.Job, *models.Application) {
		env := newTestEnv()
		recruiter := env.addRecruiter(t, "sarah", "TechCorp")
		freelancer := env.addFreelancer(t, "john", "Go")
		job, err := env.lifecycle.PostJob(ctx, recruiter.ID, validJobInput())
		require.NoError(t, err)
		application, err := env.lifecycle.Apply(ctx, job.ID, freelancer.ID, "hi")
		require.NoError(t, err)
		return env, recruiter, freelancer, job, application
	}

	t.Run("accept fans out to recruiter and freelancer", func(t *testing.T) {
		env, recruiter, freelancer, job, application := setup(t)

		updated, err := env.lifecycle.SetApplicationStatus(ctx, application.ID, recruiter.ID, models.ApplicationStatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, models.ApplicationStatusAccepted, updated.Status)

		storedRecruiter, err := env.recruiters.GetByID(ctx, recruiter.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, storedRecruiter.SuccessfulHires)

		storedFreelancer, err := env.freelancers.GetByID(ctx, freelancer.ID)
		require.NoError(t, err)
		require.Len(t, storedFreelancer.ActiveProjects, 1)
		project := storedFreelancer.ActiveProjects[0]
		assert.Equal(t, job.ID, project.ID)
		assert.Equal(t, job.Title, project.Title)
		assert.Equal(t, job.Company, project.Client)
		assert.Equal(t, job.Deadline, project.DueDate)
		assert.Equal(t, models.ProjectStatusInProgress, project.Status)
		assert.Equal(t, 0, project.Progress)
	})

	t.Run("reject has no fan-out", func(t *testing.T) {
		env, recruiter, freelancer, _, application := setup(t)

		_, err := env.lifecycle.SetApplicationStatus(ctx, application.ID, recruiter.ID, models.ApplicationStatusRejected)
		require.NoError(t, err)

		storedRecruiter, _ := env.recruiters.GetByID(ctx, recruiter.ID)
		assert.Equal(t, 0, storedRecruiter.SuccessfulHires)
		storedFreelancer, _ := env.freelancers.GetByID(ctx, freelancer.ID)
		assert.Empty(t, storedFreelancer.ActiveProjects)
	})

	t.Run("terminal status can be rewritten", func(t *testing.T) {
		// Preserved permissive behavior: a second accept bumps the
		// counters again.
		env, recruiter, freelancer, _, application := setup(t)

		_, err := env.lifecycle.SetApplicationStatus(ctx, application.ID, recruiter.ID, models.ApplicationStatusAccepted)
		require.NoError(t, err)
		_, err = env.lifecycle.SetApplicationStatus(ctx, application.ID, recruiter.ID, models.ApplicationStatusAccepted)
		require.NoError(t, err)

		storedRecruiter, _ := env.recruiters.GetByID(ctx, recruiter.ID)
		assert.Equal(t, 2, storedRecruiter.SuccessfulHires)
		storedFreelancer, _ := env.freelancers.GetByID(ctx, freelancer.ID)
		assert.Len(t, storedFreelancer.ActiveProjects, 2)
	})

	t.Run("invalid status", func(t *testing.T) {
		env, recruiter, _, _, application := setup(t)
		_, err := env.lifecycle.SetApplicationStatus(ctx, application.ID, recruiter.ID, "withdrawn")
		assert.True(t, apperrors.Is(err, apperrors.KindValidation))
	})

	t.Run("foreign recruiter forbidden", func(t *testing.T) {
		env, _, _, _, application := setup(t)
		other := env.addRecruiter(t, "eve", "OtherCorp")
		_, err := env.lifecycle.SetApplicationStatus(ctx, application.ID, other.ID, models.ApplicationStatusAccepted)
		assert.True(t, apperrors.Is(err, apperrors.KindForbidden))
	})

	t.Run("partial failure leaves earlier writes in place", func(t *testing.T) {
		env, recruiter, freelancer, _, application := setup(t)
		env.freelancers.SaveErr = errors.New("disk full")

		_, err := env.lifecycle.SetApplicationStatus(ctx, application.ID, recruiter.ID, models.ApplicationStatusAccepted)
		require.Error(t, err)

		// Application and recruiter were written before the failure and
		// stay written; the freelancer projection is missing.
		storedApplication, _ := env.applications.GetByID(ctx, application.ID)
		assert.Equal(t, models.ApplicationStatusAccepted, storedApplication.Status)
		storedRecruiter, _ := env.recruiters.GetByID(ctx, recruiter.ID)
		assert.Equal(t, 1, storedRecruiter.SuccessfulHires)
		storedFreelancer, _ := env.freelancers.GetByID(ctx, freelancer.ID)
		assert.Empty(t, storedFreelancer.ActiveProjects)
	})
}

func TestUpdateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("re-syncs the listing cache", func(t *testing.T) {
		env := newTestEnv()
		recruiter := env.addRecruiter(t, "sarah", "TechCorp")
		job, err := env.lifecycle.PostJob(ctx, recruiter.ID, validJobInput())
		require.NoError(t, err)

		input := validJobInput()
		input.Title = "Senior Backend Developer"
		input.Budget = "$200"
		updated, err := env.lifecycle.UpdateJob(ctx, job.ID, recruiter.ID, input)
		require.NoError(t, err)
		assert.Equal(t, "Senior Backend Developer", updated.Title)

		stored, _ := env.recruiters.GetByID(ctx, recruiter.ID)
		require.Len(t, stored.ActiveListings, 1)
		assert.Equal(t, "Senior Backend Developer", stored.ActiveListings[0].Title)
		assert.Equal(t, "$200", stored.ActiveListings[0].Budget)
	})

	t.Run("omitted fields keep their values", func(t *testing.T) {
		env := newTestEnv()
		recruiter := env.addRecruiter(t, "sarah", "TechCorp")
		job, err := env.lifecycle.PostJob(ctx, recruiter.ID, validJobInput())
		require.NoError(t, err)

		// A status-only body is the usual "mark job done" call; it must
		// not blank the rest of the posting.
		updated, err := env.lifecycle.UpdateJob(ctx, job.ID, recruiter.ID, JobInput{Status: models.JobStatusCompleted})
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusCompleted, updated.Status)
		assert.Equal(t, job.Title, updated.Title)
		assert.Equal(t, job.Description, updated.Description)
		assert.Equal(t, job.Company, updated.Company)
		assert.Equal(t, job.Budget, updated.Budget)
		assert.Equal(t, job.Deadline, updated.Deadline)
		assert.Equal(t, job.SkillsRequired, updated.SkillsRequired)

		stored, _ := env.recruiters.GetByID(ctx, recruiter.ID)
		require.Len(t, stored.ActiveListings, 1)
		assert.Equal(t, job.Title, stored.ActiveListings[0].Title)
		assert.Equal(t, job.Budget, stored.ActiveListings[0].Budget)
	})

	t.Run("missing listing entry is skipped, not healed", func(t *testing.T) {
		env := newTestEnv()
		recruiter := env.addRecruiter(t, "sarah", "TechCorp")
		job, err := env.lifecycle.PostJob(ctx, recruiter.ID, validJobInput())
		require.NoError(t, err)

		// Simulate a listing cache that lost its entry.
		stored, _ := env.recruiters.GetByID(ctx, recruiter.ID)
		stored.ActiveListings = nil
		require.NoError(t, env.recruiters.Save(ctx, stored))

		_, err = env.lifecycle.UpdateJob(ctx, job.ID, recruiter.ID, validJobInput())
		require.NoError(t, err)
		after, _ := env.recruiters.GetByID(ctx, recruiter.ID)
		assert.Empty(t, after.ActiveListings)
	})

	t.Run("foreign recruiter forbidden", func(t *testing.T) {
		env := newTestEnv()
		recruiter := env.addRecruiter(t, "sarah", "TechCorp")
		other := env.addRecruiter(t, "eve", "OtherCorp")
		job, err := env.lifecycle.PostJob(ctx, recruiter.ID, validJobInput())
		require.NoError(t, err)

		_, err = env.lifecycle.UpdateJob(ctx, job.ID, other.ID, validJobInput())
		assert.True(t, apperrors.Is(err, apperrors.KindForbidden))
	})
}

func TestDeleteJob(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	recruiter := env.addRecruiter(t, "sarah", "TechCorp")
	freelancer := env.addFreelancer(t, "john", "Go")
	job, err := env.lifecycle.PostJob(ctx, recruiter.ID, validJobInput())
	require.NoError(t, err)
	application, err := env.lifecycle.Apply(ctx, job.ID, freelancer.ID, "hi")
	require.NoError(t, err)

	require.NoError(t, env.lifecycle.DeleteJob(ctx, job.ID, recruiter.ID))

	_, err = env.jobs.GetByID(ctx, job.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	stored, _ := env.recruiters.GetByID(ctx, recruiter.ID)
	assert.Empty(t, stored.ActiveListings)
	// totalListings is a lifetime counter; deletion does not decrement it.
	assert.Equal(t, 1, stored.TotalListings)

	// The application survives as an orphan.
	orphan, err := env.applications.GetByID(ctx, application.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, orphan.JobID)
}

func TestUpdateProjectProgress(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*testEnv, *models.Freelancer, uuid.UUID) {
		env := newTestEnv()
		recruiter := env.addRecruiter(t, "sarah", "TechCorp")
		freelancer := env.addFreelancer(t, "john", "Go")
		job, err := env.lifecycle.PostJob(ctx, recruiter.ID, validJobInput())
		require.NoError(t, err)
		application, err := env.lifecycle.Apply(ctx, job.ID, freelancer.ID, "hi")
		require.NoError(t, err)
		_, err = env.lifecycle.SetApplicationStatus(ctx, application.ID, recruiter.ID, models.ApplicationStatusAccepted)
		require.NoError(t, err)
		return env, freelancer, job.ID
	}

	t.Run("partial progress keeps status", func(t *testing.T) {
		env, freelancer, projectID := setup(t)
		projects, err := env.lifecycle.UpdateProjectProgress(ctx, freelancer.ID, projectID, 65)
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, 65, projects[0].Progress)
		assert.Equal(t, models.ProjectStatusInProgress, projects[0].Status)
	})

	t.Run("reaching 100 completes the project", func(t *testing.T) {
		env, freelancer, projectID := setup(t)
		projects, err := env.lifecycle.UpdateProjectProgress(ctx, freelancer.ID, projectID, 100)
		require.NoError(t, err)
		assert.Equal(t, models.ProjectStatusCompleted, projects[0].Status)
	})

	t.Run("unknown project", func(t *testing.T) {
		env, freelancer, _ := setup(t)
		_, err := env.lifecycle.UpdateProjectProgress(ctx, freelancer.ID, uuid.New(), 10)
		assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})

	t.Run("out of range", func(t *testing.T) {
		env, freelancer, projectID := setup(t)
		_, err := env.lifecycle.UpdateProjectProgress(ctx, freelancer.ID, projectID, 120)
		assert.True(t, apperrors.Is(err, apperrors.KindValidation))
	})
}

func TestListJobApplications(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	recruiter := env.addRecruiter(t, "sarah", "TechCorp")
	freelancer := env.addFreelancer(t, "john", "Go")
	job, err := env.lifecycle.PostJob(ctx, recruiter.ID, validJobInput())
	require.NoError(t, err)
	_, err = env.lifecycle.Apply(ctx, job.ID, freelancer.ID, "hi")
	require.NoError(t, err)

	t.Run("annotates applicant summary", func(t *testing.T) {
		applications, err := env.lifecycle.ListJobApplications(ctx, job.ID, recruiter.ID)
		require.NoError(t, err)
		require.Len(t, applications, 1)
		require.NotNil(t, applications[0].Freelancer)
		assert.Equal(t, freelancer.Name, applications[0].Freelancer.Name)
	})

	t.Run("foreign recruiter forbidden", func(t *testing.T) {
		other := env.addRecruiter(t, "eve", "OtherCorp")
		_, err := env.lifecycle.ListJobApplications(ctx, job.ID, other.ID)
		assert.True(t, apperrors.Is(err, apperrors.KindForbidden))
	})
}

// End-to-end scenario: post, apply, accept.
func TestHiringFlow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	recruiter := env.addRecruiter(t, "sarah", "TechCorp")
	freelancer := env.addFreelancer(t, "john", "Go")

	input := validJobInput()
	input.Budget = "$100"
	input.SkillsRequired = []string{"Go"}
	job, err := env.lifecycle.PostJob(ctx, recruiter.ID, input)
	require.NoError(t, err)

	application, err := env.lifecycle.Apply(ctx, job.ID, freelancer.ID, "hi")
	require.NoError(t, err)

	updated, err := env.lifecycle.SetApplicationStatus(ctx, application.ID, recruiter.ID, models.ApplicationStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, updated.Status)

	storedRecruiter, _ := env.recruiters.GetByID(ctx, recruiter.ID)
	assert.Equal(t, 1, storedRecruiter.SuccessfulHires)

	storedFreelancer, _ := env.freelancers.GetByID(ctx, freelancer.ID)
	require.Len(t, storedFreelancer.ActiveProjects, 1)
	assert.Equal(t, job.Title, storedFreelancer.ActiveProjects[0].Title)
}
