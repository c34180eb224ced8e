package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaiVignesh27/unified-platform/internal/apperrors"
	"github.com/SaiVignesh27/unified-platform/internal/models"
)

func newDashboard(env *testEnv) *DashboardService {
	return NewDashboardService(env.jobs, env.applications, env.recruiters)
}

func TestRecruiterStats(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	dashboard := newDashboard(env)
	recruiter := env.addRecruiter(t, "sarah", "TechCorp")

	// Three jobs; applicants spread 2 / 0 / 1, one of them accepted.
	var jobs []*models.Job
	for _, title := range []string{"API Engineer", "Data Engineer", "SRE"} {
		input := validJobInput()
		input.Title = title
		job, err := env.lifecycle.PostJob(ctx, recruiter.ID, input)
		require.NoError(t, err)
		jobs = append(jobs, job)
	}

	applicants := []*models.Freelancer{
		env.addFreelancer(t, "john", "Go"),
		env.addFreelancer(t, "emma", "Go"),
		env.addFreelancer(t, "li", "Go"),
	}
	_, err := env.lifecycle.Apply(ctx, jobs[0].ID, applicants[0].ID, "")
	require.NoError(t, err)
	_, err = env.lifecycle.Apply(ctx, jobs[0].ID, applicants[1].ID, "")
	require.NoError(t, err)
	accepted, err := env.lifecycle.Apply(ctx, jobs[2].ID, applicants[2].ID, "")
	require.NoError(t, err)
	_, err = env.lifecycle.SetApplicationStatus(ctx, accepted.ID, recruiter.ID, models.ApplicationStatusAccepted)
	require.NoError(t, err)

	// One job completed.
	_, err = env.lifecycle.UpdateJob(ctx, jobs[1].ID, recruiter.ID, JobInput{Status: models.JobStatusCompleted})
	require.NoError(t, err)

	stats, err := dashboard.RecruiterStats(ctx, recruiter.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalListings)
	assert.Equal(t, 1, stats.SuccessfulHires)
	assert.Equal(t, int64(3), stats.TotalApplications)
	assert.Equal(t, int64(2), stats.PendingApplications)
	assert.Equal(t, int64(1), stats.AcceptedApplications)
	assert.Equal(t, int64(2), stats.ActiveJobs)
	assert.Equal(t, int64(1), stats.CompletedJobs)
}

func TestRecruiterStatsUnknownRecruiter(t *testing.T) {
	env := newTestEnv()
	dashboard := newDashboard(env)
	_, err := dashboard.RecruiterStats(context.Background(), uuid.New())
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestFreelancerDashboardJobs(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	dashboard := newDashboard(env)
	recruiter := env.addRecruiter(t, "sarah", "TechCorp")
	freelancer := env.addFreelancer(t, "john", "Go")

	first, err := env.lifecycle.PostJob(ctx, recruiter.ID, validJobInput())
	require.NoError(t, err)
	input := validJobInput()
	input.Title = "Data Engineer"
	second, err := env.lifecycle.PostJob(ctx, recruiter.ID, input)
	require.NoError(t, err)

	application, err := env.lifecycle.Apply(ctx, first.ID, freelancer.ID, "")
	require.NoError(t, err)
	_, err = env.lifecycle.Apply(ctx, second.ID, freelancer.ID, "")
	require.NoError(t, err)

	// Deleting one job must not break the listing; the orphaned
	// application is simply skipped.
	require.NoError(t, env.lifecycle.DeleteJob(ctx, second.ID, recruiter.ID))

	jobs, err := dashboard.FreelancerDashboardJobs(ctx, freelancer.ID)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, first.ID, jobs[0].ID)
	assert.Equal(t, models.ApplicationStatusPending, jobs[0].ApplicationStatus)
	assert.Equal(t, application.ID, jobs[0].ApplicationID)
}
