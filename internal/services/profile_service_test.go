package services

import (
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaiVignesh27/unified-platform/internal/store"
)

func TestFreelancerUpdateProfile(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := NewFreelancerService(env.freelancers, env.applications, env.jobs)
	freelancer := env.addFreelancer(t, "john", "Go")
	freelancer.Bio = "original bio"
	require.NoError(t, env.freelancers.Save(ctx, freelancer))

	// Empty fields are left alone; provided ones are patched.
	updated, err := svc.UpdateProfile(ctx, freelancer.ID, FreelancerProfileUpdate{
		Location: "Berlin",
		Skills:   []string{"Go", "Postgres"},
	})
	require.NoError(t, err)
	assert.Equal(t, "john", updated.Name)
	assert.Equal(t, "original bio", updated.Bio)
	assert.Equal(t, "Berlin", updated.Location)
	assert.Equal(t, pq.StringArray{"Go", "Postgres"}, updated.Skills)
}

func TestFreelancerSearch(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := NewFreelancerService(env.freelancers, env.applications, env.jobs)

	john := env.addFreelancer(t, "john", "Go", "Postgres")
	john.Location = "Berlin"
	require.NoError(t, env.freelancers.Save(ctx, john))
	env.addFreelancer(t, "emma", "Figma")

	results, err := svc.Search(ctx, store.FreelancerFilter{Skills: []string{"go"}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, john.ID, results[0].ID)

	results, err = svc.Search(ctx, store.FreelancerFilter{Location: "berlin"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, john.ID, results[0].ID)
}

func TestMyApplications(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := NewFreelancerService(env.freelancers, env.applications, env.jobs)
	recruiter := env.addRecruiter(t, "sarah", "TechCorp")
	freelancer := env.addFreelancer(t, "john", "Go")

	kept, err := env.lifecycle.PostJob(ctx, recruiter.ID, validJobInput())
	require.NoError(t, err)
	input := validJobInput()
	input.Title = "Data Engineer"
	doomed, err := env.lifecycle.PostJob(ctx, recruiter.ID, input)
	require.NoError(t, err)

	_, err = env.lifecycle.Apply(ctx, kept.ID, freelancer.ID, "")
	require.NoError(t, err)
	_, err = env.lifecycle.Apply(ctx, doomed.ID, freelancer.ID, "")
	require.NoError(t, err)
	require.NoError(t, env.lifecycle.DeleteJob(ctx, doomed.ID, recruiter.ID))

	applications, err := svc.MyApplications(ctx, freelancer.ID)
	require.NoError(t, err)
	require.Len(t, applications, 2)

	byJob := map[string]*JobSummary{}
	for _, application := range applications {
		key := application.JobID.String()
		byJob[key] = application.Job
	}
	require.NotNil(t, byJob[kept.ID.String()])
	assert.Equal(t, kept.Title, byJob[kept.ID.String()].Title)
	assert.Nil(t, byJob[doomed.ID.String()])
}

func TestRecruiterUpdateProfile(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := NewRecruiterService(env.recruiters)
	recruiter := env.addRecruiter(t, "sarah", "TechCorp")

	updated, err := svc.UpdateProfile(ctx, recruiter.ID, RecruiterProfileUpdate{
		Company:    "NewCorp",
		Experience: "8 years",
	})
	require.NoError(t, err)
	assert.Equal(t, "sarah", updated.Name)
	assert.Equal(t, "NewCorp", updated.Company)
	assert.Equal(t, "8 years", updated.Experience)
}
