package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/SaiVignesh27/unified-platform/internal/models"
	"github.com/SaiVignesh27/unified-platform/internal/store"
)

const maxRecommendations = 5

// MatcherService rebuilds a freelancer's recommendedJobs cache by scoring
// skill overlap against the active job listings. Like the other denormalized
// caches this is best effort: it is rebuilt only when asked, never invalidated.
type MatcherService struct {
	jobs        store.JobStore
	freelancers store.FreelancerStore
}

func NewMatcherService(jobs store.JobStore, freelancers store.FreelancerStore) *MatcherService {
	return &MatcherService{jobs: jobs, freelancers: freelancers}
}

// RefreshRecommendations scans active jobs, keeps those sharing at least one
// skill with the freelancer, and writes the top matches (by fraction of the
// job's required skills covered) back onto the freelancer record.
func (s *MatcherService) RefreshRecommendations(ctx context.Context, freelancerID uuid.UUID) (models.RecommendationList, error) {
	freelancer, err := s.freelancers.GetByID(ctx, freelancerID)
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobs.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	owned := make(map[string]bool, len(freelancer.Skills))
	for _, skill := range freelancer.Skills {
		owned[strings.ToLower(strings.TrimSpace(skill))] = true
	}

	type scored struct {
		job     models.Job
		percent int
	}
	var candidates []scored
	for _, job := range jobs {
		if len(job.SkillsRequired) == 0 {
			continue
		}
		shared := 0
		for _, skill := range job.SkillsRequired {
			if owned[strings.ToLower(strings.TrimSpace(skill))] {
				shared++
			}
		}
		if shared == 0 {
			continue
		}
		candidates = append(candidates, scored{job: job, percent: shared * 100 / len(job.SkillsRequired)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].percent > candidates[j].percent
	})
	if len(candidates) > maxRecommendations {
		candidates = candidates[:maxRecommendations]
	}

	recommendations := make(models.RecommendationList, 0, len(candidates))
	for _, candidate := range candidates {
		recommendations = append(recommendations, models.RecommendedJob{
			ID:      candidate.job.ID,
			Title:   candidate.job.Title,
			Company: candidate.job.Company,
			Salary:  candidate.job.Budget,
			Match:   fmt.Sprintf("%d%%", candidate.percent),
			Skills:  candidate.job.SkillsRequired,
		})
	}

	freelancer.RecommendedJobs = recommendations
	if err := s.freelancers.Save(ctx, freelancer); err != nil {
		return nil, err
	}
	return recommendations, nil
}
