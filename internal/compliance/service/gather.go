package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"comply/internal/compliance"
	taskmodels "comply/internal/task/models"
	id "comply/pkg/domain"
)

// overviewInputs is everything an overview is computed from.
type overviewInputs struct {
	latest   []compliance.LatestSubmission
	tasks    []taskmodels.Task
	policies compliance.Progress
	people   compliance.Progress
}

// gather reads the four categories in parallel. The first failure cancels
// the remaining reads.
func (s *Service) gather(ctx context.Context, orgID id.OrganizationID) (*overviewInputs, error) {
	ctx, cancel := context.WithTimeout(ctx, gatherTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	in := &overviewInputs{}

	g.Go(func() error {
		start := time.Now()
		latest, err := s.submissions.LatestSubmissions(ctx, orgID)
		s.metrics.ObserveGatherLatency("documents", time.Since(start))
		if err != nil {
			return err
		}
		in.latest = latest
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		tasks, err := s.tasks.ListByOrganization(ctx, orgID)
		s.metrics.ObserveGatherLatency("tasks", time.Since(start))
		if err != nil {
			return err
		}
		in.tasks = make([]taskmodels.Task, 0, len(tasks))
		for _, t := range tasks {
			in.tasks = append(in.tasks, *t)
		}
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		p, err := s.policies.PolicyProgress(ctx, orgID)
		s.metrics.ObserveGatherLatency("policies", time.Since(start))
		if err != nil {
			return err
		}
		in.policies = p
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		p, err := s.people.PeopleProgress(ctx, orgID)
		s.metrics.ObserveGatherLatency("people", time.Since(start))
		if err != nil {
			return err
		}
		in.people = p
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return in, nil
}
