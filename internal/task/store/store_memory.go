package store

import (
	"context"
	"slices"
	"sort"
	"sync"

	"comply/internal/task/models"
	id "comply/pkg/domain"
	"comply/pkg/platform/sentinel"
)

// InMemoryStore holds tasks and the latest run of each automation.
type InMemoryStore struct {
	mu    sync.RWMutex
	tasks map[id.TaskID]*models.Task
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{tasks: make(map[id.TaskID]*models.Task)}
}

// Save inserts or replaces a task.
func (s *InMemoryStore) Save(_ context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID] = cloneTask(task)
	return nil
}

// RecordRun keeps run as the automation's latest run unless a newer one is
// already stored.
func (s *InMemoryStore) RecordRun(_ context.Context, taskID id.TaskID, automationID id.AutomationID, run models.AutomationRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[taskID]
	if !ok {
		return sentinel.ErrNotFound
	}
	for i := range task.Automations {
		a := &task.Automations[i]
		if a.ID != automationID {
			continue
		}
		if a.LatestRun == nil || !run.CreatedAt.Before(a.LatestRun.CreatedAt) {
			r := run
			a.LatestRun = &r
		}
		return nil
	}
	return sentinel.ErrNotFound
}

// ListByOrganization returns the organization's tasks ordered by id.
func (s *InMemoryStore) ListByOrganization(_ context.Context, orgID id.OrganizationID) ([]*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Task, 0)
	for _, t := range s.tasks {
		if t.OrganizationID == orgID {
			out = append(out, cloneTask(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func cloneTask(t *models.Task) *models.Task {
	c := *t
	c.Automations = slices.Clone(t.Automations)
	for i := range c.Automations {
		if run := c.Automations[i].LatestRun; run != nil {
			r := *run
			c.Automations[i].LatestRun = &r
		}
	}
	return &c
}
