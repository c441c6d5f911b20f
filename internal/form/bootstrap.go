package form

import (
	"context"
	"log/slog"
	"sync"
)

type mountTask struct {
	name string
	run  func(ctx context.Context) error
}

// Activate runs the one-shot load tasks (position, categories, regions)
// concurrently and waits for them. Failures are logged and leave the
// corresponding slice at its empty default. Only the first call does work.
func (s *Session) Activate(ctx context.Context) {
	s.mu.Lock()
	if s.activated {
		s.mu.Unlock()
		return
	}
	s.activated = true
	s.mu.Unlock()

	var wg sync.WaitGroup
	for _, task := range s.mountTasks() {
		wg.Add(1)
		go func(task mountTask) {
			defer wg.Done()
			if err := task.run(ctx); err != nil {
				slog.Warn("Form load task failed", "task", task.name, "err", err)
			}
		}(task)
	}
	wg.Wait()
}

func (s *Session) mountTasks() []mountTask {
	tasks := []mountTask{
		{name: "categories", run: s.loadCategories},
		{name: "regions", run: s.loadRegions},
	}
	if s.deps.Locator != nil {
		tasks = append(tasks, mountTask{name: "position", run: s.locate})
	}
	return tasks
}

func (s *Session) locate(ctx context.Context) error {
	c, err := s.deps.Locator.CurrentPosition(ctx)
	if err != nil {
		return err
	}
	s.applyDefaultCenter(c)
	slog.Debug("Default map center resolved", "lat", c.Latitude, "lng", c.Longitude)
	return nil
}

func (s *Session) loadCategories(ctx context.Context) error {
	categories, err := s.deps.Categories.FetchCategories(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = categories
	return nil
}

func (s *Session) loadRegions(ctx context.Context) error {
	regions, err := s.deps.Regions.FetchRegions(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.regions = regions
	return nil
}
