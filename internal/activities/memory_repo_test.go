package activities_test

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/2beens/fittrack/internal/activities"
)

// memoryRepo keeps catalog and log records in memory. It mirrors the
// behaviour of the postgres repo, including all-or-nothing bulk writes.
type memoryRepo struct {
	mu         sync.Mutex
	nextID     int
	activities []activities.Activity
	logs       []activities.ActivityLog
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{nextID: 1}
}

func (r *memoryRepo) id() int {
	id := r.nextID
	r.nextID++
	return id
}

func (r *memoryRepo) SeedActivities(_ context.Context, owner activities.Owner, toAdd []activities.Activity) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.activities {
		if a.Owner == owner {
			return 0, fmt.Errorf("owner [%s] already seeded: %w", owner, activities.ErrConflict)
		}
	}
	for _, a := range toAdd {
		a.ID = r.id()
		r.activities = append(r.activities, a)
	}
	return len(toAdd), nil
}

func (r *memoryRepo) ListActivities(_ context.Context, owner activities.Owner) ([]activities.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := make([]activities.Activity, 0)
	for _, a := range r.activities {
		if a.Owner == owner {
			list = append(list, a)
		}
	}
	return list, nil
}

func (r *memoryRepo) GetActivityByName(_ context.Context, owner activities.Owner, name string) (*activities.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.activities {
		if a.Owner == owner && a.Name == name {
			return &a, nil
		}
	}
	return nil, activities.ErrNotFound
}

func (r *memoryRepo) AddActivity(_ context.Context, activity activities.Activity) (*activities.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity.ID = r.id()
	r.activities = append(r.activities, activity)
	return &activity, nil
}

func (r *memoryRepo) UpdateActivity(_ context.Context, activity activities.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.activities {
		if a.ID == activity.ID && a.Owner == activity.Owner {
			r.activities[i] = activity
			return nil
		}
	}
	return activities.ErrNotFound
}

func (r *memoryRepo) DeleteActivity(_ context.Context, id int, owner activities.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.activities {
		if a.ID == id && a.Owner == owner {
			r.activities = append(r.activities[:i], r.activities[i+1:]...)
			return nil
		}
	}
	return activities.ErrNotFound
}

func (r *memoryRepo) AddLog(_ context.Context, activityLog activities.ActivityLog) (*activities.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activityLog.ID = r.id()
	r.logs = append(r.logs, activityLog)
	return &activityLog, nil
}

func (r *memoryRepo) AddLogs(_ context.Context, activityLogs []activities.ActivityLog) ([]activities.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]activities.ActivityLog, 0, len(activityLogs))
	for _, l := range activityLogs {
		l.ID = r.id()
		stored = append(stored, l)
	}
	r.logs = append(r.logs, stored...)
	return stored, nil
}

func (r *memoryRepo) ListLogs(_ context.Context, params activities.LogParams) ([]activities.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := make([]activities.ActivityLog, 0)
	for _, l := range r.logs {
		if l.Owner != params.Owner {
			continue
		}
		if params.ActivityName != "" && l.ActivityName != params.ActivityName {
			continue
		}
		if params.From != nil && l.Date.Before(*params.From) {
			continue
		}
		if params.To != nil && l.Date.After(*params.To) {
			continue
		}
		list = append(list, l)
	}
	// same order as the postgres query: date DESC, id DESC
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.After(list[j].Date)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (r *memoryRepo) DeleteLog(_ context.Context, id int, owner activities.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, l := range r.logs {
		if l.ID == id && l.Owner == owner {
			r.logs = append(r.logs[:i], r.logs[i+1:]...)
			return nil
		}
	}
	return activities.ErrNotFound
}

func (r *memoryRepo) ClearLogs(_ context.Context, owner activities.Owner) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]activities.ActivityLog, 0, len(r.logs))
	for _, l := range r.logs {
		if l.Owner != owner {
			kept = append(kept, l)
		}
	}
	removed := int64(len(r.logs) - len(kept))
	r.logs = kept
	return removed, nil
}
