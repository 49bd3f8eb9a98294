package activities

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=activities_test

// MaxBulkLogs is the largest number of sessions accepted by a single LogSessions call.
const MaxBulkLogs = 1000

// MaxDurationMinutes is the largest duration the activity_log INTEGER column can hold.
const MaxDurationMinutes = math.MaxInt32

type activitiesRepo interface {
	SeedActivities(ctx context.Context, owner Owner, activities []Activity) (int, error)
	ListActivities(ctx context.Context, owner Owner) ([]Activity, error)
	GetActivityByName(ctx context.Context, owner Owner, name string) (*Activity, error)
	AddActivity(ctx context.Context, activity Activity) (*Activity, error)
	UpdateActivity(ctx context.Context, activity Activity) error
	DeleteActivity(ctx context.Context, id int, owner Owner) error

	AddLog(ctx context.Context, activityLog ActivityLog) (*ActivityLog, error)
	AddLogs(ctx context.Context, activityLogs []ActivityLog) ([]ActivityLog, error)
	ListLogs(ctx context.Context, params LogParams) ([]ActivityLog, error)
	DeleteLog(ctx context.Context, id int, owner Owner) error
	ClearLogs(ctx context.Context, owner Owner) (int64, error)
}

type Service struct {
	repo           activitiesRepo
	metricsManager *metrics.Manager
}

func NewService(repo activitiesRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func validateActivity(owner Owner, name string, kcalPerHour float64) error {
	if !owner.Valid() {
		return fmt.Errorf("%w: empty owner", ErrInvalidInput)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty activity name", ErrInvalidInput)
	}
	if !isFinite(kcalPerHour) || kcalPerHour <= 0 {
		return fmt.Errorf("%w: kcal per hour must be a positive number, got %v", ErrInvalidInput, kcalPerHour)
	}
	return nil
}

func validateSession(input LogSessionInput) error {
	if !input.Owner.Valid() {
		return fmt.Errorf("%w: empty owner", ErrInvalidInput)
	}
	if strings.TrimSpace(input.ActivityName) == "" {
		return fmt.Errorf("%w: empty activity name", ErrInvalidInput)
	}
	if input.DurationMinutes <= 0 || input.DurationMinutes > MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be between 1 and %d minutes, got %d", ErrInvalidInput, MaxDurationMinutes, input.DurationMinutes)
	}
	return nil
}

// SeedDefaults inserts DefaultActivities for an owner with an empty catalog and
// returns the number of inserted entries. An owner with any existing entry gets ErrConflict.
func (s *Service) SeedDefaults(ctx context.Context, owner Owner) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activities.seed")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("owner", owner.String()))

	if !owner.Valid() {
		return 0, fmt.Errorf("%w: empty owner", ErrInvalidInput)
	}

	count, err := s.repo.SeedActivities(ctx, owner, defaultActivitiesFor(owner))
	if err != nil {
		return 0, fmt.Errorf("seed activities for [%s]: %w", owner, err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterSeededOwners.Inc()
	}
	log.Debugf("seeded %d activities for [%s]", count, owner)

	return count, nil
}

func (s *Service) ListActivities(ctx context.Context, owner Owner) (_ []Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activities.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !owner.Valid() {
		return nil, fmt.Errorf("%w: empty owner", ErrInvalidInput)
	}

	activities, err := s.repo.ListActivities(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

func (s *Service) CreateActivity(ctx context.Context, owner Owner, name string, kcalPerHour float64) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activities.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := validateActivity(owner, name, kcalPerHour); err != nil {
		return nil, err
	}

	activity, err := s.repo.AddActivity(ctx, Activity{
		Owner:       owner,
		Name:        name,
		KcalPerHour: kcalPerHour,
	})
	if err != nil {
		return nil, fmt.Errorf("add activity: %w", err)
	}
	return activity, nil
}

func (s *Service) UpdateActivity(ctx context.Context, id int, owner Owner, name string, kcalPerHour float64) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activities.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("id", id))

	if err := validateActivity(owner, name, kcalPerHour); err != nil {
		return nil, err
	}

	activity := Activity{
		ID:          id,
		Owner:       owner,
		Name:        name,
		KcalPerHour: kcalPerHour,
	}
	if err := s.repo.UpdateActivity(ctx, activity); err != nil {
		return nil, fmt.Errorf("update activity %d: %w", id, err)
	}
	return &activity, nil
}

func (s *Service) DeleteActivity(ctx context.Context, id int, owner Owner) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activities.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("id", id))

	if !owner.Valid() {
		return fmt.Errorf("%w: empty owner", ErrInvalidInput)
	}

	if err := s.repo.DeleteActivity(ctx, id, owner); err != nil {
		return fmt.Errorf("delete activity %d: %w", id, err)
	}
	return nil
}

// LogSession stores a session of a catalog activity. The calories are computed from
// the rate the catalog entry has right now and stored with the session.
func (s *Service) LogSession(ctx context.Context, input LogSessionInput) (_ *ActivityLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activities.logs.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("activity", input.ActivityName))

	if err := validateSession(input); err != nil {
		return nil, err
	}

	activity, err := s.repo.GetActivityByName(ctx, input.Owner, input.ActivityName)
	if err != nil {
		return nil, fmt.Errorf("get activity [%s]: %w", input.ActivityName, err)
	}

	activityLog, err := newActivityLog(input, activity)
	if err != nil {
		return nil, err
	}

	stored, err := s.repo.AddLog(ctx, activityLog)
	if err != nil {
		return nil, fmt.Errorf("add activity log: %w", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterActivityLogs.Inc()
	}

	return stored, nil
}

// LogSessions stores up to MaxBulkLogs sessions at once. Either all of them are
// stored or none: one unknown activity name fails the whole batch.
func (s *Service) LogSessions(ctx context.Context, owner Owner, inputs []LogSessionInput) (_ []ActivityLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activities.logs.bulkadd")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("count", len(inputs)))

	if !owner.Valid() {
		return nil, fmt.Errorf("%w: empty owner", ErrInvalidInput)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: no sessions given", ErrInvalidInput)
	}
	if len(inputs) > MaxBulkLogs {
		return nil, fmt.Errorf("%w: at most %d sessions allowed, got %d", ErrInvalidInput, MaxBulkLogs, len(inputs))
	}

	catalog, err := s.repo.ListActivities(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	// catalog is ordered by id, the first entry wins for duplicate names
	byName := make(map[string]*Activity, len(catalog))
	for i := range catalog {
		if _, ok := byName[catalog[i].Name]; !ok {
			byName[catalog[i].Name] = &catalog[i]
		}
	}

	logs := make([]ActivityLog, 0, len(inputs))
	for i, input := range inputs {
		input.Owner = owner
		if err := validateSession(input); err != nil {
			return nil, fmt.Errorf("session %d: %w", i, err)
		}
		activity, ok := byName[input.ActivityName]
		if !ok {
			return nil, fmt.Errorf("session %d, activity [%s]: %w", i, input.ActivityName, ErrNotFound)
		}
		activityLog, err := newActivityLog(input, activity)
		if err != nil {
			return nil, fmt.Errorf("session %d: %w", i, err)
		}
		logs = append(logs, activityLog)
	}

	stored, err := s.repo.AddLogs(ctx, logs)
	if err != nil {
		return nil, fmt.Errorf("add activity logs: %w", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterActivityLogs.Add(float64(len(stored)))
	}

	return stored, nil
}

// newActivityLog fails for calories that cannot be stored or encoded as JSON.
func newActivityLog(input LogSessionInput, activity *Activity) (ActivityLog, error) {
	calories := CaloriesBurned(activity.KcalPerHour, input.DurationMinutes)
	if !isFinite(calories) {
		return ActivityLog{}, fmt.Errorf(
			"%w: %d minutes of [%s] at %v kcal/h is out of range",
			ErrInvalidInput, input.DurationMinutes, activity.Name, activity.KcalPerHour,
		)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	return ActivityLog{
		Owner:           input.Owner,
		ActivityName:    activity.Name,
		Date:            date,
		DurationMinutes: input.DurationMinutes,
		CaloriesBurned:  calories,
		Notes:           input.Notes,
	}, nil
}

// ListSessions returns the owner's sessions, most recent first.
func (s *Service) ListSessions(ctx context.Context, params LogParams) (_ []ActivityLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activities.logs.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !params.Owner.Valid() {
		return nil, fmt.Errorf("%w: empty owner", ErrInvalidInput)
	}

	logs, err := s.repo.ListLogs(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	return logs, nil
}

func (s *Service) ComputeStats(ctx context.Context, params StatsParams) (_ Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activities.logs.stats")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !params.Owner.Valid() {
		return Stats{}, fmt.Errorf("%w: empty owner", ErrInvalidInput)
	}

	logs, err := s.repo.ListLogs(ctx, LogParams{
		Owner: params.Owner,
		From:  params.From,
		To:    params.To,
	})
	if err != nil {
		return Stats{}, fmt.Errorf("list activity logs: %w", err)
	}

	return StatsFromLogs(logs), nil
}

func (s *Service) DeleteSession(ctx context.Context, id int, owner Owner) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activities.logs.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("id", id))

	if !owner.Valid() {
		return fmt.Errorf("%w: empty owner", ErrInvalidInput)
	}

	if err := s.repo.DeleteLog(ctx, id, owner); err != nil {
		return fmt.Errorf("delete activity log %d: %w", id, err)
	}
	return nil
}

// ClearSessions removes all the owner's sessions and returns how many were removed.
func (s *Service) ClearSessions(ctx context.Context, owner Owner) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activities.logs.clear")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !owner.Valid() {
		return 0, fmt.Errorf("%w: empty owner", ErrInvalidInput)
	}

	removed, err := s.repo.ClearLogs(ctx, owner)
	if err != nil {
		return 0, fmt.Errorf("clear activity logs: %w", err)
	}
	log.Debugf("cleared %d activity logs for [%s]", removed, owner)

	return removed, nil
}
