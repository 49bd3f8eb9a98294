package activities

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// storeErr maps failed CHECK constraints and out of range numbers to ErrInvalidInput,
// and keeps everything else as is.
func storeErr(err error) error {
	if pkg.IsCheckViolationError(err) || pkg.IsNumericOutOfRangeError(err) {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	return err
}

// SeedActivities inserts the activities if the owner has no catalog entries yet.
// Concurrent seeds of the same owner are serialized by a transaction level advisory lock.
func (r *Repo) SeedActivities(ctx context.Context, owner Owner, activities []Activity) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.seed")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var inserted int64
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, owner); err != nil {
			return fmt.Errorf("lock owner: %w", err)
		}

		var existing int
		if err := tx.QueryRow(ctx, `
			SELECT COUNT(*) FROM activity WHERE user_name = $1
		`, owner).Scan(&existing); err != nil {
			return fmt.Errorf("count activities: %w", err)
		}
		if existing > 0 {
			return fmt.Errorf("owner [%s] already has %d activities: %w", owner, existing, ErrConflict)
		}

		rows := make([][]any, 0, len(activities))
		for _, a := range activities {
			rows = append(rows, []any{string(owner), a.Name, a.KcalPerHour})
		}
		n, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{"activity"},
			[]string{"user_name", "name", "kcal_per_hour"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return storeErr(err)
		}
		inserted = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	return int(inserted), nil
}

func (r *Repo) ListActivities(ctx context.Context, owner Owner) (_ []Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_name, name, kcal_per_hour
		FROM activity
		WHERE user_name = $1
		ORDER BY id;
	`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]Activity, 0)
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.Owner, &a.Name, &a.KcalPerHour); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}

// GetActivityByName returns the owner's catalog entry with the exact name. Names are
// not unique per owner; for duplicates the oldest entry (lowest id) is returned.
func (r *Repo) GetActivityByName(ctx context.Context, owner Owner, name string) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.getbyname")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("name", name))

	a := &Activity{}
	err = r.db.QueryRow(ctx, `
		SELECT id, user_name, name, kcal_per_hour
		FROM activity
		WHERE user_name = $1 AND name = $2
		ORDER BY id
		LIMIT 1;
	`, owner, name).Scan(&a.ID, &a.Owner, &a.Name, &a.KcalPerHour)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return a, nil
}

func (r *Repo) AddActivity(ctx context.Context, activity Activity) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = r.db.QueryRow(ctx, `
		INSERT INTO activity (user_name, name, kcal_per_hour)
		VALUES ($1, $2, $3)
		RETURNING id;
	`, activity.Owner, activity.Name, activity.KcalPerHour).Scan(&activity.ID)
	if err != nil {
		return nil, storeErr(err)
	}

	return &activity, nil
}

func (r *Repo) UpdateActivity(ctx context.Context, activity Activity) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `
		UPDATE activity
		SET name = $1, kcal_per_hour = $2
		WHERE id = $3 AND user_name = $4;
	`, activity.Name, activity.KcalPerHour, activity.ID, activity.Owner)
	if err != nil {
		return storeErr(err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Repo) DeleteActivity(ctx context.Context, id int, owner Owner) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `
		DELETE FROM activity WHERE id = $1 AND user_name = $2;
	`, id, owner)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

const insertLogQuery = `
	INSERT INTO activity_log (user_name, activity_name, date, duration_minutes, calories_burned, notes)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id;
`

func (r *Repo) AddLog(ctx context.Context, activityLog ActivityLog) (_ *ActivityLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.logs.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = r.db.QueryRow(ctx, insertLogQuery,
		activityLog.Owner,
		activityLog.ActivityName,
		activityLog.Date,
		activityLog.DurationMinutes,
		activityLog.CaloriesBurned,
		activityLog.Notes,
	).Scan(&activityLog.ID)
	if err != nil {
		return nil, storeErr(err)
	}

	return &activityLog, nil
}

// AddLogs inserts all the given logs in one transaction.
func (r *Repo) AddLogs(ctx context.Context, activityLogs []ActivityLog) (_ []ActivityLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.logs.bulkadd")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("count", len(activityLogs)))

	stored := make([]ActivityLog, len(activityLogs))
	copy(stored, activityLogs)

	err = db.InTx(ctx, r.db, func(tx pgx.Tx) (err error) {
		batch := &pgx.Batch{}
		for _, l := range stored {
			batch.Queue(insertLogQuery,
				l.Owner,
				l.ActivityName,
				l.Date,
				l.DurationMinutes,
				l.CaloriesBurned,
				l.Notes,
			)
		}

		results := tx.SendBatch(ctx, batch)
		defer func() {
			if closeErr := results.Close(); closeErr != nil && err == nil {
				err = storeErr(closeErr)
			}
		}()

		for i := range stored {
			if err := results.QueryRow().Scan(&stored[i].ID); err != nil {
				return storeErr(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stored, nil
}

func (r *Repo) ListLogs(ctx context.Context, params LogParams) (_ []ActivityLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.logs.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	if params.ActivityName != "" {
		span.SetAttributes(attribute.String("activity", params.ActivityName))
	}
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, user_name, activity_name, date, duration_minutes, calories_burned, notes
		FROM activity_log
		WHERE user_name = $1
		  AND ($2::text = '' OR activity_name = $2)
		  AND ($3::timestamptz IS NULL OR date >= $3)
		  AND ($4::timestamptz IS NULL OR date <= $4)
		ORDER BY date DESC, id DESC;
	`,
		params.Owner,
		params.ActivityName,
		params.From, params.To,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]ActivityLog, 0)
	for rows.Next() {
		var l ActivityLog
		if err := rows.Scan(
			&l.ID,
			&l.Owner,
			&l.ActivityName,
			&l.Date,
			&l.DurationMinutes,
			&l.CaloriesBurned,
			&l.Notes,
		); err != nil {
			return nil, err
		}
		l.Date = l.Date.UTC()
		logs = append(logs, l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *Repo) DeleteLog(ctx context.Context, id int, owner Owner) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.logs.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `
		DELETE FROM activity_log WHERE id = $1 AND user_name = $2;
	`, id, owner)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Repo) ClearLogs(ctx context.Context, owner Owner) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.logs.clear")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `
		DELETE FROM activity_log WHERE user_name = $1;
	`, owner)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
