package activities

import (
	"strings"
	"time"
)

// Owner identifies the user a record belongs to. It is the only authorization
// boundary of catalog and log records: nothing is visible across owners.
type Owner string

func (o Owner) Valid() bool {
	return strings.TrimSpace(string(o)) != ""
}

func (o Owner) String() string {
	return string(o)
}

// Activity is a catalog entry: a named activity with its calorie burn rate.
type Activity struct {
	ID          int     `json:"id"`
	Owner       Owner   `json:"user_name"`
	Name        string  `json:"name"`
	KcalPerHour float64 `json:"kcal_per_hour"`
}

// ActivityLog is one logged session. ActivityName and CaloriesBurned are snapshots
// taken from the catalog at log time, and they are intentionally never recomputed:
// renaming, re-rating or deleting the catalog entry must not rewrite history.
// Rows are never updated, only created and deleted.
type ActivityLog struct {
	ID              int       `json:"id"`
	Owner           Owner     `json:"user_name"`
	ActivityName    string    `json:"activity_name"`
	Date            time.Time `json:"date"`
	DurationMinutes int       `json:"duration_minutes"`
	CaloriesBurned  float64   `json:"calories_burned"`
	Notes           *string   `json:"notes"`
}

type DefaultActivity struct {
	Name        string
	KcalPerHour float64
}

// DefaultActivities are inserted for a new owner by Service.SeedDefaults.
var DefaultActivities = []DefaultActivity{
	{Name: "Walking (casual)", KcalPerHour: 200},
	{Name: "Walking (brisk)", KcalPerHour: 300},
	{Name: "Running (light jog)", KcalPerHour: 400},
	{Name: "Running (moderate)", KcalPerHour: 600},
	{Name: "Running (fast)", KcalPerHour: 800},
	{Name: "Cycling (leisurely)", KcalPerHour: 300},
	{Name: "Cycling (moderate)", KcalPerHour: 500},
	{Name: "Swimming", KcalPerHour: 400},
	{Name: "Rowing machine", KcalPerHour: 450},
	{Name: "Elliptical", KcalPerHour: 350},
	{Name: "Stair climbing", KcalPerHour: 500},
	{Name: "Basketball", KcalPerHour: 450},
	{Name: "Soccer", KcalPerHour: 500},
	{Name: "Tennis", KcalPerHour: 400},
	{Name: "Yoga", KcalPerHour: 150},
	{Name: "Hiking", KcalPerHour: 350},
}

func defaultActivitiesFor(owner Owner) []Activity {
	defaults := make([]Activity, 0, len(DefaultActivities))
	for _, d := range DefaultActivities {
		defaults = append(defaults, Activity{
			Owner:       owner,
			Name:        d.Name,
			KcalPerHour: d.KcalPerHour,
		})
	}
	return defaults
}

type LogSessionInput struct {
	Owner           Owner
	ActivityName    string
	Date            time.Time
	DurationMinutes int
	Notes           *string
}

// LogParams filters sessions. Empty ActivityName and nil bounds mean no filter,
// both bounds are inclusive.
type LogParams struct {
	Owner        Owner
	ActivityName string
	From         *time.Time
	To           *time.Time
}

type StatsParams struct {
	Owner Owner
	From  *time.Time
	To    *time.Time
}
