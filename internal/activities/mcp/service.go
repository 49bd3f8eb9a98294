package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/fittrack/internal/activities"
)

// activitiesService is the part of activities.Service the tools read from.
type activitiesService interface {
	ListActivities(ctx context.Context, owner activities.Owner) ([]activities.Activity, error)
	ListSessions(ctx context.Context, params activities.LogParams) ([]activities.ActivityLog, error)
	ComputeStats(ctx context.Context, params activities.StatsParams) (activities.Stats, error)
}

// contextService is what Handler needs, kept as an interface for tests.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	ListActivities(ctx context.Context, owner activities.Owner) ([]activities.Activity, error)
	ListSessions(ctx context.Context, params activities.LogParams) ([]activities.ActivityLog, error)
	ComputeStats(ctx context.Context, params activities.StatsParams) (activities.Stats, error)
}

// ContextService exposes read-only fittrack data to MCP clients.
type ContextService struct {
	schema     SchemaRepo
	activities activitiesService
}

func NewContextService(schemaRepo SchemaRepo, activitiesService activitiesService) *ContextService {
	return &ContextService{
		schema:     schemaRepo,
		activities: activitiesService,
	}
}

// GetSchema returns the activity and activity_log tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Fittrack DB Schema\n\nNo fittrack tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Fittrack DB Schema\n\n")
	b.WriteString("Tables: activity, activity_log (schema: public). ")
	b.WriteString("activity_log.activity_name and calories_burned are copied at log time, not joined.\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) ListActivities(ctx context.Context, owner activities.Owner) ([]activities.Activity, error) {
	return s.activities.ListActivities(ctx, owner)
}

func (s *ContextService) ListSessions(ctx context.Context, params activities.LogParams) ([]activities.ActivityLog, error) {
	return s.activities.ListSessions(ctx, params)
}

func (s *ContextService) ComputeStats(ctx context.Context, params activities.StatsParams) (activities.Stats, error) {
	return s.activities.ComputeStats(ctx, params)
}
