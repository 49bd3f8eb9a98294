package mcp

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with read-only fittrack tools: schema, activities,
// activity logs and stats. The backend mounts it at /mcp, cmd/fittrack_mcp serves it over stdio.
func NewServer(pool *pgxpool.Pool, service activitiesService) *mcp.Server {
	h := NewHandler(NewContextService(NewPoolSchemaRepo(pool), service))
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fittrack-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_fittrack_context",
		Description: "Returns the DB schema of the activity catalog and the activity log tables: table names, columns, types, nullable, default.",
	}, h.GetContextTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_activities",
		Description: "Returns the activity catalog of a user: id, name and burn rate in kcal per hour. Arg: user_name.",
	}, h.GetActivitiesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_activity_logs",
		Description: "Returns logged activity sessions of a user, most recent first. Arg: user_name; optional: from_date, to_date (YYYY-MM-DD), activity_name.",
	}, h.GetActivityLogsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_activity_stats",
		Description: "Returns session count, total duration, total calories and per session averages for a user. Arg: user_name; optional: from_date, to_date (YYYY-MM-DD).",
	}, h.GetActivityStatsTool())

	return s
}
