package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/2beens/fittrack/internal/activities"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const dayLayout = "2006-01-02"

// Handler parses tool input, calls the service and formats the MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// ContextInput is the (empty) input for get_fittrack_context.
type ContextInput struct{}

// OwnerInput is the input for get_activities.
type OwnerInput struct {
	UserName string `json:"user_name" jsonschema:"Owner of the activities (user name)"`
}

// LogsInput is the input for get_activity_logs.
type LogsInput struct {
	UserName     string `json:"user_name" jsonschema:"Owner of the activity logs (user name)"`
	FromDate     string `json:"from_date,omitempty" jsonschema:"Start date (YYYY-MM-DD), inclusive"`
	ToDate       string `json:"to_date,omitempty" jsonschema:"End date (YYYY-MM-DD), the whole day is included"`
	ActivityName string `json:"activity_name,omitempty" jsonschema:"Exact activity name, e.g. Running (light jog)"`
}

// StatsInput is the input for get_activity_stats.
type StatsInput struct {
	UserName string `json:"user_name" jsonschema:"Owner of the activity logs (user name)"`
	FromDate string `json:"from_date,omitempty" jsonschema:"Start date (YYYY-MM-DD), inclusive"`
	ToDate   string `json:"to_date,omitempty" jsonschema:"End date (YYYY-MM-DD), the whole day is included"`
}

func (h *Handler) GetContextTool() func(context.Context, *mcp.CallToolRequest, ContextInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ContextInput) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

func (h *Handler) GetActivitiesTool() func(context.Context, *mcp.CallToolRequest, OwnerInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in OwnerInput) (*mcp.CallToolResult, any, error) {
		owner := activities.Owner(in.UserName)
		if !owner.Valid() {
			return errorResult("user_name is required"), nil, nil
		}
		list, err := h.service.ListActivities(ctx, owner)
		if err != nil {
			return errorResult("Error listing activities: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

func (h *Handler) GetActivityLogsTool() func(context.Context, *mcp.CallToolRequest, LogsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in LogsInput) (*mcp.CallToolResult, any, error) {
		owner := activities.Owner(in.UserName)
		if !owner.Valid() {
			return errorResult("user_name is required"), nil, nil
		}
		from, to, err := parseDayRange(in.FromDate, in.ToDate)
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}

		logs, err := h.service.ListSessions(ctx, activities.LogParams{
			Owner:        owner,
			ActivityName: in.ActivityName,
			From:         from,
			To:           to,
		})
		if err != nil {
			return errorResult("Error listing activity logs: " + err.Error()), nil, nil
		}
		return jsonResult(logs), nil, nil
	}
}

func (h *Handler) GetActivityStatsTool() func(context.Context, *mcp.CallToolRequest, StatsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in StatsInput) (*mcp.CallToolResult, any, error) {
		owner := activities.Owner(in.UserName)
		if !owner.Valid() {
			return errorResult("user_name is required"), nil, nil
		}
		from, to, err := parseDayRange(in.FromDate, in.ToDate)
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}

		stats, err := h.service.ComputeStats(ctx, activities.StatsParams{
			Owner: owner,
			From:  from,
			To:    to,
		})
		if err != nil {
			return errorResult("Error computing stats: " + err.Error()), nil, nil
		}
		return jsonResult(stats), nil, nil
	}
}

// parseDayRange parses optional YYYY-MM-DD bounds; to is moved to the end of its day.
func parseDayRange(fromDate, toDate string) (from, to *time.Time, err error) {
	if fromDate != "" {
		f, err := time.Parse(dayLayout, fromDate)
		if err != nil {
			return nil, nil, errors.New("Invalid from_date: use YYYY-MM-DD")
		}
		from = &f
	}
	if toDate != "" {
		t, err := time.Parse(dayLayout, toDate)
		if err != nil {
			return nil, nil, errors.New("Invalid to_date: use YYYY-MM-DD")
		}
		t = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
		to = &t
	}
	return from, to, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}
