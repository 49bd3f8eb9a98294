package mcp

import (
	"context"
	"encoding/json"
	"sort"
	"testing"

	"github.com/2beens/fittrack/internal/activities"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func connectTestClient(t *testing.T, service activitiesService) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := NewServer(nil, service)
	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { _ = clientSession.Close() })

	return clientSession
}

func TestNewServer_ListTools(t *testing.T) {
	session := connectTestClient(t, &mockActivitiesService{})

	res, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)

	want := []string{"get_activities", "get_activity_logs", "get_activity_stats", "get_fittrack_context"}
	if len(names) != len(want) {
		t.Fatalf("tools = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("tools = %v, want %v", names, want)
		}
	}
}

func TestNewServer_CallStatsTool(t *testing.T) {
	service := &mockActivitiesService{
		stats: activities.Stats{
			TotalSessions:             2,
			TotalDurationMinutes:      90,
			TotalCaloriesBurned:       600,
			AverageSessionDuration:    45,
			AverageCaloriesPerSession: 300,
		},
	}
	session := connectTestClient(t, service)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_activity_stats",
		Arguments: map[string]any{"user_name": "alice"},
	})
	if err != nil {
		t.Fatalf("call tool: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected IsError")
	}

	var got activities.Stats
	if err := json.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != service.stats {
		t.Fatalf("stats = %+v, want %+v", got, service.stats)
	}
}
