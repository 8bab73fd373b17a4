package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8080/mcp/stream", "MCP streamable HTTP endpoint")
	query := flag.String("query", "engineer", "search text")
	flag.Parse()

	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "jobboard-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: *endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)

	if !call(ctx, session, "jobs_refresh", nil) {
		log.Println("refresh failed; a retry is available via jobs_refresh")
	}
	res := callResult(ctx, session, "jobs_search", map[string]any{"query": *query})

	jobID := firstJobID(res)
	if jobID == "" {
		fmt.Println("\nNo jobs matched; skipping saved and apply flows")
		return
	}

	testSavedFlow(ctx, session, jobID)
	testApplyFlow(ctx, session, jobID)

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: list tools")

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Printf("list tools failed: %v", err)
		return
	}
	for _, t := range res.Tools {
		fmt.Printf("  %s: %s\n", t.Name, t.Description)
	}
}

func testSavedFlow(ctx context.Context, session *mcp.ClientSession, jobID string) {
	fmt.Println("\nTEST: saved flow")

	call(ctx, session, "saved_toggle", map[string]any{"job_id": jobID})
	call(ctx, session, "saved_open", nil)
	call(ctx, session, "saved_remove", map[string]any{"job_id": jobID})
	call(ctx, session, "saved_close", map[string]any{"merge": false})
	call(ctx, session, "saved_list", nil)
}

func testApplyFlow(ctx context.Context, session *mcp.ClientSession, jobID string) {
	fmt.Println("\nTEST: apply flow")

	call(ctx, session, "apply_open", map[string]any{"job_id": jobID})
	call(ctx, session, "apply_update", map[string]any{
		"name":         "Test Applicant",
		"email":        "applicant@example.com",
		"phone":        "12-34",
		"cover_letter": "Hello!",
	})

	// expected rejection: phone has 4 digits
	call(ctx, session, "apply_submit", nil)

	call(ctx, session, "apply_update", map[string]any{"phone": "+1 (555) 123-4567"})
	call(ctx, session, "apply_submit", nil)
}

func call(ctx context.Context, session *mcp.ClientSession, name string, args map[string]any) bool {
	res := callResult(ctx, session, name, args)
	return res != nil && !res.IsError
}

func callResult(ctx context.Context, session *mcp.ClientSession, name string, args map[string]any) *mcp.CallToolResult {
	if args == nil {
		args = map[string]any{}
	}

	fmt.Printf("\n> %s\n", name)
	result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		log.Printf("%s failed: %v", name, err)
		return nil
	}

	printResult(result)
	return result
}

func firstJobID(res *mcp.CallToolResult) string {
	if res == nil || res.StructuredContent == nil {
		return ""
	}

	raw, err := json.Marshal(res.StructuredContent)
	if err != nil {
		return ""
	}

	var list struct {
		Jobs []struct {
			ID string `json:"id"`
		} `json:"jobs"`
	}
	if err := json.Unmarshal(raw, &list); err != nil || len(list.Jobs) == 0 {
		return ""
	}
	return list.Jobs[0].ID
}

func printResult(res *mcp.CallToolResult) {
	if res.IsError {
		fmt.Print("[error] ")
	}
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
