package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/option"

	"github.com/honeycarbs/jobboard/pkg/logging"
)

const (
	maxSteps    = 10
	toolTimeout = 2 * time.Minute
)

const systemPromptTemplate = `You are a job board assistant. You drive a job board through tools and report back what happened.

TOOLS:
- jobs_refresh: reload the listing; on failure the listing is empty and a retry is offered
- jobs_search / jobs_list: filter or show the listing (case-insensitive match on title or company)
- saved_toggle, saved_list: save or unsave a job, list saved jobs
- saved_open, saved_remove, saved_close: review saved jobs; removals apply when the view is closed with merge
- apply_open, apply_update, apply_submit, apply_cancel: fill in and submit an application
- saved_export: write saved jobs to Google Sheets%s

RULES:
1. Never invent job ids; take them from jobs_search, jobs_list or saved_list results.
2. Ask the user for name, email, phone and cover letter before apply_update. Do not make them up.
3. Call apply_submit only after apply_update. If it is rejected, tell the user which field to fix.
4. If jobs_refresh fails, explain the error and offer to retry.
5. Keep answers short and only use information from tool results.`

// agent relays a chat between Gemini and the job board tools
type agent struct {
	session *mcp.ClientSession
	gemini  *genai.Client
	model   *genai.GenerativeModel
	tools   []*mcp.Tool
	logger  *logging.Logger
}

func newAgent(ctx context.Context, endpoint, apiKey, model, sheetsID string, logger *logging.Logger) (*agent, error) {
	client := mcp.NewClient(&mcp.Implementation{
		Name:    "jobboard-assistant",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: endpoint}, nil)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", endpoint, err)
	}
	logger.Info("connected", "endpoint", endpoint, "session_id", session.ID())

	listed, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		_ = session.Close()
		return nil, fmt.Errorf("list tools: %w", err)
	}

	gemini, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		_ = session.Close()
		return nil, fmt.Errorf("init gemini: %w", err)
	}

	sheetsNote := ""
	if sheetsID != "" {
		sheetsNote = fmt.Sprintf(" (spreadsheet_id %s is the default; do not ask for one)", sheetsID)
	}

	m := gemini.GenerativeModel(model)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(fmt.Sprintf(systemPromptTemplate, sheetsNote))},
	}

	a := &agent{
		session: session,
		gemini:  gemini,
		model:   m,
		tools:   listed.Tools,
		logger:  logger,
	}
	m.Tools = a.declarations()

	return a, nil
}

func (a *agent) Close() error {
	gErr := a.gemini.Close()
	sErr := a.session.Close()
	if gErr != nil {
		return fmt.Errorf("close gemini: %w", gErr)
	}
	if sErr != nil {
		return fmt.Errorf("close mcp session: %w", sErr)
	}
	return nil
}

func (a *agent) declarations() []*genai.Tool {
	decls := make([]*genai.FunctionDeclaration, 0, len(a.tools))
	for _, tool := range a.tools {
		decl := &genai.FunctionDeclaration{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  toGeminiSchema(tool.InputSchema),
		}
		// Gemini rejects object schemas without properties.
		if len(decl.Parameters.Properties) == 0 {
			decl.Parameters = nil
		}
		decls = append(decls, decl)
	}
	if len(decls) == 0 {
		return nil
	}
	return []*genai.Tool{{FunctionDeclarations: decls}}
}

// Ask runs one user turn to completion and returns the model's final text
func (a *agent) Ask(ctx context.Context, chat *genai.ChatSession, prompt string) (string, error) {
	parts := []genai.Part{genai.Text(prompt)}
	updated := false

	for step := 1; step <= maxSteps; step++ {
		resp, err := chat.SendMessage(ctx, parts...)
		if err != nil {
			return "", fmt.Errorf("gemini: %w", err)
		}

		var (
			text      strings.Builder
			responses []genai.Part
		)
		for _, cand := range resp.Candidates {
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				switch p := part.(type) {
				case genai.Text:
					text.WriteString(string(p))
				case genai.FunctionCall:
					if p.Name == "apply_submit" && !updated {
						responses = append(responses, genai.FunctionResponse{
							Name:     p.Name,
							Response: map[string]any{"error": "call apply_update with the applicant's details before apply_submit"},
						})
						continue
					}
					if p.Name == "apply_update" {
						updated = true
					}
					responses = append(responses, genai.FunctionResponse{
						Name:     p.Name,
						Response: a.callTool(ctx, p.Name, p.Args),
					})
				}
			}
		}

		if len(responses) > 0 {
			parts = responses
			continue
		}
		if text.Len() > 0 {
			return text.String(), nil
		}
		if len(resp.Candidates) == 0 {
			return "", fmt.Errorf("gemini returned no candidates")
		}
	}

	return "", fmt.Errorf("no answer after %d steps", maxSteps)
}

// callTool forwards a function call to the server. Failures are reported
// back to the model rather than ending the turn.
func (a *agent) callTool(ctx context.Context, name string, args map[string]any) map[string]any {
	if args == nil {
		args = map[string]any{}
	}
	a.logger.Info("calling tool", "tool", name)

	ctx, cancel := context.WithTimeout(ctx, toolTimeout)
	defer cancel()

	res, err := a.session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		a.logger.Warn("tool call failed", "tool", name, "err", err)
		return map[string]any{"error": err.Error()}
	}

	var texts []string
	for _, c := range res.Content {
		if tc, ok := c.(*mcp.TextContent); ok {
			texts = append(texts, tc.Text)
		}
	}

	out := map[string]any{"result": strings.Join(texts, "\n")}
	if res.IsError {
		out["is_error"] = true
	}
	if res.StructuredContent != nil {
		out["data"] = res.StructuredContent
	}
	return out
}
