// Package mcpserver exposes the knowledge base as MCP tools over
// stdio, so MCP-capable clients can read and extend it.
package mcpserver

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sandevgo/studykb/internal/core"
)

type Server struct {
	mcp *server.MCPServer
	qa  core.QARepository
}

func NewServer(qa core.QARepository) *Server {
	s := &Server{
		mcp: server.NewMCPServer(
			core.AppName,
			core.Version,
			server.WithToolCapabilities(false),
			server.WithPromptCapabilities(false),
		),
		qa: qa,
	}

	s.mcp.AddTool(mcp.NewTool("add_qa",
		mcp.WithDescription("Add a new question and answer pair to the knowledge base"),
		mcp.WithString("question", mcp.Required(), mcp.Description("The question to add")),
		mcp.WithString("answer", mcp.Required(), mcp.Description("The answer to the question")),
		mcp.WithString("category", mcp.Description("Category for the Q&A pair (optional)"), mcp.DefaultString("general")),
		mcp.WithArray("tags", mcp.Description("Tags for the Q&A pair (optional)"), mcp.WithStringItems()),
	), s.handleAddQA)

	s.mcp.AddTool(mcp.NewTool("search_qa",
		mcp.WithDescription("Search for questions and answers in the knowledge base"),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query to find relevant Q&A pairs")),
		mcp.WithString("category", mcp.Description("Filter by category (optional)")),
	), s.handleSearchQA)

	s.mcp.AddTool(mcp.NewTool("get_categories",
		mcp.WithDescription("Get all available categories in the knowledge base"),
	), s.handleGetCategories)

	s.mcp.AddTool(mcp.NewTool("get_qa_stats",
		mcp.WithDescription("Get statistics about the Q&A knowledge base"),
	), s.handleGetStats)

	s.mcp.AddPrompt(mcp.NewPrompt("qa_assistant",
		mcp.WithPromptDescription("Get help with using the Q&A knowledge base system"),
		mcp.WithArgument("task", mcp.ArgumentDescription("What task do you need help with?")),
	), s.handleAssistantPrompt)

	return s
}

// Serve blocks reading MCP requests from stdin until EOF.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) handleAddQA(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question := req.GetString("question", "")
	answer := req.GetString("answer", "")
	if question == "" || answer == "" {
		return mcp.NewToolResultError("Question and answer are required"), nil
	}

	now := time.Now().UTC()
	entry := core.QAEntry{
		ID:        uuid.NewString(),
		Question:  question,
		Answer:    answer,
		Category:  req.GetString("category", "general"),
		Tags:      req.GetStringSlice("tags", nil),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.qa.Add(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to add qa pair: %w", err)
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"Successfully added Q&A pair with ID: %s\nQuestion: %s\nAnswer: %s",
		entry.ID, question, answer)), nil
}

func (s *Server) handleSearchQA(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("Query is required"), nil
	}

	results, err := s.qa.Search(ctx, query, req.GetString("category", ""))
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No results found for query: '%s'", query)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d result(s) for query: '%s'\n\n", len(results), query)
	for i, entry := range results {
		fmt.Fprintf(&sb, "%d. **Question**: %s\n", i+1, entry.Question)
		fmt.Fprintf(&sb, "   **Answer**: %s\n", entry.Answer)
		fmt.Fprintf(&sb, "   **Category**: %s\n", entry.Category)
		if len(entry.Tags) > 0 {
			fmt.Fprintf(&sb, "   **Tags**: %s\n", strings.Join(entry.Tags, ", "))
		}
		fmt.Fprintf(&sb, "   **ID**: %s\n\n", entry.ID)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleGetCategories(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	categories, err := s.qa.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if len(categories) == 0 {
		return mcp.NewToolResultText("No categories found in the knowledge base"), nil
	}

	sort.Strings(categories)
	return mcp.NewToolResultText("Available categories: " + strings.Join(categories, ", ")), nil
}

func (s *Server) handleGetStats(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := s.qa.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("Q&A Knowledge Base Statistics:\n")
	fmt.Fprintf(&sb, "Total Q&A pairs: %d\n", stats.TotalQA)
	fmt.Fprintf(&sb, "Total categories: %d\n\n", len(stats.Categories))
	sb.WriteString("Category breakdown:\n")

	cats := append([]string(nil), stats.Categories...)
	sort.Strings(cats)
	for _, cat := range cats {
		fmt.Fprintf(&sb, "  - %s: %d\n", cat, stats.CategoryCounts[cat])
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleAssistantPrompt(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	task := req.Params.Arguments["task"]
	if task == "" {
		task = "general help"
	}

	text := fmt.Sprintf(`You are a Q&A Knowledge Base Assistant. You can help users with the following tasks:

1. **Adding Q&A pairs**: Use the `+"`add_qa`"+` tool to store new questions and answers
2. **Searching**: Use the `+"`search_qa`"+` tool to find relevant Q&A pairs
3. **Categories**: Use the `+"`get_categories`"+` tool to see available categories
4. **Statistics**: Use the `+"`get_qa_stats`"+` tool to see knowledge base statistics

Current task: %s

Available tools:
- add_qa: Add new question-answer pairs
- search_qa: Search the knowledge base
- get_categories: List all categories
- get_qa_stats: Show database statistics

How can I help you manage your Q&A knowledge base?`, task)

	return mcp.NewGetPromptResult("Q&A knowledge base assistant", []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
	}), nil
}
