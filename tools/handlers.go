package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/wikimedia-mcp-server/internal/feed"
	"github.com/olgasafonova/wikimedia-mcp-server/internal/pages"
	"github.com/olgasafonova/wikimedia-mcp-server/internal/search"
	"github.com/olgasafonova/wikimedia-mcp-server/metrics"
	"github.com/olgasafonova/wikimedia-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	searchClient *search.Client
	pagesClient  *pages.Client
	feedClient   *feed.Client
	logger       *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(searchClient *search.Client, pagesClient *pages.Client, feedClient *feed.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		searchClient: searchClient,
		pagesClient:  pagesClient,
		feedClient:   feedClient,
		logger:       logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "SearchContent":
		h.register(server, tool, spec, h.searchClient.SearchContentMCP)
	case "SearchTitles":
		h.register(server, tool, spec, h.searchClient.SearchTitlesMCP)
	case "GetPage":
		h.register(server, tool, spec, h.pagesClient.GetPageMCP)
	case "GetLanguages":
		h.register(server, tool, spec, h.pagesClient.GetLanguagesMCP)
	case "GetFeatured":
		h.register(server, tool, spec, h.feedClient.GetFeaturedMCP)
	case "GetOnThisDay":
		h.register(server, tool, spec, h.feedClient.GetOnThisDayMCP)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (res *mcp.CallToolResult, out Result, err error) {
		defer h.recoverPanic(spec.Name, &err)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.String("mcp.tool.api", spec.API),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers and converts the
// panic into the handler's error return so the caller never sees a
// zero-valued success.
func (h *HandlerRegistry) recoverPanic(toolName string, err *error) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
		*err = fmt.Errorf("%s: internal error: %v", toolName, rec)
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "api", spec.API}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case search.SearchContentArgs:
		attrs = append(attrs, "query", a.Query)
	case search.SearchTitlesArgs:
		attrs = append(attrs, "query", a.Query)
	case pages.GetPageArgs:
		attrs = append(attrs, "title", a.Title)
	case pages.GetLanguagesArgs:
		attrs = append(attrs, "title", a.Title)
	case feed.GetFeaturedArgs:
		attrs = append(attrs, "date", a.Date)
	case feed.GetOnThisDayArgs:
		attrs = append(attrs, "date", a.Date, "type", a.Type)
	}

	// Add extractable fields from result
	switch r := result.(type) {
	case search.SearchContentResult:
		attrs = append(attrs, "results_count", r.Count)
	case search.SearchTitlesResult:
		attrs = append(attrs, "results_count", r.Count)
	case pages.GetPageResult:
		attrs = append(attrs, "resolved_title", r.Title)
	case pages.GetLanguagesResult:
		attrs = append(attrs, "languages", r.Count)
	case feed.GetFeaturedResult:
		attrs = append(attrs, "most_read", len(r.MostReadArticles))
	case feed.GetOnThisDayResult:
		attrs = append(attrs, "events",
			len(r.Selected)+len(r.Events)+len(r.Births)+len(r.Deaths)+len(r.Holidays))
	}

	h.logger.Info("Tool executed", attrs...)
}

// Convenience function to call the generic register with method receiver
func (h *HandlerRegistry) register(server *mcp.Server, tool *mcp.Tool, spec ToolSpec, method any) {
	switch m := method.(type) {
	case func(context.Context, search.SearchContentArgs) (search.SearchContentResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, search.SearchTitlesArgs) (search.SearchTitlesResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, pages.GetPageArgs) (pages.GetPageResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, pages.GetLanguagesArgs) (pages.GetLanguagesResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, feed.GetFeaturedArgs) (feed.GetFeaturedResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, feed.GetOnThisDayArgs) (feed.GetOnThisDayResult, error):
		register(h, server, tool, spec, m)

	default:
		h.logger.Error("Unknown method type, tool not registered", "tool", spec.Name)
	}
}
