// Package mcp exposes the validation service as an MCP server so agent
// hosts can manage schemas and validate tables as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/aretw0/skooma"
	"github.com/aretw0/skooma/pkg/dataframe"
	"github.com/aretw0/skooma/pkg/ports"
	"github.com/aretw0/skooma/pkg/schemafile"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ValidationResult aligns with the HTTP adapter's response and provides
// a unified structure across adapters.
type ValidationResult struct {
	Valid  bool     `json:"valid" jsonschema_description:"Whether the table conforms to the schema"`
	Errors []string `json:"errors" jsonschema_description:"Every violation found, in order"`
}

// Server wraps a schema store and exposes it as an MCP Server.
type Server struct {
	store     ports.SchemaStore
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(store ports.SchemaStore) *Server {
	s := &Server{
		store:     store,
		mcpServer: server.NewMCPServer("skooma-mcp", strings.TrimSpace(skooma.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: validate_table
	validateTool := mcp.NewTool("validate_table",
		mcp.WithDescription("Validate a JSON table against a stored schema or an inline schema definition."),
		mcp.WithString("schema_name", mcp.Description("Name of a stored schema (omit when passing an inline definition)")),
		mcp.WithString("schema", mcp.Description("Inline JSON schema definition (omit when using schema_name)")),
		mcp.WithString("table", mcp.Required(), mcp.Description("JSON table: object of column arrays or array of row objects")),
		mcp.WithOutputSchema[ValidationResult](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))

	// TOOL: save_schema
	saveTool := mcp.NewTool("save_schema",
		mcp.WithDescription("Store a schema definition under a name."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Schema name")),
		mcp.WithString("schema", mcp.Required(), mcp.Description("JSON schema definition")),
	)
	s.mcpServer.AddTool(saveTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := request.GetString("name", "")
		raw := request.GetString("schema", "")

		var def schemafile.Definition
		if err := json.Unmarshal([]byte(raw), &def); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("bad definition: %v", err)), nil
		}
		if _, err := def.Compile(); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("definition does not compile: %v", err)), nil
		}
		if err := s.store.Save(ctx, name, &def); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("save failed: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("schema %q saved", name)), nil
	})

	// TOOL: list_schemas
	s.mcpServer.AddTool(mcp.NewTool("list_schemas",
		mcp.WithDescription("List the stored schema names."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		names, err := s.store.List(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(names)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: get_schema
	s.mcpServer.AddTool(mcp.NewTool("get_schema",
		mcp.WithDescription("Fetch a stored schema definition."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Schema name")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		def, err := s.store.Load(ctx, request.GetString("name", ""))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(def)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ValidationResult, error) {
	var def *schemafile.Definition

	if name, ok := args["schema_name"].(string); ok && name != "" {
		stored, err := s.store.Load(ctx, name)
		if err != nil {
			return ValidationResult{}, fmt.Errorf("loading schema %q: %w", name, err)
		}
		def = stored
	} else if raw, ok := args["schema"].(string); ok && raw != "" {
		var inline schemafile.Definition
		if err := json.Unmarshal([]byte(raw), &inline); err != nil {
			return ValidationResult{}, fmt.Errorf("bad inline definition: %w", err)
		}
		def = &inline
	} else {
		return ValidationResult{}, fmt.Errorf("either schema_name or schema is required")
	}

	schema, err := def.Compile()
	if err != nil {
		return ValidationResult{}, fmt.Errorf("compiling schema: %w", err)
	}

	rawTable, _ := args["table"].(string)
	df, err := dataframe.UnmarshalJSONTable([]byte(rawTable))
	if err != nil {
		return ValidationResult{}, fmt.Errorf("bad table: %w", err)
	}

	report := schema.Validate(df)
	messages := report.Messages()
	if messages == nil {
		messages = []string{}
	}
	return ValidationResult{Valid: report.Valid(), Errors: messages}, nil
}
