package main

import (
	"context"

	"github.com/gamma-omg/pdf-tools-mcp/pdftool"
	"github.com/gamma-omg/pdf-tools-mcp/timetool"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	argFromTimezone = "from_timezone"
	argToTimezone   = "to_timezone"
	argDateTime     = "date_time"
)

type pdfReader interface {
	Run(ctx context.Context, ref string) string
}

type timeConverter interface {
	Run(from, to, dateTime string) string
}

func NewToolServer(pdf pdfReader, tz timeConverter) *server.MCPServer {
	pdfTool := mcp.NewTool(pdftool.Name,
		mcp.WithDescription(pdftool.Description),
		mcp.WithString(pdftool.ArgName,
			mcp.Required(),
			mcp.Description(pdftool.ArgDescription),
		))

	tzTool := mcp.NewTool(timetool.Name,
		mcp.WithDescription(timetool.Description),
		mcp.WithString(argFromTimezone,
			mcp.Required(),
			mcp.Description("The source time zone, e.g., America/Los_Angeles"),
		),
		mcp.WithString(argToTimezone,
			mcp.Required(),
			mcp.Description("The target time zone, e.g., Europe/London"),
		),
		mcp.WithString(argDateTime,
			mcp.Required(),
			mcp.Description("The date and time to be converted in YYYY-MM-DD HH:MM:SS format, e.g., 2024-10-11 15:30:00"),
		))

	srv := server.NewMCPServer("PDF tools", "0.0.1", server.WithToolCapabilities(false))
	srv.AddTool(pdfTool, pdfHandler(pdf))
	srv.AddTool(tzTool, timeHandler(tz))

	return srv
}

func pdfHandler(pdf pdfReader) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref, err := request.RequireString(pdftool.ArgName)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(pdf.Run(ctx, ref)), nil
	}
}

func timeHandler(tz timeConverter) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		from, err := request.RequireString(argFromTimezone)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		to, err := request.RequireString(argToTimezone)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dt, err := request.RequireString(argDateTime)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(tz.Run(from, to, dt)), nil
	}
}
