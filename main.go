package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gamma-omg/pdf-tools-mcp/fetch"
	"github.com/gamma-omg/pdf-tools-mcp/pdftool"
	"github.com/gamma-omg/pdf-tools-mcp/readers"
	"github.com/gamma-omg/pdf-tools-mcp/timetool"
	"github.com/mark3labs/mcp-go/server"
)

const defaultConfigPath = "cfg/config.yaml"

func createPageReader(cfg *Config) pdftool.PageReader {
	if cfg.PdfBackend == backendDocconv {
		return &readers.DocconvFileReader{}
	}

	return &readers.PdfFileReader{}
}

func openLog(cfg *Config) (io.WriteCloser, error) {
	if cfg.LogFile == "" {
		return nopCloser{os.Stderr}, nil
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return logFile, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func main() {
	cfgPath := flag.String("config", defaultConfigPath, "Configuration file for the MCP server")
	pdfRef := flag.String("pdf", "", "Extract text from a PDF path or URL, print it and exit")
	from := flag.String("from", "", "Source time zone for a one-shot conversion")
	to := flag.String("to", "", "Target time zone for a one-shot conversion")
	dateTime := flag.String("time", "", "Time to convert (YYYY-MM-DD HH:MM:SS), prints the result and exits")
	flag.Parse()

	cfg, err := readConfig(*cfgPath, *cfgPath != defaultConfigPath)
	if err != nil {
		log.Fatal(err)
	}

	logFile, err := openLog(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewJSONHandler(logFile, nil))

	fetcher := fetch.NewFetcher(logger, cfg.HttpTimeout())
	pdf := pdftool.NewTool(logger, fetcher, createPageReader(cfg), cfg.DownloadDir).
		WithUniqueNames(cfg.UniqueTempNames)
	tz := &timetool.Tool{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	switch {
	case *pdfRef != "":
		fmt.Println(pdf.Run(ctx, *pdfRef))
		return
	case *dateTime != "":
		fmt.Println(tz.Run(*from, *to, *dateTime))
		return
	}

	srv := NewToolServer(pdf, tz)

	if cfg.Transport == transportStdio {
		logger.Info("serving tools over stdio")
		if err := server.ServeStdio(srv); err != nil {
			log.Fatal(err)
		}
		return
	}

	logger.Info("serving tools over sse", "addr", cfg.ServerAddr)
	sse := server.NewSSEServer(srv, server.WithBaseURL(fmt.Sprintf("http://%s", cfg.ServerAddr)))
	log.Println(sse.Start(cfg.ServerAddr))
}
