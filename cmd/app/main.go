// Package main provides the entry point for the briefs processor application
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"briefs-processor/internal/api"
	"briefs-processor/internal/export"
	"briefs-processor/internal/ingest"
	"briefs-processor/internal/model"
	"briefs-processor/internal/report"
	"briefs-processor/internal/webhook"
)

func main() {
	// .env is optional; environment variables win either way
	godotenv.Load()

	port := flag.Int("port", 8080, "Port to run the API server on")
	outputDir := flag.String("output", "./output", "Directory to save exported briefing files")
	runMode := flag.String("mode", "api", "Run mode: 'api' or 'cli'")
	webhookURL := flag.String("webhook", os.Getenv("WEBHOOK_URL"), "Workflow webhook URL (defaults to the fixed endpoint)")
	flag.Parse()

	client := webhook.NewClient(*webhookURL)
	manager := export.CreateDefaultManager()

	if *runMode == "api" {
		server := api.NewServer(client, manager, *outputDir)

		corsOrigins := []string{"*"}
		if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
			corsOrigins = strings.Split(origins, ",")
		}

		if err := api.StartServer(*port, server, corsOrigins); err != nil {
			slog.Error("API server stopped", "error", err)
			os.Exit(1)
		}
		return
	}

	// Command-line mode: process one CSV file and write all artifacts
	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: app [flags] <csv_path>")
		fmt.Println("\nFlags:")
		flag.PrintDefaults()
		return
	}

	if err := processFile(args[0], client, manager, *outputDir); err != nil {
		slog.Error("processing failed", "error", err)
		os.Exit(1)
	}
}

// processFile runs the full pipeline against a local CSV: upload to the
// webhook, parse the response, and write the HTML, RTF, and PDF artifacts.
func processFile(csvPath string, client *webhook.Client, manager *export.ExporterManager, outputDir string) error {
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		return fmt.Errorf("failed to read CSV file: %w", err)
	}

	csvContent, err := ingest.Validate(filepath.Base(csvPath), "text/csv", raw)
	if err != nil {
		return fmt.Errorf("invalid CSV file: %w", err)
	}

	slog.Info("forwarding CSV to webhook", "file", csvPath, "bytes", len(csvContent))
	body, err := client.Process([]byte(csvContent))
	if err != nil {
		return fmt.Errorf("webhook call failed: %w", err)
	}

	blocks := report.ParseBlocks(body)
	briefing := model.NewBriefing(filepath.Base(csvPath), body, blocks)
	slog.Info("briefing received", "blocks", len(blocks))

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	for _, format := range []model.Format{model.FormatHTML, model.FormatRTF, model.FormatPDF} {
		outputPath := filepath.Join(outputDir, briefing.ArtifactName(format))

		outputFile, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}

		if err := manager.Export(briefing, format, outputFile); err != nil {
			outputFile.Close()
			return fmt.Errorf("%s export failed: %w", format, err)
		}
		if err := outputFile.Close(); err != nil {
			return fmt.Errorf("failed to close output file: %w", err)
		}

		slog.Info("artifact written", "path", outputPath)
	}

	return nil
}
