package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dvloznov/statement-analyzer/internal/ai"
	"github.com/dvloznov/statement-analyzer/internal/analyze"
	"github.com/dvloznov/statement-analyzer/internal/categorize"
	"github.com/dvloznov/statement-analyzer/internal/config"
	"github.com/dvloznov/statement-analyzer/internal/excel"
	"github.com/dvloznov/statement-analyzer/internal/logger"
	"github.com/dvloznov/statement-analyzer/internal/pdf"
	"github.com/dvloznov/statement-analyzer/internal/statement"
)

func main() {
	log := logger.New()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "process":
		runProcess(log)
	case "analyze":
		runAnalyze(log)
	case "categorize":
		runCategorize()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Statement Analyzer CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  cli <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  process     Parse a statement file and print the extracted transactions")
	fmt.Println("  analyze     Parse a statement file and print the full financial analysis")
	fmt.Println("  categorize  Print the rule-based category for a description")
	fmt.Println("  help        Show this help message")
	fmt.Println("\nRun 'cli <command> -h' for more information on a command.")
}

func runProcess(log zerolog.Logger) {
	fs := flag.NewFlagSet("process", flag.ExitOnError)
	filePath := fs.String("file", "", "Path to a statement file (.xlsx, .xls or .pdf)")
	fs.Parse(os.Args[2:])

	result := processFile(log, *filePath)
	printJSON(result)
}

func runAnalyze(log zerolog.Logger) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	filePath := fs.String("file", "", "Path to a statement file (.xlsx, .xls or .pdf)")
	fs.Parse(os.Args[2:])

	cfg := config.Load()
	result := processFile(log, *filePath)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	summary := analyze.Summarize(result.Transactions)
	advisor := analyze.NewAdvisor(newCompleter(ctx, cfg, log), log)
	narrative := advisor.Advise(ctx, summary, result.BankInfo, result.Transactions)
	printJSON(analyze.BuildReport(summary, narrative, result.BankInfo, result.Transactions))
}

func runCategorize() {
	fs := flag.NewFlagSet("categorize", flag.ExitOnError)
	desc := fs.String("description", "", "Transaction description")
	fs.Parse(os.Args[2:])

	category := categorize.NewRules().Categorize(*desc)
	fmt.Printf("%s (%s)\n", category, categorize.Subcategory(category))
}

func processFile(log zerolog.Logger, path string) *statement.Result {
	if path == "" {
		log.Fatal().Msg("Error: --file is required")
	}

	cfg := config.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	completer := newCompleter(ctx, cfg, log)
	rules := categorize.NewRules()
	batcher := categorize.NewBatcher(completer, log)

	var result *statement.Result
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		f, openErr := os.Open(path)
		if openErr != nil {
			log.Fatal().Err(openErr).Msg("Failed to open file")
		}
		defer f.Close()
		result, err = excel.NewProcessor(rules, batcher, log).Process(ctx, f)
	case ".pdf":
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			log.Fatal().Err(readErr).Msg("Failed to read file")
		}
		result, err = pdf.NewProcessor(pdf.TextExtractor{}, pdf.NewAIExtractor(completer), rules, batcher, log).Process(ctx, data)
	default:
		log.Fatal().Str("file", path).Msg("Unsupported file type, expected .xlsx, .xls or .pdf")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Processing failed")
	}
	return result
}

func newCompleter(ctx context.Context, cfg config.Config, log zerolog.Logger) ai.Completer {
	if cfg.GeminiAPIKey == "" {
		return nil
	}
	gemini, err := ai.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create model client")
	}
	return gemini
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "encode output: %v\n", err)
		os.Exit(1)
	}
}
