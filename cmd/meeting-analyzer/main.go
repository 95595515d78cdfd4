package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"genai-cost-estimator/meeting"
	"genai-cost-estimator/meeting/provider"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "missing OPENAI_API_KEY (or pass -api-key)")
		os.Exit(2)
	}

	// Pricing is resolved before any request is issued: the run must never
	// proceed with zero-cost accounting.
	rates, err := meeting.LoadRates(cfg.Prices, cfg.PriceModel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)

	analyzer, err := meeting.New(provider.NewOpenAI(apiKey, cfg.Model), rates, meeting.Options{
		ChunkSize:    cfg.ChunkSize,
		ChunkOverlap: cfg.ChunkOverlap,
		Logger:       log,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := analyzer.AnalyzeFile(ctx, cfg.Transcript)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	printReport(os.Stdout, report)
}

func printReport(w io.Writer, report meeting.Report) {
	fmt.Fprintln(w, "=== Meeting Analysis ===")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintln(w, report.Result.Summary)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Actions Agreed:")
	for _, action := range report.Result.Actions {
		fmt.Fprintf(w, "- %s\n", action)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "What Went Well:")
	for _, positive := range report.Result.Positives {
		fmt.Fprintf(w, "- %s\n", positive)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Areas for Improvement:")
	for _, improvement := range report.Result.Improvements {
		fmt.Fprintf(w, "- %s\n", improvement)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Cost Analysis ===")
	fmt.Fprintf(w, "Input cost: $%.4f\n", report.Cost.InputCost)
	fmt.Fprintf(w, "Output cost: $%.4f\n", report.Cost.OutputCost)
	fmt.Fprintf(w, "Total cost: $%.4f\n", report.Cost.TotalCost)
}
