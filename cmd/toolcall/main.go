// Package main is a CLI front for the tool adapter: it invokes a single tool
// the way a language-model runtime would, which makes the adapter testable
// from a shell.
//
// Usage:
//
//	toolcall                        list available tools
//	toolcall <tool> [json-args]     invoke a tool, e.g.
//	toolcall get_charging_stats '{"days": 7}'
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"teslamate-chat/internal/tools"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "warn"))); err != nil {
		logLevel = slog.LevelWarn
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	baseURL := getEnv("TESLAMATE_API_URL", "http://localhost:8080")
	timeout, err := time.ParseDuration(getEnv("TOOL_HTTP_TIMEOUT", "10s"))
	if err != nil {
		return fmt.Errorf("TOOL_HTTP_TIMEOUT: %w", err)
	}
	loc, err := time.LoadLocation(getEnv("JOURNAL_TIME_ZONE", "Europe/Stockholm"))
	if err != nil {
		return fmt.Errorf("JOURNAL_TIME_ZONE: %w", err)
	}

	registry := tools.NewDefaultRegistry(logger, tools.NewClient(baseURL, timeout), loc)

	if len(args) == 0 {
		for _, t := range registry.List() {
			fmt.Printf("%-22s %s\n", t.Name, t.Description)
		}
		return nil
	}

	toolArgs := ""
	if len(args) > 1 {
		toolArgs = args[1]
	}

	out, err := registry.Invoke(context.Background(), args[0], toolArgs)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
