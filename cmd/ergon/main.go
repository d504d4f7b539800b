// Copyright 2026 © The Ergon Authors
// SPDX-License-Identifier: Apache-2.0

// Package main implements the ergon CLI: inspect the roster, invoke tools,
// and work with the shared action log.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/arandia/ergon/pkg/config"
	"github.com/arandia/ergon/pkg/telemetry"
)

const version = "dev"

type globalFlags struct {
	ConfigPath string
	LogLevel   string
	Timeout    time.Duration
	JSON       bool
	Help       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	global, args, err := parseGlobalFlags(os.Args[1:])
	if err != nil {
		fatal(err)
	}
	if global.Help || len(args) == 0 {
		printUsage()
		return
	}

	cfg, err := config.Load(global.ConfigPath)
	if err != nil {
		fatal(err)
	}
	level := cfg.Log.Level
	if global.LogLevel != "" {
		level = global.LogLevel
	}
	slog.SetDefault(telemetry.ConfigureSlog(os.Stderr, level, cfg.Log.Format))

	shutdown, err := telemetry.InitWithConfig("ergon", version, telemetry.Config{
		Exporter:     cfg.Telemetry.Exporter,
		OTLPEndpoint: cfg.Telemetry.OTLPEndpoint,
		OTLPInsecure: cfg.Telemetry.OTLPInsecure,
	})
	if err != nil {
		fatal(err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Warn("telemetry shutdown incomplete", "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, global.Timeout)
	defer cancel()

	switch args[0] {
	case "roster":
		runRoster(global, args[1:])
	case "invoke":
		runInvoke(ctx, global, cfg, args[1:])
	case "export":
		runExport(ctx, global, cfg, args[1:])
	case "log":
		runLog(ctx, global, cfg, args[1:])
	case "version":
		fmt.Println(version)
	case "help":
		printUsage()
	default:
		fatal(fmt.Errorf("unknown command %q", args[0]))
	}
}

func parseGlobalFlags(args []string) (globalFlags, []string, error) {
	flags := globalFlags{Timeout: 30 * time.Second}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return flags, args[i+1:], nil
		}
		if !strings.HasPrefix(arg, "-") {
			return flags, args[i:], nil
		}
		switch {
		case arg == "-h" || arg == "--help":
			flags.Help = true
			return flags, nil, nil
		case arg == "--json":
			flags.JSON = true
		case arg == "--config":
			if i+1 >= len(args) {
				return flags, nil, fmt.Errorf("missing value for --config")
			}
			flags.ConfigPath = args[i+1]
			i++
		case strings.HasPrefix(arg, "--config="):
			flags.ConfigPath = strings.TrimPrefix(arg, "--config=")
		case arg == "--log-level":
			if i+1 >= len(args) {
				return flags, nil, fmt.Errorf("missing value for --log-level")
			}
			flags.LogLevel = args[i+1]
			i++
		case strings.HasPrefix(arg, "--log-level="):
			flags.LogLevel = strings.TrimPrefix(arg, "--log-level=")
		case arg == "--timeout":
			if i+1 >= len(args) {
				return flags, nil, fmt.Errorf("missing value for --timeout")
			}
			value, err := time.ParseDuration(args[i+1])
			if err != nil {
				return flags, nil, fmt.Errorf("invalid --timeout: %w", err)
			}
			flags.Timeout = value
			i++
		case strings.HasPrefix(arg, "--timeout="):
			value, err := time.ParseDuration(strings.TrimPrefix(arg, "--timeout="))
			if err != nil {
				return flags, nil, fmt.Errorf("invalid --timeout: %w", err)
			}
			flags.Timeout = value
		default:
			return flags, nil, fmt.Errorf("unknown global flag %q", arg)
		}
	}
	return flags, nil, nil
}

func printUsage() {
	fmt.Println(`ergon - agent roster with audited tool invocation

Usage:
  ergon [global flags] <command> [args]

Global flags:
  --config <path>      Path to config YAML
  --log-level <level>  Override log level (debug, info, warn, error)
  --timeout <dur>      Command timeout (default 30s)
  --json               JSON output

Commands:
  roster                                        List the agent catalogue
  invoke -agent <name> -tool <name> [-args J]   Invoke a tool and print the result
         [-manifests <dir>]                     Apply role manifest overrides
  export -agent <name> [-host mcp] [-serve]     Export an agent to a host framework
         [-manifests <dir>] [-instruction S]    Use a manifest body as instruction
  log summarize [-file <path>]                  Aggregate the action log
  log index [-file <path>] [-db <path>]         Reindex the action log into sqlite
  log query [-agent id] [-tool name] [-limit N] Query the sqlite index
  version
  help`)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
