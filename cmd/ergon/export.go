// Copyright 2026 © The Ergon Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/arandia/ergon/pkg/actionlog"
	"github.com/arandia/ergon/pkg/agent"
	"github.com/arandia/ergon/pkg/bridge"
	"github.com/arandia/ergon/pkg/config"
	"github.com/arandia/ergon/pkg/manifest"
	"github.com/arandia/ergon/pkg/telemetry"
)

func runExport(ctx context.Context, global globalFlags, cfg *config.Config, args []string) {
	cmd := flag.NewFlagSet("export", flag.ExitOnError)
	agentName := cmd.String("agent", "", "roster variant name")
	hostName := cmd.String("host", "mcp", "target host framework")
	backend := cmd.String("backend", "", "override the backend identifier")
	manifestsDir := cmd.String("manifests", "", "role manifest directory")
	instruction := cmd.String("instruction", "", "override the host instruction")
	serve := cmd.Bool("serve", false, "serve the exported agent on stdio")
	cmd.Parse(args)

	if *agentName == "" {
		fatal(fmt.Errorf("usage: ergon export -agent <name> [-host mcp] [-manifests <dir>] [-serve]"))
	}

	metrics, err := telemetry.NewToolMetrics()
	if err != nil {
		fatal(err)
	}
	opts := []agent.Option{
		agent.WithDefaultBackend(cfg.Agent.DefaultBackend),
		agent.WithActionLog(actionlog.NewWriter(cfg.ActionLog.Path)),
		agent.WithMetrics(metrics),
	}
	a, spec, found, err := buildVariant(*agentName, opts, *backend, *manifestsDir)
	if err != nil {
		fatal(err)
	}

	client, err := bridge.Connect(*hostName)
	if err != nil {
		fatal(err)
	}
	handle, err := bridge.Export(ctx, client, a, exportOptions(spec, found, *instruction)...)
	if err != nil {
		fatal(err)
	}

	if *serve {
		mcpAgent, ok := handle.(*bridge.MCPAgent)
		if !ok {
			fatal(fmt.Errorf("host %q does not support -serve", *hostName))
		}
		if err := mcpAgent.ServeStdio(); err != nil {
			fatal(err)
		}
		return
	}

	tools := a.Tools()
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.Name()
	}
	printJSON(map[string]any{
		"agent":   a.ID(),
		"host":    *hostName,
		"backend": a.Backend(),
		"tools":   names,
	})
}

// exportOptions layers instruction sources: the manifest body when one
// matched, then the explicit flag on top.
func exportOptions(spec manifest.Spec, found bool, instruction string) []bridge.ExportOption {
	var opts []bridge.ExportOption
	if found {
		opts = append(opts, bridge.WithInstruction(spec.Instruction))
	}
	if instruction != "" {
		opts = append(opts, bridge.WithInstruction(instruction))
	}
	return opts
}
