// Copyright 2026 © The Ergon Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/arandia/ergon/pkg/actionlog"
	"github.com/arandia/ergon/pkg/agent"
	"github.com/arandia/ergon/pkg/config"
	"github.com/arandia/ergon/pkg/manifest"
	"github.com/arandia/ergon/pkg/roster"
	"github.com/arandia/ergon/pkg/telemetry"
)

func runInvoke(ctx context.Context, global globalFlags, cfg *config.Config, args []string) {
	cmd := flag.NewFlagSet("invoke", flag.ExitOnError)
	agentName := cmd.String("agent", "", "roster variant name")
	toolName := cmd.String("tool", "", "tool to invoke")
	rawArgs := cmd.String("args", "{}", "tool arguments as a JSON object")
	backend := cmd.String("backend", "", "override the backend identifier")
	manifestsDir := cmd.String("manifests", "", "role manifest directory")
	cmd.Parse(args)

	if *agentName == "" || *toolName == "" {
		fatal(fmt.Errorf("usage: ergon invoke -agent <name> -tool <name> [-args '{...}']"))
	}
	var toolArgs map[string]any
	if err := json.Unmarshal([]byte(*rawArgs), &toolArgs); err != nil {
		fatal(fmt.Errorf("invalid -args: %w", err))
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
	a, _, _, err := buildVariant(*agentName, opts, *backend, *manifestsDir)
	if err != nil {
		fatal(err)
	}
	result, err := a.Invoke(ctx, *toolName, toolArgs)
	if err != nil {
		fatal(err)
	}
	printJSON(result)
}

// buildVariant constructs a roster variant. When a manifest directory is
// given and contains a spec named after the variant, the spec's overrides
// are applied; an explicit backend flag wins over both the variant default
// and the manifest.
func buildVariant(name string, opts []agent.Option, backend, manifestsDir string) (*agent.Base, manifest.Spec, bool, error) {
	var spec manifest.Spec
	var found bool
	if manifestsDir != "" {
		specs, err := manifest.LoadDir(manifestsDir)
		if err != nil {
			return nil, manifest.Spec{}, false, err
		}
		if spec, found = manifest.Find(specs, name); found {
			opts = append(opts, spec.AgentOptions()...)
		}
	}
	if backend != "" {
		opts = append(opts, agent.WithBackend(backend))
	}
	a, err := roster.New(name, opts...)
	if err != nil {
		return nil, manifest.Spec{}, false, err
	}
	return a, spec, found, nil
}
