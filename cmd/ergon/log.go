// Copyright 2026 © The Ergon Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/arandia/ergon/pkg/actionlog"
	"github.com/arandia/ergon/pkg/config"
)

const defaultIndexPath = "agents/actionlog.db"

func runLog(ctx context.Context, global globalFlags, cfg *config.Config, args []string) {
	if len(args) == 0 {
		fatal(fmt.Errorf("usage: ergon log <summarize|index|query> [flags]"))
	}
	indexPath := cfg.ActionLog.IndexPath
	if indexPath == "" {
		indexPath = defaultIndexPath
	}

	switch args[0] {
	case "summarize":
		runLogSummarize(global, cfg, args[1:])
	case "index":
		runLogIndex(ctx, cfg, indexPath, args[1:])
	case "query":
		runLogQuery(ctx, global, indexPath, args[1:])
	default:
		fatal(fmt.Errorf("unknown log subcommand %q", args[0]))
	}
}

func runLogSummarize(global globalFlags, cfg *config.Config, args []string) {
	cmd := flag.NewFlagSet("log summarize", flag.ExitOnError)
	file := cmd.String("file", cfg.ActionLog.Path, "action log path")
	cmd.Parse(args)

	f, err := os.Open(*file)
	if err != nil {
		fatal(err)
	}
	defer f.Close()

	sum, err := actionlog.Summarize(f)
	if err != nil {
		fatal(err)
	}
	if global.JSON {
		printJSON(sum)
		return
	}
	fmt.Printf("Entries: %d (skipped %d)\n", sum.Total, sum.Skipped)
	if !sum.First.IsZero() {
		fmt.Printf("Range: %s .. %s\n",
			sum.First.Format(time.RFC3339), sum.Last.Format(time.RFC3339))
	}
	printCounts("By agent:", sum.ByAgent)
	printCounts("By tool:", sum.ByTool)
}

func printCounts(header string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	fmt.Println(header)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for name, n := range counts {
		fmt.Fprintf(w, "  %s\t%d\n", name, n)
	}
	w.Flush()
}

func runLogIndex(ctx context.Context, cfg *config.Config, indexPath string, args []string) {
	cmd := flag.NewFlagSet("log index", flag.ExitOnError)
	file := cmd.String("file", cfg.ActionLog.Path, "action log path")
	db := cmd.String("db", indexPath, "sqlite index path")
	cmd.Parse(args)

	f, err := os.Open(*file)
	if err != nil {
		fatal(err)
	}
	defer f.Close()

	conn, err := actionlog.OpenSQLite(*db)
	if err != nil {
		fatal(err)
	}
	defer conn.Close()
	store, err := actionlog.NewSQLiteStore(conn)
	if err != nil {
		fatal(err)
	}

	n, err := actionlog.Reindex(ctx, f, store)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Indexed %d entries into %s\n", n, *db)
}

func runLogQuery(ctx context.Context, global globalFlags, indexPath string, args []string) {
	cmd := flag.NewFlagSet("log query", flag.ExitOnError)
	agentID := cmd.String("agent", "", "filter by agent id")
	tool := cmd.String("tool", "", "filter by tool name")
	limit := cmd.Int("limit", 0, "maximum entries to return")
	db := cmd.String("db", indexPath, "sqlite index path")
	cmd.Parse(args)

	conn, err := actionlog.OpenSQLite(*db)
	if err != nil {
		fatal(err)
	}
	defer conn.Close()
	store, err := actionlog.NewSQLiteStore(conn)
	if err != nil {
		fatal(err)
	}

	entries, err := store.List(ctx, actionlog.Filter{
		AgentID: *agentID,
		Tool:    *tool,
		Limit:   *limit,
	})
	if err != nil {
		fatal(err)
	}

	if global.JSON {
		out := make([]map[string]any, 0, len(entries))
		for _, e := range entries {
			out = append(out, map[string]any{
				"timestamp": e.Timestamp.Format(time.RFC3339),
				"agent_id":  e.AgentID,
				"tool":      e.Tool,
				"args":      e.Args,
				"kwargs":    e.KwargTypes,
			})
		}
		printJSON(out)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tAGENT\tTOOL\tARGS")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.Timestamp.Format(time.RFC3339), e.AgentID, e.Tool, e.Args)
	}
	w.Flush()
}
