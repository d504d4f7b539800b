// Copyright 2026 © The Ergon Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/arandia/ergon/pkg/core"
	"github.com/arandia/ergon/pkg/roster"
)

type rosterRow struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Role     string   `json:"role"`
	Backend  string   `json:"backend"`
	Tools    []string `json:"tools"`
}

func runRoster(global globalFlags, args []string) {
	if len(args) > 0 && args[0] != "list" {
		fatal(fmt.Errorf("usage: ergon roster [list]"))
	}

	rows := rosterRows()
	if global.JSON {
		printJSON(rows)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tBACKEND\tTOOLS")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			row.Name, row.Category, row.Backend, strings.Join(row.Tools, ","))
	}
	w.Flush()
}

func rosterRows() []rosterRow {
	entries := roster.Entries()
	rows := make([]rosterRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, manifestRow(e.Name, e.Category, e.Build()))
	}
	return rows
}

func manifestRow(name, category string, p core.RoleManifestProvider) rosterRow {
	m := p.RoleManifest()
	return rosterRow{
		Name:     name,
		Category: category,
		Role:     m.Role,
		Backend:  m.Backend,
		Tools:    m.Tools,
	}
}
