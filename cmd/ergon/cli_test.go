// Copyright 2026 © The Ergon Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arandia/ergon/pkg/bridge"
	"github.com/arandia/ergon/pkg/manifest"
)

func TestParseGlobalFlags(t *testing.T) {
	flags, rest, err := parseGlobalFlags([]string{
		"--json", "--timeout=5s", "--config", "ergon.yaml", "roster", "list",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !flags.JSON || flags.Timeout != 5*time.Second || flags.ConfigPath != "ergon.yaml" {
		t.Errorf("flags = %+v", flags)
	}
	if len(rest) != 2 || rest[0] != "roster" {
		t.Errorf("rest = %v", rest)
	}
}

func TestParseGlobalFlagsStopsAtCommand(t *testing.T) {
	flags, rest, err := parseGlobalFlags([]string{"invoke", "--json"})
	if err != nil {
		t.Fatal(err)
	}
	if flags.JSON {
		t.Error("flags after the command belong to the subcommand")
	}
	if len(rest) != 2 || rest[0] != "invoke" {
		t.Errorf("rest = %v", rest)
	}
}

func TestParseGlobalFlagsRejectsUnknown(t *testing.T) {
	if _, _, err := parseGlobalFlags([]string{"--nope"}); err == nil {
		t.Error("unknown global flag must error")
	}
}

func writeManifestDir(t *testing.T, id, body string) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ROLE.md"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestBuildVariantAppliesManifest(t *testing.T) {
	root := writeManifestDir(t, "quant-analyst", `---
id: quant-analyst
role: Portfolio cost analysis
backend: custom/model
---
Estimate project costs before approval.
`)

	a, spec, found, err := buildVariant("quant-analyst", nil, "", root)
	if err != nil {
		t.Fatal(err)
	}
	if !found || spec.ID != "quant-analyst" {
		t.Fatalf("manifest not matched: %+v/%v", spec, found)
	}
	if a.Backend() != "custom/model" {
		t.Errorf("manifest backend not applied: %q", a.Backend())
	}
	if a.Role() != "Portfolio cost analysis" {
		t.Errorf("manifest role not applied: %q", a.Role())
	}
	if !strings.Contains(a.RoleManifest().Responsibility, "approval") {
		t.Errorf("manifest instruction lost: %q", a.RoleManifest().Responsibility)
	}
}

func TestBuildVariantBackendFlagWinsOverManifest(t *testing.T) {
	root := writeManifestDir(t, "quant-analyst", `---
id: quant-analyst
role: Portfolio cost analysis
backend: custom/model
---
Estimate project costs.
`)

	a, _, _, err := buildVariant("quant-analyst", nil, "flag/model", root)
	if err != nil {
		t.Fatal(err)
	}
	if a.Backend() != "flag/model" {
		t.Errorf("explicit backend flag must win: %q", a.Backend())
	}
}

func TestBuildVariantWithoutManifestDir(t *testing.T) {
	a, _, found, err := buildVariant("quant-analyst", nil, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("no manifest dir means no match")
	}
	if a == nil || a.Backend() == "" {
		t.Error("variant defaults must survive unchanged")
	}
}

func TestExportOptionsLayerInstruction(t *testing.T) {
	apply := func(opts []bridge.ExportOption) string {
		req := bridge.HostRequest{Instruction: bridge.DefaultInstruction}
		for _, opt := range opts {
			opt(&req)
		}
		return req.Instruction
	}

	spec := manifest.Spec{ID: "quant-analyst", Instruction: "Estimate costs."}
	if got := apply(exportOptions(spec, true, "")); got != "Estimate costs." {
		t.Errorf("manifest body must become the instruction: %q", got)
	}
	if got := apply(exportOptions(spec, true, "Be terse.")); got != "Be terse." {
		t.Errorf("explicit flag must win over the manifest: %q", got)
	}
	if got := apply(exportOptions(manifest.Spec{}, false, "")); got != bridge.DefaultInstruction {
		t.Errorf("default instruction must survive: %q", got)
	}
}

func TestManifestRowAcceptsAnyProvider(t *testing.T) {
	spec := manifest.Spec{
		ID:      "compliance-officer",
		Role:    "Governance",
		Backend: "openai/o3",
		Tools:   []string{"check_compliance"},
	}
	row := manifestRow("compliance-officer", "business", spec)
	if row.Role != "Governance" || row.Backend != "openai/o3" {
		t.Errorf("row built from a loaded spec mismatch: %+v", row)
	}
	if len(row.Tools) != 1 || row.Tools[0] != "check_compliance" {
		t.Errorf("row tools mismatch: %v", row.Tools)
	}
}

func TestRosterRowsCoverCatalogue(t *testing.T) {
	rows := rosterRows()
	if len(rows) == 0 {
		t.Fatal("empty roster")
	}
	for _, row := range rows {
		if row.Name == "" || row.Category == "" || row.Backend == "" {
			t.Errorf("incomplete row: %+v", row)
		}
		if len(row.Tools) == 0 {
			t.Errorf("%s: no tools listed", row.Name)
		}
	}
}
