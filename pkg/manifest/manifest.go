// Package manifest loads declarative role manifests. A manifest directory
// contains one subdirectory per role with a ROLE.md file: YAML frontmatter
// for identity and tool allowances, free-text body used as the instruction
// when bridging to an external host.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/arandia/ergon/pkg/agent"
	"github.com/arandia/ergon/pkg/core"
)

// Spec describes one role manifest.
type Spec struct {
	ID          string
	Role        string
	Backend     string
	Tools       []string
	Metadata    map[string]string
	Instruction string
	Path        string
	Dir         string
}

const (
	maxIDLen   = 64
	maxRoleLen = 1024
)

var idPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// RoleManifest converts the spec to core role metadata.
func (s Spec) RoleManifest() core.RoleManifest {
	return core.RoleManifest{
		Role:           s.Role,
		Responsibility: s.Instruction,
		Backend:        s.Backend,
		Tools:          append([]string(nil), s.Tools...),
		Metadata:       s.Metadata,
	}
}

// AgentOptions translates the spec into agent construction options. The
// manifest is attached verbatim; a non-empty role or backend overrides the
// variant default.
func (s Spec) AgentOptions() []agent.Option {
	opts := []agent.Option{agent.WithManifest(s.RoleManifest())}
	if s.Role != "" {
		opts = append(opts, agent.WithRole(s.Role))
	}
	if s.Backend != "" {
		opts = append(opts, agent.WithBackend(s.Backend))
	}
	return opts
}

// Find returns the spec with the given id.
func Find(specs []Spec, id string) (Spec, bool) {
	for _, s := range specs {
		if s.ID == id {
			return s, true
		}
	}
	return Spec{}, false
}

// LoadDir scans a directory for role subdirectories with ROLE.md.
func LoadDir(root string) ([]Spec, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var out []Spec
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		rolePath := filepath.Join(root, entry.Name(), "ROLE.md")
		if _, err := os.Stat(rolePath); err != nil {
			continue
		}
		spec, err := LoadFile(rolePath)
		if err != nil {
			return nil, err
		}
		out = append(out, spec)
	}
	return out, nil
}

// LoadFile parses a single ROLE.md file.
func LoadFile(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, err
	}
	fm, body, err := splitFrontmatter(string(data))
	if err != nil {
		return Spec{}, fmt.Errorf("%s: %w", path, err)
	}
	var parsed frontmatter
	if err := yaml.Unmarshal([]byte(fm), &parsed); err != nil {
		return Spec{}, fmt.Errorf("parse frontmatter: %w", err)
	}
	dir := filepath.Dir(path)
	spec := Spec{
		ID:          strings.TrimSpace(parsed.ID),
		Role:        strings.TrimSpace(parsed.Role),
		Backend:     strings.TrimSpace(parsed.Backend),
		Tools:       dedupe(parsed.Tools),
		Metadata:    parsed.Metadata,
		Instruction: strings.TrimSpace(body),
		Path:        path,
		Dir:         dir,
	}
	if err := validate(spec); err != nil {
		return Spec{}, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

type frontmatter struct {
	ID       string            `yaml:"id"`
	Role     string            `yaml:"role"`
	Backend  string            `yaml:"backend"`
	Tools    []string          `yaml:"tools"`
	Metadata map[string]string `yaml:"metadata"`
}

func splitFrontmatter(content string) (string, string, error) {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "---") {
		return "", "", errors.New("missing frontmatter")
	}
	parts := strings.SplitN(trimmed, "---", 3)
	if len(parts) < 3 {
		return "", "", errors.New("invalid frontmatter")
	}
	return strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2]), nil
}

func validate(spec Spec) error {
	if spec.ID == "" {
		return errors.New("id is required")
	}
	if utf8.RuneCountInString(spec.ID) > maxIDLen {
		return fmt.Errorf("id exceeds %d characters", maxIDLen)
	}
	if !idPattern.MatchString(spec.ID) {
		return fmt.Errorf("id must match %s", idPattern.String())
	}
	dirName := filepath.Base(spec.Dir)
	if dirName != spec.ID {
		return fmt.Errorf("id must match directory name (%s)", dirName)
	}
	if spec.Role == "" {
		return errors.New("role is required")
	}
	if utf8.RuneCountInString(spec.Role) > maxRoleLen {
		return fmt.Errorf("role exceeds %d characters", maxRoleLen)
	}
	return nil
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
