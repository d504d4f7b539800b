// Package design provides the design side of the roster: user experience
// planning and visual design agents.
package design

import (
	"context"

	"github.com/arandia/ergon/pkg/agent"
	"github.com/arandia/ergon/pkg/core"
)

// NewUXDesigner builds the experience design and interface planning agent.
func NewUXDesigner(opts ...agent.Option) *agent.Base {
	a := agent.New("ux-designer-001", "User experience design and interface planning",
		append([]agent.Option{agent.WithDefaultBackend("anthropic/claude-4-sonnet")}, opts...)...)
	a.RegisterFunc("create_wireframes", "Produce a wireframe artifact list for a feature.",
		func(ctx context.Context, args map[string]any) (map[string]any, error) {
			feature := core.StringArg(core.MapArg(args, "requirements"), "feature", "feature")
			a.Logger().InfoContext(ctx, "wireframes.created", "feature", feature)
			return map[string]any{
				"wireframes": []string{"wireframe_home.png", "wireframe_details.png"},
				"tool":       "figma",
			}, nil
		})
	return a
}

// NewFrontendDesigner builds the visual design agent. Its tool accepts the
// wireframe list either directly or wrapped in a {"pages": [...]} map.
func NewFrontendDesigner(opts ...agent.Option) *agent.Base {
	a := agent.New("frontend-designer-001", "Visual design with technical implementation focus",
		append([]agent.Option{agent.WithDefaultBackend("openai/gpt-5-chat")}, opts...)...)
	a.RegisterFunc("create_visual_design", "Create a visual design artifact from wireframes.",
		func(ctx context.Context, args map[string]any) (map[string]any, error) {
			pages := core.StringsArg(args, "wireframes")
			if pages == nil {
				pages = core.StringsArg(core.MapArg(args, "wireframes"), "pages")
			}
			a.Logger().InfoContext(ctx, "visual_design.created", "pages", len(pages))
			return map[string]any{"visual_design": "design.fig", "pages": len(pages)}, nil
		})
	return a
}
