package roster

import (
	"github.com/arandia/ergon/pkg/agent"
	"github.com/arandia/ergon/pkg/roster/business"
	"github.com/arandia/ergon/pkg/roster/design"
	"github.com/arandia/ergon/pkg/roster/docs"
	"github.com/arandia/ergon/pkg/roster/research"
	"github.com/arandia/ergon/pkg/roster/software"
)

func init() {
	Register("compliance-officer", "business", business.NewComplianceOfficer)
	Register("decision-maker", "business", business.NewDecisionMaker)
	Register("engineering-manager", "business", business.NewEngineeringManager)
	Register("quality-control", "business", business.NewQualityControl)
	Register("marketing-agency", "business", business.NewMarketingAgency)

	Register("ux-designer", "design", design.NewUXDesigner)
	Register("frontend-designer", "design", design.NewFrontendDesigner)

	Register("quant-analyst", "research", research.NewQuantAnalyst)
	Register("fomc-research", "research", research.NewFOMCResearch)
	Register("llm-auditor", "research", research.NewLLMAuditor)

	Register("data-engineer", "software", software.NewDataEngineer)
	Register("devops-engineer", "software", software.NewDevOpsEngineer)
	Register("security-engineer", "software", software.NewSecurityEngineer)
	Register("site-reliability-engineer", "software", software.NewSiteReliabilityEngineer)
	Register("software-architect", "software", software.NewSoftwareArchitect)
	Register("predictions-engineer", "software", software.NewPredictionsEngineer)

	Register("documentation", "docs", func(opts ...agent.Option) *agent.Base {
		return docs.New(Overview, opts...)
	})
}

// Overview instantiates every registered variant except the documentation
// agent itself and reports its manifest. Construction is side-effect free,
// so building the catalogue just to describe it is cheap.
func Overview() []docs.RosterEntry {
	var out []docs.RosterEntry
	for _, e := range Entries() {
		if e.Category == "docs" {
			continue
		}
		m := e.Build().RoleManifest()
		out = append(out, docs.RosterEntry{
			Name:     e.Name,
			Category: e.Category,
			Role:     m.Role,
			Backend:  m.Backend,
			Tools:    m.Tools,
		})
	}
	return out
}
