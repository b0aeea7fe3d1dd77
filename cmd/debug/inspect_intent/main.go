// Command inspect_intent prints what feature creation would produce for a
// sentence, without touching the database.
//
//	go run ./cmd/debug/inspect_intent "I want a todo list with AI insights"
package main

import (
	"encoding/json"
	"os"
	"strings"

	"ai-workspace-be/pkg/feature/intent"
	"ai-workspace-be/pkg/feature/planner"
	"ai-workspace-be/pkg/feature/template"

	"github.com/fatih/color"
)

func main() {
	text := strings.TrimSpace(strings.Join(os.Args[1:], " "))
	if text == "" {
		color.Red("usage: inspect_intent <sentence>")
		os.Exit(2)
	}

	color.Cyan("Input: %q\n", text)

	in := intent.Classify(text)
	color.Yellow("\n[1] Intent")
	color.Green("type=%s category=%s confidence=%.2f", in.Type, in.Category, in.Confidence)
	color.White("actions=%v topics=%v", in.Requirements.Actions, in.Requirements.Topics)

	tmpl, ok := template.DefaultCatalog().Get(in.Type)
	if !ok {
		color.Red("\nNo template for type %q; creation would fail as unsupported", in.Type)
		os.Exit(1)
	}

	color.Yellow("\n[2] Template")
	color.Green("%s (%s)", tmpl.Name, tmpl.Type)
	for _, bp := range tmpl.RequiredAgents {
		color.White("  agent %-20s role=%s creativity=%.1f verbosity=%s", bp.Name, bp.Role, bp.Creativity, bp.Verbosity)
	}

	plan := planner.BuildPlan(text, in, tmpl)
	plan.FeatureName = planner.ApplyNameOverrides(text, plan.FeatureName, planner.DefaultNameOverrides)

	color.Yellow("\n[3] Plan")
	raw, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		color.Red("marshal plan: %v", err)
		os.Exit(1)
	}
	color.White(string(raw))
}
