// FILE: pkg/agentrunner/runner.go
// PURPOSE: Turns an agent persona plus assembled context into one LLM call
// and extracts the reply and an optional stage transition.

package agentrunner

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"ai-workspace-be/internal/entity"
	"ai-workspace-be/pkg/feature"
	"ai-workspace-be/pkg/llm"
	"ai-workspace-be/pkg/orchestrator"
)

// ErrEmptyReply means the model produced nothing usable once the stage signal
// was removed.
var ErrEmptyReply = errors.New("agent produced an empty reply")

const defaultMaxTokens = 1024

type Request struct {
	Agent   *entity.Agent
	Input   string
	History []*entity.Message
	Page    *orchestrator.PageContext
	Facts   orchestrator.FeatureFacts
}

type Result struct {
	Response string
	NewStage string
}

type Runner struct {
	provider  llm.LLMProvider
	maxTokens int
}

func New(provider llm.LLMProvider, maxTokens int) *Runner {
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &Runner{provider: provider, maxTokens: maxTokens}
}

// Run calls the model once. NewStage is set only when the model signalled a
// stage different from the agent's current one.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	messages := BuildMessages(req)

	output, err := r.provider.Chat(ctx, messages,
		llm.WithTemperature(req.Agent.Creativity),
		llm.WithMaxTokens(r.maxTokens),
	)
	if err != nil {
		return nil, fmt.Errorf("llm call failed: %w", err)
	}

	reply, stage := ParseStage(output)
	if reply == "" {
		return nil, ErrEmptyReply
	}

	result := &Result{Response: reply}
	if stage != "" && stage != req.Agent.Stage {
		result.NewStage = stage
	}
	return result, nil
}

// BuildMessages lays out the request: persona, page memory, feature summaries
// and facts as system messages, then the agent thread, then the input.
func BuildMessages(req Request) []llm.Message {
	messages := []llm.Message{{Role: llm.RoleSystem, Content: personaPrompt(req.Agent)}}

	if req.Page != nil {
		if memory := pageMemory(req.Page.Messages); memory != "" {
			messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: memory})
		}
		if status := featureStatus(req.Page.Summaries); status != "" {
			messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: status})
		}
	}
	if facts := featureFacts(req.Facts); facts != "" {
		messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: facts})
	}

	for _, m := range req.History {
		role := llm.RoleUser
		if m.Role == entity.MessageRoleAgent {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: m.Content})
	}

	return append(messages, llm.Message{Role: llm.RoleUser, Content: req.Input})
}

var verbosityGuide = map[string]string{
	entity.VerbosityConcise:  "Keep answers short, a few sentences at most.",
	entity.VerbosityBalanced: "Give complete answers without padding.",
	entity.VerbosityDetailed: "Explain thoroughly and include examples when useful.",
}

func personaPrompt(agent *entity.Agent) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are %s, a %s.", agent.Name, agent.Role)
	if agent.Description != "" {
		fmt.Fprintf(&sb, " %s", agent.Description)
	}
	if agent.Tone != "" {
		fmt.Fprintf(&sb, "\nTone: %s.", agent.Tone)
	}
	if guide, ok := verbosityGuide[agent.Verbosity]; ok {
		fmt.Fprintf(&sb, "\n%s", guide)
	}
	if agent.Stage != "" {
		fmt.Fprintf(&sb, "\nCurrent conversation stage: %s.", agent.Stage)
	}
	sb.WriteString("\nIf the conversation moves to a new stage, end your reply with a line `STAGE: <name>`.")
	return sb.String()
}

func pageMemory(messages []*entity.Message) string {
	if len(messages) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Shared page memory (oldest first):")
	for _, m := range messages {
		fmt.Fprintf(&sb, "\n- %s", m.Content)
	}
	return sb.String()
}

func featureStatus(summaries []orchestrator.FeatureSummary) string {
	if len(summaries) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Features on this page:")
	for _, s := range summaries {
		fmt.Fprintf(&sb, "\n- %s (%s): %s", s.Name, s.Type, s.Summary)
		if len(s.Insights) > 0 {
			fmt.Fprintf(&sb, " Insights: %s", strings.Join(s.Insights, " "))
		}
	}
	return sb.String()
}

func featureFacts(facts orchestrator.FeatureFacts) string {
	if len(facts) == 0 {
		return ""
	}

	types := make([]feature.FeatureType, 0, len(facts))
	for ft := range facts {
		types = append(types, ft)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	var sb strings.Builder
	sb.WriteString("Feature facts:")
	for _, ft := range types {
		stats := facts[ft]
		keys := make([]string, 0, len(stats))
		for k := range stats {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, fmt.Sprintf("%s=%d", k, stats[k]))
		}
		fmt.Fprintf(&sb, "\n- %s: %s", ft, strings.Join(pairs, ", "))
	}
	return sb.String()
}
