package testutil

import (
	"context"
	"sync"

	"ai-workspace-be/pkg/llm"
)

// FakeLLM records every request and answers with Reply or Err. When Block is
// set it waits for the context instead, which lets tests drive timeouts.
type FakeLLM struct {
	mu       sync.Mutex
	Reply    string
	Err      error
	Block    bool
	Requests [][]llm.Message
	Options  []llm.Options
}

var _ llm.LLMProvider = &FakeLLM{}

func (f *FakeLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	f.mu.Lock()
	f.Requests = append(f.Requests, history)
	f.Options = append(f.Options, llm.ApplyOptions(llm.Options{}, opts...))
	f.mu.Unlock()

	if f.Block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if f.Err != nil {
		return "", f.Err
	}
	return f.Reply, nil
}

func (f *FakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

func (f *FakeLLM) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Requests)
}

func (f *FakeLLM) LastRequest() []llm.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Requests) == 0 {
		return nil
	}
	return f.Requests[len(f.Requests)-1]
}
