package classifier

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/veridoc-co/veridoc/pkg/formatting"
)

// System defines the classification client contract. Classify never returns
// an error: transport, parse, and schema failures collapse into the
// deterministic fallback result after the retry policy is exhausted.
type System interface {
	Classify(ctx context.Context, data []byte, mimeType, contextHint string) Result
}

type client struct {
	agent  gaconfig.AgentConfig
	retry  RetryPolicy
	logger *slog.Logger
}

// New creates a classification client backed by a vision-capable agent.
func New(agentCfg gaconfig.AgentConfig, retry RetryPolicy, logger *slog.Logger) System {
	return &client{
		agent:  agentCfg,
		retry:  retry,
		logger: logger.With("system", "classifier"),
	}
}

func (c *client) Classify(ctx context.Context, data []byte, mimeType, contextHint string) Result {
	prompt := composePrompt(contextHint)
	dataURI := encodeDataURI(data, mimeType)

	result, err := Run(ctx, c.retry, func(ctx context.Context) (Result, error) {
		return c.classifyOnce(ctx, prompt, dataURI)
	})
	if err != nil {
		c.logger.Error("classification failed after retries", "error", err)
		return Fallback()
	}

	result.normalize()
	return result
}

func (c *client) classifyOnce(ctx context.Context, prompt, dataURI string) (Result, error) {
	a, err := agent.New(&c.agent)
	if err != nil {
		return Result{}, fmt.Errorf("create agent: %w", err)
	}

	resp, err := a.Vision(ctx, prompt, []string{dataURI})
	if err != nil {
		return Result{}, fmt.Errorf("vision call: %w", err)
	}

	parsed, err := formatting.Parse[Result](resp.Content())
	if err != nil {
		return Result{}, fmt.Errorf("parse response: %w", err)
	}

	return parsed, nil
}

func encodeDataURI(data []byte, mimeType string) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}
