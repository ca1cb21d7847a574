package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-editor/internal/prompts"
)

// EnhancedPrefix is the prefix the offline enhancer puts before the content.
const EnhancedPrefix = "Enhanced version of: "

// Enhancer rewrites the content of one resume section.
type Enhancer interface {
	Enhance(ctx context.Context, section, content string) (string, error)
}

// EchoEnhancer is the offline enhancer. It labels the content without
// calling any model.
type EchoEnhancer struct{}

// Enhance returns content prefixed with EnhancedPrefix.
func (EchoEnhancer) Enhance(_ context.Context, _ string, content string) (string, error) {
	return EnhancedPrefix + content, nil
}

// ModelEnhancer rewrites sections with an LLM client.
type ModelEnhancer struct {
	Client Client
}

// Enhance asks the model for an improved version of content.
func (e *ModelEnhancer) Enhance(ctx context.Context, section, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("nothing to enhance in section %q", section)
	}
	tier := TierLite
	if section == "summary" {
		tier = TierStandard
	}
	prompt, err := BuildEnhancePrompt(section, content)
	if err != nil {
		return "", err
	}
	out, err := e.Client.GenerateContent(ctx, prompt, tier)
	if err != nil {
		return "", fmt.Errorf("failed to enhance %s: %w", section, err)
	}
	out = CleanResponse(out)
	if out == "" {
		return "", fmt.Errorf("model returned an empty rewrite for %s", section)
	}
	return out, nil
}

// Close releases the underlying client.
func (e *ModelEnhancer) Close() error {
	return e.Client.Close()
}

// BuildEnhancePrompt builds the rewrite prompt for one section from the
// embedded templates, with section-specific guidance when there is some.
func BuildEnhancePrompt(section, content string) (string, error) {
	guidance, err := prompts.Lookup(prompts.EnhanceFile, "guidance-"+section, "guidance-default")
	if err != nil {
		return "", err
	}
	return prompts.Render(prompts.EnhanceFile, "rewrite-section", map[string]string{
		"Section":  section,
		"Guidance": guidance,
		"Content":  content,
	})
}

// NewEnhancer returns a Gemini-backed enhancer when apiKey is set and the
// offline EchoEnhancer otherwise. The returned close function is never nil.
func NewEnhancer(ctx context.Context, config *Config, apiKey string) (Enhancer, func() error, error) {
	if apiKey == "" {
		return EchoEnhancer{}, func() error { return nil }, nil
	}
	client, err := NewGeminiClient(ctx, config, apiKey)
	if err != nil {
		return nil, nil, err
	}
	e := &ModelEnhancer{Client: client}
	return e, e.Close, nil
}
