package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	response string
	err      error
	prompt   string
	tier     ModelTier
	closed   bool
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, tier ModelTier) (string, error) {
	f.prompt = prompt
	f.tier = tier
	return f.response, f.err
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func TestEchoEnhancer(t *testing.T) {
	out, err := EchoEnhancer{}.Enhance(context.Background(), "summary", "I write code")
	require.NoError(t, err)
	assert.Equal(t, "Enhanced version of: I write code", out)
}

func TestModelEnhancer(t *testing.T) {
	client := &fakeClient{response: "```\nShipped production Go services.\n```"}
	e := &ModelEnhancer{Client: client}

	out, err := e.Enhance(context.Background(), "summary", "I write Go")
	require.NoError(t, err)
	assert.Equal(t, "Shipped production Go services.", out)
	assert.Equal(t, TierStandard, client.tier)
	assert.Contains(t, client.prompt, "summary section")
	assert.Contains(t, client.prompt, "I write Go")

	_, err = e.Enhance(context.Background(), "achievements", "Won")
	require.NoError(t, err)
	assert.Equal(t, TierLite, client.tier)

	require.NoError(t, e.Close())
	assert.True(t, client.closed)
}

func TestModelEnhancer_Errors(t *testing.T) {
	e := &ModelEnhancer{Client: &fakeClient{err: errors.New("quota")}}
	_, err := e.Enhance(context.Background(), "summary", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota")

	e = &ModelEnhancer{Client: &fakeClient{response: "  "}}
	_, err = e.Enhance(context.Background(), "summary", "text")
	assert.Error(t, err)

	_, err = e.Enhance(context.Background(), "summary", "   ")
	assert.Error(t, err)
}

func TestNewEnhancer_WithoutKey(t *testing.T) {
	e, closeFn, err := NewEnhancer(context.Background(), nil, "")
	require.NoError(t, err)
	assert.IsType(t, EchoEnhancer{}, e)
	assert.NoError(t, closeFn())
}

func TestBuildEnhancePrompt(t *testing.T) {
	prompt, err := BuildEnhancePrompt("skills", "Go, go, SQL")
	require.NoError(t, err)
	assert.Contains(t, prompt, "Rewrite the skills section")
	assert.Contains(t, prompt, "comma separated list")
	assert.Contains(t, prompt, "Go, go, SQL")

	prompt, err = BuildEnhancePrompt("name", "Ada")
	require.NoError(t, err)
	assert.Contains(t, prompt, "active voice")
}
