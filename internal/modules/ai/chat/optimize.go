package chat

import (
	"context"
	"fmt"

	"github.com/reusedev/prompt-studio/internal/modules/ai"
)

const (
	humanTurn = "\n\nHuman:"
	maxTokens = 300
)

// OptimizeInstruction asks the model to rewrite prompt so it incorporates the
// user's feedback, answering with the new prompt only.
func OptimizeInstruction(prompt, suggestion string) string {
	return fmt.Sprintf("%s Original prompt was: \"%s\". User provided the following feedback: %s\n\nAssistant:(IN ENGLISH, ONLY NEW PROMPT, number of words less than 512)",
		humanTurn, prompt, suggestion)
}

// Rewrite returns the model's rewritten prompt verbatim (whitespace trimmed).
func Rewrite(ctx context.Context, runtime ai.Runtime, modelID, prompt, suggestion string) (string, error) {
	request := CompletionRequest{
		Prompt:            OptimizeInstruction(prompt, suggestion),
		MaxTokensToSample: maxTokens,
		Temperature:       0.7,
		TopP:              0.9,
		TopK:              250,
		StopSequences:     []string{humanTurn},
	}
	resp, err := NewRequester(runtime, modelID, &request, &CommonParser{}).Do(ctx)
	if err != nil {
		return "", err
	}
	if !resp.Succeed() {
		return "", resp.GetError()
	}
	return resp.Text(), nil
}
