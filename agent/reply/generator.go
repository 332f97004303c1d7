// Package reply implements the external language-model collaborator: it
// turns the per-turn negotiation context and the recent chat history into
// a natural-language reply.
package reply

import (
	"context"
	"fmt"
	"strings"

	openaisdk "github.com/openai/openai-go"

	contractx "github.com/agrovaani/negotiation-agent/agent/contract"
	promptx "github.com/agrovaani/negotiation-agent/agent/prompt"
)

// Only the tail of the conversation is sent to the model.
const maxRecentTurns = 10

type OpenAIGenerator struct {
	client      *openaisdk.Client
	model       string
	temperature float64
}

var _ contractx.ReplyGenerator = (*OpenAIGenerator)(nil)

func NewOpenAIGenerator(client *openaisdk.Client, model string, temperature float64) (*OpenAIGenerator, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: openai client is required", contractx.ErrValidation)
	}
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, fmt.Errorf("%w: model is required", contractx.ErrValidation)
	}
	return &OpenAIGenerator{
		client:      client,
		model:       model,
		temperature: temperature,
	}, nil
}

func (g *OpenAIGenerator) Generate(
	ctx context.Context,
	turnCtx contractx.TurnContext,
	recent []contractx.Turn,
) (string, error) {
	system, err := promptx.RenderNegotiator(turnCtx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", contractx.ErrValidation, err)
	}

	if len(recent) > maxRecentTurns {
		recent = recent[len(recent)-maxRecentTurns:]
	}

	messages := make([]openaisdk.ChatCompletionMessageParamUnion, 0, len(recent)+1)
	messages = append(messages, openaisdk.SystemMessage(system))
	for _, turn := range recent {
		if turn.Role == contractx.RoleCustomer {
			messages = append(messages, openaisdk.UserMessage(turn.Text))
		} else {
			messages = append(messages, openaisdk.AssistantMessage(turn.Text))
		}
	}

	res, err := g.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model:       openaisdk.ChatModel(g.model),
		Messages:    messages,
		Temperature: openaisdk.Float(g.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("%w: chat completion: %v", contractx.ErrModelInvoke, err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion response", contractx.ErrModelInvoke)
	}

	text := strings.TrimSpace(res.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%w: blank completion content", contractx.ErrModelInvoke)
	}
	return text, nil
}
