package openaiclient

import (
	"context"
	"io"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"vocacional-ai-backend/config"
	"vocacional-ai-backend/models"
)

// Tempo máximo de espera por uma resposta do serviço
const requestTimeout = 2 * time.Minute

// Options - parâmetros de geração por chamada
type Options struct {
	Temperature float32
	MaxTokens   int
}

type Provider interface {
	Complete(ctx context.Context, system, user string, opts Options) (string, error)
	Stream(ctx context.Context, system, user string, opts Options) (<-chan string, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(config.Conf.OpenAI.APIKey, config.Conf.OpenAI.Model)
}

func NewInstance(apiKey, model string) Provider {
	cfg := openai.DefaultConfig(apiKey)
	return &impl{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

type impl struct {
	client *openai.Client
	model  string
}

func (i impl) getLogger() *log.Entry {
	return log.
		WithField("ai", "openai").
		WithField("model", i.model)
}

func (i impl) buildMessages(system, user string) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: user,
	})
	return messages
}

func (i impl) Complete(ctx context.Context, system, user string, opts Options) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	now := time.Now()
	resp, err := i.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       i.model,
		Messages:    i.buildMessages(system, user),
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		i.getLogger().WithError(err).Error("erro na chamada de geração")
		return "", errors.Wrap(models.ErrCompletionFailed, err.Error())
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.Wrap(models.ErrCompletionFailed, "resposta vazia do serviço")
	}
	answer := resp.Choices[0].Message.Content
	i.getLogger().
		WithField("prompt", user).
		WithField("answer", answer).
		WithField("answer_duration_sec", time.Now().Sub(now).Seconds()).
		Debug("resposta do serviço de geração")
	return answer, nil
}

func (i impl) Stream(ctx context.Context, system, user string, opts Options) (<-chan string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)

	stream, err := i.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:       i.model,
		Messages:    i.buildMessages(system, user),
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
		Stream:      true,
	})
	if err != nil {
		cancel()
		i.getLogger().WithError(err).Error("erro ao abrir o stream de geração")
		return nil, errors.Wrap(models.ErrCompletionFailed, err.Error())
	}

	out := make(chan string)
	go func() {
		defer cancel()
		defer close(out)
		defer stream.Close()
		for {
			chunk, err := stream.Recv()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					i.getLogger().WithError(err).Warn("stream de geração interrompido")
				}
				return
			}
			if len(chunk.Choices) == 0 {
				continue
			}
			delta := chunk.Choices[0].Delta.Content
			if delta == "" {
				continue
			}
			select {
			case out <- delta:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
