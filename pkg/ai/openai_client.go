package ai

import (
	"context"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = `Jesteś asystentem AI dla klubu piłkarskiego Widzew Łódź. Odpowiadasz na pytania kibiców w języku polskim.
Używaj przyjaznego, profesjonalnego tonu. Jeśli nie znasz odpowiedzi, powiedz to szczerze i zasugeruj kontakt z biurem obsługi klienta.

Kontekst: %CONTEXT%

Odpowiadaj krótko i na temat.`

type openAIClient struct {
	client         *openai.Client
	model          string
	embeddingModel string
	embedDim       int
}

// NewOpenAI builds a Client backed by the OpenAI API.
func NewOpenAI(apiKey, model, embeddingModel string, embedDim int) Client {
	return &openAIClient{
		client:         openai.NewClient(apiKey),
		model:          model,
		embeddingModel: embeddingModel,
		embedDim:       embedDim,
	}
}

func (c *openAIClient) GenerateResponse(ctx context.Context, prompt, kbContext string) string {
	if kbContext == "" {
		kbContext = "Brak dodatkowego kontekstu"
	}
	system := strings.Replace(systemPrompt, "%CONTEXT%", kbContext, 1)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		log.Printf("[ai] chat completion: %v", err)
		return Apology
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return Apology
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

func (c *openAIClient) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(c.embeddingModel),
	})
	if err != nil {
		log.Printf("[ai] embedding: %v, using fallback", err)
		return FallbackEmbedding(text, c.embedDim), nil
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return FallbackEmbedding(text, c.embedDim), nil
	}
	return resp.Data[0].Embedding, nil
}
