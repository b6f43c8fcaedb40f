package ai

import "context"

// Apology is returned whenever the generation capability cannot produce an
// answer. The assistant must always reply with something.
const Apology = "Przepraszam, ale nie mogę odpowiedzieć na Twoje pytanie w tej chwili. Spróbuj ponownie później."

// Client is the capability surface the chat and knowledge services consume.
// Implementations degrade gracefully: GenerateResponse never propagates a
// provider failure (it falls back to Apology) and GenerateEmbedding falls
// back to a deterministic pseudo-random vector so ingestion and chat keep
// working offline.
type Client interface {
	GenerateResponse(ctx context.Context, prompt, kbContext string) string
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}
