package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockResponseKeywords(t *testing.T) {
	m := NewMock(8)
	ctx := context.Background()

	tests := []struct {
		prompt string
		want   string
	}{
		{"Cześć!", "Witaj w Widzewie"},
		{"Gdzie jest stadion?", "Piłsudskiego 138"},
		{"Ile kosztuje bilet?", "Bilety"},
		{"Kiedy otwarty jest sklep kibica?", "Sklep klubowy"},
		{"Opowiedz o historii klubu", "1910"},
		{"Dziękuję za pomoc", "Nie ma za co"},
	}
	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			got := m.GenerateResponse(ctx, tt.prompt, "")
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestMockResponseUsesContext(t *testing.T) {
	m := NewMock(8)

	got := m.GenerateResponse(context.Background(), "Pytanie bez słów kluczowych", "Zwroty przyjmujemy do 14 dni.")
	assert.Contains(t, got, "Zwroty przyjmujemy do 14 dni.")
}

func TestMockResponseGenericFallback(t *testing.T) {
	m := NewMock(8)

	got := m.GenerateResponse(context.Background(), "Pytanie bez słów kluczowych", "")
	assert.True(t, strings.Contains(got, "Mogę pomóc"))
}

func TestMockEmbeddingDimAndDeterminism(t *testing.T) {
	m := NewMock(32)
	ctx := context.Background()

	a, err := m.GenerateEmbedding(ctx, "stadion")
	require.NoError(t, err)
	require.Len(t, a, 32)

	b, err := m.GenerateEmbedding(ctx, "stadion")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
