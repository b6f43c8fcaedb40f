package ai

import (
	"context"
	"strings"
)

type mockClient struct {
	embedDim int
}

// NewMock builds the offline Client used in development and tests. Answers
// come from keyword rules, embeddings from the deterministic fallback.
func NewMock(embedDim int) Client {
	return &mockClient{embedDim: embedDim}
}

func (m *mockClient) GenerateResponse(_ context.Context, prompt, kbContext string) string {
	lower := strings.ToLower(prompt)

	switch {
	case containsAny(lower, "cześć", "hej", "witaj", "dzień dobry"):
		return "Cześć! Witaj w Widzewie Łódź! Jestem tutaj, żeby pomóc Ci z informacjami o klubie. O co chciałbyś zapytać?"
	case containsAny(lower, "dziękuję", "dzięki"):
		return "Nie ma za co! Zawsze chętnie pomogę kibicom Widzewa. Masz jeszcze jakieś pytania?"
	case containsAny(lower, "stadion", "gdzie", "adres"):
		return "Stadion Miejski Widzewa Łódź (Serce Łodzi) znajduje się przy al. Piłsudskiego 138, 92-300 Łódź. Stadion ma pojemność 18 018 miejsc."
	case containsAny(lower, "bilet", "karnet", "wejściówka"):
		return "Bilety na mecze Widzewa można kupić online na stronie klubu lub w kasach stadionu przed meczem. Karnety sezonowe są dostępne w biurze obsługi klienta."
	case containsAny(lower, "sklep", "gadżet", "koszulka"):
		return "Sklep klubowy Widzewa znajduje się przy stadionie. Jest otwarty od poniedziałku do piątku 10:00-18:00, w soboty 10:00-16:00."
	case containsAny(lower, "historia", "kiedy powstał"):
		return "Widzew Łódź został założony w 1910 roku. To jeden z najstarszych klubów piłkarskich w Polsce z bogatą historią i tradycją."
	}

	if strings.TrimSpace(kbContext) != "" {
		return "Na podstawie informacji o Widzewie Łódź: " + kbContext + "\n\nCzy to odpowiada na Twoje pytanie? Jeśli potrzebujesz więcej szczegółów, śmiało pytaj!"
	}
	return "Mogę pomóc Ci z informacjami o Widzewie Łódź - stadionie, biletach, sklepie klubowym czy historii klubu. O co konkretnie chciałbyś zapytać?"
}

func (m *mockClient) GenerateEmbedding(_ context.Context, text string) ([]float32, error) {
	return FallbackEmbedding(text, m.embedDim), nil
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
