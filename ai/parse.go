package ai

import (
	"encoding/json"
	"strings"

	"contentiq/types"
)

const maxKeyPhrases = 5

type sentimentPayload struct {
	Sentiment  string             `json:"sentiment"`
	Confidence float64            `json:"confidence"`
	Scores     map[string]float64 `json:"scores"`
	KeyPhrases []string           `json:"key_phrases"`
}

// parseSentiment validates the model's raw sentiment reply. Anything that is
// not well-formed JSON with a known label is an upstream failure; the caller
// must never see a fabricated neutral verdict.
func parseSentiment(raw string) (*types.SentimentData, error) {
	raw = stripFences(raw)

	var p sentimentPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, types.WrapError(types.KindAIError, "model returned malformed sentiment JSON", err)
	}

	label := types.SentimentLabel(strings.ToLower(strings.TrimSpace(p.Sentiment)))
	if !types.ValidSentimentLabel(label) {
		return nil, types.NewError(types.KindAIError, "model returned unknown sentiment label "+quoteLabel(p.Sentiment))
	}

	conf := p.Confidence
	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}

	phrases := p.KeyPhrases
	if phrases == nil {
		phrases = []string{}
	}
	if len(phrases) > maxKeyPhrases {
		phrases = phrases[:maxKeyPhrases]
	}

	return &types.SentimentData{
		Sentiment:  label,
		Confidence: conf,
		Scores:     p.Scores,
		KeyPhrases: phrases,
	}, nil
}

// stripFences removes a markdown code fence wrapper if the model added one
// despite being told not to.
func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	return strings.TrimSpace(raw)
}

func quoteLabel(s string) string {
	if len(s) > 40 {
		s = s[:40] + "..."
	}
	return "\"" + s + "\""
}
