package ai

import (
	"fmt"

	"contentiq/types"
)

var summaryPrompts = map[types.SummaryFormat]string{
	types.FormatTLDR: "Provide a concise TL;DR summary of the following text. " +
		"Keep it to %d words or fewer. Be direct and factual.",
	types.FormatBullets: "Summarize the following text as a bullet-point list of the key points. " +
		"Use 3-7 bullet points. Each bullet should be one clear sentence. " +
		"Keep the total under %d words.",
	types.FormatKeyTakeaways: "Extract the key takeaways from the following text. " +
		"Present them as numbered insights (3-7 items). " +
		"Each takeaway should be actionable or informative. " +
		"Keep the total under %d words.",
	types.FormatParagraph: "Write a clear, well-structured paragraph summarizing the following text. " +
		"Keep it under %d words. Maintain the original tone and key facts.",
}

// summaryPreamble renders the system instruction for a summary call.
func summaryPreamble(format types.SummaryFormat, maxWords int, language string) string {
	p := fmt.Sprintf(summaryPrompts[format], maxWords)
	if language != "" && language != "en" {
		p += fmt.Sprintf("\n\nIMPORTANT: Write the summary in the language with ISO code '%s'.", language)
	}
	return p
}

const sentimentPreamble = `You are a sentiment analysis engine. Analyze the sentiment of the provided text and respond ONLY with a valid JSON object in this exact format:

{
  "sentiment": "positive" | "negative" | "neutral" | "mixed",
  "confidence": 0.0 to 1.0,
  "scores": {
    "positive": 0.0 to 1.0,
    "negative": 0.0 to 1.0,
    "neutral": 0.0 to 1.0
  },
  "key_phrases": ["phrase1", "phrase2", "phrase3"]
}

Rules:
- "sentiment" must be one of: positive, negative, neutral, mixed
- "confidence" is your confidence in the primary sentiment label
- "scores" must sum to approximately 1.0
- "key_phrases" should list 3-5 short phrases from the text that most influenced your analysis
- Return ONLY the JSON, no markdown, no explanation`
