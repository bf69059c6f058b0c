package types

// SummaryFormat selects the shape of an AI summary.
type SummaryFormat string

const (
	FormatTLDR         SummaryFormat = "tldr"
	FormatBullets      SummaryFormat = "bullets"
	FormatKeyTakeaways SummaryFormat = "key_takeaways"
	FormatParagraph    SummaryFormat = "paragraph"
)

// ValidSummaryFormat reports whether f is one of the supported formats.
func ValidSummaryFormat(f SummaryFormat) bool {
	switch f {
	case FormatTLDR, FormatBullets, FormatKeyTakeaways, FormatParagraph:
		return true
	}
	return false
}

// SummaryData is the result of an AI summarization call.
type SummaryData struct {
	OriginalURL       string        `json:"original_url,omitempty"`
	Format            SummaryFormat `json:"format"`
	Summary           string        `json:"summary"`
	WordCount         int           `json:"word_count"`
	OriginalWordCount int           `json:"original_word_count"`
	Language          string        `json:"language"`
	ModelUsed         string        `json:"model_used"`
	ProcessingTimeMs  int64         `json:"processing_time_ms"`
}

// SentimentLabel is one of the fixed sentiment classes.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentMixed    SentimentLabel = "mixed"
)

// ValidSentimentLabel reports whether l is one of the fixed classes.
func ValidSentimentLabel(l SentimentLabel) bool {
	switch l {
	case SentimentPositive, SentimentNegative, SentimentNeutral, SentimentMixed:
		return true
	}
	return false
}

// SentimentData is the result of an AI sentiment call.
type SentimentData struct {
	OriginalURL      string             `json:"original_url,omitempty"`
	Sentiment        SentimentLabel     `json:"sentiment"`
	Confidence       float64            `json:"confidence"`
	Scores           map[string]float64 `json:"scores,omitempty"`
	KeyPhrases       []string           `json:"key_phrases"`
	ModelUsed        string             `json:"model_used"`
	ProcessingTimeMs int64              `json:"processing_time_ms"`
}
