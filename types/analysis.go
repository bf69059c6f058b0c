package types

import "time"

// Entity is a named entity found in a document, tagged with a coarse category.
type Entity struct {
	Name string `json:"name"`
	Type string `json:"type"` // PERSON, ORG, PLACE, PRODUCT, EVENT, OTHER
}

// KeywordData groups the deterministic keyword/entity/topic extraction results.
type KeywordData struct {
	Keywords []string `json:"keywords"`
	Topics   []string `json:"topics"`
	Entities []Entity `json:"entities"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// QualityScore is the composite 0-100 content quality score with its breakdown.
type QualityScore struct {
	TotalScore      float64        `json:"total_score"`
	Grade           string         `json:"grade"`
	Breakdown       map[string]int `json:"breakdown"`
	Weights         map[string]int `json:"weights"` // percent contribution per sub-category
	Recommendations []string       `json:"recommendations"`
}

// AnalyticsResult is the full deterministic analytics output for one document.
type AnalyticsResult struct {
	Readability ReadabilityMetrics `json:"readability"`
	Keywords    KeywordData        `json:"keywords"`
	Quality     QualityScore       `json:"quality"`
}

// SectionState marks whether an AI-dependent section of a composite result is
// populated or was dropped because of a recoverable upstream failure.
type SectionState string

const (
	SectionPresent  SectionState = "present"
	SectionDegraded SectionState = "degraded"
)

// SectionStatus reports per-section presence for composite responses.
type SectionStatus struct {
	State  SectionState `json:"state"`
	Reason string       `json:"reason,omitempty"`
}

// AnalyzeData is the composite payload of the analyze operation. Deterministic
// sections (content, seo, keywords, quality) are always populated; summary and
// sentiment degrade independently.
type AnalyzeData struct {
	Content   *ExtractedDocument       `json:"content"`
	SEO       *SEOData                 `json:"seo"`
	Keywords  *KeywordData             `json:"keywords"`
	Quality   *QualityScore            `json:"quality"`
	Summary   *SummaryData             `json:"summary,omitempty"`
	Sentiment *SentimentData           `json:"sentiment,omitempty"`
	Sections  map[string]SectionStatus `json:"sections"`
	Partial   bool                     `json:"partial"`

	TotalProcessingTimeMs int64 `json:"total_processing_time_ms"`
}

// CompareData is the payload of the compare operation, derived from two
// independently analyzed documents.
type CompareData struct {
	URL1             string             `json:"url1"`
	URL2             string             `json:"url2"`
	SimilarityScore  float64            `json:"similarity_score"`
	SharedKeywords   []string           `json:"shared_keywords"`
	UniqueToURL1     []string           `json:"unique_to_url1"`
	UniqueToURL2     []string           `json:"unique_to_url2"`
	WordCountDiff    int                `json:"word_count_diff"`
	ReadabilityDiff  map[string]float64 `json:"readability_diff,omitempty"`
	ReadingLevel1    string             `json:"url1_reading_level,omitempty"`
	ReadingLevel2    string             `json:"url2_reading_level,omitempty"`
	ProcessingTimeMs int64              `json:"processing_time_ms"`
}

// Response is the envelope every operation returns to the route layer.
type Response struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Cached    bool      `json:"cached"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorDetail is the machine-readable error payload for failed requests.
type ErrorDetail struct {
	Code    Kind   `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for failed requests.
type ErrorResponse struct {
	Success   bool        `json:"success"`
	Error     ErrorDetail `json:"error"`
	Timestamp time.Time   `json:"timestamp"`
}
