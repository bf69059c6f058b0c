package analytics

import (
	"math"
	"strings"
)

// DocumentProfile is the reduced vector representation a document is
// compared by: term frequencies for its top keywords.
type DocumentProfile struct {
	WordCount int
	Keywords  []string
	Terms     map[string]float64
}

// Profile builds a comparison profile from raw document text.
func Profile(text string) DocumentProfile {
	keywords := ExtractKeywords(text, TopKeywords)
	freqs := TermFrequencies(text)

	words := Words(strings.ToLower(text))
	terms := make(map[string]float64, len(keywords))
	for _, kw := range keywords {
		if strings.Contains(kw, " ") {
			terms[kw] = float64(phraseCount(words, kw))
		} else {
			terms[kw] = float64(freqs[kw])
		}
	}
	return DocumentProfile{
		WordCount: len(words),
		Keywords:  keywords,
		Terms:     terms,
	}
}

func phraseCount(words []string, phrase string) int {
	parts := strings.Fields(phrase)
	if len(parts) == 0 {
		return 0
	}
	count := 0
	for i := 0; i+len(parts) <= len(words); i++ {
		match := true
		for j, p := range parts {
			if words[i+j] != p {
				match = false
				break
			}
		}
		if match {
			count++
		}
	}
	return count
}

// Similarity computes cosine similarity over the union of the two
// profiles' keyword term-frequency vectors, rounded to 4 decimals.
// A document with no keywords has no direction, so similarity is 0.
func Similarity(a, b DocumentProfile) float64 {
	if len(a.Terms) == 0 || len(b.Terms) == 0 {
		return 0
	}

	union := make(map[string]struct{}, len(a.Terms)+len(b.Terms))
	for t := range a.Terms {
		union[t] = struct{}{}
	}
	for t := range b.Terms {
		union[t] = struct{}{}
	}

	var dot, normA, normB float64
	for t := range union {
		va := a.Terms[t]
		vb := b.Terms[t]
		dot += va * vb
		normA += va * va
		normB += vb * vb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return round4(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}

// SharedKeywords returns the keywords both profiles have in common,
// preserving the first profile's ranking order.
func SharedKeywords(a, b DocumentProfile) []string {
	inB := make(map[string]struct{}, len(b.Keywords))
	for _, kw := range b.Keywords {
		inB[kw] = struct{}{}
	}
	shared := []string{}
	for _, kw := range a.Keywords {
		if _, ok := inB[kw]; ok {
			shared = append(shared, kw)
		}
	}
	return shared
}

// UniqueKeywords returns the keywords of a that b does not have,
// preserving a's ranking order.
func UniqueKeywords(a, b DocumentProfile) []string {
	inB := make(map[string]struct{}, len(b.Keywords))
	for _, kw := range b.Keywords {
		inB[kw] = struct{}{}
	}
	unique := []string{}
	for _, kw := range a.Keywords {
		if _, ok := inB[kw]; !ok {
			unique = append(unique, kw)
		}
	}
	return unique
}
