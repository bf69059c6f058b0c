package analytics

import (
	"sort"
	"strings"

	"contentiq/types"
)

// TopKeywords is the number of keywords kept per document.
const TopKeywords = 20

type candidate struct {
	term  string
	score int
	first int // index of first occurrence, for deterministic tie-breaking
}

// ExtractKeywords returns the top-k keyword candidates for a text. Candidates
// are stopword-filtered unigrams and bigrams; bigrams score double so a
// recurring phrase beats its parts. Ties break by first occurrence order.
func ExtractKeywords(text string, k int) []string {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return []string{}
	}

	scores := make(map[string]*candidate)
	bump := func(term string, weight, pos int) {
		if c, ok := scores[term]; ok {
			c.score += weight
			return
		}
		scores[term] = &candidate{term: term, score: weight, first: pos}
	}

	for i, tok := range tokens {
		if tok.stop {
			continue
		}
		bump(tok.text, 1, i)
		if i+1 < len(tokens) && !tokens[i+1].stop {
			bump(tok.text+" "+tokens[i+1].text, 2, i)
		}
	}

	ranked := make([]*candidate, 0, len(scores))
	for _, c := range scores {
		ranked = append(ranked, c)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		if ranked[i].first != ranked[j].first {
			return ranked[i].first < ranked[j].first
		}
		return ranked[i].term < ranked[j].term
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	out := make([]string, 0, k)
	for _, c := range ranked[:k] {
		out = append(out, c.term)
	}
	return out
}

type token struct {
	text string
	stop bool
}

func tokenize(text string) []token {
	words := Words(strings.ToLower(text))
	tokens := make([]token, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, token{text: w, stop: len(w) <= 2 || IsStopword(w)})
	}
	return tokens
}

// TermFrequencies counts the non-stopword terms of a text, used for the
// comparison vectors.
func TermFrequencies(text string) map[string]int {
	freq := make(map[string]int)
	for _, tok := range tokenize(text) {
		if tok.stop {
			continue
		}
		freq[tok.text]++
	}
	return freq
}

// KeywordsFor builds the complete deterministic keyword payload for a text:
// top keywords, topic list, heuristic named entities, category and tags.
func KeywordsFor(text string) types.KeywordData {
	keywords := ExtractKeywords(text, TopKeywords)

	category, topics := classify(text)

	tags := make([]string, 0, 7)
	for _, kw := range keywords {
		if !strings.Contains(kw, " ") {
			tags = append(tags, kw)
		}
		if len(tags) == 7 {
			break
		}
	}

	return types.KeywordData{
		Keywords: keywords,
		Topics:   topics,
		Entities: ExtractEntities(text, 10),
		Category: category,
		Tags:     tags,
	}
}
