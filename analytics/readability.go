// Package analytics computes the deterministic, zero-external-cost text
// features: readability indices, vocabulary statistics, keyword and entity
// extraction, quality scoring and pairwise comparison. Everything here is a
// pure function of its input text; identical input yields identical output.
package analytics

import (
	"math"
	"regexp"
	"strings"

	"contentiq/types"
)

// Reading speed used for time estimates: average adult online reading rate.
const wordsPerMinute = 238.0

var (
	wordRe       = regexp.MustCompile(`[a-zA-Z]+`)
	sentenceRe   = regexp.MustCompile(`[.!?]+`)
	vowelGroupRe = regexp.MustCompile(`[aeiouy]+`)
)

// Words extracts the alphabetic word list analytics operates on.
func Words(text string) []string {
	return wordRe.FindAllString(text, -1)
}

// CountSentences counts sentences by punctuation boundaries.
func CountSentences(text string) int {
	n := 0
	for _, s := range sentenceRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}

// CountSyllables estimates the syllables of a word with a vowel-group
// heuristic: words of three or fewer letters count one syllable, a trailing
// silent e is dropped, and each contiguous vowel group counts once.
func CountSyllables(word string) int {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return 0
	}
	if len(word) <= 3 {
		return 1
	}
	word = strings.TrimSuffix(word, "e")
	count := len(vowelGroupRe.FindAllString(word, -1))
	if count < 1 {
		return 1
	}
	return count
}

// ComputeReadability computes the full readability metric set using the
// published coefficients for Flesch Reading Ease, Flesch-Kincaid grade,
// Coleman-Liau and ARI. Texts under ten words return zero-value scores.
func ComputeReadability(text string) types.ReadabilityMetrics {
	words := Words(text)
	wordCount := len(words)
	sentenceCount := CountSentences(text)
	if sentenceCount < 1 {
		sentenceCount = 1
	}

	charCount := 0
	syllableCount := 0
	complexWordCount := 0
	unique := make(map[string]struct{}, wordCount)
	for _, w := range words {
		charCount += len(w)
		syl := CountSyllables(w)
		syllableCount += syl
		if syl >= 3 {
			complexWordCount++
		}
		unique[strings.ToLower(w)] = struct{}{}
	}

	m := types.ReadabilityMetrics{
		SentenceCount: sentenceCount,
		WordCount:     wordCount,
		SyllableCount: syllableCount,
		CharCount:     charCount,
		UniqueWords:   len(unique),
	}

	if wordCount < 10 {
		m.ReadingLevel = "Too short to analyze"
		return m
	}

	asl := float64(wordCount) / float64(sentenceCount)
	asw := float64(syllableCount) / float64(wordCount)
	awl := float64(charCount) / float64(wordCount)

	fre := clamp(round1(206.835-(1.015*asl)-(84.6*asw)), 0, 100)
	fkgl := math.Max(0, round1((0.39*asl)+(11.8*asw)-15.59))

	l := awl * 100
	s := float64(sentenceCount) / float64(wordCount) * 100
	cli := math.Max(0, round1((0.0588*l)-(0.296*s)-15.8))

	ari := math.Max(0, round1((4.71*awl)+(0.5*asl)-21.43))

	m.FleschReadingEase = fre
	m.FleschKincaidGrade = fkgl
	m.ColemanLiauIndex = cli
	m.AutomatedReadabilityIndex = ari
	m.AvgGradeLevel = round1((fkgl + cli + ari) / 3)
	m.ReadingLevel = readingLevelLabel(fre)

	m.AvgSentenceLength = round1(asl)
	m.AvgWordLength = round1(awl)
	m.AvgSyllablesPerWord = round2(asw)

	m.VocabularyDensity = round3(float64(m.UniqueWords) / float64(wordCount))
	m.ComplexWordCount = complexWordCount
	m.ComplexWordPct = round1(float64(complexWordCount) / float64(wordCount) * 100)

	m.ReadingTimeSeconds = int(math.Round(float64(wordCount) / wordsPerMinute * 60))
	m.ReadingTimeMinutes = round1(float64(wordCount) / wordsPerMinute)

	return m
}

// readingLevelLabel converts a Flesch Reading Ease score to its band label.
func readingLevelLabel(score float64) string {
	switch {
	case score >= 90:
		return "Very Easy (5th grade)"
	case score >= 80:
		return "Easy (6th grade)"
	case score >= 70:
		return "Fairly Easy (7th grade)"
	case score >= 60:
		return "Standard (8th-9th grade)"
	case score >= 50:
		return "Fairly Difficult (10th-12th grade)"
	case score >= 30:
		return "Difficult (College)"
	default:
		return "Very Difficult (Graduate)"
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
