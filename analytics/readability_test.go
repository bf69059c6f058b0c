package analytics

import "testing"

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"the", 1},
		{"on", 1},
		{"code", 1},
		{"hello", 2},
		{"today", 2},
		{"beautiful", 3},
		{"rhythm", 1},
		{"bcdfg", 1},
		{"", 0},
		{"  dog  ", 1},
	}
	for _, tt := range tests {
		if got := CountSyllables(tt.word); got != tt.want {
			t.Errorf("CountSyllables(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestCountSentences(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"One. Two! Three?", 3},
		{"No terminator here", 1},
		{"Hi... there.", 2},
		{"", 0},
		{"?!?", 0},
	}
	for _, tt := range tests {
		if got := CountSentences(tt.text); got != tt.want {
			t.Errorf("CountSentences(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestComputeReadabilityTooShort(t *testing.T) {
	m := ComputeReadability("Just a few words here.")
	if m.ReadingLevel != "Too short to analyze" {
		t.Fatalf("ReadingLevel = %q, want %q", m.ReadingLevel, "Too short to analyze")
	}
	if m.FleschReadingEase != 0 || m.FleschKincaidGrade != 0 {
		t.Errorf("short text should have zero scores, got FRE=%v FKGL=%v",
			m.FleschReadingEase, m.FleschKincaidGrade)
	}
	if m.WordCount != 5 {
		t.Errorf("WordCount = %d, want 5", m.WordCount)
	}
}

func TestComputeReadabilityFixture(t *testing.T) {
	text := "The cat sat on the mat. The dog ran in the park. The sun was very bright today."
	m := ComputeReadability(text)

	if m.WordCount != 18 {
		t.Fatalf("WordCount = %d, want 18", m.WordCount)
	}
	if m.SentenceCount != 3 {
		t.Fatalf("SentenceCount = %d, want 3", m.SentenceCount)
	}
	if m.SyllableCount != 20 {
		t.Fatalf("SyllableCount = %d, want 20", m.SyllableCount)
	}
	if m.CharCount != 59 {
		t.Fatalf("CharCount = %d, want 59", m.CharCount)
	}
	if m.UniqueWords != 14 {
		t.Fatalf("UniqueWords = %d, want 14", m.UniqueWords)
	}

	// Simple prose pins the Flesch score at the 100 ceiling and the grade
	// indices at their zero floor.
	if m.FleschReadingEase != 100 {
		t.Errorf("FleschReadingEase = %v, want 100", m.FleschReadingEase)
	}
	if m.FleschKincaidGrade != 0 {
		t.Errorf("FleschKincaidGrade = %v, want 0", m.FleschKincaidGrade)
	}
	if m.ColemanLiauIndex != 0 {
		t.Errorf("ColemanLiauIndex = %v, want 0", m.ColemanLiauIndex)
	}
	if m.AutomatedReadabilityIndex != 0 {
		t.Errorf("AutomatedReadabilityIndex = %v, want 0", m.AutomatedReadabilityIndex)
	}
	if m.ReadingLevel != "Very Easy (5th grade)" {
		t.Errorf("ReadingLevel = %q, want %q", m.ReadingLevel, "Very Easy (5th grade)")
	}

	if m.AvgSentenceLength != 6.0 {
		t.Errorf("AvgSentenceLength = %v, want 6.0", m.AvgSentenceLength)
	}
	if m.AvgWordLength != 3.3 {
		t.Errorf("AvgWordLength = %v, want 3.3", m.AvgWordLength)
	}
	if m.AvgSyllablesPerWord != 1.11 {
		t.Errorf("AvgSyllablesPerWord = %v, want 1.11", m.AvgSyllablesPerWord)
	}
	if m.VocabularyDensity != 0.778 {
		t.Errorf("VocabularyDensity = %v, want 0.778", m.VocabularyDensity)
	}
	if m.ComplexWordCount != 0 || m.ComplexWordPct != 0 {
		t.Errorf("complex words = %d (%v%%), want 0", m.ComplexWordCount, m.ComplexWordPct)
	}
	if m.ReadingTimeSeconds != 5 {
		t.Errorf("ReadingTimeSeconds = %d, want 5", m.ReadingTimeSeconds)
	}
	if m.ReadingTimeMinutes != 0.1 {
		t.Errorf("ReadingTimeMinutes = %v, want 0.1", m.ReadingTimeMinutes)
	}
}

func TestComputeReadabilityMidRangeFixture(t *testing.T) {
	// None of these scores touch a clamp, so each index exercises its
	// published coefficients rather than the floor or ceiling.
	text := "The team tracked how often readers finished long reports. " +
		"Most people gave up early when the layout was dense. " +
		"Shorter sections with clear headings kept them engaged until the end."
	m := ComputeReadability(text)

	if m.WordCount != 30 {
		t.Fatalf("WordCount = %d, want 30", m.WordCount)
	}
	if m.SentenceCount != 3 {
		t.Fatalf("SentenceCount = %d, want 3", m.SentenceCount)
	}
	if m.SyllableCount != 43 {
		t.Fatalf("SyllableCount = %d, want 43", m.SyllableCount)
	}
	if m.CharCount != 148 {
		t.Fatalf("CharCount = %d, want 148", m.CharCount)
	}
	if m.UniqueWords != 28 {
		t.Fatalf("UniqueWords = %d, want 28", m.UniqueWords)
	}

	// 206.835 - 1.015*10 - 84.6*(43/30) = 75.425
	if m.FleschReadingEase != 75.4 {
		t.Errorf("FleschReadingEase = %v, want 75.4", m.FleschReadingEase)
	}
	// 0.39*10 + 11.8*(43/30) - 15.59 = 5.223...
	if m.FleschKincaidGrade != 5.2 {
		t.Errorf("FleschKincaidGrade = %v, want 5.2", m.FleschKincaidGrade)
	}
	// 0.0588*(148/30*100) - 0.296*(3/30*100) - 15.8 = 10.248
	if m.ColemanLiauIndex != 10.2 {
		t.Errorf("ColemanLiauIndex = %v, want 10.2", m.ColemanLiauIndex)
	}
	// 4.71*(148/30) + 0.5*10 - 21.43 = 6.806
	if m.AutomatedReadabilityIndex != 6.8 {
		t.Errorf("AutomatedReadabilityIndex = %v, want 6.8", m.AutomatedReadabilityIndex)
	}
	if m.AvgGradeLevel != 7.4 {
		t.Errorf("AvgGradeLevel = %v, want 7.4", m.AvgGradeLevel)
	}
	if m.ReadingLevel != "Fairly Easy (7th grade)" {
		t.Errorf("ReadingLevel = %q, want %q", m.ReadingLevel, "Fairly Easy (7th grade)")
	}

	if m.AvgSentenceLength != 10.0 {
		t.Errorf("AvgSentenceLength = %v, want 10.0", m.AvgSentenceLength)
	}
	if m.AvgWordLength != 4.9 {
		t.Errorf("AvgWordLength = %v, want 4.9", m.AvgWordLength)
	}
	if m.AvgSyllablesPerWord != 1.43 {
		t.Errorf("AvgSyllablesPerWord = %v, want 1.43", m.AvgSyllablesPerWord)
	}
	if m.VocabularyDensity != 0.933 {
		t.Errorf("VocabularyDensity = %v, want 0.933", m.VocabularyDensity)
	}
	if m.ComplexWordCount != 2 {
		t.Errorf("ComplexWordCount = %d, want 2", m.ComplexWordCount)
	}
	if m.ComplexWordPct != 6.7 {
		t.Errorf("ComplexWordPct = %v, want 6.7", m.ComplexWordPct)
	}
	if m.ReadingTimeSeconds != 8 {
		t.Errorf("ReadingTimeSeconds = %d, want 8", m.ReadingTimeSeconds)
	}
}

func TestComputeReadabilityDeterministic(t *testing.T) {
	text := "Software systems grow complicated over time. Engineers refactor continuously to manage the complexity. Documentation helps newcomers understand architectural decisions quickly."
	a := ComputeReadability(text)
	b := ComputeReadability(text)
	if a != b {
		t.Errorf("repeated analysis diverged:\n%+v\n%+v", a, b)
	}
}
