package analytics

import (
	"fmt"
	"math"

	"contentiq/types"
)

// Sub-category weights, in percent. Pinned constants; the sum is 100.
var qualityWeights = map[string]int{
	"content_depth": 30,
	"readability":   20,
	"structure":     20,
	"media":         15,
	"seo_signals":   15,
}

// gradeScale maps minimum scores to letter grades; boundary values map to
// the higher grade (a 97.0 is an A+, a 96.99 is an A).
var gradeScale = []struct {
	min   float64
	grade string
}{
	{97, "A+"}, {93, "A"}, {90, "A-"},
	{87, "B+"}, {83, "B"}, {80, "B-"},
	{77, "C+"}, {73, "C"}, {70, "C-"},
	{67, "D+"}, {63, "D"}, {60, "D-"},
}

// GradeFor maps a 0-100 quality score to its letter grade.
func GradeFor(score float64) string {
	for _, step := range gradeScale {
		if score >= step.min {
			return step.grade
		}
	}
	return "F"
}

const maxRecommendations = 8

// QualityInput carries the signals the composite quality score is built from.
type QualityInput struct {
	WordCount          int
	SentenceCount      int
	FleschReadingEase  float64
	H1Count            int
	H2Count            int
	TotalImages        int
	ImagesWithoutAlt   int
	InternalLinks      int
	ExternalLinks      int
	HasMetaDescription bool
	HasCanonical       bool
	HasOpenGraph       bool
	HasSchemaMarkup    bool
}

// ComputeQuality scores a document 0-100. Each sub-category is scored on its
// own 0-100 scale, then combined by the pinned weights. Any sub-category
// below its pass threshold contributes a fixed advisory string.
func ComputeQuality(in QualityInput) types.QualityScore {
	breakdown := make(map[string]int, len(qualityWeights))
	var recommendations []string
	rec := func(s string) { recommendations = append(recommendations, s) }

	// Content depth
	var depth int
	switch {
	case in.WordCount >= 2000:
		depth = 100
	case in.WordCount >= 1000:
		depth = 85
	case in.WordCount >= 500:
		depth = 70
	case in.WordCount >= 300:
		depth = 50
	case in.WordCount >= 100:
		depth = 25
	default:
		depth = 10
		rec("Content is very thin. Aim for 500+ words for better engagement.")
	}
	if in.WordCount < 300 {
		rec("Articles under 300 words typically rank poorly in search engines.")
	}
	breakdown["content_depth"] = depth

	// Readability: the 50-80 Flesch band reads comfortably for most audiences.
	var readability int
	switch {
	case in.FleschReadingEase > 90:
		readability = 60
		rec("Content may be too simplistic for a professional audience.")
	case in.FleschReadingEase >= 50:
		readability = 100
	case in.FleschReadingEase >= 40:
		readability = 75
	case in.FleschReadingEase >= 30:
		readability = 50
	default:
		readability = 25
		rec("Content is very difficult to read. Simplify sentences and vocabulary.")
	}
	breakdown["readability"] = readability

	// Structure
	structure := 0
	switch {
	case in.H1Count == 1:
		structure += 40
	case in.H1Count > 1:
		structure += 20
		rec("Multiple H1 tags detected. Use exactly one H1 per page.")
	default:
		rec("Missing H1 tag. Every page should have a single H1 heading.")
	}
	switch {
	case in.H2Count >= 2:
		structure += 40
	case in.H2Count == 1:
		structure += 25
	default:
		rec("Add H2 subheadings to break up content and improve scannability.")
	}
	if in.SentenceCount >= 5 {
		structure += 20
	} else {
		structure += 10
	}
	breakdown["structure"] = structure

	// Media
	media := 0
	if in.TotalImages > 0 {
		media += 50
		withAlt := in.TotalImages - in.ImagesWithoutAlt
		media += int(math.Round(50 * float64(withAlt) / float64(in.TotalImages)))
		if in.ImagesWithoutAlt > 0 {
			rec(fmt.Sprintf("%d image(s) missing alt text. Add descriptive alt attributes.", in.ImagesWithoutAlt))
		}
	} else {
		rec("No images found. Adding relevant images improves engagement and SEO.")
	}
	breakdown["media"] = media

	// SEO signals
	seo := 0
	if in.HasMetaDescription {
		seo += 35
	} else {
		rec("Missing meta description. Add one for better search engine snippets.")
	}
	if in.HasCanonical {
		seo += 20
	}
	if in.HasOpenGraph {
		seo += 25
	} else {
		rec("Missing Open Graph tags. Add them for better social media sharing.")
	}
	if in.HasSchemaMarkup {
		seo += 20
	} else {
		rec("No Schema.org markup found. Add structured data for rich search results.")
	}
	breakdown["seo_signals"] = seo

	total := 0.0
	for cat, weight := range qualityWeights {
		total += float64(breakdown[cat]) * float64(weight) / 100
	}
	total = round2(total)

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	if recommendations == nil {
		recommendations = []string{}
	}

	return types.QualityScore{
		TotalScore:      total,
		Grade:           GradeFor(total),
		Breakdown:       breakdown,
		Weights:         qualityWeights,
		Recommendations: recommendations,
	}
}
