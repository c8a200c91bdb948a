package match

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Score computes the relevance of a candidate's skill text to a job's
// required-skill text.
//
// The value is the cosine similarity of TF-IDF vectors built from the
// two strings as a two-document corpus (english stop words excluded,
// smooth IDF, l2-normalized), scaled to 0-100 and rounded to two
// decimals. The value is symmetric in its arguments.
//
// The missing string is directional: the job's comma-separated skills
// minus the candidate's, as a plain set difference (trimmed, lowercased),
// sorted and ", "-joined. It is independent of the vector score.
func Score(candidateSkills, jobSkills string) (float64, string) {
	value := cosine100(candidateSkills, jobSkills)

	candidate := skillSet(candidateSkills)
	missing := make([]string, 0)
	for skill := range skillSet(jobSkills) {
		if !candidate[skill] {
			missing = append(missing, skill)
		}
	}
	sort.Strings(missing)

	return value, strings.Join(missing, ", ")
}

// cosine100 is the TF-IDF cosine similarity of two documents × 100,
// rounded to 2 decimals. A document with an empty vocabulary (empty
// string or all stop words) yields 0 rather than a degenerate vector
// space.
func cosine100(a, b string) float64 {
	ta := termCounts(a)
	tb := termCounts(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	// Smooth IDF over the two-document corpus:
	// idf(t) = ln((1+n)/(1+df)) + 1 with n = 2.
	idf := func(term string) float64 {
		df := 0
		if ta[term] > 0 {
			df++
		}
		if tb[term] > 0 {
			df++
		}
		return math.Log(3.0/float64(1+df)) + 1
	}

	var dot, normA, normB float64
	for term, ca := range ta {
		w := idf(term)
		wa := float64(ca) * w
		normA += wa * wa
		if cb := tb[term]; cb > 0 {
			dot += wa * float64(cb) * w
		}
	}
	for term, cb := range tb {
		wb := float64(cb) * idf(term)
		normB += wb * wb
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Round(sim*100*100) / 100
}

// termCounts tokenizes a document into term frequencies: lowercased
// runs of word characters at least two runes long, stop words dropped.
func termCounts(text string) map[string]int {
	counts := make(map[string]int)
	var word strings.Builder
	flush := func() {
		w := word.String()
		word.Reset()
		if len([]rune(w)) >= 2 && !englishStopWords[w] {
			counts[w]++
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return counts
}
