package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreIdenticalTexts(t *testing.T) {
	value, missing := Score("python, django, sql", "python, django, sql")

	assert.Equal(t, 100.0, value)
	assert.Equal(t, "", missing)
}

func TestScoreEmptyCandidate(t *testing.T) {
	value, missing := Score("", "python")

	assert.Equal(t, 0.0, value)
	assert.Equal(t, "python", missing)
}

func TestScoreEmptyJob(t *testing.T) {
	value, missing := Score("python", "")

	assert.Equal(t, 0.0, value)
	assert.Equal(t, "", missing)
}

func TestScoreStopWordsOnly(t *testing.T) {
	// A document of nothing but stop words has an empty vocabulary; that
	// is a zero score, not an error.
	value, _ := Score("the and of with", "python")

	assert.Equal(t, 0.0, value)
}

func TestScoreValueIsSymmetric(t *testing.T) {
	a := "python, sql, docker"
	b := "python, django, kubernetes"

	va, _ := Score(a, b)
	vb, _ := Score(b, a)
	assert.Equal(t, va, vb)
}

func TestScoreMissingIsDirectional(t *testing.T) {
	job := "python, django, sql"
	candidate := "python, sql"

	_, missing := Score(candidate, job)
	assert.Equal(t, "django", missing)

	// Reversed arguments: nothing is missing from the candidate's side.
	_, reverse := Score(job, candidate)
	assert.Equal(t, "", reverse)
}

func TestScorePartialOverlap(t *testing.T) {
	// Two-document corpus "python sql" vs "python django": the shared
	// term has idf 1, the unique terms ln(3/2)+1. Cosine works out to
	// 1/(1+(ln(3/2)+1)^2) = 0.3361.
	value, missing := Score("python, sql", "python, django")

	assert.InDelta(t, 33.61, value, 1e-9)
	assert.Equal(t, "django", missing)
}

func TestScoreRange(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		job       string
	}{
		{"disjoint", "python, sql", "excel, tableau"},
		{"partial", "python, sql, docker", "python, aws"},
		{"identical", "aws, docker", "aws, docker"},
		{"free text", "built data pipelines with pandas and numpy", "pandas, numpy, airflow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, _ := Score(tt.candidate, tt.job)
			assert.GreaterOrEqual(t, value, 0.0)
			assert.LessOrEqual(t, value, 100.0)
		})
	}
}

func TestScoreMissingNormalizesTokens(t *testing.T) {
	_, missing := Score("  Python ,  SQL ", "python, DJANGO , sql,  ")

	assert.Equal(t, "django", missing)
}

func TestTermCounts(t *testing.T) {
	counts := termCounts("Python and python, SQL! c")

	// "and" is a stop word, "c" is below the two-rune minimum.
	assert.Equal(t, map[string]int{"python": 2, "sql": 1}, counts)
}
