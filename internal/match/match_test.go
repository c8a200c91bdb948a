package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeResume(t *testing.T) {
	m := New(Config{})

	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "keyword but too short",
			text: "education " + strings.Repeat("x", 140),
			want: false,
		},
		{
			name: "long enough but no keyword",
			text: strings.Repeat("lorem ipsum dolor ", 20),
			want: false,
		},
		{
			name: "long text with keyword",
			text: "Work Experience\n" + strings.Repeat("built and shipped things. ", 10),
			want: true,
		},
		{
			name: "keyword match is case insensitive",
			text: "EDUCATION\n" + strings.Repeat("b", 250),
			want: true,
		},
		{
			name: "empty text",
			text: "",
			want: false,
		},
		{
			name: "whitespace padding does not count toward length",
			text: "skills" + strings.Repeat(" ", 400),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.LooksLikeResume(tt.text))
		})
	}
}

func TestLooksLikeResumeConfigOverride(t *testing.T) {
	m := New(Config{
		ResumeKeywords: []string{"lebenslauf"},
		MinResumeLen:   10,
	})

	assert.True(t, m.LooksLikeResume("Lebenslauf von Alex Muster"))
	assert.False(t, m.LooksLikeResume("education experience skills project internship"))
}

func TestExtractSkillsEveryKeyword(t *testing.T) {
	m := New(Config{})

	// Every vocabulary keyword surrounded by non-alphanumeric boundaries
	// must be found.
	for _, kw := range defaultSkillVocabulary {
		out := m.ExtractSkills("worked with " + kw + " in production")
		assert.Contains(t, strings.Split(out, ", "), kw, "keyword %q not extracted", kw)
	}
}

func TestExtractSkills(t *testing.T) {
	m := New(Config{})

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "sorted and comma joined",
			text: "I know SQL, Docker and Python.",
			want: "c, docker, python, sql",
		},
		{
			name: "duplicates collapse",
			text: "python python python",
			want: "python",
		},
		{
			name: "multi-word keyword matches contiguously",
			text: "three years of machine learning experience",
			want: "c, machine learning",
		},
		{
			name: "no skills",
			text: "I enjoy gardening and running",
			want: "",
		},
		{
			name: "empty text",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.ExtractSkills(tt.text))
		})
	}
}

func TestExtractSkillsReversedWordsDoNotMatch(t *testing.T) {
	// "learning machine" is not "machine learning"; multi-word keywords
	// are contiguous substrings, not bags of words.
	m := New(Config{SkillVocabulary: []string{"machine learning", "deep learning"}})

	assert.Equal(t, "", m.ExtractSkills("learning machine enthusiast"))
	assert.Equal(t, "machine learning", m.ExtractSkills("machine learning enthusiast"))
}

func TestExtractSkillsDeterministic(t *testing.T) {
	m := New(Config{})

	a := m.ExtractSkills("Python and Django and SQL")
	b := m.ExtractSkills("sql first, DJANGO next, python last")
	assert.Equal(t, a, b)
	assert.Equal(t, "django, python, sql", a)
}

func TestConfigCopiedAtConstruction(t *testing.T) {
	vocab := []string{"go", "rust"}
	m := New(Config{SkillVocabulary: vocab, ResumeKeywords: []string{"resume"}, MinResumeLen: 5})

	vocab[0] = "cobol"
	assert.Equal(t, "go", m.ExtractSkills("I write go services"))
}
