// Package match implements the resume-to-job matching core: the
// resume-likeness gate, vocabulary skill extraction, TF-IDF cosine
// scoring and the per-upload matching orchestrator.
package match

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"
)

// Pipeline rejections surfaced to the uploader. Extraction failures are
// never errors; these two are the only ways an upload is refused.
var (
	// ErrNotResume means the extracted text failed the resume-likeness
	// heuristic (too short or no resume keyword).
	ErrNotResume = errors.New("file does not look like a resume")

	// ErrNoSkills means skill extraction found nothing in the
	// vocabulary.
	ErrNoSkills = errors.New("no technical skills detected")
)

// Config overrides the fixed keyword lists, mainly for tests and
// per-deployment vocabulary extensions. Zero-value fields fall back to
// the package defaults.
type Config struct {
	SkillVocabulary []string
	ResumeKeywords  []string
	MinResumeLen    int
}

// Matcher holds an immutable snapshot of the matching configuration.
type Matcher struct {
	skills   []string
	keywords []string
	minLen   int
}

// New builds a Matcher. The config slices are copied so later mutation
// by the caller cannot change matching behavior.
func New(cfg Config) *Matcher {
	m := &Matcher{
		skills:   defaultSkillVocabulary,
		keywords: defaultResumeKeywords,
		minLen:   defaultMinResumeLen,
	}
	if len(cfg.SkillVocabulary) > 0 {
		m.skills = append([]string(nil), cfg.SkillVocabulary...)
	}
	if len(cfg.ResumeKeywords) > 0 {
		m.keywords = append([]string(nil), cfg.ResumeKeywords...)
	}
	if cfg.MinResumeLen > 0 {
		m.minLen = cfg.MinResumeLen
	}
	return m
}

// LooksLikeResume is a cheap heuristic gate: the trimmed text must be at
// least minLen runes long and contain at least one resume keyword.
// False positives and negatives are acceptable.
func (m *Matcher) LooksLikeResume(text string) bool {
	cleaned := strings.TrimSpace(text)
	if utf8.RuneCountInString(cleaned) < m.minLen {
		return false
	}
	lower := strings.ToLower(cleaned)
	for _, kw := range m.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ExtractSkills scans the lowercased text for every vocabulary keyword
// by substring containment. Multi-word keywords match contiguously only.
// The result is sorted, deduplicated and ", "-joined, so identical skill
// sets always produce identical strings regardless of input ordering.
func (m *Matcher) ExtractSkills(text string) string {
	lower := strings.ToLower(text)

	found := make(map[string]bool)
	for _, skill := range m.skills {
		if strings.Contains(lower, skill) {
			found[skill] = true
		}
	}

	matched := make([]string, 0, len(found))
	for skill := range found {
		matched = append(matched, skill)
	}
	sort.Strings(matched)
	return strings.Join(matched, ", ")
}

// skillSet splits a comma-separated skill string into a set of trimmed,
// lowercased tokens. Empty tokens are dropped.
func skillSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Split(s, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok != "" {
			set[tok] = true
		}
	}
	return set
}
