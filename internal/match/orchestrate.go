package match

import "github.com/google/uuid"

// MatchRecord lifecycle. Records start as DRAFT, the applicant submits
// them, and a reviewer then shortlists or rejects. Shortlist and reject
// are mutually exclusive and togglable after submission; nothing else
// moves backwards.
const (
	StatusDraft       = "DRAFT"
	StatusSubmitted   = "SUBMITTED"
	StatusShortlisted = "SHORTLISTED"
	StatusRejected    = "REJECTED"
)

// ValidTransition reports whether a status change is allowed.
func ValidTransition(from, to string) bool {
	switch from {
	case StatusDraft:
		return to == StatusSubmitted
	case StatusSubmitted:
		return to == StatusShortlisted || to == StatusRejected
	case StatusShortlisted:
		return to == StatusRejected
	case StatusRejected:
		return to == StatusShortlisted
	}
	return false
}

// JobRequirement is one open job as the orchestrator sees it: an
// identifier and the free-text comma-separated required skills.
type JobRequirement struct {
	ID             uuid.UUID
	RequiredSkills string
}

// ResumeDocument is the uploaded resume after skill extraction.
type ResumeDocument struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Skills  string
}

// MatchRecord links one resume to one job with a 0-100 relevance value
// and the job skills the candidate is missing.
type MatchRecord struct {
	ResumeID          uuid.UUID
	JobID             uuid.UUID
	OwnerID           uuid.UUID
	Value             float64
	RecommendedSkills string
	Status            string
	IsShortlisted     bool
}

// RunMatching scores one resume against every job that does not already
// have a record for (owner, job). matchedJobs is the set of job IDs the
// owner has records for; those are skipped, which makes re-runs
// idempotent and lets later uploads fill in jobs created since.
//
// Jobs are processed independently, so the result does not depend on
// iteration order. An empty result is a legitimate outcome: every job
// was already matched.
func (m *Matcher) RunMatching(resume ResumeDocument, jobs []JobRequirement, matchedJobs map[uuid.UUID]bool) []MatchRecord {
	records := make([]MatchRecord, 0, len(jobs))
	for _, job := range jobs {
		if matchedJobs[job.ID] {
			continue
		}

		value, missing := Score(resume.Skills, job.RequiredSkills)
		records = append(records, MatchRecord{
			ResumeID:          resume.ID,
			JobID:             job.ID,
			OwnerID:           resume.OwnerID,
			Value:             value,
			RecommendedSkills: missing,
			Status:            StatusDraft,
			IsShortlisted:     false,
		})
	}
	return records
}
