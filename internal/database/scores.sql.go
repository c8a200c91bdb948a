package database

import (
	"context"

	"github.com/google/uuid"
)

const getMatchedJobIDs = `-- name: GetMatchedJobIDs :many
SELECT job_id FROM scores WHERE owner_id=$1
`

// GetMatchedJobIDs returns the jobs the owner already has a score for,
// in any status. The orchestrator skips these.
func (q *Queries) GetMatchedJobIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := q.db.QueryContext(ctx, getMatchedJobIDs, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []uuid.UUID
	for rows.Next() {
		var jobID uuid.UUID
		if err := rows.Scan(&jobID); err != nil {
			return nil, err
		}
		items = append(items, jobID)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createScore = `-- name: CreateScore :exec
INSERT INTO scores (
id, resume_id, job_id, owner_id, value, recommended_skills, status, is_shortlisted)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (owner_id, job_id)
DO NOTHING
`

type CreateScoreParams struct {
	ID                uuid.UUID
	ResumeID          uuid.UUID
	JobID             uuid.UUID
	OwnerID           uuid.UUID
	Value             float64
	RecommendedSkills string
	Status            string
	IsShortlisted     bool
}

// CreateScore inserts one match record. The conflict target is the
// at-most-one-score-per-(owner, job) invariant: a concurrent duplicate
// insert loses here instead of creating a second record.
func (q *Queries) CreateScore(ctx context.Context, arg CreateScoreParams) error {
	_, err := q.db.ExecContext(ctx, createScore,
		arg.ID,
		arg.ResumeID,
		arg.JobID,
		arg.OwnerID,
		arg.Value,
		arg.RecommendedSkills,
		arg.Status,
		arg.IsShortlisted,
	)
	return err
}

const getScore = `-- name: GetScore :one
SELECT id, resume_id, job_id, owner_id, value, recommended_skills, status, is_shortlisted, created_at FROM scores WHERE id=$1
`

func (q *Queries) GetScore(ctx context.Context, id uuid.UUID) (Score, error) {
	row := q.db.QueryRowContext(ctx, getScore, id)
	var i Score
	err := row.Scan(
		&i.ID,
		&i.ResumeID,
		&i.JobID,
		&i.OwnerID,
		&i.Value,
		&i.RecommendedSkills,
		&i.Status,
		&i.IsShortlisted,
		&i.CreatedAt,
	)
	return i, err
}

const updateScoreStatus = `-- name: UpdateScoreStatus :exec
UPDATE scores
SET status=$1, is_shortlisted=$2
WHERE id=$3
`

type UpdateScoreStatusParams struct {
	Status        string
	IsShortlisted bool
	ID            uuid.UUID
}

// UpdateScoreStatus sets status and the shortlist flag only. Value and
// recommended skills are never recomputed after creation.
func (q *Queries) UpdateScoreStatus(ctx context.Context, arg UpdateScoreStatusParams) error {
	_, err := q.db.ExecContext(ctx, updateScoreStatus, arg.Status, arg.IsShortlisted, arg.ID)
	return err
}

const listScoresByOwner = `-- name: ListScoresByOwner :many
SELECT id, resume_id, job_id, owner_id, value, recommended_skills, status, is_shortlisted, created_at FROM scores WHERE owner_id=$1 ORDER BY id DESC
`

func (q *Queries) ListScoresByOwner(ctx context.Context, ownerID uuid.UUID) ([]Score, error) {
	return q.listScores(ctx, listScoresByOwner, ownerID)
}

const listScoresByValue = `-- name: ListScoresByValue :many
SELECT id, resume_id, job_id, owner_id, value, recommended_skills, status, is_shortlisted, created_at FROM scores ORDER BY value DESC
`

func (q *Queries) ListScoresByValue(ctx context.Context) ([]Score, error) {
	return q.listScores(ctx, listScoresByValue)
}

const listScoresByJob = `-- name: ListScoresByJob :many
SELECT s.id, s.resume_id, s.job_id, s.owner_id, s.value, s.recommended_skills, s.status, s.is_shortlisted, s.created_at
FROM scores s JOIN jobs j ON j.id = s.job_id
ORDER BY j.title, s.value DESC
`

// ListScoresByJob is the recruiter view: grouped by job title, highest
// score first within each job.
func (q *Queries) ListScoresByJob(ctx context.Context) ([]Score, error) {
	return q.listScores(ctx, listScoresByJob)
}

func (q *Queries) listScores(ctx context.Context, query string, args ...interface{}) ([]Score, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Score
	for rows.Next() {
		var i Score
		if err := rows.Scan(
			&i.ID,
			&i.ResumeID,
			&i.JobID,
			&i.OwnerID,
			&i.Value,
			&i.RecommendedSkills,
			&i.Status,
			&i.IsShortlisted,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
