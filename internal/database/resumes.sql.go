package database

import (
	"context"

	"github.com/google/uuid"
)

const createResume = `-- name: CreateResume :one
INSERT INTO resumes (id, user_id, file_name, object_key, skills)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, user_id, file_name, object_key, skills, created_at
`

type CreateResumeParams struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FileName  string
	ObjectKey string
	Skills    string
}

func (q *Queries) CreateResume(ctx context.Context, arg CreateResumeParams) (Resume, error) {
	row := q.db.QueryRowContext(ctx, createResume,
		arg.ID,
		arg.UserID,
		arg.FileName,
		arg.ObjectKey,
		arg.Skills,
	)
	var i Resume
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.FileName,
		&i.ObjectKey,
		&i.Skills,
		&i.CreatedAt,
	)
	return i, err
}
