package database

import (
	"context"
)

const getOpenJobs = `-- name: GetOpenJobs :many
SELECT id, title, required_skills, description, created_at FROM jobs ORDER BY created_at
`

func (q *Queries) GetOpenJobs(ctx context.Context) ([]Job, error) {
	rows, err := q.db.QueryContext(ctx, getOpenJobs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Job
	for rows.Next() {
		var i Job
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.RequiredSkills,
			&i.Description,
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
