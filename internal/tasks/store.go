package tasks

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"harbor-tasks-backend/internal/apperr"
)

type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) Insert(ctx context.Context, t Task) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO tasks (
			user_id, partner_id, task_description, task_type, difficulty,
			points, due_by, completed, completed_at, created_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		t.UserID,
		t.PartnerID,
		t.TaskDescription,
		t.TaskType,
		t.Difficulty,
		t.Points,
		t.DueBy,
		t.Completed,
		t.CompletedAt,
		t.CreatedAt,
	)
	if err != nil {
		return &apperr.Persistence{Op: "insert task", Cause: err}
	}
	return nil
}

// DescriptionsFor returns the employee's existing task descriptions,
// fed back into generation prompts to avoid duplicates.
func (s *Store) DescriptionsFor(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT task_description
		FROM tasks
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, &apperr.Persistence{Op: "select tasks", Cause: err}
	}
	defer rows.Close()

	var descriptions []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, &apperr.Persistence{Op: "scan task", Cause: err}
		}
		descriptions = append(descriptions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, &apperr.Persistence{Op: "select tasks", Cause: err}
	}

	return descriptions, nil
}

// UpsertSuggestedCourses writes one suggestion record per employee,
// last write wins on user_id.
func (s *Store) UpsertSuggestedCourses(ctx context.Context, userID string, courseIDs []string) error {
	payload, err := json.Marshal(courseIDs)
	if err != nil {
		return &apperr.Persistence{Op: "encode suggested courses", Cause: err}
	}

	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO employee_suggested_courses (user_id, suggested_courses, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			suggested_courses = EXCLUDED.suggested_courses,
			created_at = EXCLUDED.created_at
	`, userID, payload, time.Now().Format(dateTimeLayout))
	if err != nil {
		return &apperr.Persistence{Op: "upsert suggested courses", Cause: err}
	}
	return nil
}
