package courses

import (
	"context"
	"database/sql"

	"harbor-tasks-backend/internal/apperr"
)

// Course is an externally sourced catalog record.
type Course struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Provider     string `json:"provider"`
	UpcomingDate string `json:"upcoming_date"`
	CourseFee    string `json:"course_fee"`
}

func (c Course) Validate() error {
	switch {
	case c.ID == "":
		return &apperr.Validation{Msg: "course id is required"}
	case c.Title == "":
		return &apperr.Validation{Msg: "course title is required"}
	case c.Provider == "":
		return &apperr.Validation{Msg: "course provider is required"}
	}
	return nil
}

type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

// All lists the course catalog. Column names follow the external
// schema as created, including the capitalized quoted identifiers.
func (s *Store) All(ctx context.Context) ([]Course, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, "Title", "Provider",
		       COALESCE("Upcoming Date", 'NA'),
		       COALESCE("Course Fee", 'Not Provided')
		FROM courses
	`)
	if err != nil {
		return nil, &apperr.Persistence{Op: "select courses", Cause: err}
	}
	defer rows.Close()

	var list []Course
	for rows.Next() {
		var c Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Provider, &c.UpcomingDate, &c.CourseFee); err != nil {
			return nil, &apperr.Persistence{Op: "scan course", Cause: err}
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &apperr.Persistence{Op: "select courses", Cause: err}
	}

	return list, nil
}
