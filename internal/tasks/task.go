package tasks

import (
	"time"

	"harbor-tasks-backend/internal/apperr"
)

// Task types. single_work is part of the external contract but no
// generation flow currently produces it.
const (
	TypeSingleFun  = "single_fun"
	TypePairFun    = "pair_fun"
	TypeSingleWork = "single_work"
	TypePairWork   = "pair_work"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

var pointsByDifficulty = map[string]int{
	"easy":   3,
	"medium": 5,
	"hard":   10,
}

var dueDaysByDifficulty = map[string]int{
	"easy":   1,
	"medium": 3,
	"hard":   5,
}

type Task struct {
	TaskID          string  `json:"task_id,omitempty"`
	UserID          string  `json:"user_id"`
	PartnerID       *string `json:"partner_id"`
	TaskDescription string  `json:"task_description"`
	TaskType        string  `json:"task_type"`
	Difficulty      string  `json:"difficulty"`
	Points          int     `json:"points"`
	DueBy           string  `json:"due_by"`
	Completed       bool    `json:"completed"`
	CompletedAt     *string `json:"completed_at"`
	CreatedAt       string  `json:"created_at"`
}

// PointsFor maps difficulty to points. Unrecognized difficulties
// score 0 rather than failing.
func PointsFor(difficulty string) int {
	return pointsByDifficulty[difficulty]
}

// DueDate computes the date-only due string from difficulty.
// Unrecognized difficulties fall back to a 1-day window.
func DueDate(difficulty string, now time.Time) string {
	days, ok := dueDaysByDifficulty[difficulty]
	if !ok {
		days = 1
	}
	return now.AddDate(0, 0, days).Format(dateLayout)
}

// New constructs a task with derived points and due date. Points and
// due_by are fixed at construction and never recomputed.
func New(userID string, partnerID *string, description, taskType, difficulty string) Task {
	return newAt(userID, partnerID, description, taskType, difficulty, time.Now())
}

func newAt(userID string, partnerID *string, description, taskType, difficulty string, now time.Time) Task {
	return Task{
		UserID:          userID,
		PartnerID:       partnerID,
		TaskDescription: description,
		TaskType:        taskType,
		Difficulty:      difficulty,
		Points:          PointsFor(difficulty),
		DueBy:           DueDate(difficulty, now),
		Completed:       false,
		CreatedAt:       now.Format(dateTimeLayout),
	}
}

func (t Task) Validate() error {
	switch {
	case t.UserID == "":
		return &apperr.Validation{Msg: "task user_id is required"}
	case t.TaskDescription == "":
		return &apperr.Validation{Msg: "task task_description is required"}
	case t.Difficulty == "":
		return &apperr.Validation{Msg: "task difficulty is required"}
	}

	switch t.TaskType {
	case TypeSingleFun, TypePairFun, TypeSingleWork, TypePairWork:
	default:
		return &apperr.Validation{Msg: "unknown task_type " + t.TaskType}
	}
	return nil
}
