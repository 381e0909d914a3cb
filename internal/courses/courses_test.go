package courses

import (
	"errors"
	"testing"

	"harbor-tasks-backend/internal/apperr"
)

func TestValidate(t *testing.T) {
	valid := Course{
		ID:           "c1",
		Title:        "Crane Safety",
		Provider:     "PSA Academy",
		UpcomingDate: "NA",
		CourseFee:    "Not Provided",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid course, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Course)
	}{
		{"missing id", func(c *Course) { c.ID = "" }},
		{"missing title", func(c *Course) { c.Title = "" }},
		{"missing provider", func(c *Course) { c.Provider = "" }},
	}

	for _, c := range cases {
		course := valid
		c.mutate(&course)

		err := course.Validate()
		var validationErr *apperr.Validation
		if !errors.As(err, &validationErr) {
			t.Errorf("%s: expected Validation error, got %v", c.name, err)
		}
	}
}
