package ai

import (
	"fmt"
	"strings"

	"harbor-tasks-backend/internal/courses"
	"harbor-tasks-backend/internal/employees"
)

// Prompt builders are pure functions of their inputs: same inputs,
// byte-identical prompt. Each embeds the expected output format and
// an instruction to return nothing else.

// CourseSuggestionPrompt asks for 3-5 recommended course ids for one
// employee, given the full catalog.
func CourseSuggestionPrompt(e employees.Employee, catalog []courses.Course) string {
	var b strings.Builder

	for _, c := range catalog {
		fmt.Fprintf(&b, "- %s by %s, Fee: %s, Date: %s\n", c.Title, c.Provider, c.CourseFee, c.UpcomingDate)
	}

	return fmt.Sprintf(`Suggest 3-5 suitable courses for the following employee based on their department, skills, and experience level:

Employee:
- Name: %s
- Department: %s
- Experience Level: %s
- Skills: %s

Available Courses:
%s
Please respond with a valid JSON list of recommended course IDs in this format:
[
  {"course_id": "<course_title> by <course_provider>"},
  ...
]
Only return the JSON output with no additional commentary.`,
		e.FullName, e.Department, e.ExperienceLevel, e.Skills, b.String())
}

// FunPartnerPrompt asks for the best fun-task match by shared
// hobbies. Candidates must already exclude the employee themselves.
// The expected answer is one full name, nothing else.
func FunPartnerPrompt(e employees.Employee, candidates []employees.Employee) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Find the best match for a fun task based on shared hobbies.
The employee is:
- Name: %s (ID: %s)
- Hobbies: %s

The output should just be the employee full name with no extra text. Choose a match from the following employees:`,
		e.FullName, e.UserID, e.Hobbies)

	for _, emp := range candidates {
		fmt.Fprintf(&b, "\n- %s (ID: %s), Hobbies: %s", emp.FullName, emp.UserID, emp.Hobbies)
	}

	b.WriteString("\n\nSelect the best match based on shared hobbies and return the partner's name.")
	return b.String()
}

// WorkPartnerPrompt asks for the best collaborative-work match by
// complementary skills.
func WorkPartnerPrompt(e employees.Employee, candidates []employees.Employee) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Find the best match for a collaborative work task based on complementary skills.
The employee is:
- Name: %s (ID: %s)
- Department: %s
- Skills: %s

The output should only be the employee full name with no extra text. Choose a match from the following employees:`,
		e.FullName, e.UserID, e.Department, e.Skills)

	for _, emp := range candidates {
		fmt.Fprintf(&b, "\n- %s (ID: %s), Department: %s, Skills: %s", emp.FullName, emp.UserID, emp.Department, emp.Skills)
	}

	b.WriteString("\n\nSelect the best match based on complementary skills and return the partner's name.")
	return b.String()
}

// SingleFunTaskPrompt requests one solo fun task.
func SingleFunTaskPrompt(e employees.Employee, currentTasks []string) string {
	brief := fmt.Sprintf(`Create a fun task for the employee with the following details:
- Name: %s
- ID: %s
- Department: %s
- Experience Level: %s
- Skills: %s
- Hobbies: %s.

The task should be quick to complete and help forge a fun and lively work place environment.`,
		e.FullName, e.UserID, e.Department, e.ExperienceLevel, e.Skills, e.Hobbies)

	return taskPrompt(brief, "single_fun", currentTasks)
}

// PairFunTaskPrompt requests one collaborative fun task for two
// employees with overlapping hobbies.
func PairFunTaskPrompt(e, partner employees.Employee, currentTasks []string) string {
	brief := fmt.Sprintf(`Create a collaborative fun task for two employees based on their hobbies:
- Employee 1: %s (ID: %s), Hobbies: %s
- Employee 2: %s (ID: %s), Hobbies: %s.

The task should involve both employees and foster teamwork and engagement. Leverage similar hobbies if possible.`,
		e.FullName, e.UserID, e.Hobbies, partner.FullName, partner.UserID, partner.Hobbies)

	return taskPrompt(brief, "pair_fun", currentTasks)
}

// PairWorkTaskPrompt requests one collaborative work task leveraging
// both employees' skills.
func PairWorkTaskPrompt(e, partner employees.Employee, currentTasks []string) string {
	brief := fmt.Sprintf(`Create a collaborative work task for two employees based on their skills:
- Employee 1: %s (ID: %s), Department: %s, Skills: %s
- Employee 2: %s (ID: %s), Department: %s, Skills: %s

The task should require collaboration between both employees and leverage their skills. Should be able to be carried out within working hours.`,
		e.FullName, e.UserID, e.Department, e.Skills,
		partner.FullName, partner.UserID, partner.Department, partner.Skills)

	return taskPrompt(brief, "pair_work", currentTasks)
}

// taskPrompt wraps a variant brief with the shared output contract:
// the exact task JSON shape, the employee's current tasks to avoid
// duplicating, and the random difficulty instruction.
func taskPrompt(brief, taskType string, currentTasks []string) string {
	var existing strings.Builder
	for _, t := range currentTasks {
		fmt.Fprintf(&existing, "- %s\n", t)
	}

	return fmt.Sprintf(`You are an assistant generating tasks for employees working at Port Singapore Authority. Please follow this exact JSON structure for the output.

Task Format:
{
  "user_id": "<user_id>",
  "partner_id": "<partner_id or null>",
  "task_description": "<task_description (max 10 words)>",
  "task_type": "<task_type>",
  "difficulty": "<difficulty (easy/medium/hard)>"
}

The employee currently has the following tasks:
%s
Please generate a new task for the employee that is different from their current tasks. The task should be engaging and unique. It should also make sense. Randomly choose a difficulty for the task from easy, medium or hard. The task can either be related to the hobbies or related to the company.

Please ensure the response is valid JSON and follows the exact format above. Output should not have any extra text.
Generate a task of type %s. %s`, existing.String(), taskType, brief)
}
