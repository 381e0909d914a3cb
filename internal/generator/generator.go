package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"harbor-tasks-backend/internal/ai"
	"harbor-tasks-backend/internal/apperr"
	"harbor-tasks-backend/internal/concurrency"
	"harbor-tasks-backend/internal/courses"
	"harbor-tasks-backend/internal/employees"
	"harbor-tasks-backend/internal/tasks"
)

// Sampling parameters per prompt family. Partner matching runs cool
// for consistent name echoes; generation runs warmer.
const (
	taskMaxTokens   = 1000
	taskTemperature = 0.7

	partnerMaxTokens   = 10
	partnerTemperature = 0.5

	courseMaxTokens   = 500
	courseTemperature = 0.7
)

type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error)
}

type EmployeeSource interface {
	All(ctx context.Context) ([]employees.Employee, error)
	ByID(ctx context.Context, id string) (employees.Employee, error)
}

type CourseSource interface {
	All(ctx context.Context) ([]courses.Course, error)
}

type TaskStore interface {
	Insert(ctx context.Context, t tasks.Task) error
	DescriptionsFor(ctx context.Context, userID string) ([]string, error)
	UpsertSuggestedCourses(ctx context.Context, userID string, courseIDs []string) error
}

// EventSink receives best-effort analytics events.
type EventSink interface {
	Record(ctx context.Context, event, userID string, props map[string]any)
}

// Generator runs the fetch -> prompt -> complete -> decode ->
// construct -> persist pipeline. It holds no per-request state.
type Generator struct {
	AI        Completer
	Employees EmployeeSource
	Courses   CourseSource
	Tasks     TaskStore
	Events    EventSink

	// Workers bounds bulk fan-out across employees. 1 means
	// strictly sequential.
	Workers int

	pick func(n int) int
}

func New(aiClient Completer, emp EmployeeSource, crs CourseSource, ts TaskStore) *Generator {
	return &Generator{
		AI:        aiClient,
		Employees: emp,
		Courses:   crs,
		Tasks:     ts,
		Workers:   1,
		pick:      rand.New(rand.NewSource(time.Now().UnixNano())).Intn,
	}
}

func (g *Generator) record(ctx context.Context, event, userID string, props map[string]any) {
	if g.Events != nil {
		g.Events.Record(ctx, event, userID, props)
	}
}

// --------------------------------------------------
// Course suggestions
// --------------------------------------------------

// SuggestCoursesForAll generates and upserts course suggestions for
// every employee. Failures for one employee do not stop the others;
// any failure is still reported after the full pass.
func (g *Generator) SuggestCoursesForAll(ctx context.Context) error {
	roster, err := g.Employees.All(ctx)
	if err != nil {
		return err
	}

	_, errs := concurrency.ProcessParallel(ctx, roster, g.Workers,
		func(ctx context.Context, i int, emp employees.Employee) (struct{}, error) {
			_, err := g.suggestCourses(ctx, emp)
			return struct{}{}, err
		})

	var failed []error
	for i, e := range errs {
		if e != nil {
			failed = append(failed, fmt.Errorf("employee %s: %w", roster[i].UserID, e))
		}
	}
	return errors.Join(failed...)
}

// SuggestCoursesFor generates and upserts suggestions for one
// employee, returning the suggested course ids.
func (g *Generator) SuggestCoursesFor(ctx context.Context, employeeID string) ([]string, error) {
	emp, err := g.Employees.ByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return g.suggestCourses(ctx, emp)
}

func (g *Generator) suggestCourses(ctx context.Context, emp employees.Employee) ([]string, error) {
	catalog, err := g.Courses.All(ctx)
	if err != nil {
		return nil, err
	}

	prompt := ai.CourseSuggestionPrompt(emp, catalog)
	text, err := g.AI.Complete(ctx, ai.CourseSystemPrompt, prompt, courseMaxTokens, courseTemperature)
	if err != nil {
		return nil, err
	}

	var recs []struct {
		CourseID string `json:"course_id"`
	}
	if err := ai.DecodeJSON(text, &recs); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.CourseID)
	}

	if err := g.Tasks.UpsertSuggestedCourses(ctx, emp.UserID, ids); err != nil {
		return nil, err
	}

	g.record(ctx, "courses_suggested", emp.UserID, map[string]any{"count": len(ids)})
	return ids, nil
}

// --------------------------------------------------
// Task generation
// --------------------------------------------------

// BulkResult is the outcome of a bulk run: every task that persisted,
// plus one entry per employee whose generation failed part-way.
type BulkResult struct {
	Tasks  []tasks.Task `json:"generated_tasks"`
	Errors []string     `json:"errors,omitempty"`
}

// TasksForAll generates tasks for the whole roster: one single_fun
// task per employee, plus a pair_fun and a pair_work task when a
// partner matches. One employee's failure does not stop the others;
// tasks persisted before the failure stay persisted and are reported.
func (g *Generator) TasksForAll(ctx context.Context) (BulkResult, error) {
	res := BulkResult{Tasks: []tasks.Task{}}

	roster, err := g.Employees.All(ctx)
	if err != nil {
		return res, err
	}

	perEmployee, errs := concurrency.ProcessParallel(ctx, roster, g.Workers,
		func(ctx context.Context, i int, emp employees.Employee) ([]tasks.Task, error) {
			return g.tasksFor(ctx, emp, roster)
		})

	for i := range roster {
		res.Tasks = append(res.Tasks, perEmployee[i]...)
		if errs[i] != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("employee %s: %v", roster[i].UserID, errs[i]))
		}
	}

	if len(res.Tasks) == 0 && len(res.Errors) > 0 {
		return res, fmt.Errorf("task generation failed for all employees: %s", strings.Join(res.Errors, "; "))
	}
	return res, nil
}

// tasksFor runs the three per-employee flows. Tasks persisted before
// a failure are returned alongside the error.
func (g *Generator) tasksFor(ctx context.Context, emp employees.Employee, roster []employees.Employee) ([]tasks.Task, error) {
	var generated []tasks.Task

	task, err := g.singleFunTask(ctx, emp)
	if err != nil {
		return generated, err
	}
	generated = append(generated, task)

	funPartner, err := g.funPartner(ctx, emp, roster)
	if err != nil {
		return generated, err
	}
	if funPartner != nil {
		task, err := g.pairFunTask(ctx, emp, *funPartner)
		if err != nil {
			return generated, err
		}
		generated = append(generated, task)
	}

	workPartner, err := g.workPartner(ctx, emp, roster)
	if err != nil {
		return generated, err
	}
	if workPartner != nil {
		task, err := g.pairWorkTask(ctx, emp, *workPartner)
		if err != nil {
			return generated, err
		}
		generated = append(generated, task)
	}

	return generated, nil
}

// RandomTaskFor verifies the employee, picks one of the three task
// flows uniformly, runs it and returns the persisted task.
func (g *Generator) RandomTaskFor(ctx context.Context, employeeID string) (tasks.Task, error) {
	emp, err := g.Employees.ByID(ctx, employeeID)
	if err != nil {
		return tasks.Task{}, err
	}

	roster, err := g.Employees.All(ctx)
	if err != nil {
		return tasks.Task{}, err
	}
	if len(excludeSelf(roster, emp.UserID)) == 0 {
		return tasks.Task{}, &apperr.NoPartner{Msg: "no available partners for pair tasks"}
	}

	taskTypes := []string{tasks.TypeSingleFun, tasks.TypePairFun, tasks.TypePairWork}
	switch taskTypes[g.pick(len(taskTypes))] {
	case tasks.TypeSingleFun:
		return g.singleFunTask(ctx, emp)

	case tasks.TypePairFun:
		partner, err := g.funPartner(ctx, emp, roster)
		if err != nil {
			return tasks.Task{}, err
		}
		if partner == nil {
			return tasks.Task{}, &apperr.NoPartner{Msg: "no suitable partner found for pair fun task"}
		}
		return g.pairFunTask(ctx, emp, *partner)

	default:
		partner, err := g.workPartner(ctx, emp, roster)
		if err != nil {
			return tasks.Task{}, err
		}
		if partner == nil {
			return tasks.Task{}, &apperr.NoPartner{Msg: "no suitable partner found for pair work task"}
		}
		return g.pairWorkTask(ctx, emp, *partner)
	}
}

func (g *Generator) singleFunTask(ctx context.Context, emp employees.Employee) (tasks.Task, error) {
	current, err := g.Tasks.DescriptionsFor(ctx, emp.UserID)
	if err != nil {
		return tasks.Task{}, err
	}
	return g.completeTask(ctx, ai.SingleFunTaskPrompt(emp, current))
}

func (g *Generator) pairFunTask(ctx context.Context, emp, partner employees.Employee) (tasks.Task, error) {
	current, err := g.Tasks.DescriptionsFor(ctx, emp.UserID)
	if err != nil {
		return tasks.Task{}, err
	}
	return g.completeTask(ctx, ai.PairFunTaskPrompt(emp, partner, current))
}

func (g *Generator) pairWorkTask(ctx context.Context, emp, partner employees.Employee) (tasks.Task, error) {
	current, err := g.Tasks.DescriptionsFor(ctx, emp.UserID)
	if err != nil {
		return tasks.Task{}, err
	}
	return g.completeTask(ctx, ai.PairWorkTaskPrompt(emp, partner, current))
}

// generatedTask is the JSON shape the task prompts contract for.
type generatedTask struct {
	UserID          string  `json:"user_id"`
	PartnerID       *string `json:"partner_id"`
	TaskDescription string  `json:"task_description"`
	TaskType        string  `json:"task_type"`
	Difficulty      string  `json:"difficulty"`
}

// completeTask runs one generation call, decodes the payload,
// constructs the task and persists it. The task is only inserted
// after full, successful construction.
func (g *Generator) completeTask(ctx context.Context, prompt string) (tasks.Task, error) {
	text, err := g.AI.Complete(ctx, ai.TaskSystemPrompt, prompt, taskMaxTokens, taskTemperature)
	if err != nil {
		return tasks.Task{}, err
	}

	var gen generatedTask
	if err := ai.DecodeJSON(text, &gen); err != nil {
		return tasks.Task{}, err
	}

	// Models occasionally echo the placeholder instead of JSON null.
	if gen.PartnerID != nil && (*gen.PartnerID == "" || strings.EqualFold(*gen.PartnerID, "null")) {
		gen.PartnerID = nil
	}

	task := tasks.New(gen.UserID, gen.PartnerID, gen.TaskDescription, gen.TaskType, gen.Difficulty)
	if err := task.Validate(); err != nil {
		return tasks.Task{}, err
	}

	if err := g.Tasks.Insert(ctx, task); err != nil {
		return tasks.Task{}, err
	}

	g.record(ctx, "task_generated", task.UserID, map[string]any{
		"task_type":  task.TaskType,
		"difficulty": task.Difficulty,
		"points":     task.Points,
	})
	return task, nil
}

// --------------------------------------------------
// Partner matching
// --------------------------------------------------

// funPartner asks the model for the best hobby match. A response that
// names nobody in the roster means no partner, not an error.
func (g *Generator) funPartner(ctx context.Context, emp employees.Employee, roster []employees.Employee) (*employees.Employee, error) {
	candidates := excludeSelf(roster, emp.UserID)
	if len(candidates) == 0 {
		return nil, nil
	}

	name, err := g.AI.Complete(ctx, ai.PartnerSystemPrompt, ai.FunPartnerPrompt(emp, candidates), partnerMaxTokens, partnerTemperature)
	if err != nil {
		return nil, err
	}
	return matchByName(candidates, name), nil
}

func (g *Generator) workPartner(ctx context.Context, emp employees.Employee, roster []employees.Employee) (*employees.Employee, error) {
	candidates := excludeSelf(roster, emp.UserID)
	if len(candidates) == 0 {
		return nil, nil
	}

	name, err := g.AI.Complete(ctx, ai.PartnerSystemPrompt, ai.WorkPartnerPrompt(emp, candidates), partnerMaxTokens, partnerTemperature)
	if err != nil {
		return nil, err
	}
	return matchByName(candidates, name), nil
}

func excludeSelf(roster []employees.Employee, userID string) []employees.Employee {
	out := make([]employees.Employee, 0, len(roster))
	for _, emp := range roster {
		if emp.UserID != userID {
			out = append(out, emp)
		}
	}
	return out
}

// matchByName resolves the model's answer against the roster,
// tolerant of casing and surrounding whitespace.
func matchByName(candidates []employees.Employee, name string) *employees.Employee {
	trimmed := strings.TrimSpace(name)
	for i := range candidates {
		if strings.EqualFold(strings.TrimSpace(candidates[i].FullName), trimmed) {
			return &candidates[i]
		}
	}
	return nil
}
