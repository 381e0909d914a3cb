package generator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"harbor-tasks-backend/internal/employees"
	"harbor-tasks-backend/internal/tasks"
)

func newTestRouter(g *Generator) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/generate-suggested-courses", SuggestAllHandler(g)).Methods(http.MethodPost)
	r.HandleFunc("/generate-course-for/{employee_id}", SuggestOneHandler(g)).Methods(http.MethodPost)
	r.HandleFunc("/generate-tasks-for-all", BulkTasksHandler(g)).Methods(http.MethodPost)
	r.HandleFunc("/generate-random-task/{employee_id}", RandomTaskHandler(g)).Methods(http.MethodPost)
	return r
}

func TestRandomTaskEndpointUnknownEmployee(t *testing.T) {
	g := newTestGenerator(&stubAI{}, []employees.Employee{alice, bob}, &memTasks{})
	router := newTestRouter(g)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate-random-task/ghost", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestRandomTaskEndpointNoPartners(t *testing.T) {
	g := newTestGenerator(&stubAI{}, []employees.Employee{alice}, &memTasks{})
	router := newTestRouter(g)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate-random-task/E1", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "no available partners") {
		t.Errorf("Expected cause in body, got %q", w.Body.String())
	}
}

func TestRandomTaskEndpointSuccess(t *testing.T) {
	aiStub := &stubAI{
		task: func(string) (string, error) {
			return taskJSON("E1", "", tasks.TypeSingleFun, "easy"), nil
		},
	}
	g := newTestGenerator(aiStub, []employees.Employee{alice, bob}, &memTasks{})
	g.pick = func(n int) int { return 0 }
	router := newTestRouter(g)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate-random-task/E1", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		GeneratedTask tasks.Task `json:"generated_task"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Bad response body: %v", err)
	}
	if body.GeneratedTask.UserID != "E1" || body.GeneratedTask.Points != 3 {
		t.Errorf("Unexpected task: %+v", body.GeneratedTask)
	}
}

func TestBulkEndpointPartialFailure(t *testing.T) {
	aiStub := &stubAI{
		partner: func(string) (string, error) { return "Nobody Realname", nil },
		task: func(prompt string) (string, error) {
			if strings.Contains(prompt, "Bob Lim") {
				return "not json", nil
			}
			return taskJSON("E1", "", tasks.TypeSingleFun, "easy"), nil
		},
	}
	g := newTestGenerator(aiStub, []employees.Employee{alice, bob}, &memTasks{})
	router := newTestRouter(g)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate-tasks-for-all", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on partial success, got %d", w.Code)
	}

	var body BulkResult
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Bad response body: %v", err)
	}
	if len(body.Tasks) != 1 {
		t.Errorf("Expected 1 task, got %d", len(body.Tasks))
	}
	if len(body.Errors) != 1 || !strings.Contains(body.Errors[0], "employee E2") {
		t.Errorf("Expected error entry for employee E2, got %v", body.Errors)
	}
}

func TestBulkEndpointTotalFailure(t *testing.T) {
	aiStub := &stubAI{
		task: func(string) (string, error) { return "", errors.New("api down") },
	}
	g := newTestGenerator(aiStub, []employees.Employee{alice, bob}, &memTasks{})
	router := newTestRouter(g)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate-tasks-for-all", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 when nothing succeeded, got %d", w.Code)
	}
}

func TestSuggestOneEndpoint(t *testing.T) {
	store := &memTasks{}
	aiStub := &stubAI{
		course: func(string) (string, error) {
			return `[{"course_id":"Crane Safety by PSA Academy"}]`, nil
		},
	}
	g := newTestGenerator(aiStub, []employees.Employee{alice}, store)
	router := newTestRouter(g)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate-course-for/E1", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Message          string   `json:"message"`
		SuggestedCourses []string `json:"suggested_courses"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Bad response body: %v", err)
	}
	if !strings.Contains(body.Message, "employee E1") {
		t.Errorf("Unexpected message: %q", body.Message)
	}
	if len(body.SuggestedCourses) != 1 || body.SuggestedCourses[0] != "Crane Safety by PSA Academy" {
		t.Errorf("Unexpected suggested_courses: %v", body.SuggestedCourses)
	}
}

func TestSuggestOneEndpointUnknownEmployee(t *testing.T) {
	g := newTestGenerator(&stubAI{}, nil, &memTasks{})
	router := newTestRouter(g)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate-course-for/ghost", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestSuggestAllEndpoint(t *testing.T) {
	aiStub := &stubAI{
		course: func(string) (string, error) {
			return `[{"course_id":"Crane Safety by PSA Academy"}]`, nil
		},
	}
	g := newTestGenerator(aiStub, []employees.Employee{alice, bob}, &memTasks{})
	router := newTestRouter(g)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate-suggested-courses", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "all employees") {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}

func TestStatusFor(t *testing.T) {
	g := newTestGenerator(&stubAI{}, []employees.Employee{alice, bob}, &memTasks{})
	_, notFoundErr := g.RandomTaskFor(context.Background(), "ghost")

	if got := statusFor(notFoundErr); got != http.StatusNotFound {
		t.Errorf("Expected 404 for NotFound, got %d", got)
	}
	if got := statusFor(errors.New("anything else")); got != http.StatusInternalServerError {
		t.Errorf("Expected 500 for generic error, got %d", got)
	}
}
