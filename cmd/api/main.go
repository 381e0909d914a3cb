package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"harbor-tasks-backend/internal/ai"
	"harbor-tasks-backend/internal/analytics"
	"harbor-tasks-backend/internal/auth"
	"harbor-tasks-backend/internal/config"
	"harbor-tasks-backend/internal/courses"
	"harbor-tasks-backend/internal/db"
	"harbor-tasks-backend/internal/employees"
	"harbor-tasks-backend/internal/generator"
	"harbor-tasks-backend/internal/tasks"
)

func main() {
	cfg := config.Load()

	database, err := db.Connect(cfg.ConnString())
	if err != nil {
		log.Fatal("❌ Failed to connect DB:", err)
	}
	defer database.Close()

	log.Println("✅ Connected to PostgreSQL!")

	gen := generator.New(
		ai.New(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL),
		employees.NewStore(database),
		courses.NewStore(database),
		tasks.NewStore(database),
	)
	gen.Workers = cfg.GenWorkers
	gen.Events = &analytics.Recorder{DB: database}

	guard := auth.New([]byte(cfg.AuthSecret)).Wrap

	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	r.HandleFunc("/generate-suggested-courses", guard(generator.SuggestAllHandler(gen))).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/generate-course-for/{employee_id}", guard(generator.SuggestOneHandler(gen))).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/generate-tasks-for-all", guard(generator.BulkTasksHandler(gen))).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/generate-random-task/{employee_id}", guard(generator.RandomTaskHandler(gen))).Methods(http.MethodPost, http.MethodOptions)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	log.Println("🚀 API server is running on :" + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, c.Handler(r)))
}
