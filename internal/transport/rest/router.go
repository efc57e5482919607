package rest

import (
	"net/http"
	"quizgame/internal/config"
	"quizgame/internal/service"
	"quizgame/internal/transport/rest/handler"
	"quizgame/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
	"github.com/swaggo/swag"
	"go.uber.org/zap"

	_ "quizgame/docs"
)

// Container holds all dependencies for the router
type Container struct {
	QuizService     *service.QuizService
	GameService     *service.GameService
	ResponseService *service.ResponseService
	CORS            config.CORSConfig
	Logger          *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := mux.NewRouter()

	quizHandler := handler.NewQuizHandler(c.QuizService, logger)
	gameHandler := handler.NewGameHandler(c.GameService, logger)
	responseHandler := handler.NewResponseHandler(c.ResponseService, logger)

	r.Use(corsMiddleware(c.CORS))
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(logger))
	r.Use(middleware.Recover(logger))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.HandleFunc("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			logger.Error("failed to read API doc", zap.Error(err))
			http.Error(w, "doc unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// search is registered ahead of {id} so it is not taken for an id
	api.HandleFunc("/quizzes", quizHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/quizzes", quizHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/quizzes/search", quizHandler.Search).Methods("GET", "OPTIONS")
	api.HandleFunc("/quizzes/{id}", quizHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/quizzes/{id}", quizHandler.Update).Methods("PUT", "OPTIONS")
	api.HandleFunc("/quizzes/{id}", quizHandler.Patch).Methods("PATCH", "OPTIONS")
	api.HandleFunc("/quizzes/{id}", quizHandler.Delete).Methods("DELETE", "OPTIONS")

	api.HandleFunc("/quizgames", gameHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/quizgames", gameHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/quizgames/search", gameHandler.Search).Methods("GET", "OPTIONS")
	api.HandleFunc("/quizgames/{id}", gameHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/quizgames/{id}", gameHandler.Update).Methods("PUT", "OPTIONS")
	api.HandleFunc("/quizgames/{id}", gameHandler.Patch).Methods("PATCH", "OPTIONS")
	api.HandleFunc("/quizgames/{id}", gameHandler.Delete).Methods("DELETE", "OPTIONS")

	// Live lifecycle
	api.HandleFunc("/quizgames/{id}/start", gameHandler.Start).Methods("POST", "OPTIONS")
	api.HandleFunc("/quizgames/{id}/end", gameHandler.End).Methods("POST", "OPTIONS")
	api.HandleFunc("/quizgames/{id}/question/{index}/start", gameHandler.StartQuestion).Methods("POST", "OPTIONS")
	api.HandleFunc("/quizgames/{id}/question/{index}/end", gameHandler.EndQuestion).Methods("POST", "OPTIONS")
	api.HandleFunc("/quizgames/{id}/question/{index}/choice/{choice}/response", responseHandler.Record).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(cfg config.CORSConfig) mux.MiddlewareFunc {
	origins := orDefault(cfg.AllowedOrigins, "*")
	methods := orDefault(cfg.AllowedMethods, "GET, POST, PUT, PATCH, DELETE, OPTIONS")
	headers := orDefault(cfg.AllowedHeaders, "Content-Type, Authorization")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origins)
			w.Header().Set("Access-Control-Allow-Methods", methods)
			w.Header().Set("Access-Control-Allow-Headers", headers)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
