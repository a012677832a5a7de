package router

import (
	"net/http"

	"fitbuddy/internal/handler"
	"fitbuddy/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(foodHandler *handler.FoodHandler, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	foodRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case handler.FoodsPath, handler.FoodsPath + "/":
			foodHandler.List(w, r)
		case handler.FoodsPath + "/categories":
			foodHandler.Categories(w, r)
		default:
			foodHandler.GetByID(w, r)
		}
	}

	// Register food routes (both with and without trailing slash)
	mux.HandleFunc(handler.FoodsPath, foodRouteHandler)
	mux.HandleFunc(handler.FoodsPath+"/", foodRouteHandler)

	mux.Handle("/", handler.NotFound(logger))

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
