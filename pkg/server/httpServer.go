package server

import (
	"context"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/mux"

	"github.com/10021987z/dzilo-sub003/pkg/application"
)

const shutdownGrace = 10 * time.Second

func NewHTTPServer(app application.Application, middlewares ...mux.MiddlewareFunc) *HTTPServer {
	return &HTTPServer{
		app:         app,
		middlewares: middlewares,
	}
}

type HTTPServer struct {
	app         application.Application
	middlewares []mux.MiddlewareFunc

	srv *http.Server
}

func (s *HTTPServer) Handler() http.Handler {
	router := s.app.Router()
	router.Use(s.middlewares...)
	return gziphandler.GzipHandler(router)
}

// Start serves until the context is cancelled, then drains in-flight
// requests before returning.
func (s *HTTPServer) Start(ctx context.Context, socketAddress string) error {
	s.srv = &http.Server{
		Addr:              socketAddress,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	}
}
