package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/custodia-labs/pizza-hunt/internal/logger"
)

// requestLog writes chi request lines through the package logger.
type requestLog struct{}

func (requestLog) Print(v ...any) {
	logger.Info("%s", fmt.Sprint(v...))
}

// requestLogger is chi's default request log format written through logger.
func requestLogger() func(next http.Handler) http.Handler {
	return middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  requestLog{},
		NoColor: true,
	})
}
