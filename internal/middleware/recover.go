package middleware

import (
	"net/http"
	"runtime/debug"

	"petcare-api/internal/errs"
	"petcare-api/internal/platform/httpx"

	"github.com/rs/zerolog/hlog"
)

// Recover convierte un panic en un 500 JSON y loguea el stack.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			hlog.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			httpx.WriteJSON(w, http.StatusInternalServerError, errs.NewInternalServerError())
		}()

		next.ServeHTTP(w, r)
	})
}
