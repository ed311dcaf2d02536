package middlewares

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/techlinker/internal/logger"
	"github.com/sbilibin2017/techlinker/internal/repositories"
)

// TxMiddleware runs the handler inside a database transaction. The
// transaction commits when the handler answers below 400 and rolls back
// otherwise.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(rw, r.WithContext(repositories.WithTx(r.Context(), tx)))

			if rw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				rw.WriteHeader(http.StatusInternalServerError)
			}
		})
	}
}
