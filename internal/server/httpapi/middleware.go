package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/ordertrack/internal/common"
	"github.com/dmitrijs2005/ordertrack/internal/server/auth"
	"github.com/google/uuid"
)

type ctxKey string

const userIDKey ctxKey = "user_id"

// UserIDFromContext returns the verified identity placed in the request
// context by the access token middleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// accessTokenMiddleware verifies the Authorization header before any
// protected handler runs. All rejections look the same to the caller.
func (s *Server) accessTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get(common.AuthorizationHeaderName)
		if header == "" {
			s.writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		if !strings.HasPrefix(header, common.BearerSchemePrefix) {
			s.writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(header, common.BearerSchemePrefix), s.jwtSecret)
		if err != nil {
			s.logger.Debug(r.Context(), "token rejected", "error", err)
			s.writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info(r.Context(), "request handled",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
