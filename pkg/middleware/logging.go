package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"github.com/vfg2006/crm-api/pkg/log"
)

const (
	// RequestIDHeader carrega o ID de correlação entre cliente, API e logs
	RequestIDHeader = "X-Request-ID"

	maxRequestIDLength   = 64
	slowRequestThreshold = 500 * time.Millisecond
)

// rotas de infraestrutura registradas só em debug
var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// statusRecorder guarda o status e o tamanho da resposta
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += n
	return n, err
}

// LoggingMiddleware associa um ID de correlação à requisição e registra o resultado ao final
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inbound := r.Header.Get(RequestIDHeader)
			if len(inbound) > maxRequestIDLength {
				inbound = ""
			}

			ctx, correlationID := log.WithCorrelationID(r.Context(), inbound)
			r = r.WithContext(ctx)
			w.Header().Set(RequestIDHeader, correlationID)

			sr := newStatusRecorder(w)
			start := time.Now()

			next.ServeHTTP(sr, r)

			elapsed := time.Since(start)
			logger := log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           routeLabel(r.URL.Path),
				"status_code":    sr.status,
				"duration_ms":    elapsed.Milliseconds(),
				"bytes":          sr.bytes,
				"remote_addr":    r.RemoteAddr,
				"user_agent":     r.UserAgent(),
			})

			switch {
			case sr.status >= http.StatusInternalServerError:
				logger.Error("Requisição finalizada com erro")
			case sr.status >= http.StatusBadRequest:
				logger.Warn("Requisição finalizada com aviso")
			case quietPaths[r.URL.Path]:
				logger.Debug("Requisição finalizada")
			default:
				logger.Info("Requisição finalizada")
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %s", elapsed)
			}
		})
	}
}

// LogPanicMiddleware recupera panics dos handlers e responde o erro padronizado
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				log.ForContext(r.Context()).WithFields(log.Fields{
					"error":       fmt.Sprint(recovered),
					"method":      r.Method,
					"path":        r.URL.Path,
					"stack_trace": string(debug.Stack()),
				}).Error("Panic ao processar requisição")

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
