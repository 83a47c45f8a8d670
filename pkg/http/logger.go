package http

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-todo/pkg/log"
)

// Logger defines hooks for logging HTTP requests and responses. LogRequest
// returns an opaque request id that the client hands back to the response
// hooks, so implementations stay stateless and safe for concurrent requests.
type Logger interface {
	// LogRequest is called before the request is sent with all request data formed.
	LogRequest(method, url string, body string) string

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status).
	LogResponseSuccess(requestID, method, url string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure or an error HTTP status.
	LogResponseError(requestID, method, url string, httpStatus int, responseBody string, latency int64, err error)
}

// ZapLogger logs HTTP exchanges through pkg/log at debug level, tagging each
// exchange with a generated request id. It holds no per-request state.
type ZapLogger struct{}

var _ Logger = (*ZapLogger)(nil)

func NewZapLogger() *ZapLogger {
	return &ZapLogger{}
}

func (l *ZapLogger) LogRequest(method, url string, body string) string {
	requestID := uuid.NewString()
	log.Debug("http request",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("body_bytes", len(body)))
	return requestID
}

func (l *ZapLogger) LogResponseSuccess(requestID, method, url string, httpStatus int, responseBody string, latency int64) {
	log.Debug("http response",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (l *ZapLogger) LogResponseError(requestID, method, url string, httpStatus int, responseBody string, latency int64, err error) {
	log.Debug("http response error",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}
