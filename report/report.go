// Package report makes terminations visible outside the dying process.
//
// A termination still ends the goroutine that raised it: Recover observes
// the panic, logs it, records it on the current span and sends it to
// Sentry, then panics again with the same value.
//
//	func main() {
//		report.Init()
//		ctx := context.Background()
//		defer report.Recover(ctx)
//		...
//	}
package report

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/replicate/orpanic/fatal"
	"github.com/replicate/orpanic/logging"
	"github.com/replicate/orpanic/telemetry"
	"github.com/replicate/orpanic/version"
)

// flushTimeout bounds how long Capture waits for Sentry before the process
// is allowed to die.
const flushTimeout = 2 * time.Second

var logger = logging.New("report")

// Init configures the global Sentry client from SENTRY_DSN. Without a DSN,
// terminations are still logged and traced but not sent anywhere.
func Init() {
	sentryDSN := os.Getenv("SENTRY_DSN")
	if sentryDSN == "" {
		logger.Warn("SENTRY_DSN not set: skipping Sentry initialization!")
		return
	}

	logger.Info("Initializing Sentry")
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              sentryDSN,
		AttachStacktrace: true,
		Release:          version.Version(),
	})
	if err != nil {
		logger.Warn("Failed to initialize Sentry client", zap.Error(err))
	}
}

// Recover reports a panic in progress and re-raises it. It must be deferred
// directly:
//
//	defer report.Recover(ctx)
func Recover(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}
	Capture(ctx, r)
	panic(r)
}

// Capture reports a recovered panic value. Terminations raised by this
// module are reported with their call site; any other value is reported as
// an ordinary panic.
func Capture(ctx context.Context, r any) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	log := logger.With(logging.GetFields(ctx)...)

	e, ok := fatal.As(r)
	if !ok {
		log.Error("panic", zap.Any("value", r))
		hub.RecoverWithContext(ctx, r)
		hub.Flush(flushTimeout)
		return
	}

	log.Error(e.Message, logging.Termination(e)...)
	telemetry.RecordTermination(ctx, e)

	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("termination.kind", e.Kind.String())
		scope.SetContext("call_site", sentry.Context{
			"function": e.Caller.Function,
			"file":     e.Caller.File,
			"line":     e.Caller.Line,
		})
		hub.RecoverWithContext(ctx, e)
	})
	hub.Flush(flushTimeout)
}

// Middleware reports terminations raised while serving a request, with a
// Sentry hub scoped to that request. The panic continues to net/http, which
// ends the request the way it does for any other handler panic.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			hub := sentry.GetHubFromContext(ctx)
			if hub == nil {
				hub = sentry.CurrentHub().Clone()
				ctx = sentry.SetHubOnContext(ctx, hub)
			}
			hub.Scope().SetRequest(r)
			ctx = logging.AddFields(ctx, zap.String("method", r.Method), zap.String("path", r.URL.Path))

			defer Recover(ctx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
