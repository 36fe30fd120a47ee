package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
)

// Dispatch runs handler in a new goroutine with panic recovery. The handler gets
// a context detached from ctx's cancellation that still carries its logger, so
// work started while serving a request or during startup outlives it. The
// returned channel is closed when the handler has finished.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) <-chan struct{} {
	newCtx := context.WithoutCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(newCtx).Error("Panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			ctxlog.From(newCtx).Error("Error in async handler",
				"error", err,
			)
		}
	}()

	return done
}
