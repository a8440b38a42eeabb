package wrap

import (
	"context"
	"errors"
)

// Error attaches the LogCtx carried by ctx to err so the logging site can
// recover the request attributes after the error crossed layers.
func Error(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	lc, _ := ctx.Value(LogCtxKey).(LogCtx)

	// Already carrying a LogCtx: refresh it instead of wrapping twice.
	var e *errorWithLogCtx
	if errors.As(err, &e) {
		e.logCtx = lc
		return err
	}

	return &errorWithLogCtx{
		err:    err,
		logCtx: lc,
	}
}
