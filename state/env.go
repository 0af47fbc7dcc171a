// Package state defines shared program state.
package state

import (
	"context"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"kata/config"
	"kata/serde"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Log *zap.Logger

	// shapes "decode" subcommand knows how to build
	Shapes *serde.Registry
	// where subcommands write their results
	Out io.Writer
	In  io.Reader

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// Logger never returns nil, so subcommands could log before logging is
// configured.
func (e *LocalEnv) Logger() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}

func (e *LocalEnv) Output() io.Writer {
	if e.Out == nil {
		return os.Stdout
	}
	return e.Out
}

func (e *LocalEnv) Input() io.Reader {
	if e.In == nil {
		return os.Stdin
	}
	return e.In
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
