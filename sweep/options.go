package sweep

import (
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Options configures Map.
//
// Workers – maximum number of concurrent evaluations. Default GOMAXPROCS.
// Logger  – receives Debug records for each sweep. Default discards output.
type Options struct {
	Workers int
	Logger  *logrus.Logger
}

// Option is a functional option for Map.
type Option func(*Options)

// DefaultOptions returns the configuration Map uses when no Option is given.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  l,
	}
}

// WithWorkers bounds the number of concurrent evaluations.
// Panics if n < 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// WithLogger routes sweep logging to l.
// Panics if l is nil.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) {
		if l == nil {
			panic(ErrNilLogger.Error())
		}
		o.Logger = l
	}
}
