package zxtm

import "github.com/go-kit/log"

// Option configures a Snapshot.
type Option func(*options)

type options struct {
	logger log.Logger
}

// WithLogger sets the logger that receives duplicate-name and
// unresolved-reference warnings. The default discards them.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: log.NewNopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
