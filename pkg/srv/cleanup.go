package srv

import "context"

// cleanup adapts a close function into a Service that only takes part
// in shutdown. Used for resources like database handles.
type cleanup struct {
	fn func() error
}

func (c *cleanup) Start(ctx context.Context) error {
	return nil
}

func (c *cleanup) Shutdown(ctx context.Context) error {
	if c.fn == nil {
		return nil
	}
	return c.fn()
}

func NewCleanup(fn func() error) Service {
	return &cleanup{fn: fn}
}
