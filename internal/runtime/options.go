package runtime

import "os"

type ServiceOption func(*ServiceCtx)

// WithServiceTermination overrides the channel used to signal shutdown.
func WithServiceTermination(ch chan os.Signal) ServiceOption {
	return func(c *ServiceCtx) {
		c.shutdownChannel = ch
	}
}

func WithWaitingForServer() ServiceOption {
	return func(c *ServiceCtx) {
		c.serverReady = make(chan struct{}, 1)
	}
}
