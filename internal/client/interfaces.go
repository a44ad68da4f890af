package client

// Client is the lifecycle contract the client binary runs against.
type Client interface {
	// Run blocks until the user quits or a fatal error occurs.
	Run() error
}
