package server

// Server is the lifecycle contract of a transport server: RunServer serves
// until shutdown is requested, Shutdown stops accepting new work and drains
// in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}
