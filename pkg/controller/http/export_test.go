package http

// Test-only accessors
var (
	GetContentType = getContentType
	NoStoreHandler = NoStore
)

func (s *Server) DashboardHandler() *DashboardHandler {
	return s.dashboard
}
