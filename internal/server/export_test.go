package server

import "time"

// WriteTimeout exposes the effective write deadline for testing.
func WriteTimeout(s *Server) time.Duration {
	return s.writeDeadline()
}
