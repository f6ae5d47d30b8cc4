package structs

// ShareRequest asks the server to store some configuration for sharing.
type ShareRequest struct {
	// Config is the raw configuration text, sent as typed.
	Config string `json:"config"`
}

// ShareResponse is the server's answer to a ShareRequest.
type ShareResponse struct {
	// HasConfig is false if the server holds no configuration for us.
	// Only an explicit false counts; a missing value is treated as true.
	HasConfig *bool `json:"hasconfig"`

	// ID identifies the shared configuration.
	ID string `json:"id"`
}

// NoConfig returns true if the server explicitly told us there's nothing to share.
func (s *ShareResponse) NoConfig() bool {
	return s.HasConfig != nil && !*s.HasConfig
}
