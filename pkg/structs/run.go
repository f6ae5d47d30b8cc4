package structs

// RunStatus is returned when asking the server about a run.
type RunStatus struct {
	// Status is the run's current state. A null or missing status decodes to "",
	// which means the server has nothing meaningful to report yet.
	Status Status `json:"status"`

	// Outputs are the run's output values, in the order the server lists them.
	Outputs []string `json:"outputs"`
}

// HasStatus returns true if the server gave us a status worth displaying.
func (r *RunStatus) HasStatus() bool {
	return r != nil && r.Status != ""
}
