package structs

import (
	"strings"
)

// Status is the state of a run as reported by the playground server.
type Status string

const (
	// transient states
	PENDING         Status = "pending"
	PLAN_QUEUED     Status = "plan_queued"
	PLANNING        Status = "planning"
	PLANNED         Status = "planned"
	COST_ESTIMATING Status = "cost_estimating"
	COST_ESTIMATED  Status = "cost_estimated"
	POLICY_CHECKING Status = "policy_checking"
	POLICY_CHECKED  Status = "policy_checked"
	CONFIRMED       Status = "confirmed"
	APPLY_QUEUED    Status = "apply_queued"
	APPLYING        Status = "applying"

	// end states
	APPLIED              Status = "applied"
	PLANNED_AND_FINISHED Status = "planned_and_finished"
	DISCARDED            Status = "discarded"
	ERRORED              Status = "errored"
	CANCELED             Status = "canceled"
	FORCE_CANCELED       Status = "force_canceled"
)

var knownStatuses = []Status{
	PENDING,
	PLAN_QUEUED,
	PLANNING,
	PLANNED,
	COST_ESTIMATING,
	COST_ESTIMATED,
	POLICY_CHECKING,
	POLICY_CHECKED,
	CONFIRMED,
	APPLY_QUEUED,
	APPLYING,
	APPLIED,
	PLANNED_AND_FINISHED,
	DISCARDED,
	ERRORED,
	CANCELED,
	FORCE_CANCELED,
}

// IsFinalStatus returns true if a run in this status will never change again.
func IsFinalStatus(status Status) bool {
	switch status {
	case APPLIED, PLANNED_AND_FINISHED, DISCARDED, ERRORED, CANCELED, FORCE_CANCELED:
		return true
	default:
		return false
	}
}

// IsFailedStatus returns true for final states that didn't apply or plan cleanly.
func IsFailedStatus(status Status) bool {
	switch status {
	case ERRORED, CANCELED, FORCE_CANCELED, DISCARDED:
		return true
	default:
		return false
	}
}

// ToStatus returns the Status matching s (case insensitive) or "" if s isn't known.
func ToStatus(s string) Status {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, st := range knownStatuses {
		if string(st) == s {
			return st
		}
	}
	return ""
}
