package common

const (
	// API_RUNS is used to get the status of a run, as API_RUNS/{id}
	API_RUNS = "/runs"

	// API_SHARE is used to share configuration
	API_SHARE = "/share"

	// SHARE_ID is the query parameter carrying a share id in a share URL
	SHARE_ID = "share_id"

	// HEADER_REQUEST_ID is set on every request so the server can correlate logs
	HEADER_REQUEST_ID = "X-Request-Id"
)
