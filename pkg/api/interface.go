package api

import (
	"context"

	"github.com/voidshard/playground/pkg/structs"
)

//go:generate mockgen -source interface.go -destination ../../internal/mocks/pkg/api_mock/api.go -package api_mock

// API represents the functions the playground server exposes to the widget.
type API interface {
	// Run returns the current status & outputs of a run.
	Run(ctx context.Context, runID string) (*structs.RunStatus, error)

	// Share stores the given configuration text & returns how to refer to it.
	//
	// A nil response with a nil error means the server answered with no usable data.
	Share(ctx context.Context, config string) (*structs.ShareResponse, error)
}
