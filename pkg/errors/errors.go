package errors

import (
	"fmt"
)

var (
	ErrBadStatusCode = fmt.Errorf("bad status code")
	ErrBadResponse   = fmt.Errorf("bad response")
	ErrInvalidArg    = fmt.Errorf("invalid arg")
)
