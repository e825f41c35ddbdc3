package models

import "errors"

// ErrInvalidStatus indicates a status value outside todo/in-progress/done
var ErrInvalidStatus = errors.New("invalid task status")
