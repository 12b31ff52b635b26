package query

import "errors"

var (
	ErrInvalidPage      = errors.New("page must be at least 1")
	ErrInvalidPageSize  = errors.New("page size must not be negative")
	ErrInvalidStatus    = errors.New("unknown flash status")
	ErrNodeNotFound     = errors.New("node codename not found")
	ErrFirmwareNotFound = errors.New("firmware version not found for node")
)
