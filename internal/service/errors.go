package service

import "errors"

var (
	ErrUnknownEntityType = errors.New("unknown entity type")
)
