package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrDatasetNotFound  = goerr.New("dataset not found")
	ErrInvalidSelection = goerr.New("invalid selection")
	ErrUnknownControl   = goerr.New("unknown control")
	ErrMissingColumn    = goerr.New("required column is missing")
	ErrInvalidQuery     = goerr.New("invalid query parameter")
)
