package model

import "github.com/m-mizutani/goerr/v2"

// Error tags for categorization
var (
	ErrTagNotFound     = goerr.NewTag("not_found")
	ErrTagInvalidInput = goerr.NewTag("invalid_input")
)

// Sentinel errors for domain operations
var (
	ErrPatientNotFound    = goerr.New("patient not found", goerr.T(ErrTagNotFound))
	ErrUnknownNavTarget   = goerr.New("navigation target is not in the menu", goerr.T(ErrTagInvalidInput))
	ErrNotShellPage       = goerr.New("page is not hosted in the navigation shell", goerr.T(ErrTagInvalidInput))
	ErrUnknownShellEvent  = goerr.New("unknown shell event", goerr.T(ErrTagInvalidInput))
	ErrInvalidPatientData = goerr.New("invalid patient data", goerr.T(ErrTagInvalidInput))
	ErrUnknownRole        = goerr.New("unknown role", goerr.T(ErrTagInvalidInput))
)
