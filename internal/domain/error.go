package domain

import "errors"

var (
	// Common domain errors
	ErrJobNotFound         = errors.New("job not found")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrEmptyCompanyList    = errors.New("no companies provided")
	ErrTooManyRequests     = errors.New("polled too frequently")
	ErrUnsupportedFile     = errors.New("unsupported file type")
	ErrNoCompaniesInFile   = errors.New("no valid company names found in the file")
	ErrInsufficientCredits = errors.New("enrichment provider out of credits")
)
