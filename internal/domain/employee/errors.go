package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrUnauthorized      = errors.New("unauthorized to access this employee")
	ErrAmbiguousQuery    = errors.New("query is ambiguous, clarification needed")
	ErrMissingDatabaseID = errors.New("missing employee database ID")
)
