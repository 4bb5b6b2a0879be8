package report

import "errors"

var (
	ErrNotAuthorized     = errors.New("not authorized to access the attendance report")
	ErrNoMatchingCompany = errors.New("no matching companies found with the provided filter")
	ErrUnknownReportType = errors.New("unknown report type")
	ErrUnknownFormat     = errors.New("unknown export format")
)
