package attendance

import "errors"

var (
	ErrNoData           = errors.New("no attendance data available for the requested period")
	ErrNoTeamMembers    = errors.New("no team members found")
	ErrInvalidDateRange = errors.New("invalid date range specification")
)
