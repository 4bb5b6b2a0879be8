package hrapi

import "errors"

var (
	// ErrUnavailable covers timeouts, network failures and 5xx responses.
	// Recoverable by retry.
	ErrUnavailable = errors.New("hr system unavailable")

	// ErrAuth means the token was rejected. Recoverable by logging in
	// again and retrying once.
	ErrAuth = errors.New("hr system rejected authentication")

	// ErrNotFound means the identifier resolves to nothing upstream.
	ErrNotFound = errors.New("record not found in hr system")

	// ErrBadResponse means the upstream payload was not in the expected
	// shape.
	ErrBadResponse = errors.New("unexpected hr system response")
)
