package banking

import "errors"

var (
	// ErrPlaidInternal signals a client-side failure building or reading a request.
	ErrPlaidInternal = errors.New("plaid client: internal error")

	// ErrPlaidUnavailable signals a network failure reaching Plaid.
	ErrPlaidUnavailable = errors.New("plaid unavailable")

	// ErrPlaidRejected signals that Plaid refused the request.
	ErrPlaidRejected = errors.New("plaid rejected request")
)
