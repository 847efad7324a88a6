package staff

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials covers both unknown email and wrong password so the
// response does not leak which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrInactiveStaff rejects authentication for deactivated accounts.
var ErrInactiveStaff = errors.New("staff account is deactivated")

// OTPMismatchError indicates the provided OTP did not match or has expired.
type OTPMismatchError struct {
	StaffID string
}

func (e OTPMismatchError) Error() string {
	return fmt.Sprintf("OTP invalid or expired for staff %s", e.StaffID)
}
