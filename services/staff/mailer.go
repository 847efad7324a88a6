package staff

import "marketdesk/utils"

// Mailer delivers onboarding emails. Delivery itself is a hosted concern;
// only the send call lives here.
type Mailer interface {
	SendOTP(email, code string) error
}

// LogMailer logs the outgoing message instead of sending it. Used in
// development and as the default until a mail provider is wired in.
type LogMailer struct{}

func (LogMailer) SendOTP(email, code string) error {
	utils.GetLogger().Sugar().Infof("Sending onboarding OTP to %s: %s (expires in %v)", email, code, otpTTL)
	return nil
}
