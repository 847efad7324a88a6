package staff

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const otpTTL = 10 * time.Minute

// OTPStore holds short-lived one-time codes for staff onboarding.
type OTPStore interface {
	Put(key, code string, ttl time.Duration) error
	Get(key string) (string, error)
	Delete(key string) error
}

// RedisOTPStore stores OTP codes in Redis with a TTL.
type RedisOTPStore struct {
	Client *redis.Client
}

func (s *RedisOTPStore) Put(key, code string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Client.Set(ctx, "otp:"+key, code, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}
	return nil
}

func (s *RedisOTPStore) Get(key string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	code, err := s.Client.Get(ctx, "otp:"+key).Result()
	if err != nil {
		return "", fmt.Errorf("failed to fetch OTP: %w", err)
	}
	return code, nil
}

func (s *RedisOTPStore) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Client.Del(ctx, "otp:"+key).Err(); err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}
	return nil
}

// generateSecureOTP generates a secure random OTP of the specified length.
// It returns a base32 encoded string (without padding) truncated to the
// desired length.
func generateSecureOTP(length int) (string, error) {
	numBytes := (length*5 + 7) / 8
	randomBytes := make([]byte, numBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	otp := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)
	if len(otp) > length {
		otp = otp[:length]
	}
	return otp, nil
}
