package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrChallengeNotFound     = errors.New("no challenge issued for device")
	ErrChallengeExpired      = errors.New("challenge is expired")
	ErrChallengeMismatch     = errors.New("challenge does not match the issued one")
	ErrSignatureVerification = errors.New("signature verification failed")

	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrHashMismatch   = errors.New("payload hash does not match ciphertext")
	ErrDeviceMismatch = errors.New("backup does not belong to authenticated device")
)
