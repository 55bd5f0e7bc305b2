package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrUserNotFound signals that the authenticated user has no stored record.
	ErrUserNotFound = errors.New("user not found")
	// ErrUnauthorized signals a request without a resolved identity.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidInput signals a request that failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrAlreadyExists signals a duplicate resource.
	ErrAlreadyExists = errors.New("already exists")

	// ErrQuotaExceeded signals an exhausted monthly AI allowance.
	ErrQuotaExceeded = errors.New("monthly limit exceeded")
	// ErrLLMRateLimited signals that the text-generation provider throttled the request.
	ErrLLMRateLimited = errors.New("llm rate limited")
	// ErrLLMProviderError signals a text-generation provider failure.
	ErrLLMProviderError = errors.New("llm provider error")
)
