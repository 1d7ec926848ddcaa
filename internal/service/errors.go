package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrMenuNotEncodable is returned when a menu document, after pruning,
	// has no shop name or no surviving category and therefore must not be
	// persisted or linked.
	ErrMenuNotEncodable = errors.New("menu document is not encodable")

	// ErrInvalidMenuID is returned when a record identifier is not a UUID.
	ErrInvalidMenuID = errors.New("invalid menu record id")
)
