package qrpayload

import "errors"

var (
	// ErrMenuRecordRequired is returned when Encode is asked for a menu
	// payload. A menu link carries the store-assigned record identifier,
	// so the document must be persisted first and the link built with
	// [Encoder.BuildMenuLink].
	ErrMenuRecordRequired = errors.New("menu payload requires a persisted record id")

	// ErrUnknownContentType is returned for a form whose type is outside
	// the closed content type set.
	ErrUnknownContentType = errors.New("unknown content type")
)
