package utils

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrLessonNotFound  = errors.New("lesson not found")
	ErrReportNotFound  = errors.New("report not found")

	ErrInvalidID       = errors.New("invalid identifier")
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")

	// Policy denials. Visibility is always evaluated before the access tier,
	// so a private premium lesson denies with ErrPrivateContent.
	ErrPrivateContent  = errors.New("content is private")
	ErrPremiumRequired = errors.New("premium access required")
	ErrNotOwner        = errors.New("caller does not own this content")

	ErrAlreadyPremium   = errors.New("account is already premium")
	ErrInvalidSignature = errors.New("invalid webhook signature")

	ErrDatabaseError = errors.New("database error")
)
