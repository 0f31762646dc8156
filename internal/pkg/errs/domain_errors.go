package errs

import "errors"

// Sentinel errors shared by the usecase layers and mapped to HTTP statuses by handlers.
var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrTemplateNotFound    = errors.New("template not found")
	ErrTestimonialNotFound = errors.New("testimonial not found")
	ErrSettingNotFound     = errors.New("setting not found")

	ErrDuplicateTemplateName = errors.New("template name already exists")
	ErrDuplicateSetting      = errors.New("setting already exists for language")

	ErrDomainValidation = errors.New("domain validation error")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
