package testimonial

import "errors"

var (
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrEmptyText         = errors.New("testimonial text cannot be empty")
	ErrTextTooLong       = errors.New("testimonial text exceeds maximum length")
	ErrInvalidClientName = errors.New("client name is required")
	ErrFeatureUnapproved = errors.New("only approved testimonials can be featured")
)
