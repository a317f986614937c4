package v1alpha1

import "errors"

// ErrApplicationRequired is returned when spec.application is empty.
var ErrApplicationRequired = errors.New("spec.application is required")

// ErrInvalidApplicationName is returned when spec.application is not DNS-1123 compliant.
var ErrInvalidApplicationName = errors.New("spec.application is invalid")

// ErrInvalidCascade is returned when an invalid cascade mode is specified.
var ErrInvalidCascade = errors.New("invalid cascade")

// ErrInvalidLabelSelector is returned when spec.labelSelector does not parse.
var ErrInvalidLabelSelector = errors.New("invalid label selector")

// ErrEmptyLabelSelector is returned when spec.labelSelector would select every object.
var ErrEmptyLabelSelector = errors.New("label selector selects everything")

// ErrInvalidTiming is returned when a timing value is negative.
var ErrInvalidTiming = errors.New("invalid timing")

// ErrInvalidAPIVersion is returned when apiVersion or kind do not match this package.
var ErrInvalidAPIVersion = errors.New("invalid apiVersion or kind")
