package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports malformed or missing request input. Fields lists
// every offending field, not just the first one found.
type ValidationError struct {
	Fields []string
	Msg    string
	Err    error
}

func (e ValidationError) Error() string {
	if len(e.Fields) > 0 && e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Msg, strings.Join(e.Fields, ", "))
	}
	if len(e.Fields) > 0 {
		return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
	}
	if e.Msg != "" {
		return e.Msg
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// RenderError reports a template or PDF generation failure.
type RenderError struct {
	Stage string // "template" or "pdf"
	Err   error
}

func (e RenderError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("%s rendering failed: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("rendering failed: %v", e.Err)
}

func (e RenderError) Unwrap() error { return e.Err }

// DeliveryError is raised only when every intended email recipient failed.
// Individual recipient failures are recorded in the result, not thrown.
type DeliveryError struct {
	Msg string
	Err error
}

func (e DeliveryError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "email delivery failed"
}

func (e DeliveryError) Unwrap() error { return e.Err }

// InternalError wraps unexpected failures so handlers can hide details.
type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsRender(err error) bool {
	var target RenderError
	return errors.As(err, &target)
}

func IsDelivery(err error) bool {
	var target DeliveryError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
