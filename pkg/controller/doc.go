// Package controller drives a form through validation, submission and
// feedback.
//
// A Controller owns one form instance: its field values, its phone field and
// its draft. Submit runs the state machine
//
//	Idle -> Validating -> Failed -> Idle
//	Idle -> Validating -> Submitting -> Succeeded -> Idle
//	Idle -> Validating -> Submitting -> Failed -> Idle
//
// The Submitting state doubles as the disabled submit control: a Submit call
// made while the controller is not Idle returns ErrBusy and does nothing.
package controller
