package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across layers. The structured errors below unwrap
// to these so callers can use errors.Is.
var (
	ErrParse       = errors.New("parse error")
	ErrNotFound    = errors.New("not found")
	ErrMismatch    = errors.New("stock list does not match current order")
	ErrEmptyData   = errors.New("no day records")
	ErrUnknownUnit = errors.New("unknown unit")
)

// ParseError reports a malformed day-range specification.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%q: Wrong digit or digits range.", e.Input)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// NotFoundError reports a required input file that does not exist.
type NotFoundError struct {
	Path    string
	DataDir string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s doesn't exist. Create new empty %s, fill it out and add it to %s/.",
		e.Path, e.Path, e.DataDir)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// MismatchError reports an on-hand list whose length differs from the
// required list. It usually means the stock file was generated with other
// days or people values.
type MismatchError struct {
	Source   string // where the on-hand list came from, may be empty
	Required int
	OnHand   int
}

func (e *MismatchError) Error() string {
	src := e.Source
	if src == "" {
		src = "on-hand list"
	}
	return fmt.Sprintf("length of `%s` (%d) and current order (%d) doesn't match. "+
		"Make sure that `%s` was generated using same days and people values as is used now.",
		src, e.OnHand, e.Required, src)
}

func (e *MismatchError) Unwrap() error { return ErrMismatch }

// EmptyDataError reports a data directory without usable day records.
type EmptyDataError struct {
	Dir    string
	Reason string
}

func (e *EmptyDataError) Error() string {
	return fmt.Sprintf("%s: `%s`", e.Reason, e.Dir)
}

func (e *EmptyDataError) Unwrap() error { return ErrEmptyData }
