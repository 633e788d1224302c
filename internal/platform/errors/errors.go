package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrParse               = errors.New("parse error")
	ErrUnsupportedTickType = errors.New("unsupported tick type")
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrAmbiguousMatch      = errors.New("ambiguous match")
)

// AmbiguousMatchError reports a fuzzy streak name that resolved to more than
// one file. Candidates hold the matching paths in directory order.
type AmbiguousMatchError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("ambiguous match for %q: %s", e.Name, strings.Join(e.Candidates, ", "))
}

func (e *AmbiguousMatchError) Unwrap() error { return ErrAmbiguousMatch }
