package file

import (
	"errors"
	"fmt"

	"github.com/iamNilotpal/memfile/internal/core/domain"
)

// -- Sentinels --

var (
	ErrInvalidContent  = errors.New("content must not be nil")
	ErrWrongType       = errors.New("append channel not allowed for file kind")
	ErrInvalidArgument = errors.New("invalid argument")
)

// InvalidContentError is returned when an append receives nil content.
type InvalidContentError struct {
	Path      string
	Operation string
}

func (e *InvalidContentError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Operation, e.Path, ErrInvalidContent)
}

func (e *InvalidContentError) Is(target error) bool {
	return target == ErrInvalidContent
}

func (e *InvalidContentError) InvalidInput() bool {
	return true
}

// WrongTypeError is returned when an append targets a channel the file kind forbids.
type WrongTypeError struct {
	Path      string
	Operation string
	Kind      domain.FileKind
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("%s %s: %v %s", e.Operation, e.Path, ErrWrongType, e.Kind)
}

func (e *WrongTypeError) Is(target error) bool {
	return target == ErrWrongType
}

func (e *WrongTypeError) InvalidInput() bool {
	return true
}

// InvalidArgumentError is returned when a removal count is negative.
type InvalidArgumentError struct {
	Argument string
	Value    int
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%v: %s cannot be negative: %d", ErrInvalidArgument, e.Argument, e.Value)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func (e *InvalidArgumentError) InvalidInput() bool {
	return true
}
