package gomap

import (
	"errors"
	"fmt"
)

// MarshalError represents an error during marshaling
type MarshalError struct {
	FieldPath string // Field path (e.g., "shape.point[1]")
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError represents an error during unmarshaling
type UnmarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

// TypeError reports a Go type that has no shape.
type TypeError struct {
	FieldPath string
	Type      string
	Message   string
}

func (e *TypeError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("unsupported type %s", e.Type)
	}
	if e.FieldPath != "" {
		return fmt.Sprintf("type error at %s: %s", e.FieldPath, msg)
	}
	return fmt.Sprintf("type error: %s", msg)
}

// unmarshalErr attaches path to err, keeping the innermost path if err
// already has one.
func unmarshalErr(path string, err error) error {
	if err == nil {
		return nil
	}
	var ue *UnmarshalError
	if errors.As(err, &ue) {
		return err
	}
	return &UnmarshalError{FieldPath: path, Message: err.Error(), Err: err}
}

func marshalErr(path string, err error) error {
	if err == nil {
		return nil
	}
	var me *MarshalError
	if errors.As(err, &me) {
		return err
	}
	return &MarshalError{FieldPath: path, Message: err.Error(), Err: err}
}

func joinPath(path, elem string) string {
	if path == "" {
		return elem
	}
	return path + "." + elem
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
