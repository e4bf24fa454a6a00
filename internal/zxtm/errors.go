package zxtm

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedSnapshot is matched by every MalformedSnapshotError.
	ErrMalformedSnapshot = errors.New("malformed snapshot")
	// ErrNodeNotFound is matched by every NodeNotFoundError.
	ErrNodeNotFound = errors.New("node not found")
	// ErrUnknownInstance means the name is not listed under zxtms.
	ErrUnknownInstance = errors.New("unknown instance")
)

// MalformedSnapshotError reports a document that lacks a required field or
// lists a name that does not resolve.
type MalformedSnapshotError struct {
	Reason string
	Err    error
}

func (e *MalformedSnapshotError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed snapshot: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed snapshot: %s", e.Reason)
}

func (e *MalformedSnapshotError) Unwrap() error {
	return e.Err
}

func (e *MalformedSnapshotError) Is(target error) bool {
	return target == ErrMalformedSnapshot
}

// NodeNotFoundError is returned when no instance indexes the requested node.
type NodeNotFoundError struct {
	NodeID string
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("no node %s", e.NodeID)
}

func (e *NodeNotFoundError) Is(target error) bool {
	return target == ErrNodeNotFound
}
