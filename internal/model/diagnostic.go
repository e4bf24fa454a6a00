package model

import "fmt"

// DiagnosticKind classifies a tolerated anomaly found while building an instance.
type DiagnosticKind string

const (
	DiagnosticDuplicateName       DiagnosticKind = "duplicate_name"
	DiagnosticUnresolvedReference DiagnosticKind = "unresolved_reference"
	DiagnosticInvalidEntry        DiagnosticKind = "invalid_entry"
)

// EntityKind names the collection an entity belongs to.
type EntityKind string

const (
	EntityPool         EntityKind = "pool"
	EntityTrafficGroup EntityKind = "tig"
	EntityVServer      EntityKind = "vserver"
)

// Diagnostic is a warning-class condition. It never stops construction.
type Diagnostic struct {
	Kind     DiagnosticKind
	Instance string // instance URL
	Entity   EntityKind
	Name     string
	RefKind  EntityKind // what Ref was expected to name
	Ref      string     // the name that did not resolve
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s", d.Instance, d.Summary())
}

// Summary is the message without the instance prefix.
func (d Diagnostic) Summary() string {
	switch d.Kind {
	case DiagnosticDuplicateName:
		return fmt.Sprintf("already seen %s with name %s", d.Entity, d.Name)
	case DiagnosticUnresolvedReference:
		return fmt.Sprintf("couldn't find %s %q for %s %s", d.RefKind, d.Ref, d.Entity, d.Name)
	default:
		return fmt.Sprintf("%s %s: %s", d.Entity, d.Name, d.Message)
	}
}
