package domain

import "fmt"

// StructureError reports a source document whose section layout does not match
// the expected shape.
type StructureError struct {
	File   string
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s: bad document structure: %s", e.File, e.Reason)
}

// ValidationError reports a metadata value that failed a validation rule.
type ValidationError struct {
	File   string
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s: invalid %s %q: %s", e.File, e.Field, e.Value, e.Reason)
}

// FieldTypeError reports a projected field that is present but not a scalar
// string.
type FieldTypeError struct {
	Record string
	Field  string
	Value  any
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("record %s: field %q is %T, expected string", e.Record, e.Field, e.Value)
}

// ConsistencyError reports a talk-group count that diverged from the distinct
// talk-id count, i.e. records sharing a talk id disagreed on topic, title or
// abstract.
type ConsistencyError struct {
	Groups  int
	TalkIDs int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("talk grouping mismatch: %d groups for %d distinct talk ids", e.Groups, e.TalkIDs)
}
