package apperr

import "fmt"

// Validation reports a malformed or incomplete domain record.
type Validation struct {
	Msg string
}

func (e *Validation) Error() string {
	return "validation: " + e.Msg
}

// GenerationParse reports model output that could not be decoded
// per the generation client's contract.
type GenerationParse struct {
	Msg   string
	Cause error
}

func (e *GenerationParse) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation parse: %s: %v", e.Msg, e.Cause)
	}
	return "generation parse: " + e.Msg
}

func (e *GenerationParse) Unwrap() error { return e.Cause }

// NotFound reports a missing record.
type NotFound struct {
	Kind string
	ID   string
}

func (e *NotFound) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// NoPartner reports that no eligible or matching partner exists
// for a pair task. It is a client-side condition, not a fault.
type NoPartner struct {
	Msg string
}

func (e *NoPartner) Error() string { return e.Msg }

// Persistence reports a failed datastore call or a missing acknowledgment.
type Persistence struct {
	Op    string
	Cause error
}

func (e *Persistence) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Cause)
}

func (e *Persistence) Unwrap() error { return e.Cause }
