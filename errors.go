package cgp

import (
	"fmt"

	"github.com/pkg/errors"
)

// ConfigurationError reports a malformed engine configuration: an invalid
// operator/terminal set, an unsatisfiable size predicate, an empty graph, or
// a population-size mismatch. It is fatal at construction; the caller is
// not expected to retry.
type ConfigurationError struct {
	cause error
}

// NewConfigurationError wraps cause with a stack trace and a message,
// producing a ConfigurationError.
func NewConfigurationError(msg string, cause error) error {
	if cause == nil {
		return &ConfigurationError{cause: errors.New(msg)}
	}
	return &ConfigurationError{cause: errors.Wrap(cause, msg)}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("cgp: configuration error: %s", e.cause)
}

func (e *ConfigurationError) Unwrap() error { return e.cause }

// WorkerFailure reports an exception escaping a per-cell or per-phenotype
// task during a parallel phase. It is fatal to the current generation and
// propagates out of Engine.Evolve wrapped with cell/phenotype context.
type WorkerFailure struct {
	Index int
	cause error
}

// NewWorkerFailure wraps cause with the index of the cell or phenotype whose
// task failed.
func NewWorkerFailure(index int, cause error) error {
	return &WorkerFailure{Index: index, cause: errors.WithMessagef(cause, "cell %d", index)}
}

func (e *WorkerFailure) Error() string {
	return fmt.Sprintf("cgp: worker failure: %s", e.cause)
}

func (e *WorkerFailure) Unwrap() error { return e.cause }
