package node

import "errors"

// Sentinel errors for the node package.
var (
	// ErrUnknownKind indicates a Kind value outside the closed built-in set.
	ErrUnknownKind = errors.New("node: unknown kind")

	// ErrBadParams indicates params does not match what kind requires.
	ErrBadParams = errors.New("node: params do not match kind")

	// ErrTooManyInputs indicates an External node was staged with more
	// inputs than MaxStackInputs allows.
	ErrTooManyInputs = errors.New("node: too many inputs for external node")
)
