package dirichlet

import "github.com/pkg/errors"

// Sentinel errors returned by the package. Callers should test for
// them with errors.Is or errors.Cause.
var (
	// ErrBothDimsAndValues is returned when a Dirichlet is constructed
	// with both dims and values set. The two are mutually exclusive.
	ErrBothDimsAndValues = errors.New("provide either dims or values, " +
		"not both")

	// ErrInvalidValues is returned when the values argument is not a
	// *tensor.Dense, a slice of *tensor.Dense, or a slice of
	// tensor.Tensor, or when a tensor holds an unsupported data type.
	ErrInvalidValues = errors.New("values must be a *tensor.Dense or a " +
		"slice of tensors")

	// ErrInvalidDims is returned when the dims argument is not an int,
	// a []int, or a [][]int.
	ErrInvalidDims = errors.New("dims must be an int, a []int, or a " +
		"[][]int")

	// ErrHeterogeneousDims is returned when a dims list mixes ints and
	// int slices. Dense and ragged intent cannot be mixed in one list.
	ErrHeterogeneousDims = errors.New("dims list must contain only int " +
		"slices")

	// ErrRepresentationMismatch is returned when arithmetic is
	// attempted between a dense and a ragged Dirichlet.
	ErrRepresentationMismatch = errors.New("operands must have the same " +
		"representation")

	// ErrUnimplemented is returned by declared but unimplemented
	// operations.
	ErrUnimplemented = errors.New("operation not implemented")
)
