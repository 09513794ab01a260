package dirichlet

import (
	"fmt"
	"hash/fnv"

	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// Wnorm returns a node computing the expected-log approximation
// 1/colSum - 1/A of a, treated as a tensor of Dirichlet concentration
// parameters. Zeros are removed from a copy before the computation,
// so the result is always finite and the input value is untouched.
// This operation is not differentiable.
func Wnorm(a *G.Node) (*G.Node, error) {
	op, err := newWnormOp(a.Dtype(), a.Shape()...)
	if err != nil {
		return nil, fmt.Errorf("wnorm: %v", err)
	}

	return G.ApplyOp(op, a)
}

// Normalize returns a node computing the column normalization of a,
// treated as a tensor of Dirichlet concentration parameters, with
// all-zero columns replaced by the uniform distribution. This
// operation is not differentiable.
func Normalize(a *G.Node) (*G.Node, error) {
	op, err := newNormOp(a.Dtype(), a.Shape()...)
	if err != nil {
		return nil, fmt.Errorf("normalize: %v", err)
	}

	return G.ApplyOp(op, a)
}

// SimpleHash constructs the 32-bit FNV-1a hash of a Gorgonia Op.
// Taken from Gorgonia.
func SimpleHash(op G.Op) uint32 {
	h := fnv.New32a()
	op.WriteHash(h)
	return h.Sum32()
}

// CheckArity returns an error if inputs does not match the arity of op.
func CheckArity(op G.Op, inputs int) error {
	if inputs != op.Arity() && op.Arity() >= 0 {
		return fmt.Errorf("%v has an arity of %d. Got %d instead", op,
			op.Arity(), inputs)
	}
	return nil
}

// checkConcentrations validates a tensor input to one of the
// Dirichlet graph ops.
func checkConcentrations(op G.Op, shape tensor.Shape, dt tensor.Dtype,
	inputs ...G.Value) error {
	if err := CheckArity(op, len(inputs)); err != nil {
		return err
	}

	if inputs[0] == nil {
		return fmt.Errorf("cannot operate on nil tensor")
	}

	t, okTensor := inputs[0].(tensor.Tensor)

	if !okTensor {
		return fmt.Errorf("expected a tensor of concentration "+
			"parameters but got %T", inputs[0])
	} else if t.Size() == 0 {
		return fmt.Errorf("cannot operate on empty tensor")
	} else if !t.Shape().Eq(shape) {
		return fmt.Errorf("expected input to have shape %v but got %v",
			shape, t.Shape())
	} else if !t.Dtype().Eq(dt) {
		return fmt.Errorf("expected input to have dtype %v but got %v",
			dt, t.Dtype())
	}

	return nil
}
