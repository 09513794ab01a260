package dirichlet

import (
	"fmt"
	"hash"

	"github.com/chewxy/hm"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// wnormOp computes the first-order approximation of the expectation
// of the log of a Categorical distribution with a Dirichlet prior
// over its parameters.
type wnormOp struct {
	dt    tensor.Dtype
	shape tensor.Shape
}

func newWnormOp(dt tensor.Dtype, shape ...int) (*wnormOp, error) {
	if dt != tensor.Float64 {
		return nil, fmt.Errorf("newWnormOp: dtype %v not supported", dt)
	}

	if len(shape) < 2 {
		return nil, fmt.Errorf("newWnormOp: expected rank >= 2 but got "+
			"shape %v", tensor.Shape(shape))
	}

	return &wnormOp{
		dt:    dt,
		shape: tensor.Shape(shape),
	}, nil
}

func (w *wnormOp) Arity() int { return 1 }

func (w *wnormOp) Type() hm.Type {
	tt := G.TensorType{
		Dims: w.shape.Dims(),
		Of:   w.dt,
	}

	return hm.NewFnType(tt, tt)
}

func (w *wnormOp) InferShape(inputs ...G.DimSizer) (tensor.Shape, error) {
	return inputs[0].(tensor.Shape), nil
}

func (w *wnormOp) ReturnsPtr() bool { return false }

func (w *wnormOp) CallsExtern() bool { return false }

func (w *wnormOp) OverwritesInput() int { return -1 }

func (w *wnormOp) String() string {
	return fmt.Sprintf("Wnorm{shape=%v}()", w.shape)
}

// WriteHash writes the hash of the receiver to a hash struct
func (w *wnormOp) WriteHash(h hash.Hash) { fmt.Fprint(h, w.String()) }

// Hashcode returns the hash code of the receiver
func (w *wnormOp) Hashcode() uint32 { return SimpleHash(w) }

func (w *wnormOp) Do(inputs ...G.Value) (G.Value, error) {
	if err := checkConcentrations(w, w.shape, w.dt, inputs...); err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	in, ok := inputs[0].(*tensor.Dense)
	if !ok {
		return nil, fmt.Errorf("do: expected a dense tensor but got %T",
			inputs[0])
	}

	return wnormDense(in)
}
