package dirichlet

import (
	"fmt"
	"hash"

	"github.com/chewxy/hm"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// normOp normalizes the columns of a tensor of Dirichlet
// concentration parameters, with all-zero columns falling back to the
// uniform distribution.
type normOp struct {
	dt    tensor.Dtype
	shape tensor.Shape
}

func newNormOp(dt tensor.Dtype, shape ...int) (*normOp, error) {
	if dt != tensor.Float64 {
		return nil, fmt.Errorf("newNormOp: dtype %v not supported", dt)
	}

	if len(shape) < 2 {
		return nil, fmt.Errorf("newNormOp: expected rank >= 2 but got "+
			"shape %v", tensor.Shape(shape))
	}

	return &normOp{
		dt:    dt,
		shape: tensor.Shape(shape),
	}, nil
}

func (n *normOp) Arity() int { return 1 }

func (n *normOp) Type() hm.Type {
	tt := G.TensorType{
		Dims: n.shape.Dims(),
		Of:   n.dt,
	}

	return hm.NewFnType(tt, tt)
}

func (n *normOp) InferShape(inputs ...G.DimSizer) (tensor.Shape, error) {
	return inputs[0].(tensor.Shape), nil
}

func (n *normOp) ReturnsPtr() bool { return false }

func (n *normOp) CallsExtern() bool { return false }

func (n *normOp) OverwritesInput() int { return -1 }

func (n *normOp) String() string {
	return fmt.Sprintf("DirichletNorm{shape=%v}()", n.shape)
}

// WriteHash writes the hash of the receiver to a hash struct
func (n *normOp) WriteHash(h hash.Hash) { fmt.Fprint(h, n.String()) }

// Hashcode returns the hash code of the receiver
func (n *normOp) Hashcode() uint32 { return SimpleHash(n) }

func (n *normOp) Do(inputs ...G.Value) (G.Value, error) {
	if err := checkConcentrations(n, n.shape, n.dt, inputs...); err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	in, ok := inputs[0].(*tensor.Dense)
	if !ok {
		return nil, fmt.Errorf("do: expected a dense tensor but got %T",
			inputs[0])
	}

	return normalizeDense(in)
}
