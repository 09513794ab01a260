package dirichlet

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// arithFn is the signature of the elementwise arithmetic functions in
// gorgonia.org/tensor.
type arithFn func(a, b interface{}, opts ...tensor.FuncOpt) (tensor.Tensor,
	error)

// Add returns a new Dirichlet holding the elementwise sum of the
// receiver and other. other may be another *Dirichlet with the same
// representation, a scalar, or a broadcastable tensor. Neither
// operand is mutated.
func (d *Dirichlet) Add(other interface{}) (*Dirichlet, error) {
	return d.arith(other, tensor.Add, "add")
}

// Sub returns a new Dirichlet holding the elementwise difference of
// the receiver and other. Operands are as in Add.
func (d *Dirichlet) Sub(other interface{}) (*Dirichlet, error) {
	return d.arith(other, tensor.Sub, "sub")
}

// Mul returns a new Dirichlet holding the elementwise product of the
// receiver and other. Operands are as in Add.
func (d *Dirichlet) Mul(other interface{}) (*Dirichlet, error) {
	return d.arith(other, tensor.Mul, "mul")
}

func (d *Dirichlet) arith(other interface{}, fn arithFn,
	name string) (*Dirichlet, error) {
	if o, ok := other.(*Dirichlet); ok {
		return d.arithStore(o, fn, name)
	}

	operand, err := arithOperand(other)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}

	if d.repr == Dense {
		result, err := fn(d.value, operand)
		if err != nil {
			return nil, errors.Wrap(err, name)
		}

		out := newDense(result.(*tensor.Dense))
		out.warnf = d.warnf
		return out, nil
	}

	elems := make([]*tensor.Dense, len(d.elems))
	for i, elem := range d.elems {
		result, err := fn(elem, operand)
		if err != nil {
			return nil, errors.Wrapf(err, "%v: element %d", name, i)
		}
		elems[i] = result.(*tensor.Dense)
	}

	out := newRagged(elems)
	out.warnf = d.warnf
	return out, nil
}

func (d *Dirichlet) arithStore(o *Dirichlet, fn arithFn,
	name string) (*Dirichlet, error) {
	if o.repr != d.repr {
		return nil, errors.Wrap(ErrRepresentationMismatch, name)
	}

	if d.repr == Dense {
		result, err := fn(d.value, o.value)
		if err != nil {
			return nil, errors.Wrap(err, name)
		}

		out := newDense(result.(*tensor.Dense))
		out.warnf = d.warnf
		return out, nil
	}

	if len(o.elems) != len(d.elems) {
		return nil, errors.Errorf("%v: expected %d elements but got %d",
			name, len(d.elems), len(o.elems))
	}

	elems := make([]*tensor.Dense, len(d.elems))
	for i, elem := range d.elems {
		result, err := fn(elem, o.elems[i])
		if err != nil {
			return nil, errors.Wrapf(err, "%v: element %d", name, i)
		}
		elems[i] = result.(*tensor.Dense)
	}

	out := newRagged(elems)
	out.warnf = d.warnf
	return out, nil
}

// arithOperand coerces a non-Dirichlet operand into something the
// tensor arithmetic functions accept: a float64 scalar or a float64
// tensor.
func arithOperand(other interface{}) (interface{}, error) {
	switch v := other.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case tensor.Tensor:
		return toFloat64Dense(v)
	}

	return nil, errors.Wrapf(ErrInvalidValues, "unsupported operand %T",
		other)
}
