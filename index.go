package dirichlet

import (
	"github.com/pkg/errors"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// At returns the scalar parameter at the given coordinates of a dense
// Dirichlet. The coordinates must fully index the underlying tensor.
// Ragged Dirichlets index by element; use Get instead.
func (d *Dirichlet) At(coords ...int) (float64, error) {
	if d.repr != Dense {
		return 0, errors.Errorf("at: %v representation indexes by "+
			"element; use Get", d.repr)
	}

	v, err := d.value.At(coords...)
	if err != nil {
		return 0, errors.Wrap(err, "at")
	}

	return v.(float64), nil
}

// Get returns the i-th sub-tensor of the receiver wrapped in a new
// dense Dirichlet. For a ragged Dirichlet this is a copy of the i-th
// element; for a dense Dirichlet it is a copy of the i-th slice along
// axis 0, rank-promoted if the slice is a vector. Scalar lookups go
// through At instead.
func (d *Dirichlet) Get(i int) (*Dirichlet, error) {
	if d.repr == Ragged {
		if i < 0 || i >= len(d.elems) {
			return nil, errors.Errorf("get: index %d out of range for "+
				"%d elements", i, len(d.elems))
		}

		out := newDense(d.elems[i].Clone().(*tensor.Dense))
		out.warnf = d.warnf
		return out, nil
	}

	if i < 0 || i >= d.value.Shape()[0] {
		return nil, errors.Errorf("get: index %d out of range for axis "+
			"of size %d", i, d.value.Shape()[0])
	}

	view, err := d.value.Slice(G.S(i))
	if err != nil {
		return nil, errors.Wrap(err, "get")
	}

	sub, err := toFloat64Dense(view.Materialize())
	if err != nil {
		return nil, errors.Wrap(err, "get")
	}

	out := newDense(sub)
	out.warnf = d.warnf
	return out, nil
}

// Set assigns value into the i-th sub-tensor of the receiver in
// place. value may be a dense *Dirichlet (its raw tensor is unwrapped
// first), a tensor, or a scalar.
//
// For a ragged Dirichlet a tensor value replaces the i-th element
// wholesale, cast and rank-promoted like any constructor input, and a
// scalar fills the existing element. For a dense Dirichlet the value
// is written into the i-th slice along axis 0; a scalar fills the
// slice and a tensor must have as many entries as the slice. The
// representation tag is unaffected.
func (d *Dirichlet) Set(i int, value interface{}) error {
	if o, ok := value.(*Dirichlet); ok {
		if o.repr != Dense {
			return errors.Errorf("set: cannot assign a %v Dirichlet "+
				"into one element", o.repr)
		}
		value = o.value
	}

	if d.repr == Ragged {
		return d.setElem(i, value)
	}

	return d.setSlice(i, value)
}

// SetAt assigns the scalar v at the given coordinates of a dense
// Dirichlet in place. The coordinates must fully index the underlying
// tensor.
func (d *Dirichlet) SetAt(v float64, coords ...int) error {
	if d.repr != Dense {
		return errors.Errorf("setAt: %v representation indexes by "+
			"element; use Set", d.repr)
	}

	return errors.Wrap(d.value.SetAt(v, coords...), "setAt")
}

func (d *Dirichlet) setElem(i int, value interface{}) error {
	if i < 0 || i >= len(d.elems) {
		return errors.Errorf("set: index %d out of range for %d "+
			"elements", i, len(d.elems))
	}

	if s, ok := scalarOf(value); ok {
		return fill(d.elems[i], s)
	}

	t, ok := value.(tensor.Tensor)
	if !ok {
		return errors.Wrapf(ErrInvalidValues, "set: got %T", value)
	}

	elem, err := toFloat64Dense(t)
	if err != nil {
		return errors.Wrap(err, "set")
	}

	d.elems[i] = elem
	return nil
}

func (d *Dirichlet) setSlice(i int, value interface{}) error {
	if i < 0 || i >= d.value.Shape()[0] {
		return errors.Errorf("set: index %d out of range for axis of "+
			"size %d", i, d.value.Shape()[0])
	}

	view, err := d.value.Slice(G.S(i))
	if err != nil {
		return errors.Wrap(err, "set")
	}
	dest := view.(*tensor.Dense)

	if s, ok := scalarOf(value); ok {
		return fill(dest, s)
	}

	t, ok := value.(tensor.Tensor)
	if !ok {
		return errors.Wrapf(ErrInvalidValues, "set: got %T", value)
	}

	src, err := toFloat64Dense(t)
	if err != nil {
		return errors.Wrap(err, "set")
	}

	if src.Size() != dest.Size() {
		return errors.Errorf("set: expected %d values but got %d",
			dest.Size(), src.Size())
	}

	srcData := src.Data().([]float64)
	for k := 0; k < dest.Size(); k++ {
		coords, err := tensor.Itol(k, dest.Shape(), dest.Strides())
		if err != nil {
			return errors.Wrapf(err, "set: could not get coords at "+
				"index %v", k)
		}

		if err := dest.SetAt(srcData[k], coords...); err != nil {
			return errors.Wrap(err, "set")
		}
	}

	return nil
}

// fill writes the scalar v into every cell of t, writing through to
// the parent tensor when t is a view.
func fill(t *tensor.Dense, v float64) error {
	for k := 0; k < t.Size(); k++ {
		coords, err := tensor.Itol(k, t.Shape(), t.Strides())
		if err != nil {
			return errors.Wrapf(err, "fill: could not get coords at "+
				"index %v", k)
		}

		if err := t.SetAt(v, coords...); err != nil {
			return errors.Wrap(err, "fill")
		}
	}

	return nil
}

// scalarOf reports whether value is a numeric scalar, returning it as
// a float64.
func scalarOf(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	}

	return 0, false
}
