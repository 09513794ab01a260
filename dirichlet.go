// Package dirichlet provides a container for Dirichlet concentration
// parameters, used as the prior and posterior representation of
// categorical likelihood and transition models in generative models.
//
// A Dirichlet here is not represented by its probability density but
// by its concentration-parameter tensors, which act as sufficient
// statistics during Bayesian updates. A Dirichlet holds either a
// single dense tensor or an ordered collection of independently-shaped
// tensors (the ragged representation), used when a generative model
// has multiple factors or modalities with different dimensionalities.
// Every operation behaves uniformly across both representations.
//
// All values are held as float64. Rank-1 input is promoted to rank 2
// by appending a trailing axis of size 1, so every tensor has a
// well-defined column axis for normalization.
package dirichlet

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorgonia.org/tensor"
)

// zeroFloor is the additive floor used by RemoveZeros to keep values
// strictly positive before log-domain operations.
var zeroFloor = math.Exp(-16)

// Representation tags how a Dirichlet stores its parameters. It is
// fixed when the Dirichlet is created.
type Representation int

const (
	// Dense holds all parameters in a single tensor
	Dense Representation = iota

	// Ragged holds an ordered collection of independently-shaped
	// tensors, one per factor or modality
	Ragged
)

func (r Representation) String() string {
	switch r {
	case Dense:
		return "Dense"
	case Ragged:
		return "Ragged"
	}
	return "Unknown"
}

// Dirichlet holds the concentration parameters of a Dirichlet
// distribution, or of a set of such distributions stacked as the
// columns of its tensors.
//
// The only methods that mutate the receiver are RemoveZeros, Set and
// SetAt; every other operation returns a new Dirichlet. A Dirichlet
// is not safe for concurrent use.
type Dirichlet struct {
	repr  Representation
	value *tensor.Dense   // Dense representation
	elems []*tensor.Dense // Ragged representation

	// warnf receives non-fatal diagnostics, such as the zeros-removed
	// warning raised by Log. Defaults to logrus.Warnf.
	warnf func(format string, args ...interface{})
}

// New returns a new Dirichlet from exactly one of dims and values.
//
// dims may be an int, a []int, or a [][]int, and initializes the
// parameters to zero. An int n produces a dense (n, 1) tensor. A flat
// []int produces a dense tensor of that shape, with a single-element
// list [n] treated as (n, 1). A [][]int produces a ragged Dirichlet
// with one zero tensor per inner list, each resolved like the flat
// case. A []interface{} is accepted for parity with the above, but
// must not mix ints and int slices.
//
// values may be a *tensor.Dense, a []*tensor.Dense, or a
// []tensor.Tensor, and is copied into the Dirichlet. A single tensor
// produces a dense Dirichlet; a slice produces a ragged one. Values
// are cast to float64.
//
// Supplying both dims and values is an error. Supplying neither
// returns the default (1, 1) zero dense Dirichlet.
func New(dims, values interface{}) (*Dirichlet, error) {
	if dims != nil && values != nil {
		return nil, errors.Wrap(ErrBothDimsAndValues, "new")
	}

	if dims == nil && values == nil {
		return newDense(zeroTensor(1, 1)), nil
	}

	if values != nil {
		return fromValuesArg(values)
	}

	return fromDimsArg(dims)
}

// Zeros returns a new dense Dirichlet with zero-valued parameters of
// the given shape. A single dimension n produces shape (n, 1).
func Zeros(dims ...int) (*Dirichlet, error) {
	if len(dims) == 0 {
		return nil, errors.Wrap(ErrInvalidDims, "zeros")
	}

	for _, dim := range dims {
		if dim <= 0 {
			return nil, errors.Wrapf(ErrInvalidDims,
				"zeros: dimension %v must be positive", dim)
		}
	}

	if len(dims) == 1 {
		return newDense(zeroTensor(dims[0], 1)), nil
	}

	return newDense(zeroTensor(dims...)), nil
}

// ZerosRagged returns a new ragged Dirichlet with one zero tensor per
// dims argument, each resolved as in Zeros.
func ZerosRagged(dims ...[]int) (*Dirichlet, error) {
	if len(dims) == 0 {
		return nil, errors.Wrap(ErrInvalidDims, "zerosRagged")
	}

	elems := make([]*tensor.Dense, len(dims))
	for i, elemDims := range dims {
		elem, err := Zeros(elemDims...)
		if err != nil {
			return nil, errors.Wrapf(errors.Cause(err),
				"zerosRagged: element %d", i)
		}
		elems[i] = elem.value
	}

	return newRagged(elems), nil
}

// FromTensor returns a new dense Dirichlet wrapping a copy of t, cast
// to float64 and rank-promoted if necessary.
func FromTensor(t tensor.Tensor) (*Dirichlet, error) {
	d, err := toFloat64Dense(t)
	if err != nil {
		return nil, errors.Wrap(err, "fromTensor")
	}

	return newDense(d), nil
}

// FromTensors returns a new ragged Dirichlet whose elements are
// copies of ts, each cast to float64 and rank-promoted independently.
func FromTensors(ts ...tensor.Tensor) (*Dirichlet, error) {
	if len(ts) == 0 {
		return nil, errors.Wrap(ErrInvalidValues, "fromTensors")
	}

	elems := make([]*tensor.Dense, len(ts))
	for i, t := range ts {
		elem, err := toFloat64Dense(t)
		if err != nil {
			return nil, errors.Wrapf(err, "fromTensors: element %d", i)
		}
		elems[i] = elem
	}

	return newRagged(elems), nil
}

// fromValuesArg resolves the values argument of New.
func fromValuesArg(values interface{}) (*Dirichlet, error) {
	switch v := values.(type) {
	case *tensor.Dense:
		return FromTensor(v)

	case tensor.Tensor:
		return FromTensor(v)

	case []*tensor.Dense:
		ts := make([]tensor.Tensor, len(v))
		for i := range v {
			ts[i] = v[i]
		}
		return FromTensors(ts...)

	case []tensor.Tensor:
		return FromTensors(v...)
	}

	return nil, errors.Wrapf(ErrInvalidValues, "new: got %T", values)
}

// fromDimsArg resolves the dims argument of New.
func fromDimsArg(dims interface{}) (*Dirichlet, error) {
	switch v := dims.(type) {
	case int:
		return Zeros(v)

	case []int:
		return Zeros(v...)

	case [][]int:
		return ZerosRagged(v...)

	case []interface{}:
		return fromMixedDims(v)
	}

	return nil, errors.Wrapf(ErrInvalidDims, "new: got %T", dims)
}

// fromMixedDims resolves a []interface{} dims list, which must hold
// either only ints or only []ints. Mixing the two is rejected rather
// than guessed at.
func fromMixedDims(dims []interface{}) (*Dirichlet, error) {
	var ints int
	var lists int
	for _, el := range dims {
		switch el.(type) {
		case int:
			ints++
		case []int:
			lists++
		}
	}

	switch {
	case ints == len(dims):
		flat := make([]int, len(dims))
		for i, el := range dims {
			flat[i] = el.(int)
		}
		return Zeros(flat...)

	case lists == len(dims):
		nested := make([][]int, len(dims))
		for i, el := range dims {
			nested[i] = el.([]int)
		}
		return ZerosRagged(nested...)

	case ints+lists == len(dims):
		return nil, errors.Wrap(ErrHeterogeneousDims, "new")
	}

	return nil, errors.Wrap(ErrInvalidDims, "new")
}

func newDense(t *tensor.Dense) *Dirichlet {
	return &Dirichlet{repr: Dense, value: t}
}

func newRagged(elems []*tensor.Dense) *Dirichlet {
	return &Dirichlet{repr: Ragged, elems: elems}
}

// Representation returns the representation tag of the receiver.
func (d *Dirichlet) Representation() Representation { return d.repr }

// IsRagged returns whether the receiver holds a ragged collection of
// tensors rather than a single dense tensor.
func (d *Dirichlet) IsRagged() bool { return d.repr == Ragged }

// Value returns the underlying tensor of a dense Dirichlet.
func (d *Dirichlet) Value() (*tensor.Dense, error) {
	if d.repr != Dense {
		return nil, errors.Errorf("value: %v representation has no "+
			"single tensor; use Values", d.repr)
	}

	return d.value, nil
}

// Values returns the underlying tensors of a ragged Dirichlet.
func (d *Dirichlet) Values() ([]*tensor.Dense, error) {
	if d.repr != Ragged {
		return nil, errors.Errorf("values: %v representation holds a "+
			"single tensor; use Value", d.repr)
	}

	return d.elems, nil
}

// Ndim returns the number of dimensions of the underlying tensor. For
// a ragged Dirichlet this describes the outer collection, not the
// individual elements, and is always 1.
func (d *Dirichlet) Ndim() int {
	if d.repr == Ragged {
		return 1
	}

	return d.value.Dims()
}

// Shape returns the shape of the underlying tensor. For a ragged
// Dirichlet this is the length of the outer collection.
func (d *Dirichlet) Shape() tensor.Shape {
	if d.repr == Ragged {
		return tensor.Shape{len(d.elems)}
	}

	return d.value.Shape().Clone()
}

// Len returns the number of tensors held by the receiver: 1 for a
// dense Dirichlet and the number of elements for a ragged one.
func (d *Dirichlet) Len() int {
	if d.repr == Ragged {
		return len(d.elems)
	}

	return 1
}

// Copy returns a deep copy of the receiver.
func (d *Dirichlet) Copy() *Dirichlet {
	out := &Dirichlet{repr: d.repr, warnf: d.warnf}

	if d.repr == Dense {
		out.value = d.value.Clone().(*tensor.Dense)
		return out
	}

	out.elems = make([]*tensor.Dense, len(d.elems))
	for i, elem := range d.elems {
		out.elems[i] = elem.Clone().(*tensor.Dense)
	}

	return out
}

// SetWarnFunc installs f as the receiver's diagnostic sink. Non-fatal
// diagnostics, such as the zeros-removed warning raised by Log, are
// reported through it. When unset, diagnostics go to logrus at
// warning level.
func (d *Dirichlet) SetWarnFunc(f func(format string,
	args ...interface{})) {
	d.warnf = f
}

func (d *Dirichlet) warn(format string, args ...interface{}) {
	if d.warnf != nil {
		d.warnf(format, args...)
		return
	}

	logrus.Warnf(format, args...)
}

// zeroTensor returns a zero-valued float64 tensor of the given shape.
func zeroTensor(dims ...int) *tensor.Dense {
	return tensor.New(tensor.Of(tensor.Float64), tensor.WithShape(dims...))
}

// toFloat64Dense copies t into a fresh float64 tensor, promoting
// rank-1 input to rank 2 by appending a trailing axis of size 1.
func toFloat64Dense(t tensor.Tensor) (*tensor.Dense, error) {
	if t == nil {
		return nil, errors.Wrap(ErrInvalidValues, "nil tensor")
	}

	var backing []float64
	switch data := t.Data().(type) {
	case []float64:
		backing = make([]float64, len(data))
		copy(backing, data)

	case []float32:
		backing = make([]float64, len(data))
		for i, v := range data {
			backing[i] = float64(v)
		}

	case []int:
		backing = make([]float64, len(data))
		for i, v := range data {
			backing[i] = float64(v)
		}

	case []int64:
		backing = make([]float64, len(data))
		for i, v := range data {
			backing[i] = float64(v)
		}

	case []int32:
		backing = make([]float64, len(data))
		for i, v := range data {
			backing[i] = float64(v)
		}

	case float64:
		backing = []float64{data}

	default:
		return nil, errors.Wrapf(ErrInvalidValues,
			"unsupported data type %T", t.Data())
	}

	shape := t.Shape().Clone()
	if len(shape) <= 1 {
		// Rank promotion: a vector of n elements becomes (n, 1) so
		// that the column axis is always defined
		shape = tensor.Shape{len(backing), 1}
	}

	return tensor.New(
		tensor.WithShape(shape...),
		tensor.WithBacking(backing),
	), nil
}
