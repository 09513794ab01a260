package dirichlet

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// Normalize returns a new Dirichlet with the same representation in
// which every column of every tensor sums to 1, so that each column
// is a valid categorical distribution. Columns are normalized
// independently along axis 0.
//
// A column whose sum is exactly 0 carries no information and is
// replaced by the uniform distribution 1/rows rather than left
// undefined, so the result never contains NaN or Inf. The receiver is
// not mutated.
func (d *Dirichlet) Normalize() (*Dirichlet, error) {
	if d.repr == Dense {
		normed, err := normalizeDense(d.value)
		if err != nil {
			return nil, errors.Wrap(err, "normalize")
		}

		out := newDense(normed)
		out.warnf = d.warnf
		return out, nil
	}

	elems := make([]*tensor.Dense, len(d.elems))
	for i, elem := range d.elems {
		normed, err := normalizeDense(elem)
		if err != nil {
			return nil, errors.Wrapf(err, "normalize: element %d", i)
		}
		elems[i] = normed
	}

	out := newRagged(elems)
	out.warnf = d.warnf
	return out, nil
}

// RemoveZeros adds a small positive floor, e^-16, to every parameter
// in place. It is used before log-domain operations to avoid division
// by zero and log of zero. This mutates the receiver; use Copy first
// to keep the original.
func (d *Dirichlet) RemoveZeros() error {
	if d.repr == Dense {
		_, err := tensor.Add(d.value, zeroFloor, tensor.UseUnsafe())
		return errors.Wrap(err, "removeZeros")
	}

	for i, elem := range d.elems {
		if _, err := tensor.Add(elem, zeroFloor,
			tensor.UseUnsafe()); err != nil {
			return errors.Wrapf(err, "removeZeros: element %d", i)
		}
	}

	return nil
}

// ContainsZeros returns whether any parameter is exactly 0.
func (d *Dirichlet) ContainsZeros() bool {
	if d.repr == Dense {
		return hasZero(d.value)
	}

	for _, elem := range d.elems {
		if hasZero(elem) {
			return true
		}
	}

	return false
}

func hasZero(t *tensor.Dense) bool {
	for _, v := range t.Data().([]float64) {
		if v == 0.0 {
			return true
		}
	}

	return false
}

// normalizeDense divides t by its column sums and replaces every cell
// of a zero-sum column with the uniform value 1/rows. The division
// maps such cells to Inf or NaN, so the sums themselves decide which
// cells to repair.
func normalizeDense(t *tensor.Dense) (*tensor.Dense, error) {
	rows := t.Shape()[0]

	sums, err := t.Sum(0)
	if err != nil {
		return nil, errors.Wrap(err, "could not compute column sums")
	}

	bcast, err := broadcastRows(sums, rows)
	if err != nil {
		return nil, err
	}

	normed, err := tensor.Div(t, bcast)
	if err != nil {
		return nil, errors.Wrap(err, "could not divide by column sums")
	}

	uniform := 1.0 / float64(rows)
	sumData := bcast.Data().([]float64)
	data := normed.Data().([]float64)
	for i := range data {
		if sumData[i] == 0.0 {
			data[i] = uniform
		}
	}

	return normed.(*tensor.Dense), nil
}

// broadcastRows expands a column-sum tensor of shape s to shape
// (rows, s...) by repetition, so it can be combined elementwise with
// the tensor it was reduced from.
func broadcastRows(sums *tensor.Dense, rows int) (tensor.Tensor, error) {
	shape := append([]int{1}, sums.Shape()...)
	if err := sums.Reshape(shape...); err != nil {
		return nil, errors.Wrap(err, "could not reshape column sums")
	}

	// tensor.Repeat with a repeat count of 1 zeroes every cell after
	// the first (gorgonia.org/tensor v0.9.x), so skip the no-op repeat.
	if rows == 1 {
		return sums, nil
	}

	bcast, err := tensor.Repeat(sums, 0, rows)
	if err != nil {
		return nil, errors.Wrap(err, "could not broadcast column sums")
	}

	return bcast, nil
}
