package dirichlet

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// Log returns a new Dirichlet holding the elementwise natural log of
// the parameters.
//
// If the receiver contains zeros it is first repaired in place via
// RemoveZeros, and the repair is reported through the receiver's warn
// function. The result is therefore always finite; Log never fails on
// zero-valued parameters.
func (d *Dirichlet) Log() (*Dirichlet, error) {
	if d.ContainsZeros() {
		if err := d.RemoveZeros(); err != nil {
			return nil, errors.Wrap(err, "log")
		}
		d.warn("log: called on a Dirichlet that contains zeros; " +
			"zeros have been removed")
	}

	if d.repr == Dense {
		logged, err := tensor.Log(d.value)
		if err != nil {
			return nil, errors.Wrap(err, "log")
		}

		out := newDense(logged.(*tensor.Dense))
		out.warnf = d.warnf
		return out, nil
	}

	elems := make([]*tensor.Dense, len(d.elems))
	for i, elem := range d.elems {
		logged, err := tensor.Log(elem)
		if err != nil {
			return nil, errors.Wrapf(err, "log: element %d", i)
		}
		elems[i] = logged.(*tensor.Dense)
	}

	out := newRagged(elems)
	out.warnf = d.warnf
	return out, nil
}

// Wnorm returns the expectation of the log of a Categorical
// distribution whose parameters carry a Dirichlet prior, as a new
// Dirichlet with the same representation. For a concentration tensor
// A with column sums s_j, each cell of the result is
//
//	wA[i, j] = 1/s_j - 1/A[i, j]
//
// a fast first-order approximation of the exact digamma-based
// expectation. Zeros are removed from a throwaway copy first, so the
// receiver is not mutated and the result is always finite. In the
// ragged representation the expectation is computed independently per
// element.
func (d *Dirichlet) Wnorm() (*Dirichlet, error) {
	if d.repr == Dense {
		wA, err := wnormDense(d.value)
		if err != nil {
			return nil, errors.Wrap(err, "wnorm")
		}

		out := newDense(wA)
		out.warnf = d.warnf
		return out, nil
	}

	elems := make([]*tensor.Dense, len(d.elems))
	for i, elem := range d.elems {
		wA, err := wnormDense(elem)
		if err != nil {
			return nil, errors.Wrapf(err, "wnorm: element %d", i)
		}
		elems[i] = wA
	}

	out := newRagged(elems)
	out.warnf = d.warnf
	return out, nil
}

// Entropy is declared for interface parity but is not implemented.
// It always returns ErrUnimplemented.
func (d *Dirichlet) Entropy() (*Dirichlet, error) {
	return nil, errors.Wrap(ErrUnimplemented, "entropy")
}

// wnormDense computes 1/colSum - 1/A on a zero-repaired copy of t.
func wnormDense(t *tensor.Dense) (*tensor.Dense, error) {
	a := t.Clone().(*tensor.Dense)
	if _, err := tensor.Add(a, zeroFloor, tensor.UseUnsafe()); err != nil {
		return nil, errors.Wrap(err, "could not remove zeros")
	}

	sums, err := a.Sum(0)
	if err != nil {
		return nil, errors.Wrap(err, "could not compute column sums")
	}

	norm, err := tensor.Inv(sums)
	if err != nil {
		return nil, errors.Wrap(err, "could not invert column sums")
	}

	bcast, err := broadcastRows(norm.(*tensor.Dense), a.Shape()[0])
	if err != nil {
		return nil, err
	}

	avg, err := tensor.Inv(a)
	if err != nil {
		return nil, errors.Wrap(err, "could not invert parameters")
	}

	wA, err := tensor.Sub(bcast, avg)
	if err != nil {
		return nil, errors.Wrap(err, "could not subtract reciprocals")
	}

	return wA.(*tensor.Dense), nil
}
