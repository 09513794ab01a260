package dirichlet

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

func TestNewDefault(t *testing.T) {
	d, err := New(nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	if d.IsRagged() {
		t.Error("expected default Dirichlet to be dense")
	}
	if !d.Shape().Eq(tensor.Shape{1, 1}) {
		t.Errorf("expected shape (1, 1) but got %v", d.Shape())
	}

	v, err := d.At(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0.0 {
		t.Errorf("expected zero-valued parameters but got %v", v)
	}
}

func TestNewBothArgs(t *testing.T) {
	values := tensor.NewDense(
		tensor.Float64,
		[]int{2, 2},
		tensor.WithBacking([]float64{1, 2, 3, 4}),
	)

	_, err := New(3, values)
	if errors.Cause(err) != ErrBothDimsAndValues {
		t.Errorf("expected ErrBothDimsAndValues but got %v", err)
	}
}

func TestNewFromDims(t *testing.T) {
	tests := []struct {
		dims  interface{}
		shape tensor.Shape
	}{
		{3, tensor.Shape{3, 1}},
		{[]int{3}, tensor.Shape{3, 1}},
		{[]int{3, 4}, tensor.Shape{3, 4}},
		{[]int{2, 3, 4}, tensor.Shape{2, 3, 4}},
		{[]interface{}{3, 4}, tensor.Shape{3, 4}},
	}

	for _, test := range tests {
		d, err := New(test.dims, nil)
		if err != nil {
			t.Fatalf("dims %v: %v", test.dims, err)
		}

		if d.IsRagged() {
			t.Errorf("dims %v: expected a dense Dirichlet", test.dims)
		}
		if !d.Shape().Eq(test.shape) {
			t.Errorf("dims %v: expected shape %v but got %v", test.dims,
				test.shape, d.Shape())
		}
	}
}

func TestNewFromRaggedDims(t *testing.T) {
	d, err := New([][]int{{2}, {3, 3}}, nil)
	if err != nil {
		t.Fatal(err)
	}

	if !d.IsRagged() {
		t.Fatal("expected a ragged Dirichlet")
	}
	if d.Len() != 2 {
		t.Fatalf("expected 2 elements but got %d", d.Len())
	}
	if d.Ndim() != 1 || !d.Shape().Eq(tensor.Shape{2}) {
		t.Errorf("expected outer shape (2) but got %v", d.Shape())
	}

	wantShapes := []tensor.Shape{{2, 1}, {3, 3}}
	elems, err := d.Values()
	if err != nil {
		t.Fatal(err)
	}
	for i, elem := range elems {
		if !elem.Shape().Eq(wantShapes[i]) {
			t.Errorf("element %d: expected shape %v but got %v", i,
				wantShapes[i], elem.Shape())
		}
	}
}

func TestNewInvalidDims(t *testing.T) {
	if _, err := New("three", nil); errors.Cause(err) != ErrInvalidDims {
		t.Errorf("expected ErrInvalidDims but got %v", err)
	}

	if _, err := New(3.0, nil); errors.Cause(err) != ErrInvalidDims {
		t.Errorf("expected ErrInvalidDims but got %v", err)
	}
}

func TestNewHeterogeneousDims(t *testing.T) {
	_, err := New([]interface{}{2, []int{3, 3}}, nil)
	if errors.Cause(err) != ErrHeterogeneousDims {
		t.Errorf("expected ErrHeterogeneousDims but got %v", err)
	}
}

func TestNewInvalidValues(t *testing.T) {
	if _, err := New(nil, "values"); errors.Cause(err) != ErrInvalidValues {
		t.Errorf("expected ErrInvalidValues but got %v", err)
	}

	if _, err := New(nil, 1.0); errors.Cause(err) != ErrInvalidValues {
		t.Errorf("expected ErrInvalidValues but got %v", err)
	}
}

func TestNewFromValues(t *testing.T) {
	backing := []float64{1, 2, 3, 4, 5, 6}
	values := tensor.NewDense(
		tensor.Float64,
		[]int{2, 3},
		tensor.WithBacking(backing),
	)

	d, err := New(nil, values)
	if err != nil {
		t.Fatal(err)
	}

	if !d.Shape().Eq(tensor.Shape{2, 3}) {
		t.Errorf("expected shape (2, 3) but got %v", d.Shape())
	}

	// The Dirichlet must hold a copy, not the caller's backing
	backing[0] = -100.0
	v, err := d.At(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if v != 1.0 {
		t.Errorf("expected the parameters to be copied but got %v", v)
	}
}

func TestNewRankPromotion(t *testing.T) {
	values := tensor.NewDense(
		tensor.Float64,
		[]int{4},
		tensor.WithBacking([]float64{1, 2, 3, 4}),
	)

	d, err := FromTensor(values)
	if err != nil {
		t.Fatal(err)
	}

	if !d.Shape().Eq(tensor.Shape{4, 1}) {
		t.Errorf("expected shape (4, 1) but got %v", d.Shape())
	}
}

func TestNewFloatCast(t *testing.T) {
	values := tensor.NewDense(
		tensor.Int,
		[]int{2, 2},
		tensor.WithBacking([]int{1, 2, 3, 4}),
	)

	d, err := FromTensor(values)
	if err != nil {
		t.Fatal(err)
	}

	dense, err := d.Value()
	if err != nil {
		t.Fatal(err)
	}
	if dense.Dtype() != tensor.Float64 {
		t.Errorf("expected parameters to be cast to float64 but got %v",
			dense.Dtype())
	}

	v, err := d.At(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if v != 4.0 {
		t.Errorf("expected 4.0 but got %v", v)
	}
}

func TestFromTensorsRagged(t *testing.T) {
	a := tensor.NewDense(
		tensor.Float64,
		[]int{2},
		tensor.WithBacking([]float64{1, 2}),
	)
	b := tensor.NewDense(
		tensor.Float64,
		[]int{3, 3},
		tensor.WithBacking(randF64(9, 0.0, 1.0)),
	)

	d, err := FromTensors(a, b)
	if err != nil {
		t.Fatal(err)
	}

	if !d.IsRagged() {
		t.Fatal("expected a ragged Dirichlet")
	}

	elems, err := d.Values()
	if err != nil {
		t.Fatal(err)
	}
	if !elems[0].Shape().Eq(tensor.Shape{2, 1}) {
		t.Errorf("expected element 0 to be promoted to (2, 1) but got %v",
			elems[0].Shape())
	}
	if !elems[1].Shape().Eq(tensor.Shape{3, 3}) {
		t.Errorf("expected element 1 to keep shape (3, 3) but got %v",
			elems[1].Shape())
	}
}

func TestCopy(t *testing.T) {
	rand.Seed(time.Now().UnixNano())

	values := tensor.NewDense(
		tensor.Float64,
		[]int{3, 2},
		tensor.WithBacking(randF64(6, 0.0, 1.0)),
	)

	d, err := FromTensor(values)
	if err != nil {
		t.Fatal(err)
	}

	c := d.Copy()
	if err := c.SetAt(-1.0, 0, 0); err != nil {
		t.Fatal(err)
	}

	v, err := d.At(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if v == -1.0 {
		t.Error("expected Copy to deep-copy the parameters")
	}
}

func TestString(t *testing.T) {
	values := tensor.NewDense(
		tensor.Float64,
		[]int{2, 1},
		tensor.WithBacking([]float64{0.12345, 1.0}),
	)

	d, err := FromTensor(values)
	if err != nil {
		t.Fatal(err)
	}

	s := d.String()
	if !strings.Contains(s, "<Dirichlet Distribution>") {
		t.Errorf("unexpected representation %q", s)
	}
	if !strings.Contains(s, "0.123") || strings.Contains(s, "0.12345") {
		t.Errorf("expected values rounded to 3 decimals but got %q", s)
	}
}
