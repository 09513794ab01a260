package dirichlet

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats/scalar"
	"gorgonia.org/tensor"
)

// String renders the parameters rounded to 3 decimal places. Ragged
// elements are listed in order.
func (d *Dirichlet) String() string {
	if d.repr == Dense {
		return fmt.Sprintf("<Dirichlet Distribution>\n%v", rounded(d.value))
	}

	var b strings.Builder
	b.WriteString("<Dirichlet Distribution>")
	for _, elem := range d.elems {
		fmt.Fprintf(&b, "\n%v", rounded(elem))
	}

	return b.String()
}

// PrintShape reports the shape of the underlying tensors at info
// level, listing each element's shape separately in the ragged
// representation.
func (d *Dirichlet) PrintShape() {
	if d.repr == Dense {
		logrus.Infof("Shape: %v", d.value.Shape())
		return
	}

	shapes := make([]string, len(d.elems))
	for i, elem := range d.elems {
		shapes[i] = fmt.Sprintf("%v", elem.Shape())
	}
	logrus.Infof("Shape: %v %v", d.Shape(), shapes)
}

// rounded returns a copy of t with every value rounded to 3 decimal
// places.
func rounded(t *tensor.Dense) *tensor.Dense {
	out := t.Clone().(*tensor.Dense)
	data := out.Data().([]float64)
	for i := range data {
		data[i] = scalar.Round(data[i], 3)
	}

	return out
}
