package dirichlet

import (
	"fmt"

	"github.com/pkg/errors"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// Node lifts the parameters of a dense Dirichlet into a tensor node
// on g, so a generative model assembling a gorgonia graph can consume
// them directly. The node holds a copy of the parameters; later
// mutation of the receiver does not affect it. The name must be
// unique within g.
func (d *Dirichlet) Node(g *G.ExprGraph, name string) (*G.Node, error) {
	if d.repr != Dense {
		return nil, errors.Errorf("node: %v representation produces "+
			"one node per element; use Nodes", d.repr)
	}

	t := d.value.Clone().(*tensor.Dense)

	return G.NewTensor(
		g,
		t.Dtype(),
		t.Dims(),
		G.WithValue(t),
		G.WithName(name),
	), nil
}

// Nodes lifts each element of a ragged Dirichlet into its own tensor
// node on g. The nodes are named name_0, name_1, and so on.
func (d *Dirichlet) Nodes(g *G.ExprGraph, name string) (G.Nodes, error) {
	if d.repr != Ragged {
		return nil, errors.Errorf("nodes: %v representation produces "+
			"a single node; use Node", d.repr)
	}

	nodes := make(G.Nodes, len(d.elems))
	for i, elem := range d.elems {
		t := elem.Clone().(*tensor.Dense)

		nodes[i] = G.NewTensor(
			g,
			t.Dtype(),
			t.Dims(),
			G.WithValue(t),
			G.WithName(fmt.Sprintf("%v_%d", name, i)),
		)
	}

	return nodes, nil
}
