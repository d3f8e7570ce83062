// Package logic: diagnostic DOT export.
package logic

import (
	"fmt"
	"io"
)

// WriteDot writes a Graphviz rendering of the network to w: primary inputs
// as boxes, gates as ellipses labeled with their op, primary outputs as
// double circles, and complemented edges dashed.
func (n *Network) WriteDot(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph ntk {"); err != nil {
		return err
	}
	fmt.Fprintln(w, "  rankdir=BT;")
	for i := 1; i < len(n.nodes); i++ {
		nd := &n.nodes[i]
		switch nd.op {
		case OpPI:
			fmt.Fprintf(w, "  n%d [shape=box,label=\"x%d\"];\n", i, nd.pi)
		default:
			fmt.Fprintf(w, "  n%d [label=\"%s %d\"];\n", i, nd.op, i)
			for _, f := range nd.fan[:nd.op.Arity()] {
				style := ""
				if f.Complemented() {
					style = " [style=dashed]"
				}
				fmt.Fprintf(w, "  n%d -> n%d%s;\n", f.Node(), i, style)
			}
		}
	}
	for o, po := range n.pos {
		fmt.Fprintf(w, "  y%d [shape=doublecircle,label=\"y%d\"];\n", o, o)
		style := ""
		if po.Complemented() {
			style = " [style=dashed]"
		}
		fmt.Fprintf(w, "  n%d -> y%d%s;\n", po.Node(), o, style)
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
