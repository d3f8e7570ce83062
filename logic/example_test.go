package logic_test

import (
	"fmt"

	"github.com/katalvlaran/memlogic/logic"
)

// ExampleNetwork builds the carry function of a full adder as a majority
// gate and prints its truth table.
func ExampleNetwork() {
	ntk := logic.NewNetwork(logic.MIG)
	a, b, cin := ntk.AddPI(), ntk.AddPI(), ntk.AddPI()
	ntk.AddPO(ntk.Maj(a, b, cin))

	tts, _ := ntk.OutputTruthTables()
	fmt.Printf("carry = %02X, gates = %d\n", tts[0]&0xFF, ntk.NumGates())
	// Output:
	// carry = E8, gates = 1
}

// ExampleNetwork_Stream replays a network into a Builder of another flavor.
func ExampleNetwork_Stream() {
	src := logic.NewNetwork(logic.XAG)
	a, b := src.AddPI(), src.AddPI()
	src.AddPO(src.Xor(a, b))

	dst := logic.NewBuilder(logic.AIG)
	src.Stream(dst)
	fmt.Printf("flavor = %s, gates = %d\n", dst.Network().Flavor(), dst.Network().NumGates())
	// Output:
	// flavor = aig, gates = 3
}
