// Package logic: depth and fanout annotations over the current node set.
package logic

// DepthView annotates every node with its level: the longest gate path from
// any primary input. It is a snapshot; rebuild it after mutating the network.
type DepthView struct {
	level []int
	depth int
}

// NewDepthView computes node levels in one forward sweep (nodes are stored
// topologically).
func NewDepthView(n *Network) *DepthView {
	dv := &DepthView{level: make([]int, len(n.nodes))}
	for i := 1; i < len(n.nodes); i++ {
		nd := &n.nodes[i]
		if nd.op.Arity() == 0 {
			continue
		}
		lv := 0
		for _, f := range nd.fan[:nd.op.Arity()] {
			if l := dv.level[f.Node()]; l >= lv {
				lv = l
			}
		}
		dv.level[i] = lv + 1
		if dv.level[i] > dv.depth {
			dv.depth = dv.level[i]
		}
	}
	return dv
}

// Level returns the level of node i.
func (dv *DepthView) Level(i uint32) int { return dv.level[i] }

// Depth returns the maximum level over all nodes.
func (dv *DepthView) Depth() int { return dv.depth }

// FanoutView annotates every node with the gates that consume it and with
// whether it drives a primary output. It is a snapshot; rebuild it after
// mutating the network.
type FanoutView struct {
	fanouts  [][]uint32
	drivesPO []bool
}

// NewFanoutView collects fanout lists in one forward sweep.
func NewFanoutView(n *Network) *FanoutView {
	fv := &FanoutView{
		fanouts:  make([][]uint32, len(n.nodes)),
		drivesPO: make([]bool, len(n.nodes)),
	}
	for i := 1; i < len(n.nodes); i++ {
		nd := &n.nodes[i]
		for _, f := range nd.fan[:nd.op.Arity()] {
			fv.fanouts[f.Node()] = append(fv.fanouts[f.Node()], uint32(i))
		}
	}
	for _, po := range n.pos {
		fv.drivesPO[po.Node()] = true
	}
	return fv
}

// Fanouts returns the node indices of the gates consuming node i.
// The returned slice is shared; callers must not mutate it.
func (fv *FanoutView) Fanouts(i uint32) []uint32 { return fv.fanouts[i] }

// FanoutCount returns the number of gates consuming node i.
func (fv *FanoutView) FanoutCount(i uint32) int { return len(fv.fanouts[i]) }

// DrivesPO reports whether node i drives at least one primary output.
func (fv *FanoutView) DrivesPO(i uint32) bool { return fv.drivesPO[i] }
