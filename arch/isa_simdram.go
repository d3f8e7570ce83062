package arch

import (
	"github.com/katalvlaran/memlogic/compile"
	"github.com/katalvlaran/memlogic/logic"
)

// Simdram returns the service for μop-programmed DRAM majority compute.
// The lowering shape matches the triple-activation family; the copy μop
// (AAP) spans two activations, so its cycle weight is doubled relative
// to the compute μop (AP).
func Simdram() compile.Service {
	return &service{is: simdramISA}
}

var simdramISA = &isa{
	name:   "simdram",
	flavor: logic.MIG,
	sem: map[string]semFn{
		opAAP: semCOPY,
		opNOT: semNOT,
		opAP:  semTRA,
	},
	cost: map[string]float64{
		opAAP: 2,
		opNOT: 2,
		opAP:  1,
	},
	cellName: defaultCellName,
	emitGate: traEmitGate(opAAP, opAP),
	emitNot:  traEmitNot(opAAP, opAP),
}
