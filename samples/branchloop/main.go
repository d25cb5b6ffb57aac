package main

import (
	"fmt"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/xsynth/api"
	"github.com/sarchlab/xsynth/config"
	"github.com/sarchlab/xsynth/logic"
	"github.com/sarchlab/xsynth/util"
	"github.com/sarchlab/xsynth/xact"
	"github.com/sarchlab/xsynth/xil"
)

var addrWidth = 4

func main() {
	program, err := xil.LoadProgramFile("./branchloop.yaml")
	if err != nil {
		panic(err)
	}

	monitor := monitoring.NewMonitor()

	engine := sim.NewSerialEngine()
	monitor.RegisterEngine(engine)

	design, err := config.DesignBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithMonitor(monitor).
		WithAddrWidth(addrWidth).
		WithLatency(2).
		WithStartupAddr(0).
		Build("BranchLoop")
	if err != nil {
		panic(err)
	}

	monitor.StartServer()

	driver := design.Driver
	driver.Watch(design.BCU.OutAddr())

	mustSchedule(driver.Schedule(
		api.Stimulus(design.Kernel.Rst, logic.Ones(1)),
		design.BCU.Site().DoNothing(),
	))
	mustSchedule(driver.Schedule(
		api.Stimulus(design.Kernel.Rst, logic.Zeros(1)),
		design.BCU.Site().DoNothing(),
	))

	for _, instr := range program {
		mapping, err := design.Selector.Map(instr,
			[]xil.Type{{Name: "bit", Bits: 1}}, nil)
		if err != nil {
			panic(err)
		}
		if mapping == nil {
			panic("no mapper handles " + instr.String())
		}

		// Conditional branches in this demo always see a 1 condition.
		operands := []xact.Source{xact.Const(logic.Ones(1))}
		mustSchedule(driver.ScheduleSequence(
			mapping.Realize(operands, nil)))
	}

	driver.Run()

	fmt.Println(util.RenderTrace("BranchLoop", driver.Trace()))
	atexit.Exit(0)
}

func mustSchedule(err error) {
	if err != nil {
		panic(err)
	}
}
