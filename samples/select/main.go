package main

import (
	"fmt"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/xsynth/api"
	"github.com/sarchlab/xsynth/config"
	"github.com/sarchlab/xsynth/fu"
	"github.com/sarchlab/xsynth/hw"
	"github.com/sarchlab/xsynth/logic"
	"github.com/sarchlab/xsynth/util"
	"github.com/sarchlab/xsynth/xact"
	"github.com/sarchlab/xsynth/xil"
)

var width = 8

func main() {
	monitor := monitoring.NewMonitor()

	engine := sim.NewSerialEngine()
	monitor.RegisterEngine(engine)

	design, err := config.DesignBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithMonitor(monitor).
		WithAddrWidth(4).
		WithLatency(1).
		WithStartupAddr(0).
		Build("SelectDemo")
	if err != nil {
		panic(err)
	}

	monitor.StartServer()

	types := []xil.Type{
		{Name: "bit", Bits: 1},
		{Name: "word", Bits: width},
		{Name: "word", Bits: width},
	}
	mapping, err := design.Selector.Map(xil.Select(), types,
		[]xil.Type{{Name: "word", Bits: width}})
	if err != nil {
		panic(err)
	}
	mux := mapping.Site().Host().(*fu.MUX2)

	sink := design.Kernel.NewSignal("Result", logic.DontCares(width))

	driver := design.Driver
	driver.Watch(mux.Result(), sink)

	a := xact.Const(logic.Encode(0x55, width))
	b := xact.Const(logic.Encode(0xAA, width))
	schedule(driver, mux, a, b, "0", sink)
	schedule(driver, mux, a, b, "1", sink)

	driver.Run()

	fmt.Println(util.RenderTrace("SelectDemo", driver.Trace()))
	atexit.Exit(0)
}

func schedule(
	driver api.Driver,
	mux *fu.MUX2,
	a, b xact.Source,
	sel string,
	sink *hw.Signal,
) {
	verb := mux.Site().Select(a, b, xact.Const(logic.Parse(sel)), sink)
	if err := driver.Schedule(verb); err != nil {
		panic(err)
	}
}
