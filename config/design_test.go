package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/xsynth/api"
	"github.com/sarchlab/xsynth/config"
	"github.com/sarchlab/xsynth/hw"
	"github.com/sarchlab/xsynth/logic"
	"github.com/sarchlab/xsynth/util"
	"github.com/sarchlab/xsynth/xil"
)

func buildDesign(latency int) *config.Design {
	engine := sim.NewSerialEngine()
	design, err := config.DesignBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithAddrWidth(4).
		WithLatency(latency).
		WithStartupAddr(0).
		Build("Design")
	Expect(err).ToNot(HaveOccurred())
	return design
}

var _ = Describe("DesignBuilder", func() {
	It("should wire kernel, BCU, driver and selector", func() {
		design := buildDesign(1)
		Expect(design.Kernel).ToNot(BeNil())
		Expect(design.BCU.AddrWidth()).To(Equal(4))
		Expect(design.Driver).ToNot(BeNil())
		Expect(design.Selector.Units()).To(HaveLen(1))
	})

	It("should propagate a bad latency", func() {
		engine := sim.NewSerialEngine()
		_, err := config.DesignBuilder{}.
			WithEngine(engine).
			WithFreq(1 * sim.GHz).
			WithAddrWidth(4).
			WithLatency(0).
			WithStartupAddr(0).
			Build("Design")
		Expect(err).To(MatchError(util.ErrOutOfRange))
	})

	It("should run a mapped branch program end to end", func() {
		design := buildDesign(1)
		driver := design.Driver

		Expect(driver.Schedule(
			api.Stimulus(design.Kernel.Rst, logic.Ones(1)),
			design.BCU.Site().DoNothing(),
		)).To(Succeed())
		Expect(driver.Schedule(
			api.Stimulus(design.Kernel.Rst, logic.Zeros(1)),
			design.BCU.Site().DoNothing(),
		)).To(Succeed())

		program := []xil.Instr{
			xil.Goto(xil.NewBranchLabel(0b1000)),
			xil.BranchIfFalse(xil.NewBranchLabel(0b0100)),
		}
		for _, instr := range program {
			mapping, err := design.Selector.Map(instr,
				[]xil.Type{{Name: "bit", Bits: 1}}, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(mapping).ToNot(BeNil())

			verbs := mapping.Realize(
				[]hw.ValueSource{hw.ConstSource(logic.Zeros(1))}, nil)
			Expect(driver.ScheduleSequence(verbs)).To(Succeed())
		}

		driver.Run()

		// Goto 1000, then BranchIfFalse with a 0 condition: taken.
		Expect(design.BCU.OutAddr().Read().Is("0100")).To(BeTrue())
	})

	It("should analyze the design root and its units", func() {
		design := buildDesign(1)
		ctx := hw.NewDesignContext()
		ctx.Analyze(design)
		Expect(ctx.Components).To(HaveLen(2))
	})
})
