package fu

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/xsynth/hw"
	"github.com/sarchlab/xsynth/logic"
	"github.com/sarchlab/xsynth/xact"
	"github.com/sarchlab/xsynth/xil"
)

type hostStub struct{}

func (hostStub) Name() string                             { return "Top" }
func (hostStub) PreInitialize(binder hw.AutoBinder) error { return nil }
func (hostStub) Initialize(k *hw.Kernel) error            { return nil }
func (hostStub) OnAnalysis(ctx *hw.DesignContext)         {}

func bitType() xil.Type {
	return xil.Type{Name: "bit", Bits: 1}
}

func wordType(bits int) xil.Type {
	return xil.Type{Name: "word", Bits: bits}
}

var _ = Describe("BCUMapper", func() {
	var (
		kernel *hw.Kernel
		bcu    *BCU
		mapper *BCUMapper
	)

	BeforeEach(func() {
		kernel, bcu = buildBCU(4, 1, 0)
		mapper = NewBCUMapper(bcu)
	})

	It("should support the three branch opcodes", func() {
		names := []string{}
		for _, i := range mapper.SupportedInstructions() {
			names = append(names, i.Name)
		}
		Expect(names).To(Equal([]string{
			xil.OpGoto, xil.OpBranchIfTrue, xil.OpBranchIfFalse,
		}))
	})

	It("should map goto on the bound site", func() {
		mappings := mapper.TryMap(bcu.Site(),
			xil.Goto(xil.NewBranchLabel(5)), nil, nil)
		Expect(mappings).To(HaveLen(1))

		m := mappings[0]
		Expect(m.Site()).To(BeIdenticalTo(bcu.Site()))
		Expect(m.ResourceKind()).To(Equal(xil.ExclusiveResource))
		Expect(m.InitiationInterval()).To(Equal(1))
		Expect(m.Latency()).To(Equal(1))
		Expect(m.Description()).ToNot(BeEmpty())
	})

	It("should report the host latency on the mapping", func() {
		_, bcu3 := buildBCU(4, 3, 0)
		m3 := NewBCUMapper(bcu3)
		mappings := m3.TryMap(bcu3.Site(),
			xil.Goto(xil.NewBranchLabel(5)), nil, nil)
		Expect(mappings[0].Latency()).To(Equal(3))
	})

	It("should decline a foreign BCU's site", func() {
		_, other := buildBCU(4, 1, 0)
		mappings := mapper.TryMap(other.Site(),
			xil.Goto(xil.NewBranchLabel(5)), nil, nil)
		Expect(mappings).To(BeEmpty())
	})

	It("should decline a mux site", func() {
		_, mux := buildMUX2(4)
		mappings := mapper.TryMap(mux.Site(),
			xil.Goto(xil.NewBranchLabel(5)), nil, nil)
		Expect(mappings).To(BeEmpty())
	})

	It("should decline non-branch instructions", func() {
		mappings := mapper.TryMap(bcu.Site(), xil.Select(), nil, nil)
		Expect(mappings).To(BeEmpty())
	})

	It("should panic on a branch-family opcode with no arm", func() {
		bogus := xil.Instr{
			Name:   "BranchNever",
			Target: xil.NewBranchLabel(0),
		}
		Expect(func() {
			mapper.TryMap(bcu.Site(), bogus, nil, nil)
		}).To(Panic())
	})

	It("should never allocate a new BCU", func() {
		m := mapper.TryAllocate(hostStub{},
			xil.Goto(xil.NewBranchLabel(5)), nil, nil, nil)
		Expect(m).ToNot(BeNil())
		Expect(m.Site()).To(BeIdenticalTo(bcu.Site()))
	})

	It("should realize goto as a full-latency verb sequence", func() {
		_, bcu3 := buildBCU(4, 3, 0)
		m3 := NewBCUMapper(bcu3)
		mapping := m3.TryMap(bcu3.Site(),
			xil.Goto(xil.NewBranchLabel(5)), nil, nil)[0]
		Expect(mapping.Realize(nil, nil)).To(HaveLen(3))
	})

	It("should realize a taken conditional branch", func() {
		mapping := mapper.TryMap(bcu.Site(),
			xil.BranchIfTrue(xil.NewBranchLabel(0b1001)),
			[]xil.Type{bitType()}, nil)[0]

		kernel.Rst.Drive(logic.Ones(1))
		cycleWith(kernel, bcu.Site().DoNothing())
		kernel.Rst.Drive(logic.Zeros(1))

		verbs := mapping.Realize(
			[]xact.Source{xact.Const(logic.Ones(1))}, nil)
		cycleWith(kernel, verbs[0])
		Expect(bcu.OutAddr().Read().Is("1001")).To(BeTrue())
	})

	It("should realize a fall-through negated branch", func() {
		mapping := mapper.TryMap(bcu.Site(),
			xil.BranchIfFalse(xil.NewBranchLabel(0b1001)),
			[]xil.Type{bitType()}, nil)[0]

		kernel.Rst.Drive(logic.Ones(1))
		cycleWith(kernel, bcu.Site().DoNothing())
		kernel.Rst.Drive(logic.Zeros(1))

		verbs := mapping.Realize(
			[]xact.Source{xact.Const(logic.Ones(1))}, nil)
		cycleWith(kernel, verbs[0])
		Expect(bcu.OutAddr().Read().Is("0001")).To(BeTrue())
	})
})

var _ = Describe("MUX2Mapper", func() {
	var mapper *MUX2Mapper

	BeforeEach(func() {
		mapper = NewMUX2Mapper()
	})

	It("should support Select only", func() {
		insts := mapper.SupportedInstructions()
		Expect(insts).To(HaveLen(1))
		Expect(insts[0].Name).To(Equal(xil.OpSelect))
	})

	It("should allocate a mux sized by the second operand", func() {
		types := []xil.Type{bitType(), wordType(16), wordType(16)}
		m := mapper.TryAllocate(hostStub{}, xil.Select(),
			types, []xil.Type{wordType(16)}, nil)
		Expect(m).ToNot(BeNil())

		mux, ok := m.Site().Host().(*MUX2)
		Expect(ok).To(BeTrue())
		Expect(mux.Width()).To(Equal(16))
		Expect(m.ResourceKind()).To(Equal(xil.LightweightResource))
		Expect(m.Latency()).To(Equal(0))
		Expect(m.InitiationInterval()).To(Equal(1))
	})

	It("should decline non-select instructions", func() {
		m := mapper.TryAllocate(hostStub{},
			xil.Goto(xil.NewBranchLabel(1)), nil, nil, nil)
		Expect(m).To(BeNil())
	})

	It("should map onto an existing mux of matching width", func() {
		_, mux := buildMUX2(16)
		types := []xil.Type{bitType(), wordType(16), wordType(16)}
		mappings := mapper.TryMap(mux.Site(), xil.Select(),
			types, []xil.Type{wordType(16)})
		Expect(mappings).To(HaveLen(1))
		Expect(mappings[0].Site()).To(BeIdenticalTo(mux.Site()))
	})

	It("should decline a mux of the wrong width", func() {
		_, mux := buildMUX2(8)
		types := []xil.Type{bitType(), wordType(16), wordType(16)}
		mappings := mapper.TryMap(mux.Site(), xil.Select(),
			types, []xil.Type{wordType(16)})
		Expect(mappings).To(BeEmpty())
	})

	It("should decline a BCU site", func() {
		_, bcu := buildBCU(4, 1, 0)
		types := []xil.Type{bitType(), wordType(16), wordType(16)}
		mappings := mapper.TryMap(bcu.Site(), xil.Select(),
			types, []xil.Type{wordType(16)})
		Expect(mappings).To(BeEmpty())
	})

	It("should keep the established select operand order", func() {
		// One-bit operands, where the inherited
		// (operands[1], operands[0], operands[2]) wiring is width
		// consistent: r = operands[1] when operands[2] is 0, else
		// operands[0].
		k, mux := buildMUX2(1)
		types := []xil.Type{bitType(), bitType(), bitType()}
		mapping := mapper.TryMap(mux.Site(), xil.Select(),
			types, []xil.Type{bitType()})[0]

		sink := k.NewSignal("Sink", logic.DontCares(1))
		operands := []xact.Source{
			xact.Const(logic.Parse("1")), // operand 0: condition
			xact.Const(logic.Parse("0")), // operand 1: then-value
			xact.Const(logic.Parse("0")), // operand 2: else-value
		}

		verbs := mapping.Realize(operands, []*hw.Signal{sink})
		Expect(verbs).To(HaveLen(1))
		cycleWith(k, verbs[0])
		// operands[2] lands on sel: '0' steers a = operands[1].
		Expect(sink.Read().Is("0")).To(BeTrue())

		operands[2] = xact.Const(logic.Parse("1"))
		verbs = mapping.Realize(operands, []*hw.Signal{sink})
		cycleWith(k, verbs[0])
		// sel '1' steers b = operands[0], the condition.
		Expect(sink.Read().Is("1")).To(BeTrue())
	})
})
