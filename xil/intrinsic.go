package xil

// DebugBreakName is the symbol decompiler front ends match to plant a
// breakpoint at the call's control step.
const DebugBreakName = "xsynth.DebugBreak"

// DebugBreak is a no-op debug intrinsic. Behavioral models call it
// where they want the decompiler to stop; the mapping core guarantees
// only that the function exists and does nothing at simulation time.
func DebugBreak() {}
