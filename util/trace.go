package util

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	PrintToggle                  = false
	LevelTrace        slog.Level = slog.LevelInfo + 1
	LevelWaveform     slog.Level = slog.LevelInfo + 2
	EnableWaveformLog            = true
)

// SignalState captures one signal's value in one cycle.
type SignalState struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CycleRecord is the canonical waveform summary for one clock cycle.
type CycleRecord struct {
	Cycle   int           `json:"cycle"`
	Verb    string        `json:"verb,omitempty"`
	Signals []SignalState `json:"signals"`
}

// LogCycle emits a waveform record as a structured log entry.
func LogCycle(rec *CycleRecord) {
	if !EnableWaveformLog {
		return
	}
	slog.Log(context.Background(), LevelWaveform, "Cycle",
		slog.Any("state", rec))
}

// Trace logs at the trace level used for per-operation flow messages.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// RenderTrace renders a sequence of cycle records as a table, one row
// per cycle and one column per watched signal.
func RenderTrace(title string, recs []CycleRecord) string {
	if len(recs) == 0 {
		return ""
	}

	t := table.NewWriter()
	t.SetTitle(title)

	header := table.Row{"Cycle", "Verb"}
	for _, s := range recs[0].Signals {
		header = append(header, s.Name)
	}
	t.AppendHeader(header)

	for _, rec := range recs {
		row := table.Row{rec.Cycle, rec.Verb}
		for _, s := range rec.Signals {
			row = append(row, s.Value)
		}
		t.AppendRow(row)
	}

	return t.Render()
}

// PrintTrace writes the rendered trace to stdout when PrintToggle is on.
func PrintTrace(title string, recs []CycleRecord) {
	if !PrintToggle {
		return
	}
	fmt.Println(RenderTrace(title, recs))
}
