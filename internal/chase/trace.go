package chase

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/spatial/r2"
)

// TraceRow is one frame of a headless chase run.
type TraceRow struct {
	Frame    int     `csv:"frame"`
	CatX     float64 `csv:"cat_x"`
	CatY     float64 `csv:"cat_y"`
	PointerX float64 `csv:"pointer_x"`
	PointerY float64 `csv:"pointer_y"`
	Angle    float64 `csv:"angle"`
	Distance float64 `csv:"distance"`
}

// Simulate runs the update rule for a fixed pointer and returns one row
// per frame, frame 0 being the starting position.
func Simulate(from, to r2.Vec, k float64, frames int) []TraceRow {
	t := NewTracker(k)
	t.Reset(from)
	t.SetPointer(to)

	rows := make([]TraceRow, 0, frames+1)
	rows = append(rows, row(t))
	for i := 0; i < frames; i++ {
		t.Step()
		rows = append(rows, row(t))
	}
	return rows
}

func row(t *Tracker) TraceRow {
	return TraceRow{
		Frame:    t.Frames,
		CatX:     t.Cat.X,
		CatY:     t.Cat.Y,
		PointerX: t.Pointer.X,
		PointerY: t.Pointer.Y,
		Angle:    t.Angle,
		Distance: t.Distance(),
	}
}

// WriteTrace writes rows as CSV with a header line.
func WriteTrace(w io.Writer, rows []TraceRow) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to write trace: %w", err)
	}
	return nil
}
