package ui

import (
	"fmt"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-ringclock/internal/config"
	"github.com/tartampluch/go-ringclock/internal/engine"
)

// segmentsView is a live table of the ring's twelve segments.
type segmentsView struct {
	table *widget.Table
	phase *widget.Label
	rows  [config.SegmentCount]engine.Segment
}

// update reloads the rows; the table only refreshes when something moved.
func (v *segmentsView) update(tp engine.TimePoint, cfg engine.ClockConfig) {
	rows := engine.Segments(tp, cfg)
	phase := engine.PhaseFor(tp, cfg).String()
	if rows == v.rows && v.phase.Text == phase {
		return
	}
	v.rows = rows
	v.phase.SetText(phase)
	v.table.Refresh()
}

func (v *segmentsView) cellText(id widget.TableCellID) string {
	if id.Row < 0 || id.Row >= len(v.rows) {
		return ""
	}
	seg := v.rows[id.Row]

	switch id.Col {
	case config.ColIDSegment:
		return strconv.Itoa(seg.Index)
	case config.ColIDState:
		return seg.State.String()
	case config.ColIDStart:
		if !seg.Visible() {
			return config.TablePlaceholder
		}
		return fmt.Sprintf(config.FormatDegrees, seg.RenderStart)
	case config.ColIDEnd:
		if !seg.Visible() {
			return config.TablePlaceholder
		}
		return fmt.Sprintf(config.FormatDegrees, seg.RenderEnd)
	}
	return ""
}

// ShowSegmentsWindow opens the segment inspector, or focuses it when it is
// already open. The frame loop keeps it current.
func (app *ClockFaceApp) ShowSegmentsWindow() {
	if app.segmentsWindow != nil {
		app.segmentsWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgSegmentsOpen, config.LogKeyComponent, config.CompUI)

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSegments))
	w.Resize(fyne.NewSize(config.SegmentsWinWidth, config.SegmentsWinHeight))

	v := &segmentsView{phase: widget.NewLabel("")}
	v.table = widget.NewTable(
		func() (int, int) { return len(v.rows), config.SegmentsColumns },
		func() fyne.CanvasObject { return widget.NewLabel(config.TablePlaceholder) },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(v.cellText(id))
		},
	)

	v.table.ShowHeaderRow = true
	v.table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabel(config.TablePlaceholder)
	}
	v.table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		var key string
		switch id.Col {
		case config.ColIDSegment:
			key = config.TKeyColSegment
		case config.ColIDState:
			key = config.TKeyColState
		case config.ColIDStart:
			key = config.TKeyColStart
		case config.ColIDEnd:
			key = config.TKeyColEnd
		}
		label := o.(*widget.Label)
		label.SetText(app.GetMsg(key))
		label.TextStyle = fyne.TextStyle{Bold: true}
	}
	for col := 0; col < config.SegmentsColumns; col++ {
		v.table.SetColumnWidth(col, config.SegmentsColWidth)
	}

	v.update(app.Clock.TimePoint(), app.Config())
	app.segmentsWindow = w
	app.segmentsView = v

	w.SetContent(container.NewBorder(v.phase, nil, nil, nil, v.table))
	w.SetOnClosed(func() {
		app.segmentsWindow = nil
		app.segmentsView = nil
	})
	w.Show()
}
