package ui

import (
	"errors"
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-ringclock/internal/config"
	"github.com/tartampluch/go-ringclock/internal/engine"
)

// settingsWidgets keeps the controls reachable for tests.
type settingsWidgets struct {
	smoothCheck *widget.Check
	fluentCheck *widget.Check

	colorSelect *widget.Select
	whiteCheck  *widget.Check

	fullRingCheck    *widget.Check
	alternatingCheck *widget.Check
	trackCheck       *widget.Check
	arcSlider        *widget.Slider

	markerSlider *widget.Slider

	hourWidth, hourLength     *widget.Slider
	minuteWidth, minuteLength *widget.Slider
	secondWidth, secondLength *widget.Slider
	secondCheck               *widget.Check
	capCheck                  *widget.Check

	crtCheck *widget.Check

	timeEntry *TimeEntry
	btnApply  *widget.Button
	btnPlay   *widget.Button
	btnPause  *widget.Button
	btnLive   *widget.Button

	btnExport   *widget.Button
	btnSegments *widget.Button
}

// buildSettingsPanel assembles every settings card. Controls write straight
// into the in-memory configuration; nothing is persisted.
func (app *ClockFaceApp) buildSettingsPanel(w fyne.Window) fyne.CanvasObject {
	cfg := app.Config()
	sw := &settingsWidgets{}
	app.settings = sw

	// --- Motion ---
	sw.smoothCheck = app.newCheck(config.TKeyLblSmoothSeconds, cfg.Motion == engine.MotionSmooth, func(c *engine.ClockConfig, on bool) {
		c.Motion = engine.MotionStepped
		if on {
			c.Motion = engine.MotionSmooth
		}
	})
	sw.fluentCheck = app.newCheck(config.TKeyLblFluentFill, cfg.Fill == engine.FillFluent, func(c *engine.ClockConfig, on bool) {
		c.Fill = engine.FillStepped
		if on {
			c.Fill = engine.FillFluent
		}
	})
	motionCard := widget.NewCard(app.GetMsg(config.TKeyLblMotion), "", container.NewVBox(sw.smoothCheck, sw.fluentCheck))

	// --- Colors ---
	rainbow, uniform := app.GetMsg(config.TKeyColorRainbow), app.GetMsg(config.TKeyColorUniform)
	sw.colorSelect = widget.NewSelect([]string{rainbow, uniform}, nil)
	if cfg.Color == engine.ColorUniform {
		sw.colorSelect.SetSelected(uniform)
	} else {
		sw.colorSelect.SetSelected(rainbow)
	}
	sw.colorSelect.OnChanged = func(s string) {
		app.UpdateConfig(config.TKeyLblColors, func(c *engine.ClockConfig) {
			c.Color = engine.ColorRainbow
			if s == uniform {
				c.Color = engine.ColorUniform
			}
		})
	}
	sw.whiteCheck = app.newCheck(config.TKeyLblForceWhite, cfg.ForceWhite, func(c *engine.ClockConfig, on bool) { c.ForceWhite = on })
	colorsCard := widget.NewCard(app.GetMsg(config.TKeyLblColors), "", container.NewVBox(sw.colorSelect, sw.whiteCheck))

	// --- Ring ---
	sw.fullRingCheck = app.newCheck(config.TKeyLblFullRing, cfg.FullRing, func(c *engine.ClockConfig, on bool) { c.FullRing = on })
	sw.alternatingCheck = app.newCheck(config.TKeyLblAlternating, cfg.Alternating, func(c *engine.ClockConfig, on bool) { c.Alternating = on })
	sw.trackCheck = app.newCheck(config.TKeyLblShowTrack, cfg.ShowTrack, func(c *engine.ClockConfig, on bool) { c.ShowTrack = on })

	var arcRow fyne.CanvasObject
	sw.arcSlider, arcRow = app.newSlider(config.TKeyLblArcThickness, config.MinArcThickness, config.MaxArcThickness, cfg.ArcThickness,
		func(c *engine.ClockConfig, v float64) { c.ArcThickness = v })
	ringCard := widget.NewCard(app.GetMsg(config.TKeyLblRing), "", container.NewVBox(sw.fullRingCheck, sw.alternatingCheck, sw.trackCheck, arcRow))

	// --- Markers ---
	var markerRow fyne.CanvasObject
	sw.markerSlider, markerRow = app.newSlider(config.TKeyLblMarkerWidth, config.MinMarkerWidth, config.MaxMarkerWidth, cfg.MarkerWidth,
		func(c *engine.ClockConfig, v float64) { c.MarkerWidth = v })
	markersCard := widget.NewCard(app.GetMsg(config.TKeyLblMarkers), "", markerRow)

	// --- Hands ---
	handsCard := app.buildHandsCard(sw, cfg)

	// --- Display ---
	sw.crtCheck = widget.NewCheck(app.GetMsg(config.TKeyLblCRT), nil)
	sw.crtCheck.Checked = app.CRT()
	sw.crtCheck.OnChanged = app.SetCRT
	displayCard := widget.NewCard(app.GetMsg(config.TKeyLblDisplay), "", sw.crtCheck)

	// --- Time ---
	timeCard := app.buildTimeCard(w, sw)

	// --- Actions ---
	sw.btnExport = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnExport), theme.DocumentSaveIcon(), func() {
		app.showExportDialog(w)
	})
	sw.btnExport.Importance = widget.HighImportance
	sw.btnSegments = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSegments), theme.ListIcon(), app.ShowSegmentsWindow)

	// --- Footer ---
	footerLabel := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	return container.NewPadded(container.NewVBox(
		container.NewGridWithColumns(config.LayoutColumnsDouble, motionCard, colorsCard),
		ringCard,
		markersCard,
		handsCard,
		displayCard,
		timeCard,
		container.NewGridWithColumns(config.LayoutColumnsDouble, sw.btnSegments, sw.btnExport),
		footerLabel,
	))
}

func (app *ClockFaceApp) buildHandsCard(sw *settingsWidgets, cfg engine.ClockConfig) *widget.Card {
	var rows []fyne.CanvasObject
	add := func(target **widget.Slider, key string, lo, hi, value float64, set func(*engine.ClockConfig, float64)) {
		s, row := app.newSlider(key, lo, hi, value, set)
		*target = s
		rows = append(rows, row)
	}

	add(&sw.hourWidth, config.TKeyLblHourWidth, config.MinHandWidth, config.MaxHandWidth, cfg.HourHand.Width,
		func(c *engine.ClockConfig, v float64) { c.HourHand.Width = v })
	add(&sw.hourLength, config.TKeyLblHourLength, config.MinHandLength, config.MaxHandLength, cfg.HourHand.Length,
		func(c *engine.ClockConfig, v float64) { c.HourHand.Length = v })
	add(&sw.minuteWidth, config.TKeyLblMinuteWidth, config.MinHandWidth, config.MaxHandWidth, cfg.MinuteHand.Width,
		func(c *engine.ClockConfig, v float64) { c.MinuteHand.Width = v })
	add(&sw.minuteLength, config.TKeyLblMinuteLength, config.MinHandLength, config.MaxHandLength, cfg.MinuteHand.Length,
		func(c *engine.ClockConfig, v float64) { c.MinuteHand.Length = v })
	add(&sw.secondWidth, config.TKeyLblSecondWidth, config.MinHandWidth, config.MaxHandWidth, cfg.SecondHand.Width,
		func(c *engine.ClockConfig, v float64) { c.SecondHand.Width = v })
	add(&sw.secondLength, config.TKeyLblSecondLength, config.MinHandLength, config.MaxHandLength, cfg.SecondHand.Length,
		func(c *engine.ClockConfig, v float64) { c.SecondHand.Length = v })

	sw.secondCheck = app.newCheck(config.TKeyLblShowSecond, cfg.ShowSecondHand, func(c *engine.ClockConfig, on bool) { c.ShowSecondHand = on })
	sw.capCheck = app.newCheck(config.TKeyLblCenterCap, cfg.CenterCap, func(c *engine.ClockConfig, on bool) { c.CenterCap = on })
	rows = append(rows, container.NewGridWithColumns(config.LayoutColumnsDouble, sw.secondCheck, sw.capCheck))

	return widget.NewCard(app.GetMsg(config.TKeyLblHands), "", container.NewVBox(rows...))
}

// buildTimeCard holds the simulated time controls.
func (app *ClockFaceApp) buildTimeCard(w fyne.Window, sw *settingsWidgets) *widget.Card {
	sw.timeEntry = NewTimeEntry()

	sw.btnApply = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnApply), theme.ConfirmIcon(), func() {
		if err := app.applyTime(sw.timeEntry.Text); err != nil {
			dialog.ShowError(err, w)
		}
	})
	sw.btnPlay = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnPlay), theme.MediaPlayIcon(), app.Clock.Play)
	sw.btnPause = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnPause), theme.MediaPauseIcon(), app.Clock.Pause)
	sw.btnLive = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnLive), theme.HistoryIcon(), func() {
		app.Clock.Reset()
		sw.timeEntry.SetText("")
	})

	item := widget.NewFormItem(app.GetMsg(config.TKeyLblTime), container.NewBorder(nil, nil, nil, sw.btnApply, sw.timeEntry))
	item.HintText = app.GetMsg(config.TKeyHelpTime)

	return widget.NewCard(app.GetMsg(config.TKeyLblTime), "", container.NewVBox(
		widget.NewForm(item),
		container.NewGridWithColumns(config.LayoutColumnsTriple, sw.btnPlay, sw.btnPause, sw.btnLive),
	))
}

// applyTime freezes the face at hms. The returned error carries the label text.
func (app *ClockFaceApp) applyTime(hms string) error {
	if err := app.Clock.Set(hms); err != nil {
		slog.Warn(config.ErrInvalidTime,
			config.LogKeyComponent, config.CompUISet,
			config.LogKeyTime, hms,
			config.LogKeyError, err,
		)
		return errors.New(app.GetMsg(config.TKeyErrTimeFormat))
	}
	return nil
}

func (app *ClockFaceApp) showExportDialog(w fyne.Window) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		if wc == nil {
			slog.Debug(config.MsgExportCancelled, config.LogKeyComponent, config.CompUISet)
			return
		}
		if err := app.exportTo(wc); err != nil {
			dialog.ShowError(err, w)
		}
	}, w)
	d.SetFileName(config.SnapshotFileName)
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtPNG}))
	d.Show()
}

// exportTo writes the snapshot and closes wc.
func (app *ClockFaceApp) exportTo(wc fyne.URIWriteCloser) error {
	if err := app.ExportPNG(wc); err != nil {
		_ = wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}

	slog.Info(config.MsgSnapshotWritten,
		config.LogKeyComponent, config.CompUISet,
		config.LogKeyFile, wc.URI().Path(),
	)
	return nil
}

// newCheck builds a labelled check bound to one boolean of the configuration.
func (app *ClockFaceApp) newCheck(key string, checked bool, set func(*engine.ClockConfig, bool)) *widget.Check {
	c := widget.NewCheck(app.GetMsg(key), nil)
	c.Checked = checked
	c.OnChanged = func(on bool) {
		app.UpdateConfig(key, func(cfg *engine.ClockConfig) { set(cfg, on) })
	}
	return c
}

// newSlider builds a slider with a label that echoes its value.
func (app *ClockFaceApp) newSlider(key string, lo, hi, value float64, set func(*engine.ClockConfig, float64)) (*widget.Slider, fyne.CanvasObject) {
	label := widget.NewLabel(fmt.Sprintf(config.FormatSliderValue, value))

	s := widget.NewSlider(lo, hi)
	s.Step = config.SliderStep
	s.Value = value
	s.OnChanged = func(v float64) {
		label.SetText(fmt.Sprintf(config.FormatSliderValue, v))
		app.UpdateConfig(key, func(cfg *engine.ClockConfig) { set(cfg, v) })
	}

	row := container.NewBorder(nil, nil, widget.NewLabel(app.GetMsg(key)), label, s)
	return s, row
}
