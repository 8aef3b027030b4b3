package ui

import (
	"context"
	"image"
	"io"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-ringclock/internal/config"
	"github.com/tartampluch/go-ringclock/internal/engine"
	"github.com/tartampluch/go-ringclock/internal/render"
	"github.com/tartampluch/go-ringclock/internal/timesource"
)

// ClockFaceApp owns the window, the in-memory face configuration and the
// frame loop that keeps the face current.
type ClockFaceApp struct {
	App        fyne.App
	Window     fyne.Window
	I18nBundle *i18n.Bundle
	Localizer  *i18n.Localizer
	Ctx        context.Context

	// Clock is the time source sampled every frame.
	Clock *timesource.SimulatedClock

	SupportedLanguages []string
	Language           string

	cfgMut sync.RWMutex
	cfg    engine.ClockConfig
	crt    bool

	face     *canvas.Raster
	settings *settingsWidgets

	segmentsWindow fyne.Window
	segmentsView   *segmentsView
}

// NewClockFaceApp constructs the application with the default face.
func NewClockFaceApp(a fyne.App, ctx context.Context, clock *timesource.SimulatedClock) *ClockFaceApp {
	a.SetIcon(theme.HistoryIcon())

	if clock == nil {
		clock = timesource.NewSimulatedClock(nil)
	}

	return &ClockFaceApp{
		App:                a,
		Ctx:                ctx,
		Clock:              clock,
		SupportedLanguages: config.SupportedLanguages,
		Language:           config.DefaultLanguage,
		cfg:                engine.DefaultConfig(),
	}
}

// Run opens the clock window and blocks until it is closed.
func (app *ClockFaceApp) Run() {
	app.SetupI18n()
	w := app.BuildWindow()

	go app.frameLoop()
	w.ShowAndRun()
}

// BuildWindow creates the main window: face on the left, settings on the right.
func (app *ClockFaceApp) BuildWindow() fyne.Window {
	slog.Info(config.MsgWindowOpen, config.LogKeyComponent, config.CompUI)

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window = w

	app.face = canvas.NewRaster(app.drawFace)
	app.face.ScaleMode = canvas.ImageScaleSmooth

	split := container.NewHSplit(app.face, container.NewVScroll(app.buildSettingsPanel(w)))
	split.Offset = config.SettingsPanelOffset

	w.SetContent(split)
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	w.SetMaster()
	return w
}

// Config returns a copy of the current face configuration.
func (app *ClockFaceApp) Config() engine.ClockConfig {
	app.cfgMut.RLock()
	defer app.cfgMut.RUnlock()
	return app.cfg
}

// UpdateConfig applies mutate to the configuration. The next frame picks it up.
func (app *ClockFaceApp) UpdateConfig(setting string, mutate func(*engine.ClockConfig)) {
	app.cfgMut.Lock()
	mutate(&app.cfg)
	app.cfgMut.Unlock()

	slog.Debug(config.MsgConfigChanged,
		config.LogKeyComponent, config.CompUISet,
		config.LogKeySetting, setting,
	)
}

// CRT reports whether the monitor overlay is enabled.
func (app *ClockFaceApp) CRT() bool {
	app.cfgMut.RLock()
	defer app.cfgMut.RUnlock()
	return app.crt
}

// SetCRT toggles the monitor overlay.
func (app *ClockFaceApp) SetCRT(on bool) {
	app.cfgMut.Lock()
	app.crt = on
	app.cfgMut.Unlock()

	slog.Debug(config.MsgConfigChanged,
		config.LogKeyComponent, config.CompUISet,
		config.LogKeySetting, config.TKeyLblCRT,
		config.LogKeyValue, on,
	)
}

func (app *ClockFaceApp) renderOptions() render.Options {
	opts := render.DefaultOptions()
	opts.CRT = app.CRT()
	return opts
}

// drawFace is the raster generator. It samples the clock, so every Refresh
// produces the face for the current instant.
func (app *ClockFaceApp) drawFace(w, h int) image.Image {
	if w < config.MinFacePixels || h < config.MinFacePixels {
		return image.NewRGBA(image.Rect(0, 0, config.MinFacePixels, config.MinFacePixels))
	}

	cfg := app.Config()
	cfg.Size = float64(min(w, h))
	face := engine.ComputeFace(app.Clock.TimePoint(), cfg)

	img, err := render.Image(face, w, h, app.renderOptions())
	if err != nil {
		slog.Error(config.ErrSnapshotEncode,
			config.LogKeyComponent, config.CompRender,
			config.LogKeyError, err,
		)
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}
	return img
}

// ExportPNG writes the face as currently shown to w at the snapshot size.
func (app *ClockFaceApp) ExportPNG(w io.Writer) error {
	cfg := app.Config()
	cfg.Size = config.DefaultSnapshotSize
	face := engine.ComputeFace(app.Clock.TimePoint(), cfg)
	return render.WritePNG(w, face, config.DefaultSnapshotSize, config.DefaultSnapshotSize, app.renderOptions())
}

// frameLoop redraws the face at config.FrameRate until the context ends.
func (app *ClockFaceApp) frameLoop() {
	log := slog.With(config.LogKeyComponent, config.CompFrameLoop)

	ticker := time.NewTicker(config.FrameInterval)
	defer ticker.Stop()

	log.Info(config.MsgFrameLoopStart, config.LogKeyInterval, config.FrameInterval)

	for {
		select {
		case <-app.Ctx.Done():
			log.Info(config.MsgFrameLoopStop)
			return

		case <-ticker.C:
			fyne.Do(app.refreshFrame)
		}
	}
}

// refreshFrame runs on the UI goroutine.
func (app *ClockFaceApp) refreshFrame() {
	if app.face != nil {
		app.face.Refresh()
	}
	if app.segmentsView != nil {
		app.segmentsView.update(app.Clock.TimePoint(), app.Config())
	}
}
