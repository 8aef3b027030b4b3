package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go RingClock"
	AppID       = "com.github.tartampluch.go-ringclock"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for log files.
	FilePermUserRW fs.FileMode = 0600

	// FilePermSnapshot represents -rw-r--r--. Snapshots are meant to be shared.
	FilePermSnapshot fs.FileMode = 0644

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagSnapshot     = "snapshot"
	FlagTime         = "time"
	FlagSize         = "size"
	FlagCRT          = "crt"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescSnapshot = "Render a single PNG to this path and exit (no window)"
	FlagDescTime     = "Render at a fixed HH:MM:SS instead of the wall clock"
	FlagDescSize     = "Snapshot size in pixels"
	FlagDescCRT      = "Apply the CRT overlay to the snapshot"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Face Geometry (reference coordinate system)
// -----------------------------------------------------------------------------

// All geometry is authored in a ReferenceSize x ReferenceSize square and
// scaled uniformly by renderedSize / ReferenceSize.
const (
	ReferenceSize = 400.0

	// RingRadius is the radius of the twelve-segment ring.
	RingRadius = 170.0
	// MarkerRadius is the radial distance of every marker centre.
	MarkerRadius = 170.0
	// MarkerBaseHeight is the radial length of a cardinal pill marker.
	MarkerBaseHeight = 18.0
	// HandTailLength is the counterweight drawn behind the pivot.
	HandTailLength = 30.0
	// CenterCapRadius is the radius of the optional pivot cap.
	CenterCapRadius = 8.0

	SegmentCount   = 12
	SegmentSpanDeg = 30.0
	BucketSeconds  = 5.0

	// GapPaddingDeg is added to half the marker coverage on each segment end.
	GapPaddingDeg = 1.5

	// CardinalStep selects the pill markers (12, 3, 6 and 9 o'clock).
	CardinalStep = 3
)

// -----------------------------------------------------------------------------
// Face Defaults (reference units)
// -----------------------------------------------------------------------------

const (
	DefaultArcThickness     = 14.0
	DefaultMarkerWidth      = 6.0
	DefaultHourHandWidth    = 8.0
	DefaultHourHandLength   = 95.0
	DefaultMinuteHandWidth  = 5.0
	DefaultMinuteHandLength = 140.0
	DefaultSecondHandWidth  = 2.0
	DefaultSecondHandLength = 155.0
	DefaultSnapshotSize     = 800

	// TrackAlpha is the opacity of the background track behind the segments.
	TrackAlpha = 0x30
)

// -----------------------------------------------------------------------------
// Settings Slider Ranges (reference units)
// -----------------------------------------------------------------------------

const (
	MinArcThickness = 2.0
	MaxArcThickness = 40.0
	MinMarkerWidth  = 1.0
	MaxMarkerWidth  = 30.0
	MinHandWidth    = 1.0
	MaxHandWidth    = 20.0
	MinHandLength   = 20.0
	MaxHandLength   = 180.0
	SliderStep      = 0.5
)

// -----------------------------------------------------------------------------
// CRT Overlay
// -----------------------------------------------------------------------------

const (
	// CRTScanlineDim is the brightness multiplier applied to odd rows.
	CRTScanlineDim = 0.72
	// CRTVignetteStrength darkens the corners by up to this fraction.
	CRTVignetteStrength = 0.45
	// CRTGlowDownscale shrinks the glow layer by this factor before upscaling it back.
	CRTGlowDownscale = 4
	// CRTGlowMix is the weight of the blurred layer added on top of the frame.
	CRTGlowMix = 0.35
)

// -----------------------------------------------------------------------------
// Time Source & Frame Loop
// -----------------------------------------------------------------------------

const (
	// FrameRate is the number of face recomputations per second.
	FrameRate = 60
	// FrameInterval is derived from FrameRate.
	FrameInterval = time.Second / FrameRate

	TimeFormatHMS = "15:04:05"
	MaxHMSLength  = 8
	HMSSeparator  = ':'
)

// -----------------------------------------------------------------------------
// UI Constants
// -----------------------------------------------------------------------------

const (
	MainWindowWidth     = 1100
	MainWindowHeight    = 720
	SettingsPanelOffset = 0.58 // Face share of the split container
	MinFacePixels       = 1
	LayoutColumnsDouble = 2
	LayoutColumnsTriple = 3
	ExtPNG              = ".png"
	SnapshotFileName    = "ringclock.png"
	PlaceholderHMS      = "12:00:00"

	SegmentsWinWidth  = 420
	SegmentsWinHeight = 460
	SegmentsColumns   = 4
	SegmentsColWidth  = 95
	ColIDSegment      = 0
	ColIDState        = 1
	ColIDStart        = 2
	ColIDEnd          = 3
	FormatDegrees     = "%.2f°"
	TablePlaceholder  = "..."
	FormatSliderValue = "%.1f"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en"}

// DefaultLanguage is the catalog used by the localizer.
const DefaultLanguage = "en"

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle         = "win_title"
	TKeyLblMotion        = "lbl_motion"
	TKeyLblSmoothSeconds = "lbl_smooth_seconds"
	TKeyLblFluentFill    = "lbl_fluent_fill"
	TKeyLblColors        = "lbl_colors"
	TKeyColorRainbow     = "color_rainbow"
	TKeyColorUniform     = "color_uniform"
	TKeyLblForceWhite    = "lbl_force_white"
	TKeyLblRing          = "lbl_ring"
	TKeyLblFullRing      = "lbl_full_ring"
	TKeyLblAlternating   = "lbl_alternating"
	TKeyLblShowTrack     = "lbl_show_track"
	TKeyLblArcThickness  = "lbl_arc_thickness"
	TKeyLblMarkers       = "lbl_markers"
	TKeyLblMarkerWidth   = "lbl_marker_width"
	TKeyLblHands         = "lbl_hands"
	TKeyLblHourWidth     = "lbl_hour_width"
	TKeyLblHourLength    = "lbl_hour_length"
	TKeyLblMinuteWidth   = "lbl_minute_width"
	TKeyLblMinuteLength  = "lbl_minute_length"
	TKeyLblSecondWidth   = "lbl_second_width"
	TKeyLblSecondLength  = "lbl_second_length"
	TKeyLblShowSecond    = "lbl_show_second"
	TKeyLblCenterCap     = "lbl_center_cap"
	TKeyLblDisplay       = "lbl_display"
	TKeyLblCRT           = "lbl_crt"
	TKeyLblTime          = "lbl_time"
	TKeyHelpTime         = "help_time"
	TKeyBtnApply         = "btn_apply"
	TKeyBtnPlay          = "btn_play"
	TKeyBtnPause         = "btn_pause"
	TKeyBtnLive          = "btn_live"
	TKeyBtnExport        = "btn_export"
	TKeyLblFooter        = "lbl_footer"
	TKeyErrTimeFormat    = "err_time_format"
	TKeyBtnSegments      = "btn_segments"
	TKeyWinSegments      = "win_segments"
	TKeyColSegment       = "col_segment"
	TKeyColState         = "col_state"
	TKeyColStart         = "col_start"
	TKeyColEnd           = "col_end"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidTime    = "invalid time of day (expected HH:MM:SS)"
	ErrTimeRange      = "time component out of range"
	ErrSnapshotEncode = "failed to encode snapshot"
	ErrSnapshotWrite  = "failed to write snapshot"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrSizeInvalid    = "snapshot size must be positive"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting     = "Starting application"
	MsgAppStop         = "Application stopped gracefully"
	MsgCtxCancel       = "Context cancelled, shutting down UI"
	MsgFrameLoopStart  = "Frame loop started"
	MsgFrameLoopStop   = "Frame loop stopping due to context cancellation"
	MsgSimSet          = "Simulated time set"
	MsgSimPlay         = "Simulated playback started"
	MsgSimPause        = "Simulated playback paused"
	MsgSimReset        = "Returned to wall clock"
	MsgConfigChanged   = "Face configuration changed"
	MsgSnapshotWritten = "Snapshot written"
	MsgExportCancelled = "Snapshot export cancelled"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleBadName   = "Skipping malformed locale filename"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
	MsgLogWarning      = "Warning: %s at %s: %v\n"
	MsgWindowOpen      = "Opening clock window"
	MsgSegmentsOpen    = "Opening segment inspector"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyInterval  = "interval"
	LogKeySetting   = "setting"
	LogKeyValue     = "value"
	LogKeyTime      = "time"
	LogKeySize      = "size"
	LogKeyCRT       = "crt"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI         = "ui"
	CompUISet      = "ui_settings"
	CompTimeSource = "timesource"
	CompRender     = "render"
	CompFrameLoop  = "frame_loop"
	CompMain       = "main"
	CompI18n       = "i18n"
)
