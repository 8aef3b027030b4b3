package ui

import (
	"embed"
	"encoding/json"
	"log/slog"
	"path"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-ringclock/internal/config"
	"golang.org/x/text/language"
)

const (
	localeDir    = "locales"
	localePrefix = "active."
	localeSuffix = ".json"
)

//go:embed locales/*.json
var localeFS embed.FS

// SetupI18n loads every embedded active.<lang>.json catalog.
func (app *ClockFaceApp) SetupI18n() {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	app.I18nBundle = bundle

	entries, err := localeFS.ReadDir(localeDir)
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		app.UpdateLocalizer()
		return
	}

	var loaded []string
	for _, entry := range entries {
		name := entry.Name()
		code, ok := localeCode(name)
		if !ok {
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, path.Join(localeDir, name)); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, code,
		)
		loaded = append(loaded, code)
	}

	if len(loaded) > 0 {
		app.SupportedLanguages = loaded
	}
	app.UpdateLocalizer()
}

// localeCode extracts "en" from "active.en.json".
func localeCode(name string) (string, bool) {
	if !strings.HasPrefix(name, localePrefix) || !strings.HasSuffix(name, localeSuffix) {
		slog.Debug(config.MsgLocaleSkip,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyFile, name,
		)
		return "", false
	}

	code := strings.TrimSuffix(strings.TrimPrefix(name, localePrefix), localeSuffix)
	if code == "" {
		slog.Warn(config.MsgLocaleBadName,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyFile, name,
		)
		return "", false
	}
	return code, true
}

// UpdateLocalizer rebuilds the localizer for app.Language.
func (app *ClockFaceApp) UpdateLocalizer() {
	lang := app.Language
	if lang == "" {
		lang = config.DefaultLanguage
	}
	app.Localizer = i18n.NewLocalizer(app.I18nBundle, lang)
}

// GetMsg returns the label for key, or key itself when it is missing.
func (app *ClockFaceApp) GetMsg(key string) string {
	if app.Localizer == nil {
		return key
	}
	msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}
