package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/banksim/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var levelColors = map[log.Level]struct {
	icon  string
	color lipgloss.AdaptiveColor
}{
	log.ErrorLevel: {"ERR", lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}},
	log.WarnLevel:  {"WRN", lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}},
	log.InfoLevel:  {"INF", lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}},
	log.DebugLevel: {"DBG", lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}},
}

var formatters = map[string]log.Formatter{
	"json":   log.JSONFormatter,
	"text":   log.TextFormatter,
	"logfmt": log.LogfmtFormatter,
}

func logStyles() *log.Styles {
	styles := log.DefaultStyles()
	for level, lc := range levelColors {
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(lc.icon).
			Bold(true).
			Padding(0, 1).
			Foreground(lc.color)
	}

	keyColor := levelColors[log.DebugLevel].color
	for _, key := range []string{"error", "account_id", "otp_id", "sender_id", "receiver_id", "amount"} {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(keyColor)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(levelColors[log.ErrorLevel].color)
	return styles
}

// newLogger builds the slog logger backed by charmbracelet/log. A nil cfg
// falls back to text output at info level.
func newLogger(cfg *config.Log, w io.Writer) *slog.Logger {
	if cfg == nil {
		cfg = &config.Log{Format: "text", TimeFormat: "2006-01-02 15:04:05"}
	}
	formatter := log.TextFormatter
	if f, ok := formatters[cfg.Format]; ok {
		formatter = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(logStyles())

	return slog.New(logger)
}

func setupLogger(cfg *config.Log) *slog.Logger {
	slogger := newLogger(cfg, os.Stdout)
	slog.SetDefault(slogger)
	return slogger
}
