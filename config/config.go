package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// DefaultRegistryURL is the Apps Script deployment that appends registrations to the sheet.
const DefaultRegistryURL = "https://script.google.com/macros/s/AKfycbx5sjQLVm4-BwYIfJqjsIMEhbC0E6OcDPPGjZw-XQhDcHhKP0TSLxXiUgYJVgeR2-s/exec"

// ErrInvalid is wrapped by every validation failure returned from Load.
var ErrInvalid = errors.New("config: invalid value")

// Config holds everything read from the environment (or a .env file).
type Config struct {
	Width  int
	Height int
	Title  string

	CellSize    int
	EraseRadius float64
	ArtScale    float64
	MaskText    string
	HiDPI       bool

	ArtworkDir string
	Artist     string

	Music           string
	FinePointerOnly bool
	RegistryURL     string
	LogLevel        logrus.Level
	Debug           bool
}

// Default returns the configuration used when no variable is set.
func Default() *Config {
	return &Config{
		Width:       960,
		Height:      640,
		Title:       "LIMBO",
		CellSize:    12,
		EraseRadius: 60,
		ArtScale:    0.9,
		MaskText:    "LIMBO",
		HiDPI:       true,
		ArtworkDir:  "imgs",
		RegistryURL: DefaultRegistryURL,
		LogLevel:    logrus.InfoLevel,
	}
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first if present.
func Load() (*Config, error) {
	loadDotenv(logrus.StandardLogger(), ".env")
	return FromLookup(os.LookupEnv)
}

// loadDotenv loads files into the environment. A missing file is normal;
// any other failure is logged and otherwise ignored.
func loadDotenv(log logrus.FieldLogger, files ...string) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.WithError(err).Debug("ignoring unreadable .env file")
	}
}

// FromLookup builds a Config from an arbitrary variable source.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	r := reader{lookup: lookup}

	cfg.Width = r.int("LIMBO_WIDTH", cfg.Width)
	cfg.Height = r.int("LIMBO_HEIGHT", cfg.Height)
	cfg.Title = r.string("LIMBO_TITLE", cfg.Title)
	cfg.CellSize = r.int("LIMBO_CELL_SIZE", cfg.CellSize)
	cfg.EraseRadius = r.float("LIMBO_ERASE_RADIUS", cfg.EraseRadius)
	cfg.ArtScale = r.float("LIMBO_ART_SCALE", cfg.ArtScale)
	cfg.MaskText = r.string("LIMBO_MASK_TEXT", cfg.MaskText)
	cfg.HiDPI = r.bool("LIMBO_HIDPI", cfg.HiDPI)
	cfg.ArtworkDir = r.string("LIMBO_ARTWORK_DIR", cfg.ArtworkDir)
	cfg.Artist = r.string("LIMBO_ARTIST", cfg.Artist)
	cfg.Music = r.string("LIMBO_MUSIC", cfg.Music)
	cfg.FinePointerOnly = r.bool("LIMBO_FINE_POINTER_ONLY", cfg.FinePointerOnly)
	cfg.RegistryURL = r.string("LIMBO_REGISTRY_URL", cfg.RegistryURL)
	cfg.Debug = r.bool("DEBUG", cfg.Debug)

	if lvl, ok := lookup("LIMBO_LOG_LEVEL"); ok && lvl != "" {
		parsed, err := logrus.ParseLevel(lvl)
		if err != nil {
			r.errs = append(r.errs, fmt.Errorf("%w: LIMBO_LOG_LEVEL=%q", ErrInvalid, lvl))
		} else {
			cfg.LogLevel = parsed
		}
	}
	if cfg.Debug {
		cfg.LogLevel = logrus.DebugLevel
	}

	if len(r.errs) > 0 {
		return nil, errors.Join(r.errs...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges that the environment parser cannot express.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalid, c.CellSize)
	case c.EraseRadius <= 0:
		return fmt.Errorf("%w: erase radius %g", ErrInvalid, c.EraseRadius)
	case c.ArtScale <= 0 || c.ArtScale > 1:
		return fmt.Errorf("%w: art scale %g must be in (0, 1]", ErrInvalid, c.ArtScale)
	case strings.TrimSpace(c.MaskText) == "":
		return fmt.Errorf("%w: empty mask text", ErrInvalid)
	}
	return nil
}

// Logger configures the standard logrus logger from c and returns it.
func (c *Config) Logger() *logrus.Logger {
	l := logrus.StandardLogger()
	l.SetLevel(c.LogLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

type reader struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (r *reader) string(key, def string) string {
	if v, ok := r.lookup(key); ok && v != "" {
		return v
	}
	return def
}

func (r *reader) int(key string, def int) int {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%w: %s=%q", ErrInvalid, key, v))
		return def
	}
	return n
}

func (r *reader) float(key string, def float64) float64 {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%w: %s=%q", ErrInvalid, key, v))
		return def
	}
	return f
}

func (r *reader) bool(key string, def bool) bool {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%w: %s=%q", ErrInvalid, key, v))
		return def
	}
	return b
}
