package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/zalando/go-keyring"
)

// Settings holds the runtime configuration resolved from the environment.
// Flags may override individual fields after Load returns.
type Settings struct {
	Addr     string
	Port     string
	Language string

	// Contact sync source. Mode is derived: a local path wins over a URL,
	// neither means sync is disabled.
	SourceMode  string
	VCardPath   string
	VCardURL    string
	VCardUser   string
	VCardPass   string
	SyncMinutes int

	// ReminderTrigger is an ISO8601 duration for calendar alarms (e.g. "-P1D").
	ReminderTrigger string
}

// Load resolves Settings from a .env file (best effort) and the environment.
// The vCard password falls back to the OS keyring when not set via env,
// so credentials never have to live in plain-text configuration.
func Load(envFile string) (Settings, error) {
	// Missing .env is the normal case; only an explicit path must exist.
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Settings{}, fmt.Errorf("%s: %w", ErrDataAsset, err)
		}
	} else {
		_ = godotenv.Load(DefaultEnvFile)
	}

	s := Settings{
		Addr:            envOr(EnvAddr, DefaultBindAddr),
		Port:            envOr(EnvPort, DefaultPort),
		Language:        envOr(EnvLanguage, DefaultLanguage),
		VCardPath:       os.Getenv(EnvVCardPath),
		VCardURL:        os.Getenv(EnvVCardURL),
		VCardUser:       os.Getenv(EnvVCardUser),
		VCardPass:       os.Getenv(EnvVCardPass),
		SyncMinutes:     envIntOr(EnvSyncMinutes, DefaultSyncMinutes),
		ReminderTrigger: os.Getenv(EnvReminder),
	}

	if !slices.Contains(SupportedLanguages, s.Language) {
		s.Language = DefaultLanguage
	}

	if port, err := strconv.Atoi(s.Port); err != nil || port < MinPort || port > MaxPort {
		return Settings{}, fmt.Errorf("%s: %q", ErrPortRange, s.Port)
	}

	switch {
	case s.VCardPath != "":
		s.SourceMode = SourceModeLocal
	case s.VCardURL != "":
		s.SourceMode = SourceModeWeb
	default:
		s.SourceMode = SourceModeNone
	}

	// Keyring fallback for the web source password. An absent entry is not an
	// error; the source may simply be unauthenticated.
	if s.SourceMode == SourceModeWeb && s.VCardPass == "" && s.VCardUser != "" {
		pass, err := keyring.Get(KeyringService, s.VCardUser)
		if err != nil {
			slog.Debug(MsgPassFail,
				LogKeyComponent, CompConfig,
				LogKeyUser, s.VCardUser,
				LogKeyError, err,
			)
		} else {
			s.VCardPass = pass
		}
	}

	return s, nil
}

// BindAddr returns the host:port the HTTP server should listen on.
func (s Settings) BindAddr() string {
	return s.Addr + AddrSeparator + s.Port
}

// SyncEnabled reports whether a contact source is configured and the
// resync interval is active.
func (s Settings) SyncEnabled() bool {
	return s.SourceMode != SourceModeNone && s.SyncMinutes != DisabledInterval
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
