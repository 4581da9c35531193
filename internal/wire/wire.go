// Package wire provides dependency injection for the circle application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	cliadapter "github.com/example/circle/internal/adapters/cli"
	"github.com/example/circle/internal/adapters/notify"
	"github.com/example/circle/internal/adapters/platform"
	"github.com/example/circle/internal/adapters/sqlite"
	"github.com/example/circle/internal/adapters/tmux"
	"github.com/example/circle/internal/app"
	"github.com/example/circle/internal/config"
	"github.com/example/circle/internal/ctxutil"
	"github.com/example/circle/internal/db"
	"github.com/example/circle/internal/ports/primary"
	"github.com/example/circle/internal/ports/secondary"
)

// LogFile is the name of the log file in the circle home directory.
const LogFile = "circle.log"

var (
	homeDir             string
	cfg                 *config.Config
	logger              *slog.Logger
	contactRepo         *sqlite.ContactRepository
	notificationRepo    *sqlite.NotificationRepository
	alertRepo           *sqlite.ContactAlertRepository
	contactService      primary.ContactService
	notificationService primary.NotificationService
	once                sync.Once
)

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Logger returns the application logger.
func Logger() *slog.Logger {
	once.Do(initServices)
	return logger
}

// HomeDir returns the circle home directory.
func HomeDir() string {
	once.Do(initServices)
	return homeDir
}

// ContactService returns the singleton ContactService instance.
func ContactService() primary.ContactService {
	once.Do(initServices)
	return contactService
}

// NotificationService returns the singleton NotificationService instance.
func NotificationService() primary.NotificationService {
	once.Do(initServices)
	return notificationService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	dir, err := config.HomeDir()
	if err != nil {
		log.Fatalf("failed to resolve circle home: %v", err)
	}
	homeDir = dir

	cfg, err = config.LoadOrDefault(homeDir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger = newLogger(homeDir, cfg.LogLevel)

	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	contactRepo = sqlite.NewContactRepository(database)
	notificationRepo = sqlite.NewNotificationRepository(database)
	alertRepo = sqlite.NewContactAlertRepository(database)

	// Create services (primary ports implementation)
	contactService = app.NewContactService(contactRepo)
	notificationService = app.NewNotificationService(notificationRepo, alertRepo)
}

// newLogger writes text logs to the home directory. Logging never blocks
// startup: an unwritable log file discards output instead.
func newLogger(dir, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	var out io.Writer = io.Discard
	if err := os.MkdirAll(dir, 0755); err == nil {
		if f, err := os.OpenFile(filepath.Join(dir, LogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			out = f
		}
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl}))
}

// Capabilities holds the platform adapters selected for this device.
type Capabilities struct {
	Geolocator secondary.Geolocator
	Sharer     secondary.Sharer
	Audio      secondary.AudioPlayer
}

// DetectCapabilities selects the platform adapters once from config.
// term receives clipboard escape sequences and the terminal bell.
func DetectCapabilities(term io.Writer) Capabilities {
	once.Do(initServices)

	caps := Capabilities{
		Geolocator: platform.NewStaticGeolocator(cfg.Latitude, cfg.Longitude),
	}

	caps.Sharer = platform.SelectSharer(
		platform.NewCommandShare(cfg.ShareCommand),
		platform.NewOSC52Clipboard(term),
	)

	if cfg.AudioCommand != "" {
		caps.Audio = platform.NewCommandAudioPlayer(cfg.AudioCommand, homeDir, logger)
	} else {
		caps.Audio = platform.NewBellPlayer(term)
	}
	return caps
}

// Terminal returns the controlling terminal, falling back to stdout.
// The caller runs release when done with it.
func Terminal() (term io.Writer, release func()) {
	if tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0); err == nil {
		return tty, func() { tty.Close() }
	}
	return os.Stdout, func() {}
}

// MountEmergency mounts an SOS screen under a fresh session ID. Toasts go
// to the given sinks plus the notification history and, inside tmux, the
// status line. Cancelling ctx unmounts the screen.
func MountEmergency(ctx context.Context, term io.Writer, sinks ...secondary.ToastSink) (primary.EmergencyService, string) {
	once.Do(initServices)

	sessionID := uuid.NewString()
	ctx = ctxutil.WithSessionID(ctx, sessionID)

	sinks = append(sinks, sqlite.NewNotificationWriter(notificationRepo, logger))
	if tmux.Inside() {
		sinks = append(sinks, tmux.NewStatusLine())
	}
	notifier := notify.Fanout{
		notify.NewToasts(sinks...),
		app.NewContactAlerter(contactRepo, alertRepo, logger),
	}

	caps := DetectCapabilities(term)
	service := app.NewEmergencyService(ctx, app.EmergencyDeps{
		Notifier:      notifier,
		Geolocator:    caps.Geolocator,
		Sharer:        caps.Sharer,
		Audio:         caps.Audio,
		Scheduler:     platform.RealScheduler{},
		Clock:         platform.SystemClock{},
		Logger:        logger.With("session", sessionID),
		SoundResource: cfg.SoundPath,
	})
	logger.InfoContext(ctx, "emergency screen mounted", "session", sessionID)
	return service, sessionID
}

// ContactAdapter returns a new ContactAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func ContactAdapter() *cliadapter.ContactAdapter {
	return ContactAdapterWithOutput(os.Stdout)
}

// ContactAdapterWithOutput returns a new ContactAdapter writing to the given output.
func ContactAdapterWithOutput(out io.Writer) *cliadapter.ContactAdapter {
	once.Do(initServices)
	return cliadapter.NewContactAdapter(contactService, out)
}

// NotificationAdapter returns a new NotificationAdapter writing to stdout.
func NotificationAdapter() *cliadapter.NotificationAdapter {
	return NotificationAdapterWithOutput(os.Stdout)
}

// NotificationAdapterWithOutput returns a new NotificationAdapter writing to the given output.
func NotificationAdapterWithOutput(out io.Writer) *cliadapter.NotificationAdapter {
	once.Do(initServices)
	return cliadapter.NewNotificationAdapter(notificationService, out)
}
