package cli

import (
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/alnah/go-promptgen/internal/config"
	"github.com/alnah/go-promptgen/internal/logger"
)

// Env holds injectable dependencies for CLI commands.
// This is the central injection point for testing CLI commands in isolation.
//
// All fields have sensible defaults via DefaultEnv(). Tests can override
// specific fields using the With* options or by creating a custom Env.
//
// Env must not be nil when passed to command functions. Use DefaultEnv()
// or NewEnv() to create a valid instance.
type Env struct {
	// I/O and environment
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
	Now    func() time.Time

	// IsTerminal reports whether r is an interactive terminal.
	IsTerminal func(r io.Reader) bool

	// Collaborators
	ConfigLoader ConfigLoader
	Clipboard    Clipboard
	Logger       *zap.Logger
}

// ConfigLoader loads and provides access to configuration.
type ConfigLoader interface {
	Load() (config.Config, error)
}

// Clipboard receives generated prompts for pasting into an AI tool.
type Clipboard interface {
	WriteAll(text string) error
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithStdin sets the stdin reader.
func WithStdin(r io.Reader) EnvOption {
	return func(e *Env) {
		e.Stdin = r
	}
}

// WithStdout sets the stdout writer.
func WithStdout(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stdout = w
	}
}

// WithStderr sets the stderr writer.
func WithStderr(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stderr = w
	}
}

// WithGetenv sets the environment variable getter.
func WithGetenv(fn func(string) string) EnvOption {
	return func(e *Env) {
		e.Getenv = fn
	}
}

// WithNow sets the time provider.
func WithNow(fn func() time.Time) EnvOption {
	return func(e *Env) {
		e.Now = fn
	}
}

// WithIsTerminal sets the terminal detector.
func WithIsTerminal(fn func(io.Reader) bool) EnvOption {
	return func(e *Env) {
		e.IsTerminal = fn
	}
}

// WithConfigLoader sets the config loader.
func WithConfigLoader(l ConfigLoader) EnvOption {
	return func(e *Env) {
		e.ConfigLoader = l
	}
}

// WithClipboard sets the clipboard.
func WithClipboard(c Clipboard) EnvOption {
	return func(e *Env) {
		e.Clipboard = c
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) EnvOption {
	return func(e *Env) {
		e.Logger = l
	}
}

// DefaultEnv returns an Env with production defaults.
// Logging is disabled until SetupLogger is called.
func DefaultEnv() *Env {
	return &Env{
		Stdin:        os.Stdin,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Getenv:       os.Getenv,
		Now:          time.Now,
		IsTerminal:   isTerminal,
		ConfigLoader: &defaultConfigLoader{},
		Clipboard:    &systemClipboard{},
		Logger:       logger.Nop(),
	}
}

// NewEnv creates an Env with the given options applied to defaults.
func NewEnv(opts ...EnvOption) *Env {
	env := DefaultEnv()
	for _, opt := range opts {
		opt(env)
	}
	return env
}

// SetupLogger replaces env.Logger with a console logger on env.Stderr at
// the given level. An empty level keeps logging disabled.
func SetupLogger(env *Env, level string) error {
	if level == "" {
		return nil
	}
	l, err := logger.New(logger.Config{
		Level:    level,
		Encoding: logger.EncodingConsole,
		Output:   env.Stderr,
	})
	if err != nil {
		return err
	}
	env.Logger = l
	return nil
}

// ---------------------------------------------------------------------------
// Default implementations - delegate to real packages
// ---------------------------------------------------------------------------

// defaultConfigLoader implements ConfigLoader using the config package.
type defaultConfigLoader struct{}

func (defaultConfigLoader) Load() (config.Config, error) {
	return config.Load()
}

// systemClipboard implements Clipboard with the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}

// isTerminal reports whether r is a file attached to a terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- fd fits in int
}

// Compile-time interface verification.
var (
	_ ConfigLoader = (*defaultConfigLoader)(nil)
	_ Clipboard    = (*systemClipboard)(nil)
)
