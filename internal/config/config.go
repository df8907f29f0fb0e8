package config

import (
	"bufio"
	"errors"
	"fmt"
	"maps"
	"net"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/alnah/go-promptgen/internal/tool"
)

// Config keys.
const (
	KeyOutputDir = "output-dir"
	KeyAITool    = "ai-tool"
	KeyAddr      = "addr"
	KeyDelay     = "delay"
)

// EnvPrefix is the prefix of every environment variable override.
const EnvPrefix = "PROMPTGEN"

// DefaultAddr is the listen address used by serve when none is configured.
const DefaultAddr = ":8080"

// Sentinel errors.
var (
	ErrUnknownKey   = errors.New("unknown config key")
	ErrInvalidKey   = errors.New("invalid config key")
	ErrInvalidValue = errors.New("invalid config value")
)

// keyOrder lists the supported keys in display order.
var keyOrder = []string{KeyOutputDir, KeyAITool, KeyAddr, KeyDelay}

// envNames maps each key to the suffix of its environment variable.
var envNames = map[string]string{
	KeyOutputDir: "OUTPUT_DIR",
	KeyAITool:    "AI_TOOL",
	KeyAddr:      "ADDR",
	KeyDelay:     "DELAY",
}

// Config holds user configuration loaded from ~/.config/go-promptgen/config
// and PROMPTGEN_* environment variables.
type Config struct {
	OutputDir string        `envconfig:"OUTPUT_DIR"`
	AITool    string        `envconfig:"AI_TOOL"`
	Addr      string        `envconfig:"ADDR"`
	Delay     time.Duration `envconfig:"DELAY"`
	LogLevel  string        `envconfig:"LOG_LEVEL"`
}

// ListenAddr returns Addr, or DefaultAddr when unset.
func (c Config) ListenAddr() string {
	if c.Addr == "" {
		return DefaultAddr
	}
	return c.Addr
}

// Keys returns the supported config keys in display order.
func Keys() []string {
	return slices.Clone(keyOrder)
}

// IsKey reports whether key is a supported config key.
func IsKey(key string) bool {
	return slices.Contains(keyOrder, key)
}

// EnvVar returns the environment variable that overrides key,
// e.g. PROMPTGEN_OUTPUT_DIR for output-dir.
func EnvVar(key string) string {
	return EnvPrefix + "_" + envNames[key]
}

// dir returns the configuration directory path.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config/go-promptgen.
func dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "go-promptgen"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "go-promptgen"), nil
}

// path returns the full path to the config file.
func path() (string, error) {
	d, err := dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "config"), nil
}

// Load reads the configuration file and environment variables.
// Precedence: config file values, then PROMPTGEN_* environment variables.
// Returns an empty Config if the file doesn't exist (not an error).
func Load() (Config, error) {
	var cfg Config

	p, err := path()
	if err != nil {
		return cfg, err
	}

	data, err := parseFile(p)
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	cfg.OutputDir = data[KeyOutputDir]
	cfg.AITool = data[KeyAITool]
	cfg.Addr = data[KeyAddr]
	if d := data[KeyDelay]; d != "" {
		if cfg.Delay, err = parseDelay(d); err != nil {
			return cfg, err
		}
	}

	var env Config
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	fillGaps(&cfg, env)

	return cfg, nil
}

// fillGaps copies env values into fields the file left unset.
func fillGaps(cfg *Config, env Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = env.OutputDir
	}
	if cfg.AITool == "" {
		cfg.AITool = env.AITool
	}
	if cfg.Addr == "" {
		cfg.Addr = env.Addr
	}
	if cfg.Delay == 0 {
		cfg.Delay = env.Delay
	}
	cfg.LogLevel = env.LogLevel
}

// parseFile reads a key=value config file.
// Format: one key=value per line, # comments, empty lines ignored.
func parseFile(p string) (map[string]string, error) {
	f, err := os.Open(p) // #nosec G304 -- config path is constructed from home dir
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	data := make(map[string]string)
	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("invalid syntax at line %d: %q", lineNum, line)
		}
		data[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return data, nil
}

// Save writes a single key=value to the config file.
// Creates the config directory and file if they don't exist.
// Preserves existing key=value pairs but discards comments.
func Save(key, value string) error {
	if strings.TrimSpace(key) == "" || strings.ContainsAny(key, "=#\n") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if strings.Contains(value, "\n") {
		return fmt.Errorf("%w: value must be a single line", ErrInvalidValue)
	}

	p, err := path()
	if err != nil {
		return err
	}

	d := filepath.Dir(p)
	if err := os.MkdirAll(d, 0750); err != nil { // #nosec G301 -- user config dir
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	existing, _ := parseFile(p)
	if existing == nil {
		existing = make(map[string]string)
	}
	existing[key] = value

	return writeFile(p, existing)
}

// writeFile writes the config map to a file, keys sorted.
func writeFile(p string, data map[string]string) error {
	// #nosec G302 G304 -- config file with standard permissions, path from home dir
	f, err := os.OpenFile(p, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot write config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	for _, key := range slices.Sorted(maps.Keys(data)) {
		if _, err := fmt.Fprintf(f, "%s=%s\n", key, data[key]); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	return nil
}

// Get reads a single value from the config file.
// Returns empty string if the key doesn't exist.
func Get(key string) (string, error) {
	p, err := path()
	if err != nil {
		return "", err
	}

	data, err := parseFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}

	return data[key], nil
}

// List returns all config file values as a map.
func List() (map[string]string, error) {
	p, err := path()
	if err != nil {
		return nil, err
	}

	data, err := parseFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}

	return data, nil
}

// Normalize validates value for key and returns the form to store.
// output-dir is expanded and created, ai-tool is canonicalized, addr must be
// host:port, delay must be a non-negative duration.
func Normalize(key, value string) (string, error) {
	switch key {
	case KeyOutputDir:
		expanded := ExpandPath(value)
		if err := EnsureOutputDir(expanded); err != nil {
			return "", fmt.Errorf("%w: output-dir: %v", ErrInvalidValue, err)
		}
		return expanded, nil
	case KeyAITool:
		t, err := tool.Parse(value)
		if err != nil {
			return "", fmt.Errorf("%w: ai-tool: %v", ErrInvalidValue, err)
		}
		return t.String(), nil
	case KeyAddr:
		if _, _, err := net.SplitHostPort(value); err != nil {
			return "", fmt.Errorf("%w: addr: %v", ErrInvalidValue, err)
		}
		return value, nil
	case KeyDelay:
		d, err := parseDelay(value)
		if err != nil {
			return "", err
		}
		return d.String(), nil
	default:
		return "", fmt.Errorf("%w %q (valid keys: %v)", ErrUnknownKey, key, keyOrder)
	}
}

func parseDelay(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: delay: %v", ErrInvalidValue, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: delay must not be negative", ErrInvalidValue)
	}
	return d, nil
}

// ResolveOutputPath resolves the final output path using the following precedence:
//  1. If output is absolute, use it as-is
//  2. If output is relative and outputDir is set, join them
//  3. If output is empty, use defaultName in outputDir (or cwd if no outputDir)
//
// All paths are cleaned using filepath.Clean.
func ResolveOutputPath(output, outputDir, defaultName string) string {
	if output != "" && filepath.IsAbs(output) {
		return filepath.Clean(output)
	}

	if output != "" {
		if outputDir != "" {
			return filepath.Clean(filepath.Join(outputDir, output))
		}
		return filepath.Clean(output)
	}

	if outputDir != "" {
		return filepath.Clean(filepath.Join(outputDir, defaultName))
	}
	return filepath.Clean(defaultName)
}

// EnsureOutputDir checks that d is a writable directory, creating it if
// needed.
func EnsureOutputDir(d string) error {
	if d == "" {
		return fmt.Errorf("output-dir cannot be empty")
	}
	d = ExpandPath(d)

	info, err := os.Stat(d)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(d, 0750); err != nil { // #nosec G301 -- user output dir
				return fmt.Errorf("cannot create directory: %w", err)
			}
			return nil
		}
		return fmt.Errorf("cannot access directory: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", d)
	}

	testFile := filepath.Join(d, ".go-promptgen-write-test")
	f, err := os.Create(testFile) // #nosec G304 -- path is constructed from validated dir
	if err != nil {
		return fmt.Errorf("directory is not writable: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(testFile)
		return fmt.Errorf("directory is not writable: %w", err)
	}
	_ = os.Remove(testFile)

	return nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(p string) string {
	if strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, p[2:])
	}
	return p
}

// Dir returns the configuration directory path.
func Dir() (string, error) {
	return dir()
}
