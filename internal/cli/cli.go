// Package cli implements the snapdock command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/snapdock/pkg/buildinfo"
	"github.com/matzehuels/snapdock/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "snapdock"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "snapdock",
		Short:        "Snapdock is an interactive board of snapping blocks",
		Long:         `Snapdock is an interactive board of draggable rectangular blocks that magnetically snap together, end-to-end, into vertical stacks. It ships a terminal board, a JSON debug dump, a Graphviz chain visualizer, a read-model HTTP server, and named board snapshots.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.boardCommand())
	root.AddCommand(c.dumpCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.snapshotCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Store Factory
// =============================================================================

// storeFlags holds the snapshot backend selection shared by commands that
// read or write snapshots.
type storeFlags struct {
	backend   string
	redisAddr string
	mongoURI  string
}

// register adds the backend flags to a command.
func (f *storeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.backend, "backend", "file", "snapshot backend: file, redis, mongo, none")
	cmd.Flags().StringVar(&f.redisAddr, "redis-addr", "localhost:6379", "redis address (backend=redis)")
	cmd.Flags().StringVar(&f.mongoURI, "mongo-uri", "mongodb://localhost:27017", "mongo URI (backend=mongo)")
}

// newStore opens the selected snapshot backend.
func (f *storeFlags) newStore(ctx context.Context) (store.Store, error) {
	switch f.backend {
	case "redis":
		return store.NewRedisStore(ctx, store.RedisConfig{Addr: f.redisAddr})
	case "mongo":
		return store.NewMongoStore(ctx, store.MongoConfig{URI: f.mongoURI})
	case "none":
		return store.NewNullStore(), nil
	default:
		dir, err := dataDir()
		if err != nil {
			return nil, err
		}
		return store.NewFileStore(filepath.Join(dir, "snapshots"))
	}
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/snapdock/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// dataDir returns the data directory using XDG standard (~/.local/share/snapdock/).
func dataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName), nil
}
