package runner

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lcrostarosa/shamir-vault/internal/config"
	"github.com/lcrostarosa/shamir-vault/internal/logging"
)

// CommandContext provides shared dependencies to command handlers.
// OperationID is generated once per invocation and attached to the
// WithLogging interceptor's log lines and to anything logged through
// Logger(). Lines a command logs through the package-level logging
// functions do not carry it.
type CommandContext struct {
	// Config is the loaded configuration (may be nil if not initialized)
	Config *config.Config

	// ConfigErr is the error from loading config, if any
	ConfigErr error

	// OperationID correlates every log line emitted during this command.
	OperationID string
}

// NewContext creates a new CommandContext with the given config.
func NewContext(cfg *config.Config, cfgErr error) *CommandContext {
	return &CommandContext{
		Config:      cfg,
		ConfigErr:   cfgErr,
		OperationID: uuid.NewString(),
	}
}

// Logger returns a zap logger with this operation's correlation ID attached.
func (c *CommandContext) Logger() *zap.Logger {
	return logging.L().With(zap.String("operation_id", c.OperationID))
}

// SaveConfig saves the configuration with standardized error wrapping.
func (c *CommandContext) SaveConfig() error {
	if c.Config == nil {
		return config.ErrNotConfigured()
	}
	if err := c.Config.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// HasConfig returns true if config is loaded successfully.
func (c *CommandContext) HasConfig() bool {
	return c.Config != nil && c.ConfigErr == nil
}
