package cmd

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pknoche/pr-file-search/internal/config"
	"github.com/pknoche/pr-file-search/internal/repository"
)

// container holds all the dependencies for the application.
type container struct {
	cfg    *config.Config
	logger *zap.Logger
	fs     afero.Fs
}

// newContainer creates a new container with all the dependencies.
func newContainer() (*container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}
	return &container{
		cfg:    cfg,
		logger: logger,
		fs:     afero.NewOsFs(),
	}, nil
}

// newLogger builds the console logger used for progress output. Summary
// output goes to stdout via the reporter; the log stream stays on stderr.
func newLogger() (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg.Build()
}

// newGithubRepository builds the API client. The token check happens here
// rather than at load time so config-only commands still work without one.
func (c *container) newGithubRepository() (repository.GithubRepository, error) {
	if err := c.cfg.ValidateForSearch(); err != nil {
		return nil, err
	}
	return repository.NewGithubRepository(
		c.cfg.GithubToken,
		c.cfg.GithubOwner,
		c.cfg.GithubRepo,
		c.cfg.APIBaseURL,
		c.cfg.PageSize,
	)
}

// InitCommands initializes all commands with their dependencies
func InitCommands() error {
	c, err := newContainer()
	if err != nil {
		return err
	}
	rootCmd.AddCommand(NewSearchCmd(c))
	rootCmd.AddCommand(newVersionCmd())
	return nil
}
