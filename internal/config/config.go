package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/spf13/viper"
)

type Config struct {
	GithubToken string `mapstructure:"github_token"`
	GithubOwner string `mapstructure:"github_owner"`
	GithubRepo  string `mapstructure:"github_repo"`
	APIBaseURL  string `mapstructure:"api_base_url"`
	PageSize    int    `mapstructure:"page_size"`
	Concurrency int    `mapstructure:"concurrency"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		PageSize: 100,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// GitHub token is optional at load time - only validate if provided
	if c.GithubToken != "" {
		if err := ValidateGitHubToken(c.GithubToken); err != nil {
			return fmt.Errorf("invalid github_token: %w", err)
		}
	}
	// Owner/repo may still be absent at load time when nothing could be
	// inferred; commands that need them require them via ValidateForSearch.
	if c.GithubOwner != "" || c.GithubRepo != "" {
		if err := ValidateGitHubOwnerRepo(c.GithubOwner, c.GithubRepo); err != nil {
			return fmt.Errorf("invalid github configuration: %w", err)
		}
	}
	if c.PageSize < 1 || c.PageSize > 100 {
		return fmt.Errorf("page_size must be between 1 and 100, got %d", c.PageSize)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency cannot be negative, got %d", c.Concurrency)
	}
	if c.APIBaseURL != "" {
		parsed, err := url.Parse(c.APIBaseURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("api_base_url must be an absolute URL, got %q", c.APIBaseURL)
		}
	}
	return nil
}

// ValidateForSearch validates that everything a search run needs is
// present. A missing token or repository is a configuration error, not a
// network error - the run never starts without them.
func (c *Config) ValidateForSearch() error {
	if c.GithubToken == "" {
		return fmt.Errorf("github_token is required: set GITHUB_TOKEN or github_token in the config file")
	}
	if c.GithubOwner == "" || c.GithubRepo == "" {
		return fmt.Errorf("repository is required: set GITHUB_OWNER and GITHUB_REPO or run inside a clone with an origin remote")
	}
	return c.Validate()
}

// ValidateGitHubToken validates GitHub token format (exported for reuse)
func ValidateGitHubToken(token string) error {
	token = strings.TrimSpace(token)
	if len(token) < 40 {
		return fmt.Errorf("token too short: expected at least 40 characters")
	}
	// Validate token format patterns
	classicPAT := regexp.MustCompile(`^[a-fA-F0-9]{40}$`)
	fineGrainedPAT := regexp.MustCompile(`^github_pat_[a-zA-Z0-9_]{82}$`)
	appToken := regexp.MustCompile(`^ghs_[a-zA-Z0-9]{36}$`)
	oauthToken := regexp.MustCompile(`^gho_[a-zA-Z0-9]{36}$`)
	if !classicPAT.MatchString(token) &&
		!fineGrainedPAT.MatchString(token) &&
		!appToken.MatchString(token) &&
		!oauthToken.MatchString(token) {
		return fmt.Errorf("invalid token format")
	}
	return nil
}

// ValidateGitHubOwnerRepo validates GitHub owner and repository names (exported for reuse)
func ValidateGitHubOwnerRepo(owner, repo string) error {
	if owner == "" {
		return fmt.Errorf("owner cannot be empty")
	}
	if repo == "" {
		return fmt.Errorf("repository cannot be empty")
	}
	validName := regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9\-_.]*[a-zA-Z0-9]$|^[a-zA-Z0-9]$`)
	if !validName.MatchString(owner) {
		return fmt.Errorf("invalid owner format: %s", owner)
	}
	if len(owner) > 39 {
		return fmt.Errorf("owner too long: maximum 39 characters")
	}
	if !validName.MatchString(repo) {
		return fmt.Errorf("invalid repository format: %s", repo)
	}
	if len(repo) > 100 {
		return fmt.Errorf("repository too long: maximum 100 characters")
	}
	return nil
}

// populateRepositoryDefaults fills in owner/repo when the config does not
// set them: first from the GITHUB_REPOSITORY* environment (Actions
// convention), then from the local git origin remote.
func populateRepositoryDefaults(cfg *Config) error {
	if cfg.GithubOwner != "" && cfg.GithubRepo != "" {
		return nil
	}
	owner := os.Getenv("GITHUB_REPOSITORY_OWNER")
	repo := os.Getenv("GITHUB_REPOSITORY_NAME")
	if slug := os.Getenv("GITHUB_REPOSITORY"); slug != "" {
		if idx := strings.Index(slug, "/"); idx > 0 && idx < len(slug)-1 {
			if owner == "" {
				owner = slug[:idx]
			}
			if repo == "" {
				repo = slug[idx+1:]
			}
		}
	}
	if owner == "" || repo == "" {
		remoteOwner, remoteRepo, err := repositoryFromGitRemote()
		if err == nil {
			if owner == "" {
				owner = remoteOwner
			}
			if repo == "" {
				repo = remoteRepo
			}
		}
	}
	if cfg.GithubOwner == "" {
		cfg.GithubOwner = owner
	}
	if cfg.GithubRepo == "" {
		cfg.GithubRepo = repo
	}
	return nil
}

// repositoryFromGitRemote reads the origin remote of the repository
// containing the working directory.
func repositoryFromGitRemote() (string, string, error) {
	gitRepo, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", "", fmt.Errorf("failed to open git repository: %w", err)
	}
	remote, err := gitRepo.Remote("origin")
	if err != nil {
		return "", "", fmt.Errorf("failed to read origin remote: %w", err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", "", fmt.Errorf("origin remote has no URL")
	}
	return parseGitRemoteURL(urls[0])
}

// parseGitRemoteURL extracts owner and repository from an https, ssh, or
// plain path remote URL.
func parseGitRemoteURL(remoteURL string) (string, string, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(remoteURL), ".git")
	switch {
	case strings.Contains(trimmed, "://"):
		parsed, err := url.Parse(trimmed)
		if err != nil {
			return "", "", fmt.Errorf("failed to parse remote URL %q: %w", remoteURL, err)
		}
		trimmed = parsed.Path
	case strings.Contains(trimmed, ":"):
		// scp-like syntax: git@host:owner/repo
		trimmed = trimmed[strings.LastIndex(trimmed, ":")+1:]
	}
	trimmed = strings.Trim(filepath.ToSlash(trimmed), "/")
	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("cannot determine owner/repository from remote URL %q", remoteURL)
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".pr-file-search")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	// Configure environment variables
	viper.SetEnvPrefix("PR_FILE_SEARCH")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Explicitly bind environment variables
	// BindEnv allows multiple env vars - it will check them in order
	if err := viper.BindEnv("github_token", "GITHUB_TOKEN", "PR_FILE_SEARCH_GITHUB_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind github_token env: %w", err)
	}
	if err := viper.BindEnv("github_owner", "GITHUB_OWNER", "PR_FILE_SEARCH_GITHUB_OWNER"); err != nil {
		return nil, fmt.Errorf("failed to bind github_owner env: %w", err)
	}
	if err := viper.BindEnv("github_repo", "GITHUB_REPO", "PR_FILE_SEARCH_GITHUB_REPO"); err != nil {
		return nil, fmt.Errorf("failed to bind github_repo env: %w", err)
	}
	if err := viper.BindEnv("api_base_url", "GITHUB_API_URL", "PR_FILE_SEARCH_API_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind api_base_url env: %w", err)
	}
	if err := viper.BindEnv("page_size", "PR_FILE_SEARCH_PAGE_SIZE"); err != nil {
		return nil, fmt.Errorf("failed to bind page_size env: %w", err)
	}
	if err := viper.BindEnv("concurrency", "PR_FILE_SEARCH_CONCURRENCY"); err != nil {
		return nil, fmt.Errorf("failed to bind concurrency env: %w", err)
	}
	// Set defaults
	defaults := DefaultConfig()
	viper.SetDefault("page_size", defaults.PageSize)
	viper.SetDefault("concurrency", defaults.Concurrency)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := populateRepositoryDefaults(&config); err != nil {
		return nil, err
	}
	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
