package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/require"
)

func TestPopulateRepositoryDefaultsUsesEnvSlug(t *testing.T) {
	t.Setenv("GITHUB_REPOSITORY", "acme/widgets")
	t.Setenv("GITHUB_REPOSITORY_OWNER", "")
	t.Setenv("GITHUB_REPOSITORY_NAME", "")
	cfg := Config{}
	err := populateRepositoryDefaults(&cfg)
	require.NoError(t, err)
	require.Equal(t, "acme", cfg.GithubOwner)
	require.Equal(t, "widgets", cfg.GithubRepo)
}

func TestPopulateRepositoryDefaultsFallsBackToGitRemote(t *testing.T) {
	t.Setenv("GITHUB_REPOSITORY", "")
	t.Setenv("GITHUB_REPOSITORY_OWNER", "")
	t.Setenv("GITHUB_REPOSITORY_NAME", "")
	tmp := t.TempDir()
	repo, err := git.PlainInit(tmp, false)
	require.NoError(t, err)
	_, err = repo.CreateRemote(
		&gitconfig.RemoteConfig{Name: "origin", URLs: []string{"git@github.com:octo/widget.git"}},
	)
	require.NoError(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
	cfg := Config{}
	err = populateRepositoryDefaults(&cfg)
	require.NoError(t, err)
	require.Equal(t, "octo", cfg.GithubOwner)
	require.Equal(t, "widget", cfg.GithubRepo)
}

func TestParseGitRemoteURL(t *testing.T) {
	cases := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
	}{
		{name: "https clone", url: "https://github.com/org/project.git", wantOwner: "org", wantRepo: "project"},
		{name: "ssh", url: "git@github.com:org/project.git", wantOwner: "org", wantRepo: "project"},
		{name: "ssh without suffix", url: "git@github.com:org/project", wantOwner: "org", wantRepo: "project"},
		{name: "file path", url: filepath.Join("tmp", "org", "project"), wantOwner: "org", wantRepo: "project"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			owner, repo, err := parseGitRemoteURL(tc.url)
			require.NoError(t, err)
			require.Equal(t, tc.wantOwner, owner)
			require.Equal(t, tc.wantRepo, repo)
		})
	}
}

func TestValidateGitHubToken(t *testing.T) {
	t.Run("Should accept a classic PAT", func(t *testing.T) {
		require.NoError(t, ValidateGitHubToken(strings.Repeat("a", 40)))
	})
	t.Run("Should accept an app token", func(t *testing.T) {
		require.NoError(t, ValidateGitHubToken("ghs_"+strings.Repeat("A", 36)))
	})
	t.Run("Should reject a short token", func(t *testing.T) {
		require.Error(t, ValidateGitHubToken("short"))
	})
	t.Run("Should reject an unrecognized format", func(t *testing.T) {
		require.Error(t, ValidateGitHubToken(strings.Repeat("z", 40)))
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			GithubOwner: "octo",
			GithubRepo:  "widget",
			PageSize:    100,
		}
	}
	t.Run("Should accept a valid config without token", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})
	t.Run("Should reject a page size over 100", func(t *testing.T) {
		cfg := valid()
		cfg.PageSize = 101
		require.ErrorContains(t, cfg.Validate(), "page_size")
	})
	t.Run("Should reject a negative concurrency", func(t *testing.T) {
		cfg := valid()
		cfg.Concurrency = -1
		require.ErrorContains(t, cfg.Validate(), "concurrency")
	})
	t.Run("Should reject a relative api_base_url", func(t *testing.T) {
		cfg := valid()
		cfg.APIBaseURL = "/api/v3"
		require.ErrorContains(t, cfg.Validate(), "api_base_url")
	})
	t.Run("Should reject a missing owner", func(t *testing.T) {
		cfg := valid()
		cfg.GithubOwner = ""
		require.ErrorContains(t, cfg.Validate(), "owner")
	})
}

func TestConfig_ValidateForSearch(t *testing.T) {
	t.Run("Should require a token", func(t *testing.T) {
		cfg := &Config{GithubOwner: "octo", GithubRepo: "widget", PageSize: 100}
		require.ErrorContains(t, cfg.ValidateForSearch(), "github_token is required")
	})
	t.Run("Should require a repository", func(t *testing.T) {
		cfg := &Config{GithubToken: strings.Repeat("a", 40), PageSize: 100}
		require.ErrorContains(t, cfg.ValidateForSearch(), "repository is required")
	})
	t.Run("Should pass with a token present", func(t *testing.T) {
		cfg := &Config{
			GithubToken: strings.Repeat("a", 40),
			GithubOwner: "octo",
			GithubRepo:  "widget",
			PageSize:    100,
		}
		require.NoError(t, cfg.ValidateForSearch())
	})
}
