package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pr-file-search",
	Short: "Search a repository's pull requests for ones that modified a file",
	Long: `pr-file-search pages through a GitHub repository's pull requests and
reports every pull request that modified a given file path.`,
}

func Execute() error {
	return rootCmd.Execute()
}
