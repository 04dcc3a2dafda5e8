package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:           "folio",
		Short:         "folio serves a personal site of posts and code snippets",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with local overrides")

	rootCmd.AddCommand(newServeCommand(&envFile))
	rootCmd.AddCommand(newPostsCommand(&envFile))
	return rootCmd
}
