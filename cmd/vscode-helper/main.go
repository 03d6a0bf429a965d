package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarmad-abualkaz/vscode-helper/internal/finder"
)

var rootCmd = &cobra.Command{
	Use:           "vscode-helper",
	Short:         "Search for files and open them in VS Code",
	Long:          `vscode-helper lets you search for files by name or content, and open them directly in VS Code.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	searchName    string
	searchContent string
	searchDir     string
)

// search prints one match per line on stdout and nothing when there are no
// matches; errors go to stderr with a non-zero exit.
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search for files by name or content",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		matches, err := finder.Search(finder.Options{
			Name:    searchName,
			Content: searchContent,
			Dir:     searchDir,
		})
		if err != nil {
			return err
		}
		for _, m := range matches {
			fmt.Fprintln(cmd.OutOrStdout(), m)
		}
		return nil
	},
}

var openDir bool

var openCmd = &cobra.Command{
	Use:   "open [path]",
	Short: "Open a file or directory in VS Code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := finder.Open(cmd.Context(), args[0], openDir)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchName, "name", "n", "", "Search files by name pattern")
	searchCmd.Flags().StringVarP(&searchContent, "content", "c", "", "Search files by content")
	searchCmd.Flags().StringVarP(&searchDir, "dir", "d", ".", "Directory to search in")

	openCmd.Flags().BoolVarP(&openDir, "dir", "d", false, "Open the containing directory instead of the file")

	rootCmd.AddCommand(searchCmd, openCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
