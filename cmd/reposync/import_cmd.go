package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <repository>",
	Short: "Import a repository's eligible files into a local directory",
	Long: `Import fetches the file tree of a hosted repository and writes every
eligible text/source file under the output directory. The repository may be
given as a URL or as owner/name shorthand.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		branch, _ := cmd.Flags().GetString("branch")
		outDir, _ := cmd.Flags().GetString("out")

		engine := newEngine()
		result, err := engine.ImportBranch(cmd.Context(), args[0], branch)
		if err != nil {
			return err
		}

		if outDir == "" {
			outDir = result.RepoName
		}

		var total uint64
		for _, file := range result.Files {
			dest := filepath.Join(outDir, filepath.FromSlash(file.Path))
			if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(dest, []byte(file.Content), 0o644); err != nil {
				return err
			}
			total += uint64(len(file.Content))
			fmt.Printf("  %s %s (%s)\n", green("+"), file.Path, humanize.Bytes(uint64(len(file.Content))))
		}

		for _, failure := range result.Failures {
			fmt.Printf("  %s %s: %v\n", red("!"), failure.Path, failure.Err)
		}

		fmt.Printf("imported %s@%s: %d files, %s -> %s\n",
			cyan(result.RepoName), cyan(result.Branch),
			len(result.Files), humanize.Bytes(total), outDir)
		return nil
	},
}

func init() {
	importCmd.Flags().StringP("branch", "b", "", "branch to import (default: repository default branch)")
	importCmd.Flags().StringP("out", "o", "", "output directory (default: repository name)")
}
