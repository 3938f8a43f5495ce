package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/forgeline/reposync/internal/gitsync"
)

var pushCmd = &cobra.Command{
	Use:   "push <owner/name> [dir]",
	Short: "Push a directory's files as one new commit on a branch",
	Long: `Push uploads every eligible file under dir (default: current directory)
and commits them on top of the branch tip. The push is rejected if another
writer advanced the branch in the meantime; re-run it to try again.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		branch, _ := cmd.Flags().GetString("branch")
		message, _ := cmd.Flags().GetString("message")

		repo, err := gitsync.ParseRepoRef(args[0])
		if err != nil {
			return err
		}

		dir := "."
		if len(args) == 2 {
			dir = args[1]
		}

		files, err := loadFiles(dir)
		if err != nil {
			return err
		}

		engine := newEngine()
		result, err := engine.Push(cmd.Context(), repo, branch, files, message)
		if err != nil {
			return err
		}

		for _, failure := range result.Failures {
			fmt.Printf("  %s dropped %s: %v\n", red("!"), failure.Path, failure.Err)
		}
		fmt.Printf("pushed %d files to %s@%s as %s\n",
			len(result.Pushed), cyan(repo.String()), cyan(result.Branch), green(result.CommitSHA))
		return nil
	},
}

func init() {
	pushCmd.Flags().StringP("branch", "b", "main", "target branch")
	pushCmd.Flags().StringP("message", "m", "", "commit message")
	_ = pushCmd.MarkFlagRequired("message")
}

// loadFiles walks dir and collects every eligible file as a FileRecord,
// applying the same name/extension/size rules the importer uses.
func loadFiles(dir string) ([]gitsync.FileRecord, error) {
	filter := gitsync.NewFileFilter()
	var files []gitsync.FileRecord

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !filter.EligiblePath(rel) {
			return nil
		}
		if info, err := d.Info(); err == nil && info.Size() > gitsync.MaxBlobSize {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		files = append(files, gitsync.FileRecord{
			Path:     rel,
			Content:  string(content),
			Language: gitsync.LanguageForPath(rel),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
