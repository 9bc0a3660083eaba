package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/internal/objects"
	"github.com/gitlet-vcs/gitlet/internal/staging"
)

var (
	diffCached bool
	diffColor  bool
)

var diffCmd = &cobra.Command{
	Use:   "diff [<commit id>]",
	Short: "Show line changes between a commit and the working tree",
	Long: `Show per-file line changes. With no arguments, compares the head
commit against the working tree. With --cached, compares the head commit
against the staged snapshot. With a commit id, compares that commit against
the working tree.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := core.FindRepository()
		if err != nil {
			return err
		}

		base, err := headCommit(repo)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			hash, err := objects.ResolvePrefix(repo, args[0])
			if err != nil {
				return err
			}
			base, err = objects.GetCommit(repo, hash)
			if err != nil {
				return err
			}
		}

		if diffCached {
			ix, err := staging.LoadIndex(repo)
			if err != nil {
				return err
			}
			staged := ix.ApplyTo(base.BlobMap)
			return showDiff(repo, base.BlobMap, mapKeys(staged), blobReader(repo, staged))
		}
		working, err := core.ListWorkingFiles(repo)
		if err != nil {
			return err
		}
		return showDiff(repo, base.BlobMap, working, worktreeReader(repo))
	},
}

// contentReader resolves a filename to its right-hand-side content; the
// second result reports whether the file exists on that side.
type contentReader func(name string) ([]byte, bool, error)

func blobReader(repo *core.Repository, blobMap map[string]string) contentReader {
	return func(name string) ([]byte, bool, error) {
		hash, ok := blobMap[name]
		if !ok {
			return nil, false, nil
		}
		content, err := objects.GetBlob(repo, hash)
		if err != nil {
			return nil, false, err
		}
		return content, true, nil
	}
}

func worktreeReader(repo *core.Repository) contentReader {
	return func(name string) ([]byte, bool, error) {
		path := repo.WorkPath(name)
		if !core.IsPlainFile(path) {
			return nil, false, nil
		}
		content, err := core.ReadFileContent(path)
		if err != nil {
			return nil, false, err
		}
		return content, true, nil
	}
}

func mapKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	return keys
}

// showDiff prints line diffs for every file that differs between the base
// snapshot and the right-hand side.
func showDiff(repo *core.Repository, base map[string]string, rightNames []string, right contentReader) error {
	names := make(map[string]bool, len(base))
	for name := range base {
		names[name] = true
	}
	for _, name := range rightNames {
		names[name] = true
	}
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	for _, name := range sorted {
		var left []byte
		var err error
		if hash, ok := base[name]; ok {
			left, err = objects.GetBlob(repo, hash)
			if err != nil {
				return err
			}
		}
		rightContent, rightExists, err := right(name)
		if err != nil {
			return err
		}
		if _, leftExists := base[name]; !leftExists && !rightExists {
			continue
		}
		if string(left) == string(rightContent) {
			continue
		}
		fmt.Printf("diff --gitlet a/%s b/%s\n", name, name)
		printLineDiff(string(left), string(rightContent))
	}
	return nil
}

// printLineDiff prints a line-mode diff with -/+ prefixes.
func printLineDiff(left, right string) {
	dmp := diffmatchpatch.New()
	leftChars, rightChars, lines := dmp.DiffLinesToChars(left, right)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(leftChars, rightChars, false), lines)

	addLine := color.New(color.FgGreen).SprintfFunc()
	delLine := color.New(color.FgRed).SprintfFunc()

	for _, d := range diffs {
		for _, line := range splitDiffLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				if diffColor {
					fmt.Println(addLine("+%s", line))
				} else {
					fmt.Printf("+%s\n", line)
				}
			case diffmatchpatch.DiffDelete:
				if diffColor {
					fmt.Println(delLine("-%s", line))
				} else {
					fmt.Printf("-%s\n", line)
				}
			default:
				fmt.Printf(" %s\n", line)
			}
		}
	}
}

func splitDiffLines(text string) []string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	return lines
}

func init() {
	diffCmd.Flags().BoolVar(&diffCached, "cached", false, "Compare the head commit against the staged snapshot")
	diffCmd.Flags().BoolVar(&diffColor, "color", false, "Color added and removed lines")
	rootCmd.AddCommand(diffCmd)
}
