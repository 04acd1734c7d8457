package cmd

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/quiltmoor/passgit/internal/store"
	"github.com/quiltmoor/passgit/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list [pattern]",
	Aliases: []string{"ls"},
	Short:   "List entries in the password store",
	Long: `List every entry in the password store as an indented tree.

An optional pattern narrows the listing. The pattern is matched against
full entry names with glob syntax (* matches within a path component,
** across components); a bare folder name lists everything below it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := store.New(Logger)

		names, err := s.List()
		if err != nil {
			fmt.Println(describeError(err))
			return nil
		}

		if len(args) == 1 {
			names = filterNames(names, args[0])
		}

		if len(names) == 0 {
			if len(args) == 1 {
				fmt.Println(ui.Warning.Sprint("No entries match ") + ui.Highlight.Sprint(args[0]))
			} else {
				fmt.Println(ui.Warning.Sprint("The password store is empty."))
				fmt.Println("Add an entry with " + ui.Code.Sprint("passgit insert <name>"))
			}
			return nil
		}

		fmt.Println(ui.Info.Sprint("Password Store"))
		fmt.Print(ui.RenderTree(names))
		return nil
	},
}

// filterNames keeps entries matching the glob pattern, or living under it
// when the pattern names a folder.
func filterNames(names []string, pattern string) []string {
	pattern = strings.TrimSuffix(pattern, "/")

	var kept []string
	for _, name := range names {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			kept = append(kept, name)
			continue
		}
		if strings.HasPrefix(name, pattern+"/") {
			kept = append(kept, name)
		}
	}
	return kept
}
