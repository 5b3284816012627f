package cli

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/ibiology/itol/pkg/errors"
)

//go:embed docs/*.md
var docsFS embed.FS

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs [topic]",
		Short: MsgDocsShort,
		Long:  MsgDocsLong,
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return listTopics(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				fmt.Fprintln(out, "Available documentation topics:")
				for _, name := range listTopics() {
					fmt.Fprintf(out, "  %s\n", name)
				}
				fmt.Fprintln(out, "\nUse 'itol docs <topic>' to read a topic.")
				return nil
			}

			content, err := docsFS.ReadFile("docs/" + args[0] + ".md")
			if err != nil {
				return errors.Newf(errors.ErrInvalidInput,
					"unknown topic %q, run 'itol docs' for the list of topics", args[0])
			}
			fmt.Fprint(out, renderMarkdown(string(content)))
			return nil
		},
	}
}

func listTopics() []string {
	entries, err := docsFS.ReadDir("docs")
	if err != nil {
		return nil
	}
	topics := make([]string, 0, len(entries))
	for _, e := range entries {
		topics = append(topics, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(topics)
	return topics
}

// renderMarkdown converts markdown to terminal output, falling back to
// the raw text when the renderer cannot be set up.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
