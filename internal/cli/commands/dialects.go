package commands

import (
	"sort"
	"strings"

	"github.com/aka-chestnut/sql-formatter/pkg/dialect"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	// Make the full tag set available.
	_ "github.com/aka-chestnut/sql-formatter/pkg/dialects"
)

// NewDialectsCommand creates the dialects listing command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported SQL dialects",
		Long:  `Display every dialect tag the formatter accepts for --language.`,
		Run: func(cmd *cobra.Command, _ []string) {
			aliasesByTag := make(map[string][]string)
			for alias, tag := range dialect.Aliases() {
				aliasesByTag[tag] = append(aliasesByTag[tag], alias)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Tag", "Aliases", "Line comments", "Identifier quotes"})
			for _, tag := range dialect.List() {
				d, _ := dialect.Get(tag)
				aliases := aliasesByTag[tag]
				sort.Strings(aliases)
				t.AppendRow(table.Row{
					tag,
					strings.Join(aliases, ", "),
					strings.Join(d.LineCommentPrefixes(), " "),
					identQuotes(d),
				})
			}
			t.Render()
		},
	}
}

// DialectTags returns the registered tags for shell completion.
func DialectTags() []string {
	return dialect.List()
}

func identQuotes(d *dialect.Dialect) string {
	var quotes []string
	for _, style := range d.IdentStyles() {
		switch style {
		case dialect.DoubleQuoteIdent:
			quotes = append(quotes, `".."`)
		case dialect.BacktickIdent:
			quotes = append(quotes, "`..`")
		case dialect.BracketIdent:
			quotes = append(quotes, "[..]")
		}
	}
	return strings.Join(quotes, " ")
}
