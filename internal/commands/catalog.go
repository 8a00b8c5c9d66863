// internal/commands/catalog.go
package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/personasweep/internal/catalog"
	"github.com/spf13/cobra"
)

// catalogCmd groups the reference-data listing commands.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the built-in reference data",
}

var catalogDocumentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "List the built-in discharge summaries",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.Default()
		for _, id := range cat.DocumentIDs() {
			text, err := cat.Document(id)
			if err != nil {
				return err
			}
			printEntry(id, text)
		}
		return nil
	},
}

var catalogQuestionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the built-in comprehension questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.Default()
		for _, id := range cat.QuestionIDs() {
			text, err := cat.Question(id)
			if err != nil {
				return err
			}
			printEntry(id, text)
		}
		return nil
	},
}

func printEntry(id, text string) {
	idStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	fmt.Println(idStyle.Render(id + ":"))
	fmt.Println(text)
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogDocumentsCmd)
	catalogCmd.AddCommand(catalogQuestionsCmd)
}
