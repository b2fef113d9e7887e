package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jray-8/us-presidents-dataset/internal/codec"
	"github.com/jray-8/us-presidents-dataset/internal/model"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <snapshot.csv>",
	Short: "Load a saved snapshot and print it",
	Long: `Show reads a CSV snapshot written by 'presidents fetch --save' and
prints its rows, proving the file loads back into the typed dataset.

Example:
  presidents show data/us_presidents_cleaned.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	table, err := codec.ReadFile(args[0])
	if err != nil {
		return err
	}

	for _, p := range table {
		fmt.Printf("%2d. %s\n", p.Number, describe(p))
	}
	fmt.Printf("%d rows\n", len(table))
	return nil
}

func describe(p model.President) string {
	var b strings.Builder

	if p.Name != nil {
		b.WriteString(*p.Name)
	} else {
		b.WriteString("(unknown)")
	}

	if p.Birth != nil {
		if p.Death != nil {
			fmt.Fprintf(&b, " (%d–%d)", *p.Birth, *p.Death)
		} else {
			fmt.Fprintf(&b, " (b. %d)", *p.Birth)
		}
	}

	if parties := joinList(p.Party); parties != "" {
		b.WriteString("  ")
		b.WriteString(parties)
	}
	if vps := joinList(p.VicePresident); vps != "" {
		b.WriteString("  VP: ")
		b.WriteString(vps)
	}
	return b.String()
}

func joinList(items []*string) string {
	var parts []string
	for _, item := range items {
		if item != nil {
			parts = append(parts, *item)
		}
	}
	return strings.Join(parts, ", ")
}
