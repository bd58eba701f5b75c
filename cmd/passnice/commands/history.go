package commands

import (
	"errors"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var historyLimit int64

func init() {
	historyCmd.Flags().Int64VarP(&historyLimit, "limit", "n", 20, "Maximum amount of verifications to list.")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history --db <path> [--limit <n>]",
	Short: "Lists the most recent confirmed verifications.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if history == nil {
			return errors.New("no database configured, pass --db or set \"database\" in the config")
		}
		items, err := history.ListVerifications(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Verified at", "Method", "Carrier", "Name", "Birthdate", "Gender", "Phone number"})
		for _, v := range items {
			t.AppendRow(table.Row{
				v.ID,
				time.Unix(v.VerifiedAt, 0).In(clock.Location()).Format(time.ANSIC),
				v.Method,
				v.Carrier,
				v.Name,
				v.Birthdate,
				v.Gender,
				v.PhoneNumber,
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
		return nil
	},
}
