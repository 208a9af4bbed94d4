package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDashboardCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show catalog and loan totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.engine.Counts(cmd.Context())
			if err != nil {
				return err
			}

			rows := [][]string{
				{"Titles", strconv.Itoa(c.TotalTitles)},
				{"Copies", strconv.Itoa(c.TotalCopies)},
				{"Members", strconv.Itoa(c.TotalUsers)},
				{"Active loans", strconv.Itoa(c.ActiveLoans)},
				{"Reservations", strconv.Itoa(c.Reservations)},
				{"Overdue", strconv.Itoa(c.OverdueCount)},
			}

			return renderTable(a.out, "Dashboard", []string{"Statistic", "Value"}, rows)
		},
	}
}

func newSeedCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Fill an empty catalog with the starter books and members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seeded, err := a.engine.EnsureSampleData(cmd.Context())
			if err != nil {
				return err
			}

			if !seeded {
				_, err = fmt.Fprintln(a.out, "Catalog is not empty, nothing seeded")
				return err
			}

			c, err := a.engine.Counts(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(a.out, "Seeded %d books and %d members\n", c.TotalTitles, c.TotalUsers)

			return err
		},
	}
}
