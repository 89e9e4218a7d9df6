package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jobportal/internal/posting"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Print the roles whose title or company contains query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := ""
			if len(args) == 1 {
				q = args[0]
			}
			matches := a.catalog.Filter(q)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d open roles\n", len(matches))
			for _, p := range matches {
				fmt.Fprintln(out, summaryLine(p))
			}
			return nil
		},
	}
}

func summaryLine(p posting.JobPosting) string {
	return fmt.Sprintf("%d  %s", p.ID, strings.Join([]string{p.Title, p.Company, p.Location, p.Salary}, " · "))
}
