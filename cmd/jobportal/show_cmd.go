package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"jobportal/internal/posting"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print the full description of one role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Errorf("invalid id %q", args[0])
			}
			p, err := a.catalog.Lookup(id)
			if err != nil {
				return err
			}
			writeDetail(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func writeDetail(w io.Writer, p posting.JobPosting) {
	fmt.Fprintf(w, "[%s] %s\n", p.Initial, p.Title)
	fmt.Fprintln(w, strings.Join([]string{p.Company, p.Location, posting.PostedLabel}, " · "))
	fmt.Fprintf(w, "%s · %s\n", p.Type, p.Salary)
	if len(p.Tags) > 0 {
		tags := make([]string, len(p.Tags))
		for i, t := range p.Tags {
			tags[i] = "#" + t
		}
		fmt.Fprintln(w, strings.Join(tags, " "))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "About the role")
	fmt.Fprintln(w, posting.AboutTheRole(p))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Responsibilities")
	for _, r := range posting.Responsibilities {
		fmt.Fprintf(w, "• %s\n", r)
	}
}
