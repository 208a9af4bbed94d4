package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/issuebook"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
)

// ErrMemberNotFound is returned when a loan or reservation names an unknown roll number.
var ErrMemberNotFound = errors.New("no member with this roll number")

type loanAction func(ctx context.Context, bookID core.BookIDString, rollNo core.RollNoString) (shell.HandlerResult, error)

func newIssueCommand(a *app) *cobra.Command {
	var periodDays int

	cmd := newLoanCommand(a, "issue", "Lend a book to a member", "issued to", "already has",
		func(ctx context.Context, bookID core.BookIDString, rollNo core.RollNoString) (shell.HandlerResult, error) {
			return a.engine.IssueBook(ctx, bookID, rollNo, periodDays)
		},
	)

	cmd.Flags().IntVar(&periodDays, "days", issuebook.DefaultPeriodDays, "Loan period in days")

	return cmd
}

func newReserveCommand(a *app) *cobra.Command {
	return newLoanCommand(a, "reserve", "Reserve a book for a member", "reserved for", "already reserved for",
		func(ctx context.Context, bookID core.BookIDString, rollNo core.RollNoString) (shell.HandlerResult, error) {
			return a.engine.ReserveBook(ctx, bookID, rollNo)
		},
	)
}

func newUnreserveCommand(a *app) *cobra.Command {
	return newLoanCommand(a, "unreserve", "Cancel a reservation", "no longer reserved for", "was not reserved for",
		func(ctx context.Context, bookID core.BookIDString, rollNo core.RollNoString) (shell.HandlerResult, error) {
			return a.engine.UnreserveBook(ctx, bookID, rollNo)
		},
	)
}

func newReturnCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "return <book-id> <roll-no>",
		Short: "Take a borrowed book back",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookID, err := a.resolveBookID(cmd, args[0])
			if err != nil {
				return err
			}

			returned, err := a.engine.ReturnBook(cmd.Context(), bookID, args[1])
			if err != nil {
				return err
			}

			if !returned {
				_, err = fmt.Fprintf(a.out, "%s had not borrowed %s\n", args[1], bookID)
				return err
			}

			_, err = fmt.Fprintf(a.out, "%s returned by %s\n", bookID, args[1])

			return err
		},
	}
}

// newLoanCommand builds the commands taking a book id and a roll number and reporting the outcome.
func newLoanCommand(a *app, use, short, doneText, unchangedText string, action loanAction) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <book-id> <roll-no>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookID, err := a.resolveBookID(cmd, args[0])
			if err != nil {
				return err
			}

			rollNo := args[1]

			result, err := action(cmd.Context(), bookID, rollNo)
			if err != nil {
				return err
			}

			switch {
			case result.NoMatch:
				return fmt.Errorf("%w: %q", ErrMemberNotFound, rollNo)
			case result.Idempotent:
				_, err = fmt.Fprintf(a.out, "%s %s %s\n", rollNo, unchangedText, bookID)
			default:
				_, err = fmt.Fprintf(a.out, "%s %s %s\n", bookID, doneText, rollNo)
			}

			return err
		},
	}
}
