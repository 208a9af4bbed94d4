package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUsersCommand(a *app) *cobra.Command {
	users := &cobra.Command{
		Use:   "users",
		Short: "List and register members",
	}

	users.AddCommand(newUsersListCommand(a), newUsersRegisterCommand(a))

	return users
}

func newUsersListCommand(a *app) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List members with their borrowed and reserved books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.engine.SearchUsers(cmd.Context(), search)
			if err != nil {
				return err
			}

			books, err := a.engine.SearchBooks(cmd.Context(), "", "")
			if err != nil {
				return err
			}

			return renderUsers(a.out, list.Users, books.TitlesByID())
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive part of the name or roll number")

	return cmd
}

func newUsersRegisterCommand(a *app) *cobra.Command {
	var name, email, rollNo, contact string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.engine.RegisterUser(cmd.Context(), name, email, rollNo, contact); err != nil {
				return err
			}

			_, err := fmt.Fprintf(a.out, "Registered %s (%s)\n", name, rollNo)

			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&rollNo, "roll", "", "Roll number, unique per member")
	cmd.Flags().StringVar(&contact, "contact", "", "Phone number")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("roll")

	return cmd
}
