package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-catalog-go/catalog/features/query/listbooks"
)

func newBooksCommand(a *app) *cobra.Command {
	books := &cobra.Command{
		Use:   "books",
		Short: "List and maintain the catalog",
	}

	books.AddCommand(
		newBooksListCommand(a),
		newBooksAddCommand(a),
		newBooksEditCommand(a),
		newBooksDeleteCommand(a),
	)

	return books
}

func newBooksListCommand(a *app) *cobra.Command {
	var search, category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books, optionally filtered by title or author and by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.engine.SearchBooks(cmd.Context(), search, category)
			if err != nil {
				return err
			}

			if renderErr := renderBooks(a.out, list.Books, list.Total); renderErr != nil {
				return renderErr
			}

			_, err = fmt.Fprintf(a.out, "Categories: %s\n", strings.Join(list.Categories(), ", "))

			return err
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive part of the title or author")
	cmd.Flags().StringVar(&category, "category", listbooks.AllCategories, "Category to show")

	return cmd
}

func newBooksAddCommand(a *app) *cobra.Command {
	var (
		title, author, publisher, category string
		year, copies                       int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := a.engine.AddBook(cmd.Context(), title, author, publisher, year, category, copies)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(a.out, "Added %q with id %s\n", title, id)

			return err
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title")
	cmd.Flags().StringVar(&author, "author", "", "Author")
	cmd.Flags().StringVar(&publisher, "publisher", "", "Publisher")
	cmd.Flags().IntVar(&year, "year", 2023, "Publication year")
	cmd.Flags().StringVar(&category, "category", "General", "Category")
	cmd.Flags().IntVar(&copies, "copies", 1, "Number of copies")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newBooksEditCommand(a *app) *cobra.Command {
	var fields map[string]string

	cmd := &cobra.Command{
		Use:     "edit <book-id>",
		Short:   "Change fields of a book",
		Example: "  librarian books edit 3f2a9c --set year=2021 --set copies=4",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.resolveBookID(cmd, args[0])
			if err != nil {
				return err
			}

			found, skipped, err := a.engine.EditBook(cmd.Context(), id, fields)
			if err != nil {
				return err
			}

			if !found {
				return fmt.Errorf("%w: %q", ErrBookNotFound, args[0])
			}

			if len(skipped) > 0 {
				_, err = fmt.Fprintf(a.out, "Updated %s, kept invalid values of: %s\n", id, strings.Join(skipped, ", "))
				return err
			}

			_, err = fmt.Fprintf(a.out, "Updated %s\n", id)

			return err
		},
	}

	cmd.Flags().StringToStringVar(&fields, "set", nil, "field=value, repeatable; fields: title, author, publisher, year, category, copies")
	_ = cmd.MarkFlagRequired("set")

	return cmd
}

func newBooksDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <book-id>",
		Short: "Delete a book and drop it from every member's borrowed and reserved lists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.resolveBookID(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := a.engine.DeleteBook(cmd.Context(), id)
			if err != nil {
				return err
			}

			if result.NoMatch {
				return fmt.Errorf("%w: %q", ErrBookNotFound, args[0])
			}

			_, err = fmt.Fprintf(a.out, "Deleted %s\n", id)

			return err
		},
	}
}
