package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

var (
	colorAccent = lipgloss.Color("#8BC34A")
	colorMuted  = lipgloss.Color("#6B7280")
	colorBorder = lipgloss.Color("#2a3850")
)

// styles are bound to the renderer of one writer, so colors are dropped when it is not a terminal.
type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	muted  lipgloss.Style
	border lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title:  r.NewStyle().Bold(true).Foreground(colorAccent),
		header: r.NewStyle().Bold(true).Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1),
		muted:  r.NewStyle().Foreground(colorMuted),
		border: r.NewStyle().Foreground(colorBorder),
	}
}

func renderTable(w io.Writer, title string, headers []string, rows [][]string) error {
	s := newStyles(w)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header
			}

			return s.cell
		})

	var sb strings.Builder
	sb.WriteString(s.title.Render(title))
	sb.WriteString("\n")
	sb.WriteString(t.String())
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())

	return err
}

func renderBooks(w io.Writer, books core.Books, total int) error {
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, []string{
			core.ShortID(b.ItemID),
			b.Title,
			b.Author,
			b.Publisher,
			strconv.Itoa(b.Year),
			b.Category,
			strconv.Itoa(b.Copies),
		})
	}

	title := "Books (" + strconv.Itoa(len(books)) + " of " + strconv.Itoa(total) + ")"

	return renderTable(w, title, []string{"ID", "Title", "Author", "Publisher", "Year", "Category", "Copies"}, rows)
}

// renderUsers shows borrowed and reserved books by title where the id is still in the catalog.
func renderUsers(w io.Writer, users core.Users, titles map[core.BookIDString]string) error {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			u.RollNo,
			u.Name,
			u.Email,
			u.Contact,
			bookTitles(u.Borrowed, titles),
			bookTitles(u.Reserved, titles),
		})
	}

	title := "Members (" + strconv.Itoa(len(users)) + ")"

	return renderTable(w, title, []string{"Roll No", "Name", "Email", "Contact", "Borrowed", "Reserved"}, rows)
}

func bookTitles(ids []core.BookIDString, titles map[core.BookIDString]string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if title, ok := titles[id]; ok {
			names = append(names, title)
			continue
		}

		names = append(names, core.ShortID(id))
	}

	return strings.Join(names, ", ")
}
