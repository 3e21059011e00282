package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	domain "github.com/setebit/vendasml/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printTokenDetail(rec *domain.TokenRecord) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("User ID:\t%s\n", rec.UserID)
	tw.writef("Access Token:\t%s\n", truncate(rec.AccessToken, 24))
	tw.writef("Expires At:\t%s\n", rec.ExpiresAt.Format("2006-01-02 15:04:05"))
	tw.writef("Connected At:\t%s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printItemDetail(item *domain.ItemResponse) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", item.ID)
	tw.writef("Title:\t%s\n", item.Title)
	tw.writef("Price:\t%.2f\n", item.Price)
	tw.writef("Quantity:\t%d\n", item.AvailableQuantity)
	if item.Status != "" {
		tw.writef("Status:\t%s\n", item.Status)
	}
	if item.Permalink != "" {
		tw.writef("URL:\t%s\n", item.Permalink)
	}
	return tw.finish()
}

func printCategoriesTable(categories []domain.Category) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\n")
	for i := range categories {
		tw.writef("%s\t%s\n", categories[i].ID, categories[i].Name)
	}
	return tw.finish()
}

func printCategoryDetail(category *domain.Category) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", category.ID)
	tw.writef("Name:\t%s\n", category.Name)
	if len(category.ChildrenCategories) > 0 {
		tw.writef("Children:\n")
		for i := range category.ChildrenCategories {
			tw.writef("  %s\t%s\n",
				category.ChildrenCategories[i].ID,
				category.ChildrenCategories[i].Name,
			)
		}
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
