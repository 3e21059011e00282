package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func categoriasCmd() *cobra.Command {
	categoriasRoot := &cobra.Command{
		Use:   "categorias",
		Short: "Browse marketplace categories",
		Long: "Browse the Mercado Livre category tree. Category reads are public\n" +
			"and need no connected account.",
	}

	categoriasRoot.AddCommand(
		categoriasListCmd(),
		categoriasGetCmd(),
	)

	return categoriasRoot
}

func categoriasListCmd() *cobra.Command {
	var siteID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List root categories for a site",
		Example: `  vml categorias list
  vml categorias list --site MLA
  vml categorias list --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			categories, err := c.ListCategories(context.Background(), siteID)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(categories)
			}
			if len(categories) == 0 {
				fmt.Println("No categories found.")
				return nil
			}
			return printCategoriesTable(categories)
		},
	}
	cmd.Flags().StringVar(&siteID, "site", "MLB", "marketplace site ID")

	return cmd
}

func categoriasGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <categoryId>",
		Short: "Show a category with its children",
		Example: `  vml categorias get MLB1648
  vml categorias get MLB1648 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			category, err := c.GetCategory(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(category)
			}
			return printCategoryDetail(category)
		},
	}
}
