package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	domain "github.com/setebit/vendasml/pkg/types"
)

func produtosCmd() *cobra.Command {
	produtosRoot := &cobra.Command{
		Use:   "produtos",
		Short: "Manage listings",
		Long: "Manage Mercado Livre listings on behalf of a connected account.\n" +
			"All commands require --user with the account's Mercado Livre user ID.",
	}

	produtosRoot.AddCommand(
		produtosCreateCmd(),
		produtosGetCmd(),
		produtosUpdateCmd(),
		produtosDeleteCmd(),
	)

	return produtosRoot
}

// itemFlags holds the listing fields settable via command-line flags.
type itemFlags struct {
	file        string
	title       string
	category    string
	price       float64
	currency    string
	quantity    int
	buyingMode  string
	condition   string
	listingType string
	description string
	pictures    []string
}

func (f *itemFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.file, "file", "", "read the listing from a JSON file instead of flags")
	cmd.Flags().StringVar(&f.title, "title", "", "listing title")
	cmd.Flags().StringVar(&f.category, "category", "", "category ID (e.g. MLB1648)")
	cmd.Flags().Float64Var(&f.price, "price", 0, "price")
	cmd.Flags().StringVar(&f.currency, "currency", "BRL", "currency code")
	cmd.Flags().IntVar(&f.quantity, "quantity", 1, "available quantity")
	cmd.Flags().StringVar(&f.buyingMode, "buying-mode", "buy_it_now", "buying mode")
	cmd.Flags().StringVar(&f.condition, "condition", "new", "item condition (new, used)")
	cmd.Flags().StringVar(&f.listingType, "listing-type", "gold_special", "listing type")
	cmd.Flags().StringVar(&f.description, "description", "", "plain-text description")
	cmd.Flags().StringArrayVar(&f.pictures, "picture", nil, "picture URL (repeatable)")
}

// item builds the request either from a JSON file or from the flag values.
func (f *itemFlags) item() (*domain.ItemRequest, error) {
	if f.file != "" {
		data, err := os.ReadFile(f.file) //nolint:gosec // path from trusted CLI flag
		if err != nil {
			return nil, fmt.Errorf("reading listing file: %w", err)
		}
		item := &domain.ItemRequest{}
		if err := json.Unmarshal(data, item); err != nil {
			return nil, fmt.Errorf("parsing listing file: %w", err)
		}
		return item, nil
	}

	if f.title == "" || f.category == "" || f.price <= 0 {
		return nil, fmt.Errorf("--title, --category and --price are required (or use --file)")
	}

	item := &domain.ItemRequest{
		Title:             f.title,
		CategoryID:        f.category,
		Price:             f.price,
		CurrencyID:        f.currency,
		AvailableQuantity: f.quantity,
		BuyingMode:        f.buyingMode,
		Condition:         f.condition,
		ListingTypeID:     f.listingType,
		Description:       domain.ItemDescription{PlainText: f.description},
	}
	for _, src := range f.pictures {
		item.Pictures = append(item.Pictures, domain.ItemPicture{Source: src})
	}
	return item, nil
}

func produtosCreateCmd() *cobra.Command {
	var (
		userID string
		flags  itemFlags
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a new listing",
		Long: "Publish a new listing for a connected account. Fields can be passed\n" +
			"as flags or as a complete JSON document via --file.",
		Example: `  # Publish from flags
  vml produtos create --user 123456 \
    --title "Notebook Gamer 16GB" --category MLB1648 --price 4999.90 \
    --description "Notebook gamer seminovo" --picture https://example.com/front.jpg

  # Publish from a JSON file
  vml produtos create --user 123456 --file listing.json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if userID == "" {
				return fmt.Errorf("--user is required")
			}
			item, err := flags.item()
			if err != nil {
				return err
			}
			c := newClient()
			created, err := c.CreateProduct(context.Background(), userID, item)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Listing created: %s\n", created.ID)
			return printItemDetail(created)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "Mercado Livre user ID")
	flags.register(cmd)

	return cmd
}

func produtosGetCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "get <itemId>",
		Short: "Show a listing",
		Example: `  vml produtos get MLB123456789 --user 123456
  vml produtos get MLB123456789 --user 123456 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if userID == "" {
				return fmt.Errorf("--user is required")
			}
			c := newClient()
			item, err := c.GetProduct(context.Background(), userID, args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(item)
			}
			return printItemDetail(item)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "Mercado Livre user ID")

	return cmd
}

func produtosUpdateCmd() *cobra.Command {
	var (
		userID string
		flags  itemFlags
	)

	cmd := &cobra.Command{
		Use:   "update <itemId>",
		Short: "Replace a listing",
		Example: `  vml produtos update MLB123456789 --user 123456 --file listing.json
  vml produtos update MLB123456789 --user 123456 --title "Notebook Gamer 32GB" \
    --category MLB1648 --price 5499.90`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if userID == "" {
				return fmt.Errorf("--user is required")
			}
			item, err := flags.item()
			if err != nil {
				return err
			}
			c := newClient()
			updated, err := c.UpdateProduct(context.Background(), userID, args[0], item)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(updated)
			}
			fmt.Printf("Listing updated: %s\n", updated.ID)
			return printItemDetail(updated)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "Mercado Livre user ID")
	flags.register(cmd)

	return cmd
}

func produtosDeleteCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:     "delete <itemId>",
		Short:   "Remove a listing",
		Example: `  vml produtos delete MLB123456789 --user 123456`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if userID == "" {
				return fmt.Errorf("--user is required")
			}
			c := newClient()
			if err := c.DeleteProduct(context.Background(), userID, args[0]); err != nil {
				return err
			}
			fmt.Printf("Listing %s removed.\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "Mercado Livre user ID")

	return cmd
}
