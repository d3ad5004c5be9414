package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abdidvp/stockroom/internal/domain"
)

func newAddCmd(opts *rootOptions) *cobra.Command {
	var raw domain.RawProduct

	cmd := &cobra.Command{
		Use:   "add <electronic|grocery|clothing>",
		Short: "Add a product to the inventory",
		Long:  "Add a product. Price and quantity are required; variant fields depend on the product type. Without --id a random ID is generated.",
		Example: `  stockroom add electronic --id E1 --name Phone --price 200 --qty 5 --brand Acme --warranty 2
  stockroom add grocery --id G1 --name Milk --price 1.20 --qty 30 --expiry 31/12/2026
  stockroom add clothing --id C1 --name Shirt --price 25 --qty 10 --size M --material cotton`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw.Kind = args[0]
			if raw.ID == "" {
				raw.ID = uuid.NewString()
			}
			p, err := domain.ParseProduct(raw)
			if err != nil {
				return err
			}

			svc, _, err := opts.openService(cmd, false)
			if err != nil {
				return err
			}
			if err := svc.Add(p); err != nil {
				return err
			}
			if err := svc.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Product %s added successfully!\n", p.ID())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&raw.ID, "id", "", "Product ID (generated when empty)")
	f.StringVar(&raw.Name, "name", "", "Product name")
	f.StringVar(&raw.Price, "price", "", "Unit price")
	f.StringVar(&raw.Quantity, "qty", "0", "Quantity in stock")
	f.StringVar(&raw.Brand, "brand", "", "Brand (electronic)")
	f.StringVar(&raw.WarrantyYears, "warranty", "0", "Warranty in years (electronic)")
	f.StringVar(&raw.ExpiryDate, "expiry", "", "Expiry date dd/mm/yyyy (grocery)")
	f.StringVar(&raw.Size, "size", "", "Size (clothing)")
	f.StringVar(&raw.Material, "material", "", "Material (clothing)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}
