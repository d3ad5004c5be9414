package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdidvp/stockroom/internal/adapters/outbound/tui"
	"github.com/abdidvp/stockroom/internal/application"
	"github.com/abdidvp/stockroom/internal/domain"
)

const menu = `
--- Inventory Menu ---
1. Add Product
2. Sell Product
3. Restock Product
4. List All Products
5. Search by Name
6. Search by Type
7. Remove Product
8. Save Inventory
9. Show Total Inventory Value
10. Remove Expired Products
0. Exit
`

func newShellCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive inventory menu",
		Long:  "Run the numbered inventory menu. The inventory file is loaded on start (a missing or unreadable file starts empty), expired groceries are swept, and the inventory is saved on exit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := opts.openService(cmd, true)
			if err != nil {
				return err
			}
			if cfg.ShouldSweepOnStart() {
				svc.RemoveExpired()
			}
			sh := &shell{
				svc: svc,
				in:  bufio.NewScanner(cmd.InOrStdin()),
				out: cmd.OutOrStdout(),
			}
			return sh.run()
		},
	}
}

type promptField struct {
	label string
	dst   *string
}

// shell drives the numbered menu. Errors from a single action are printed
// and the loop continues; only end of input or choice 0 stop it.
type shell struct {
	svc *application.InventoryService
	in  *bufio.Scanner
	out io.Writer
}

func (s *shell) run() error {
	for {
		fmt.Fprint(s.out, menu)
		choice, ok := s.prompt("Enter your choice: ")
		if !ok || choice == "0" {
			if err := s.svc.Save(); err != nil {
				return err
			}
			fmt.Fprintln(s.out, "Exiting... Inventory saved.")
			return nil
		}
		if err := s.dispatch(choice); err != nil {
			if err == io.EOF {
				continue
			}
			fmt.Fprintln(s.out, errorLine(err))
		}
	}
}

func (s *shell) dispatch(choice string) error {
	switch choice {
	case "1":
		return s.add()
	case "2":
		return s.stock("Enter Quantity: ", s.svc.Sell, "Product sold successfully!")
	case "3":
		return s.stock("Enter Quantity to restock: ", s.svc.Restock, "Product restocked successfully!")
	case "4":
		s.print(s.svc.List())
	case "5":
		name, ok := s.prompt("Search by name: ")
		if !ok {
			return io.EOF
		}
		s.print(s.svc.SearchByName(name))
	case "6":
		kind, ok := s.prompt("Enter product type (Electronic/Grocery/Clothing): ")
		if !ok {
			return io.EOF
		}
		s.print(s.svc.SearchByType(kind))
	case "7":
		id, ok := s.prompt("Enter Product ID to remove: ")
		if !ok {
			return io.EOF
		}
		if err := s.svc.Remove(id); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Product removed.")
	case "8":
		if err := s.svc.Save(); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Inventory saved.")
	case "9":
		fmt.Fprintln(s.out, "Total Inventory Value:", s.svc.TotalValue().StringFixed(2))
	case "10":
		fmt.Fprint(s.out, tui.RenderSweep(s.svc.RemoveExpired()))
	default:
		fmt.Fprintln(s.out, "Invalid choice. Try again.")
	}
	return nil
}

func (s *shell) add() error {
	kindText, ok := s.prompt("Enter type (Electronic/Grocery/Clothing): ")
	if !ok {
		return io.EOF
	}
	kind, err := domain.ParseKind(kindText)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid type. Try again.")
		return nil
	}

	raw := domain.RawProduct{Kind: string(kind)}
	fields := []promptField{
		{"ID: ", &raw.ID},
		{"Name: ", &raw.Name},
		{"Price: ", &raw.Price},
		{"Quantity: ", &raw.Quantity},
	}
	switch kind {
	case domain.KindElectronic:
		fields = append(fields,
			promptField{"Brand: ", &raw.Brand},
			promptField{"Warranty (in years): ", &raw.WarrantyYears},
		)
	case domain.KindGrocery:
		fields = append(fields, promptField{"Expiry Date (dd/mm/yyyy): ", &raw.ExpiryDate})
	case domain.KindClothing:
		fields = append(fields,
			promptField{"Size: ", &raw.Size},
			promptField{"Material: ", &raw.Material},
		)
	}
	for _, f := range fields {
		v, ok := s.prompt(f.label)
		if !ok {
			return io.EOF
		}
		*f.dst = v
	}

	p, err := domain.ParseProduct(raw)
	if err != nil {
		return err
	}
	if err := s.svc.Add(p); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Product added successfully!")
	return nil
}

func (s *shell) stock(qtyLabel string, op func(string, int) error, done string) error {
	id, ok := s.prompt("Enter Product ID: ")
	if !ok {
		return io.EOF
	}
	qtyText, ok := s.prompt(qtyLabel)
	if !ok {
		return io.EOF
	}
	qty, err := domain.ParseQuantity(qtyText)
	if err != nil {
		return err
	}
	if err := op(id, qty); err != nil {
		return err
	}
	fmt.Fprintln(s.out, done)
	return nil
}

func (s *shell) print(products []domain.Product) {
	for i := range products {
		fmt.Fprintln(s.out, products[i].Describe())
	}
}

// prompt writes label and reads one trimmed line. ok is false at end of input.
func (s *shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}
