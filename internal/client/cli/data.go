package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/orbitlabs/orbit/internal/models"
	"github.com/spf13/cobra"
)

func newDashboardCommand(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show dashboard data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := (*app).client.DashboardData(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Sales volume:  %s\n", data.SalesVolume)
			fmt.Printf("New customers: %s\n", data.NewCustomers)
			fmt.Printf("Refunds:       %s\n", data.Refunds)
			return nil
		},
	}
}

func newBioCommand(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "bio [new-bio]",
		Short: "Show or update your bio",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				bio, err := (*app).client.Bio(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Println(bio)
				return nil
			}

			bio, err := (*app).client.UpdateBio(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Bio updated: %s\n", bio)
			return nil
		},
	}
}

func newUsersCommand(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List user profiles (admin only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := (*app).client.Users(cmd.Context())
			if err != nil {
				return err
			}

			for _, u := range users {
				line := fmt.Sprintf("%d\t%s %s", u.ID, u.FirstName, u.LastName)
				if u.Bio != "" {
					line += "\t" + u.Bio
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func newInventoryCommand(app **App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Manage your inventory (admin only)",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your inventory items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := (*app).client.Inventory(cmd.Context())
			if err != nil {
				return err
			}

			for _, item := range items {
				fmt.Printf("%d\t%s\t#%s\t$%.2f\n", item.ID, item.Name, item.ItemNumber, item.UnitPrice)
			}
			return nil
		},
	}

	var itemNumber, image string
	var unitPrice float64
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an inventory item",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := (*app).client.AddInventoryItem(cmd.Context(), models.CreateInventoryItemRequest{
				Name:       strings.Join(args, " "),
				ItemNumber: itemNumber,
				UnitPrice:  unitPrice,
				Image:      image,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Created item %d: %s\n", item.ID, item.Name)
			return nil
		},
	}
	add.Flags().StringVar(&itemNumber, "item-number", "", "item number")
	add.Flags().Float64Var(&unitPrice, "unit-price", 0, "unit price")
	add.Flags().StringVar(&image, "image", "", "image reference")
	add.MarkFlagRequired("item-number")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of your inventory items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}

			item, err := (*app).client.DeleteInventoryItem(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Printf("Deleted item %d: %s\n", item.ID, item.Name)
			return nil
		},
	}

	cmd.AddCommand(list, add, del)
	return cmd
}
