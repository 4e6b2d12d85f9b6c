package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/models"
	"github.com/dmitrijs2005/stockkeeper/internal/services"
)

const userMenu = `
*****************************
* [PROJECT_PRODUCT:SYSTEM] *
****************************
1. Add Product
2. Update Stock
3. Check Stock
4. Delete Product
5. Display Inventory
6. Search Product
7. Logout`

// UserMenu runs the product menu over one catalog until logout.
func (a *App) UserMenu(ctx context.Context, cat services.CatalogService) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.println(userMenu)
		choice, err := GetSimpleText(a.reader, "Please choose an option (1-7)", a.out)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = a.addProduct(ctx, cat)
		case "2":
			err = a.updateStock(ctx, cat)
		case "3":
			err = a.checkStock(cat)
		case "4":
			err = a.deleteProduct(ctx, cat)
		case "5":
			a.displayInventory(cat)
		case "6":
			err = a.searchProduct(cat)
		case "7":
			ok, err := Confirm(a.reader, "Are you sure you want to log out?", a.out)
			if err != nil {
				return err
			}
			if ok {
				a.println("Logging out...")
				return nil
			}
		default:
			a.println("Invalid choice. Please try again.")
		}
		if err := a.report(ctx, err); err != nil {
			return err
		}
	}
}

func (a *App) addProduct(ctx context.Context, cat services.CatalogService) error {
	name, err := GetSimpleText(a.reader, "Enter product name", a.out)
	if err != nil {
		return err
	}
	priceText, err := GetSimpleText(a.reader, "Enter product price", a.out)
	if err != nil {
		return err
	}
	qtyText, err := GetSimpleText(a.reader, "Enter product quantity", a.out)
	if err != nil {
		return err
	}

	if err := cat.CanAdd(name); err != nil {
		return err
	}
	price, err := services.ParsePrice(priceText)
	if err != nil {
		a.println("Invalid price or quantity.")
		return nil
	}
	qty, err := services.ParseQuantity(qtyText)
	if err != nil {
		a.println("Invalid price or quantity.")
		return nil
	}

	id, err := cat.Add(ctx, name, price, qty)
	if err != nil {
		return err
	}
	a.printf("Product %s added successfully with ID: %s\n", name, id)
	return nil
}

func (a *App) updateStock(ctx context.Context, cat services.CatalogService) error {
	p, ok, err := a.askProduct(cat, "Enter product name to update stock")
	if err != nil || !ok {
		return err
	}

	action, err := GetSimpleText(a.reader, "What would you like to update? (1: Price, 2: Quantity)", a.out)
	if err != nil {
		return err
	}
	switch action {
	case "1":
		return a.updatePrice(ctx, cat, p)
	case "2":
		return a.updateQuantity(ctx, cat, p)
	default:
		a.println("Invalid option.")
		return nil
	}
}

func (a *App) updatePrice(ctx context.Context, cat services.CatalogService, p models.Product) error {
	text, err := GetSimpleText(a.reader, "Enter new price", a.out)
	if err != nil {
		return err
	}
	price, err := services.ParsePrice(text)
	if err != nil {
		a.println("Invalid price entered.")
		return nil
	}

	updated, err := cat.SetPrice(ctx, p.ID, price)
	if err != nil {
		return err
	}
	a.printf("Product price updated to %s.\n", models.FormatPrice(updated.Price))
	return nil
}

func (a *App) updateQuantity(ctx context.Context, cat services.CatalogService, p models.Product) error {
	symbol, err := GetSimpleText(a.reader, "Enter action (+ for restock, - for sell)", a.out)
	if err != nil {
		return err
	}
	qtyText, err := GetSimpleText(a.reader, "Enter quantity", a.out)
	if err != nil {
		return err
	}

	qty, err := services.ParseQuantity(qtyText)
	if err != nil {
		a.println("Invalid quantity entered.")
		return nil
	}
	dir, err := services.ParseDirection(symbol)
	if err != nil {
		a.println("Invalid action.")
		return nil
	}

	updated, err := cat.AdjustQuantity(ctx, p.ID, qty, dir)
	switch {
	case errors.Is(err, common.ErrInsufficientStock):
		a.println("Not enough stock to sell!")
		return nil
	case errors.Is(err, common.ErrCapacity):
		a.printf("Error: Total quantity cannot exceed %d.\n", cat.Limits().MaxQuantity)
		return nil
	case err != nil:
		return err
	}

	if dir == services.Decrease {
		a.printf("Sold %d of %s. Updated stock: %d\n", qty, updated.Name, updated.Quantity)
	} else {
		a.printf("Restocked %d of %s. Updated stock: %d\n", qty, updated.Name, updated.Quantity)
	}
	return nil
}

func (a *App) checkStock(cat services.CatalogService) error {
	p, ok, err := a.askProduct(cat, "Enter product name to check stock")
	if err != nil || !ok {
		return err
	}
	a.printf("Current stock for %s: %d\n", p.Name, p.Quantity)
	return nil
}

func (a *App) deleteProduct(ctx context.Context, cat services.CatalogService) error {
	p, ok, err := a.askProduct(cat, "Enter product name to delete")
	if err != nil || !ok {
		return err
	}

	confirmed, err := Confirm(a.reader, "Are you sure you want to delete the product '"+p.Name+"'?", a.out)
	if err != nil {
		return err
	}
	if _, err := cat.Remove(ctx, p.ID, confirmed); err != nil {
		if errors.Is(err, common.ErrCanceled) {
			a.println("Product deletion canceled.")
			return nil
		}
		return err
	}
	a.printf("Product %s deleted successfully.\n", p.Name)
	return nil
}

func (a *App) displayInventory(cat services.CatalogService) {
	items := cat.List()
	if len(items) == 0 {
		a.println("Inventory is empty.")
		return
	}
	for _, p := range items {
		a.println(p)
	}
}

func (a *App) searchProduct(cat services.CatalogService) error {
	term, err := GetSimpleText(a.reader, "Enter at least 3 letters of the product name", a.out)
	if err != nil {
		return err
	}

	found, err := cat.Search(term)
	if err != nil {
		a.println("Please enter at least 3 letters to search.")
		return nil
	}
	if len(found) == 0 {
		a.println("No products found matching your search.")
		return nil
	}
	a.println("Search Results:")
	for _, p := range found {
		a.println(p)
	}
	return nil
}

// askProduct prompts for a product name or id. A miss is reported to the
// operator and yields ok=false.
func (a *App) askProduct(cat services.CatalogService, prompt string) (models.Product, bool, error) {
	ref, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return models.Product{}, false, err
	}
	p, ok := cat.Lookup(ref)
	if !ok {
		a.println("Product not found.")
	}
	return p, ok, nil
}
