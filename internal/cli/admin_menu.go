package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/stockkeeper/internal/models"
	"github.com/dmitrijs2005/stockkeeper/internal/repositories/products"
	"github.com/dmitrijs2005/stockkeeper/internal/services"
)

const adminMenu = `
~~~~~~~~~~~~~~~~
* [Admin Menu] *
~~~~~~~~~~~~~~~~
1. Delete User Data
2. Update User Data
3. Login User Data
4. Display User Data
5. Checking All Product
6. Replace Admin
7. Exit Admin Menu`

// AdminMenu runs the account management menu until the admin leaves.
func (a *App) AdminMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.println(adminMenu)
		choice, err := GetSimpleText(a.reader, "Enter your choice", a.out)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = a.deleteUser(ctx)
		case "2":
			err = a.updateUser(ctx)
		case "3":
			err = a.openUserCatalog(ctx)
		case "4":
			err = a.displayUsers(ctx)
		case "5":
			err = a.productSummary(ctx)
		case "6":
			err = a.replaceAdmin(ctx)
		case "7":
			a.println("Exiting Admin Menu.")
			return nil
		default:
			a.println("Invalid choice. Please try again.")
		}
		if err := a.report(ctx, err); err != nil {
			return err
		}
	}
}

// selectUser lists the accounts with label and asks for one by number.
// ok is false when there is nothing to select or the answer was unusable;
// the operator has been told why.
func (a *App) selectUser(ctx context.Context, emptyMsg, prompt string, label func(int, models.Account) string) (int, models.Account, bool, error) {
	accs, err := a.directory.ListAccounts(ctx)
	if err != nil {
		return 0, models.Account{}, false, err
	}
	if len(accs) == 0 {
		a.println(emptyMsg)
		return 0, models.Account{}, false, nil
	}

	a.println("Current Users:")
	for i, acc := range accs {
		a.println(label(i, acc))
	}

	idx, ok, err := GetNumber(a.reader, prompt, a.out)
	if err != nil {
		return 0, models.Account{}, false, err
	}
	if !ok {
		a.println("Please enter a valid number.")
		return 0, models.Account{}, false, nil
	}

	acc, err := a.directory.Account(ctx, idx)
	if err != nil {
		return 0, models.Account{}, false, a.report(ctx, err)
	}
	return idx, acc, true, nil
}

func plainLabel(i int, acc models.Account) string {
	return fmt.Sprintf("%d. %s", i+1, acc.Username)
}

func (a *App) deleteUser(ctx context.Context) error {
	idx, acc, ok, err := a.selectUser(ctx, "No users available to delete.", "Enter the number of the user to delete", plainLabel)
	if err != nil || !ok {
		return err
	}

	confirmed, err := Confirm(a.reader, fmt.Sprintf("Are you sure you want to delete user '%s'?", acc.Username), a.out)
	if err != nil {
		return err
	}
	if !confirmed {
		a.println("User deletion canceled.")
		return nil
	}

	deleted, err := a.directory.DeleteAccount(ctx, idx)
	if err != nil {
		return err
	}
	a.printf("User '%s' deleted successfully.\n", deleted.Username)
	return nil
}

func (a *App) updateUser(ctx context.Context) error {
	idx, acc, ok, err := a.selectUser(ctx, "No users available to change.", "Enter the number of the user to change", plainLabel)
	if err != nil || !ok {
		return err
	}
	a.printf("Editing user: %s\n", acc.Username)

	field, err := GetSimpleText(a.reader, "Which attribute do you want to change? (first_name, last_name, username, password)", a.out)
	if err != nil {
		return err
	}
	if !slices.Contains(models.EditableFields, field) {
		a.println("Invalid attribute.")
		return nil
	}

	var value string
	if field == models.FieldPassword {
		value, err = a.readValidPassword()
	} else {
		value, err = GetSimpleText(a.reader, "Enter new value for "+field, a.out)
	}
	if err != nil {
		return err
	}

	if field == models.FieldUsername && value != acc.Username {
		if err := services.ValidateUsername(value); err != nil {
			return err
		}
		if err := products.CheckRenameTarget(a.config.DataDir, value); err != nil {
			return err
		}
	}

	prev, err := a.directory.UpdateAccount(ctx, idx, field, value)
	if err != nil {
		return err
	}
	if field == models.FieldUsername && value != prev.Username {
		if err := products.RenameFile(a.config.DataDir, prev.Username, value); err != nil {
			a.log.Error(ctx, "catalog not moved to new username", "from", prev.Username, "to", value, "error", err)
			a.println("Warning: the user's products could not be moved to the new username.")
		}
	}

	name := prev.Username
	if field == models.FieldUsername {
		name = value
	}
	a.printf("User '%s' updated successfully.\n", name)
	return nil
}

func (a *App) openUserCatalog(ctx context.Context) error {
	_, acc, ok, err := a.selectUser(ctx, "No users available.", "Enter the number of the user to view options", plainLabel)
	if err != nil || !ok {
		return err
	}
	a.printf("Selected User: %s\n", acc.Username)
	return a.enterCatalog(ctx, acc.Username)
}

func (a *App) displayUsers(ctx context.Context) error {
	accs, err := a.directory.ListAccounts(ctx)
	if err != nil {
		return err
	}
	if len(accs) == 0 {
		a.println("No users available.")
		return nil
	}
	a.println("Current Users:")
	for i, acc := range accs {
		a.printf("%d. %s\n", i+1, acc)
	}
	return nil
}

func (a *App) productSummary(ctx context.Context) error {
	summary, err := services.Summarize(ctx, a.directory, a.openCatalog)
	if err != nil {
		return err
	}
	if len(summary) == 0 {
		a.println("No products found for any user.")
		return nil
	}

	a.println("\nSummary of Products Added by Each User:")
	for _, uc := range summary {
		a.printf("\n%s has added %d product(s):\n", uc.Username, len(uc.Products))
		for _, p := range uc.Products {
			a.printf("- %s\n", p)
		}
	}
	return nil
}

func (a *App) replaceAdmin(ctx context.Context) error {
	label := func(i int, acc models.Account) string {
		return fmt.Sprintf("%d. %s (Admin: %t)", i+1, acc.Username, acc.IsAdmin)
	}
	idx, acc, ok, err := a.selectUser(ctx, "No users available to replace admin.", "Enter the number of the user to promote to admin", label)
	if err != nil || !ok {
		return err
	}

	changed, err := a.directory.PromoteToAdmin(ctx, idx)
	if err != nil {
		return err
	}
	if !changed {
		a.println("This user is already an admin.")
		return nil
	}
	a.printf("User '%s' has been promoted to admin.\n", acc.Username)
	return nil
}
