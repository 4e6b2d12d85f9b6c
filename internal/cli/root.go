package cli

import (
	"context"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/models"
	"github.com/dmitrijs2005/stockkeeper/internal/services"
)

const rootMenu = `
~~~~~~~~~~~~~~~~~~~~
*  [Welcome_User]  *
~~~~~~~~~~~~~~~~~~~~
1. Sign Up
2. Login
3. Admin Menu
4. Exit`

// Root runs the top-level menu.
func (a *App) Root(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.println(rootMenu)
		choice, err := GetSimpleText(a.reader, "Enter your choice", a.out)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := a.SignUp(ctx); err != nil {
				return err
			}
			if err := a.loginAndEnter(ctx); err != nil {
				return err
			}
		case "2":
			if err := a.loginAndEnter(ctx); err != nil {
				return err
			}
		case "3":
			ok, err := a.AdminLogin(ctx)
			if err != nil {
				return err
			}
			if ok {
				if err := a.AdminMenu(ctx); err != nil {
					return err
				}
			}
		case "4":
			a.println("Exiting the system. Goodbye!")
			return nil
		default:
			a.println("Invalid choice. Please try again.")
		}
	}
}

// SignUp registers a new account. The directory is checked for room
// before any question is asked.
func (a *App) SignUp(ctx context.Context) error {
	a.println("\n* [USER_SIGN_UP_NEW_ACCOUNT] *")

	room, err := a.directory.HasCapacity(ctx)
	if err != nil {
		return err
	}
	if !room {
		a.printf("Already %d users have access. Cannot sign up more users.\n", a.config.MaxAccounts)
		return nil
	}

	first, err := GetSimpleText(a.reader, "Enter first name", a.out)
	if err != nil {
		return err
	}
	last, err := GetSimpleText(a.reader, "Enter last name", a.out)
	if err != nil {
		return err
	}
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	if err := services.ValidateUsername(username); err != nil {
		return a.report(ctx, err)
	}
	taken, err := a.usernameTaken(ctx, username)
	if err != nil {
		return err
	}
	if taken {
		a.println("Username already exists. Please choose a different username.")
		return nil
	}

	password, err := a.readValidPassword()
	if err != nil {
		return err
	}

	wantAdmin := false
	adminExists, err := a.directory.AdminExists(ctx)
	if err != nil {
		return err
	}
	if !adminExists {
		if wantAdmin, err = Confirm(a.reader, "Should this user be an admin?", a.out); err != nil {
			return err
		}
	}

	acc, err := a.directory.SignUp(ctx, first, last, username, password, wantAdmin)
	if err != nil {
		return a.report(ctx, err)
	}
	if wantAdmin && !acc.IsAdmin {
		a.println("Only one admin user can be created. This user will be a regular user.")
	}
	a.println("User Signed Up Successfully!")
	return nil
}

// Login asks for credentials and returns the matching account, or false
// after telling the operator why not.
func (a *App) Login(ctx context.Context) (models.Account, bool, error) {
	a.println("\n[Login Your Account]")
	username, password, err := a.readCredentials("Enter username", "Enter password")
	if err != nil {
		return models.Account{}, false, err
	}

	acc, err := a.directory.Login(ctx, username, password)
	if err != nil {
		return models.Account{}, false, a.report(ctx, err)
	}
	a.println("User Login Successful!")
	a.log.Info(ctx, "user logged in", "username", acc.Username)
	return acc, true, nil
}

// AdminLogin reports whether the operator proved to be the admin.
func (a *App) AdminLogin(ctx context.Context) (bool, error) {
	a.println("\n[Admin Login]")
	username, password, err := a.readCredentials("Enter Admin Username", "Enter Admin Password")
	if err != nil {
		return false, err
	}

	if _, err := a.directory.AdminLogin(ctx, username, password); err != nil {
		if isDomainError(err) {
			a.println("Invalid admin username or password.")
			return false, nil
		}
		return false, err
	}
	a.println("Admin Login Successful!")
	a.log.Info(ctx, "admin logged in", "username", username)
	return true, nil
}

func (a *App) loginAndEnter(ctx context.Context) error {
	acc, ok, err := a.Login(ctx)
	if err != nil || !ok {
		return err
	}
	return a.enterCatalog(ctx, acc.Username)
}

func (a *App) readCredentials(userPrompt, passPrompt string) (string, string, error) {
	username, err := GetSimpleText(a.reader, userPrompt, a.out)
	if err != nil {
		return "", "", err
	}
	pw, err := GetPassword(a.reader, passPrompt, a.out)
	if err != nil {
		return "", "", err
	}
	defer common.WipeByteArray(pw)
	return username, string(pw), nil
}

// readValidPassword keeps asking until the password rule holds.
func (a *App) readValidPassword() (string, error) {
	prompt := "Enter password (exactly 7 characters, including letters and numbers)"
	for {
		pw, err := GetPassword(a.reader, prompt, a.out)
		if err != nil {
			return "", err
		}
		password := string(pw)
		common.WipeByteArray(pw)

		if err := services.ValidatePassword(password); err == nil {
			return password, nil
		}
		a.println("Invalid password. Please ensure it is exactly 7 characters long, including letters and numbers.")
	}
}

func (a *App) usernameTaken(ctx context.Context, username string) (bool, error) {
	accs, err := a.directory.ListAccounts(ctx)
	if err != nil {
		return false, err
	}
	for _, acc := range accs {
		if acc.Username == username {
			return true, nil
		}
	}
	return false, nil
}
