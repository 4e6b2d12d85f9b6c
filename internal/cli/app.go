package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/stockkeeper/internal/config"
	"github.com/dmitrijs2005/stockkeeper/internal/logging"
	"github.com/dmitrijs2005/stockkeeper/internal/repositories/accounts"
	"github.com/dmitrijs2005/stockkeeper/internal/repositories/products"
	"github.com/dmitrijs2005/stockkeeper/internal/services"
	"github.com/google/uuid"
)

type App struct {
	config    *config.Config
	directory services.DirectoryService
	log       logging.Logger
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp builds an App reading from stdin and writing menus to stdout.
// Every session gets its own id in the log.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	return newApp(cfg, log.With("session", uuid.NewString()), os.Stdin, os.Stdout)
}

func newApp(cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config:    cfg,
		directory: services.NewDirectoryService(accounts.NewFileRepository(cfg.DataDir), cfg.MaxAccounts, log),
		log:       log,
		reader:    bufio.NewReader(in),
		out:       out,
	}
}

// Run shows the top menu until the operator exits or input ends.
// It returns only storage failures the session could not recover from.
func (a *App) Run(ctx context.Context) error {
	a.log.Info(ctx, "session started", "data_dir", a.config.DataDir)
	err := a.Root(ctx)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		a.log.Error(ctx, "session aborted", "error", err)
		return err
	}
	a.log.Info(ctx, "session finished")
	return nil
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) catalogLimits() services.CatalogLimits {
	return services.CatalogLimits{MaxProducts: a.config.MaxProducts, MaxQuantity: a.config.MaxQuantity}
}

// openCatalog loads the catalog store of username.
func (a *App) openCatalog(ctx context.Context, username string) (services.CatalogService, error) {
	repo := products.NewFileRepository(a.config.DataDir, username)
	return services.NewCatalogService(ctx, repo, a.catalogLimits(), a.log.With("user", username))
}

// enterCatalog makes sure username has a catalog file, then runs the user
// menu over it.
func (a *App) enterCatalog(ctx context.Context, username string) error {
	if err := products.NewFileRepository(a.config.DataDir, username).EnsureExists(ctx); err != nil {
		return err
	}
	cat, err := a.openCatalog(ctx, username)
	if err != nil {
		return err
	}
	return a.UserMenu(ctx, cat)
}
