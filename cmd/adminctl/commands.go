package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"
	"backoffice/internal/util"

	"github.com/pkg/errors"
)

func handleLogin(ctx context.Context, args []string, out io.Writer) error {
	fs, global := newFlagSet("login")
	user := fs.String("user", "", "Admin email")
	password := fs.String("password", "", "Admin password")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse login flags")
	}

	a, err := newApp(global)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, a.tokens, entity.Credentials{Email: *user, Password: *password}); err != nil {
		return err
	}

	fmt.Fprintf(out, "Logged in as %s (session stored in %s)\n", *user, a.tokens.Path())

	return nil
}

func handleLogout(ctx context.Context, args []string, out io.Writer) error {
	fs, global := newFlagSet("logout")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse logout flags")
	}

	a, err := newApp(global)
	if err != nil {
		return err
	}

	if err := a.auth.Logout(ctx, a.tokens, cliOwner); err != nil {
		return err
	}

	fmt.Fprintln(out, "Logged out")

	return nil
}

func handleProducts(ctx context.Context, args []string, out io.Writer) error {
	fs, global := newFlagSet("products")
	category := fs.String("category", "", "Filter by category")
	status := fs.String("status", "", "Filter by status (active, inactive)")
	name := fs.String("name", "", "Search by name")
	page := fs.Int("page", 1, "Page number")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse products flags")
	}

	a, err := loggedInApp(ctx, global)
	if err != nil {
		return err
	}

	list, err := a.products.List(ctx, a.tokens, usecase.ProductQuery{
		Search:   *name,
		Category: entity.Category(*category),
		Status:   entity.ProductStatus(*status),
		Page:     *page,
	})
	if err != nil {
		return explain(err)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK\tSTATUS")
	for _, p := range list.Page.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n", p.ID, p.Name, p.Category, p.Price, p.Stock, p.Status)
	}

	return finish(w, out, list.Page)
}

func handleOrders(ctx context.Context, args []string, out io.Writer) error {
	fs, global := newFlagSet("orders")
	status := fs.String("status", "", "Filter by status (pending, processing, completed, cancel)")
	search := fs.String("q", "", "Search orders")
	page := fs.Int("page", 1, "Page number")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse orders flags")
	}

	a, err := loggedInApp(ctx, global)
	if err != nil {
		return err
	}

	list, err := a.orders.List(ctx, a.tokens, entity.OrderQuery{
		Search: *search,
		Status: entity.OrderStatus(*status),
		Page:   *page,
	})
	if err != nil {
		return explain(err)
	}

	return printOrders(out, list)
}

func handleSetStatus(ctx context.Context, args []string, out io.Writer) error {
	fs, global := newFlagSet("set-status")
	id := fs.Int64("id", 0, "Order id")
	status := fs.String("status", "", "New status (pending, processing, completed, cancel)")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse set-status flags")
	}
	if *id <= 0 {
		return errors.New("--id flag is required for set-status command")
	}

	a, err := loggedInApp(ctx, global)
	if err != nil {
		return err
	}

	list, err := a.orders.UpdateStatus(ctx, a.tokens, entity.OrderQuery{Search: strconv.FormatInt(*id, 10)}, *id, entity.OrderStatus(*status))
	if err != nil {
		return explain(err)
	}

	return printOrders(out, list)
}

func handleCustomers(ctx context.Context, args []string, out io.Writer) error {
	fs, global := newFlagSet("customers")
	search := fs.String("q", "", "Search by name, email or phone")
	page := fs.Int("page", 1, "Page number")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse customers flags")
	}

	a, err := loggedInApp(ctx, global)
	if err != nil {
		return err
	}

	list, err := a.customers.List(ctx, a.tokens, entity.CustomerQuery{Search: *search, Page: *page})
	if err != nil {
		return explain(err)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tJOINED")
	for _, c := range list.Page.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.Phone, c.DateJoined.Format("2006-01-02"))
	}

	return finish(w, out, list.Page)
}

func handleDeleteProduct(ctx context.Context, args []string, out io.Writer) error {
	fs, global := newFlagSet("delete-product")
	id := fs.Int64("id", 0, "Product id")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse delete-product flags")
	}
	if *id <= 0 {
		return errors.New("--id flag is required for delete-product command")
	}

	a, err := loggedInApp(ctx, global)
	if err != nil {
		return err
	}

	if err := a.products.Delete(ctx, a.tokens, *id); err != nil {
		return explain(err)
	}

	fmt.Fprintf(out, "Product %d deleted\n", *id)

	return nil
}

func loggedInApp(ctx context.Context, global globalFlags) (*app, error) {
	a, err := newApp(global)
	if err != nil {
		return nil, err
	}
	if err := a.requireLogin(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func printOrders(out io.Writer, list *usecase.OrderList) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tCUSTOMER\tDATE\tTOTAL\tSTATUS")
	for _, o := range list.Page.Items {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", o.Reference(), o.User, o.CreatedAt.Format("2006-01-02"), o.Total, o.Status)
	}

	return finish(w, out, list.Page)
}

// finish flushes the table and prints the pager line.
func finish[T any](w *tabwriter.Writer, out io.Writer, page util.Page[T]) error {
	if err := w.Flush(); err != nil {
		return errors.WithStack(err)
	}

	fmt.Fprintf(out, "\nShowing %d to %d of %d (page %d of %d)\n", page.From, page.To, page.TotalItems, page.Page, page.TotalPages)

	return nil
}
