package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - login:          Sign in and store the token pair
// - logout:         Forget the stored session
// - products:       List products
// - orders:         List orders
// - set-status:     Change an order status
// - customers:      List customers
// - delete-product: Delete a product

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, os.Args[1], os.Args[2:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globalFlags are accepted by every subcommand.
type globalFlags struct {
	api     *string
	session *string
}

func newFlagSet(name string) (*flag.FlagSet, globalFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	return fs, globalFlags{
		api:     fs.String("api", "", "Remote API base URL including /api/ (defaults to REMOTE_BASEURL)"),
		session: fs.String("session", "", "Session file (defaults to ~/.backoffice/session.json)"),
	}
}

func run(ctx context.Context, command string, args []string, out io.Writer) error {
	switch command {
	case "login":
		return handleLogin(ctx, args, out)
	case "logout":
		return handleLogout(ctx, args, out)
	case "products":
		return handleProducts(ctx, args, out)
	case "orders":
		return handleOrders(ctx, args, out)
	case "set-status":
		return handleSetStatus(ctx, args, out)
	case "customers":
		return handleCustomers(ctx, args, out)
	case "delete-product":
		return handleDeleteProduct(ctx, args, out)
	case "help", "-h", "--help":
		printUsage(out)

		return nil
	default:
		printUsage(os.Stderr)

		return errors.Errorf("unknown subcommand %q", command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: adminctl <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  login           Sign in (-user, -password)")
	fmt.Fprintln(w, "  logout          Forget the stored session")
	fmt.Fprintln(w, "  products        List products (-category, -status, -name, -page)")
	fmt.Fprintln(w, "  orders          List orders (-status, -q, -page)")
	fmt.Fprintln(w, "  set-status      Change an order status (-id, -status)")
	fmt.Fprintln(w, "  customers       List customers (-q, -page)")
	fmt.Fprintln(w, "  delete-product  Delete a product (-id)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Use 'adminctl <command> -h' for more information about a command.")
}
