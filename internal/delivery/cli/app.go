// Package cli is the command-line front-end of the storefront client.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/session"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2

	genericFailure = "Something went wrong. Please try again."
)

// errUsage marks bad arguments. The flag set has already reported them.
var errUsage = errors.New("invalid arguments")

// MediaResolver maps media URLs returned by the backend onto a reachable origin.
type MediaResolver interface {
	ResolveMediaURL(raw string) string
}

type command struct {
	name   string
	usage  string
	group  entity.RouteGroup
	action string
	run    func(ctx context.Context, args []string) error
}

// AppParams holds dependencies for the App, injected by Fx
type AppParams struct {
	fx.In

	Auth         usecase.AuthUsecase
	Market       usecase.MarketUsecase
	Orders       usecase.OrderUsecase
	ShoppingList usecase.ShoppingListUsecase
	Session      *session.Store
	Gate         *session.Gate
	Navigator    *Navigator
	Location     service.LocationProvider `optional:"true"`
	Media        MediaResolver            `optional:"true"`
	Logger       *slog.Logger
}

// App runs one command per invocation against the hydrated session.
type App struct {
	auth     usecase.AuthUsecase
	market   usecase.MarketUsecase
	orders   usecase.OrderUsecase
	list     usecase.ShoppingListUsecase
	session  *session.Store
	gate     *session.Gate
	nav      *Navigator
	location service.LocationProvider
	media    MediaResolver
	logger   *slog.Logger

	stdout io.Writer
	stderr io.Writer

	commands map[string]command
}

// NewApp creates the App writing to the process standard streams.
func NewApp(params AppParams) *App {
	a := &App{
		auth:     params.Auth,
		market:   params.Market,
		orders:   params.Orders,
		list:     params.ShoppingList,
		session:  params.Session,
		gate:     params.Gate,
		nav:      params.Navigator,
		location: params.Location,
		media:    params.Media,
		logger:   params.Logger.With(slog.String("component", "cli")),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	a.commands = a.commandTable()

	return a
}

// SetOutput redirects command output and alerts.
func (a *App) SetOutput(stdout, stderr io.Writer) {
	a.stdout = stdout
	a.stderr = stderr
}

func (a *App) commandTable() map[string]command {
	list := []command{
		{"login", "-email <email> -password <password>", entity.GroupAuth, "Could not sign in", a.runLogin},
		{"register", "-name <name> -email <email> -password <password> -phone <phone> [-role CLIENT|SHOPPER]", entity.GroupAuth, "Could not create the account", a.runRegister},
		{"whoami", "", entity.GroupClient, "Could not read the session", a.runWhoAmI},
		{"profile", "[-name <name>] [-phone <phone>] [-avatar <file>]", entity.GroupClient, "Could not update the profile", a.runProfile},
		{"logout", "", entity.GroupClient, "Could not sign out", a.runLogout},
		{"shops", "[-near <lat,lng> | -here] [-radius <km>]", entity.GroupClient, "Could not load shops", a.runShops},
		{"store", "<slug>", entity.GroupClient, "Could not load the store", a.runStore},
		{"my-store", "", entity.GroupClient, "Could not load your store", a.runMyStore},
		{"my-stores", "", entity.GroupClient, "Could not load your stores", a.runMyStores},
		{"products", "[-store <id>]", entity.GroupClient, "Could not load products", a.runProducts},
		{"product", "<id>", entity.GroupClient, "Could not load the product", a.runProduct},
		{"store-create", "-name <name> -lat <lat> -lng <lng> -logo <file> -avatar <file>", entity.GroupClient, "Could not create the store", a.runStoreCreate},
		{"store-update", "[-id <id>] [-name <name>] [-lat <lat> -lng <lng>] [-logo <file>] [-avatar <file>]", entity.GroupClient, "Could not update the store", a.runStoreUpdate},
		{"store-toggle", "[-id <id>]", entity.GroupClient, "Could not change the store status", a.runStoreToggle},
		{"store-delete", "<id>", entity.GroupClient, "Could not delete the store", a.runStoreDelete},
		{"product-create", "[-store <id>] -name <name> -price <price> -image <file> [-brand] [-barcode] [-description]", entity.GroupClient, "Could not create the product", a.runProductCreate},
		{"product-update", "<id> [-name] [-price] [-brand] [-barcode] [-description] [-available] [-image <file>]", entity.GroupClient, "Could not update the product", a.runProductUpdate},
		{"product-delete", "<id>", entity.GroupClient, "Could not delete the product", a.runProductDelete},
		{"orders", "", entity.GroupClient, "Could not load orders", a.runOrders},
		{"order-create", "-store <id> -item <productID:qty>... [-lat <lat> -lng <lng> -address <line>]", entity.GroupClient, "Could not place the order", a.runOrderCreate},
		{"list", "[-add <text>] [-done <id>] [-remove <id>] [-clear]", entity.GroupClient, "Could not update the shopping list", a.runList},
		{"store-qr", "<slug> [-out <file.png>]", entity.GroupClient, "Could not generate the QR code", a.runStoreQR},
	}

	table := make(map[string]command, len(list))
	for _, cmd := range list {
		table[cmd.name] = cmd
	}

	return table
}

// Run hydrates the session, lets the routing gate check the command's screen group,
// then executes the command. It returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.printUsage()

		return ExitUsage
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		fmt.Fprintf(a.stderr, "unknown command %q\n\n", args[0])
		a.printUsage()

		return ExitUsage
	}

	a.session.LoadSession(ctx)
	a.nav.Enter(cmd.group)
	a.gate.Evaluate()

	if route, moved := a.nav.Redirect(); moved {
		a.logger.Debug("Command blocked by routing gate",
			slog.String("command", cmd.name),
			slog.String("route", string(route)),
		)
		if route == entity.RouteLogin {
			fmt.Fprintln(a.stderr, "You are not signed in. Run 'storefront login' first.")
		} else {
			fmt.Fprintln(a.stderr, "You are already signed in. Run 'storefront logout' first.")
		}

		return ExitError
	}

	ctx = deliverycontext.Scope(ctx, a.logger.With(slog.String("command", cmd.name)), deliverycontext.NewRequestID())

	err := cmd.run(ctx, args[1:])
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.Is(err, errUsage):
		fmt.Fprintf(a.stderr, "usage: storefront %s %s\n", cmd.name, cmd.usage)

		return ExitUsage
	default:
		a.alert(cmd, err)

		return ExitError
	}
}

// alert reports a failed action the way the app shows a blocking dialog.
func (a *App) alert(cmd command, err error) {
	a.logger.Debug("Command failed",
		slog.String("command", cmd.name),
		slog.Any("error", err),
	)
	fmt.Fprintf(a.stderr, "%s: %s\n", cmd.action, domainerrors.UserMessage(err, genericFailure))
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.stderr, "Usage: storefront <command> [options]")
	fmt.Fprintln(a.stderr, "")
	fmt.Fprintln(a.stderr, "Commands:")

	w := tabwriter.NewWriter(a.stderr, 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\t%s\n", name, a.commands[name].usage)
	}
	_ = w.Flush()
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)

	return fs
}

// parse parses args and rejects positional arguments beyond want.
func (a *App) parse(fs *flag.FlagSet, args []string, want int) ([]string, error) {
	// Leading positionals are allowed before the flags, e.g. "product-update p1 -price 3".
	var positional []string
	for len(args) > 0 && len(positional) < want && len(args[0]) > 0 && args[0][0] != '-' {
		positional = append(positional, args[0])
		args = args[1:]
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}

		return nil, errUsage
	}

	positional = append(positional, fs.Args()...)
	if len(positional) != want {
		return nil, errUsage
	}

	return positional, nil
}

// visited returns the names of the flags set on the command line.
func visited(fs *flag.FlagSet) map[string]bool {
	given := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { given[f.Name] = true })

	return given
}

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
}

func (a *App) mediaURL(raw string) string {
	if a.media == nil || raw == "" {
		return raw
	}

	return a.media.ResolveMediaURL(raw)
}
