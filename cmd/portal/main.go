// Command portal is the CLI for the pricing portal: clients look up their
// current prices, administrators manage clients, products and price
// publication. The backing store is a shared spreadsheet, or a Postgres
// table when -dsn is given.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/madnessDann/portal-precios/internal/errs"
	"github.com/madnessDann/portal-precios/internal/migrate"
	"github.com/madnessDann/portal-precios/internal/model"
	"github.com/madnessDann/portal-precios/internal/repository/tabular"
	"github.com/madnessDann/portal-precios/internal/service"
	"github.com/madnessDann/portal-precios/internal/session"
	"github.com/madnessDann/portal-precios/internal/store"
	"github.com/madnessDann/portal-precios/internal/store/postgres"
	"github.com/madnessDann/portal-precios/internal/store/sheets"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func usage() {
	fmt.Fprintf(os.Stderr, `portal CLI
Usage:
  portal [-spreadsheet ID -sa-email EMAIL -sa-key FILE | -dsn DSN] -admin-secret SECRET <cmd> [args]

Client commands:
  login        -code <code>                 validate an access code
  logout
  whoami
  prices                                    current price list (latest date, one row per product)
  history      [-date YYYY-MM-DD]           raw price log entries for the logged-in client

Admin commands (after admin-login):
  admin-login  -secret <secret>
  admin-logout
  clients
  client-add   -name <name> [-company <c>] [-inactive]
  client-set-active -code <code> -active <true|false>
  products
  product-add  -id <id> -name <name> [-desc <d>]
  publish      -clients A,B,... [-date YYYY-MM-DD] -price PRODUCT=AMOUNT [-price ...]

  version
`)
	os.Exit(2)
}

// priceList accumulates repeated -price PRODUCT=AMOUNT flags.
type priceList map[string]float64

func (p priceList) String() string { return fmt.Sprintf("%v", map[string]float64(p)) }

func (p priceList) Set(v string) error {
	id, raw, ok := strings.Cut(v, "=")
	if !ok || id == "" {
		return fmt.Errorf("want PRODUCT=AMOUNT, got %q", v)
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("amount %q is not a number", raw)
	}
	p[id] = amount
	return nil
}

func fail(err error) {
	// Expected negative outcomes read as plain messages; anything else is an
	// infrastructure failure worth the full error chain.
	switch {
	case errors.Is(err, errs.ErrInvalidCode),
		errors.Is(err, errs.ErrUnauthorized),
		errors.Is(err, errs.ErrNotFound),
		errors.Is(err, errs.ErrValidation):
		fmt.Fprintln(os.Stderr, err)
	default:
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	os.Exit(1)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// main parses configuration, wires the row store behind the repositories and
// dispatches subcommands.
func main() {
	spreadsheet := flag.String("spreadsheet", envOr("PORTAL_SPREADSHEET_ID", ""), "spreadsheet id")
	saEmail := flag.String("sa-email", envOr("PORTAL_SA_EMAIL", ""), "service-account email")
	saKey := flag.String("sa-key", envOr("PORTAL_SA_KEY", ""), "service-account private key file (PEM)")
	adminSecret := flag.String("admin-secret", envOr("PORTAL_ADMIN_SECRET", ""), "admin shared secret")
	dsn := flag.String("dsn", envOr("PORTAL_DSN", ""), "PostgreSQL DSN (table backend instead of the spreadsheet)")
	sessionPath := flag.String("session", session.DefaultPath(), "session file")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd := flag.Arg(0)

	if cmd == "version" {
		fmt.Printf("portal %s (%s)\n", version, buildDate)
		return
	}

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	if *adminSecret == "" {
		logger.Fatal("missing admin shared secret (-admin-secret)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var rows store.RowStore
	if *dsn != "" {
		if err := migrate.Up(ctx, *dsn); err != nil {
			logger.Fatal("migrate up", zap.Error(err))
		}
		db, err := postgres.New(ctx, *dsn)
		if err != nil {
			logger.Fatal("postgres connect", zap.Error(err))
		}
		defer db.Close()
		rows = postgres.NewRowStore(db)
	} else {
		if *spreadsheet == "" || *saEmail == "" || *saKey == "" {
			logger.Fatal("missing store configuration (-spreadsheet, -sa-email, -sa-key)")
		}
		keyPEM, err := os.ReadFile(*saKey)
		if err != nil {
			logger.Fatal("read service key", zap.Error(err))
		}
		tokens, err := sheets.NewTokenSource(*saEmail, keyPEM)
		if err != nil {
			logger.Fatal("token source", zap.Error(err))
		}
		rows = sheets.NewClient(*spreadsheet, tokens)
	}

	sess := session.NewFile(*sessionPath)
	clientRepo := tabular.NewClientRepo(rows)
	productRepo := tabular.NewProductRepo(rows)
	priceRepo := tabular.NewPriceRepo(rows)

	auth := service.NewAuthService(clientRepo, sess, *adminSecret)
	clientsSvc := service.NewClientService(clientRepo, service.NewCodeGenerator(time.Now().UnixNano()))
	productsSvc := service.NewProductService(productRepo)
	pricesSvc := service.NewPriceService(priceRepo, productRepo)

	switch cmd {

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		code := fs.String("code", "", "access code")
		_ = fs.Parse(flag.Args()[1:])
		c, err := auth.LoginClient(ctx, strings.ToUpper(strings.TrimSpace(*code)))
		if err != nil {
			fail(err)
		}
		fmt.Printf("welcome %s (%s)\n", c.Name, c.Company)

	case "logout":
		if err := auth.LogoutClient(); err != nil {
			fail(err)
		}

	case "whoami":
		if c, ok := auth.CurrentClient(); ok {
			fmt.Printf("%s\t%s\t%s\n", c.Code, c.Name, c.Company)
		} else {
			fmt.Println("not logged in")
		}

	case "prices":
		c := mustClient(auth)
		list, err := pricesSvc.LatestForDisplay(ctx, c.Code)
		if err != nil {
			fail(err)
		}
		if len(list) == 0 {
			fmt.Println("no prices published yet")
			return
		}
		fmt.Printf("prices valid as of %s\n", list[0].Date)
		for _, p := range list {
			name := p.ProductName
			if name == "" {
				name = p.ProductID
			}
			fmt.Printf("%s\t%s\t%.2f\n", name, p.ProductDescription, p.Amount)
		}

	case "history":
		fs := flag.NewFlagSet("history", flag.ExitOnError)
		date := fs.String("date", "", "filter by date (YYYY-MM-DD)")
		_ = fs.Parse(flag.Args()[1:])
		c := mustClient(auth)
		list, err := pricesSvc.ByClient(ctx, c.Code, *date)
		if err != nil {
			fail(err)
		}
		for _, p := range list {
			fmt.Printf("%s\t%s\t%.2f\n", p.Date, p.ProductID, p.Amount)
		}

	case "admin-login":
		fs := flag.NewFlagSet("admin-login", flag.ExitOnError)
		secret := fs.String("secret", "", "admin secret")
		_ = fs.Parse(flag.Args()[1:])
		if err := auth.LoginAdmin(*secret); err != nil {
			fail(err)
		}
		fmt.Println("admin session opened")

	case "admin-logout":
		if err := auth.LogoutAdmin(); err != nil {
			fail(err)
		}

	case "clients":
		mustAdmin(auth)
		list, err := clientsSvc.List(ctx)
		if err != nil {
			fail(err)
		}
		for _, c := range list {
			state := "inactive"
			if c.Active {
				state = "active"
			}
			fmt.Printf("%s\t%s\t%s\t%s\n", c.Code, c.Name, c.Company, state)
		}

	case "client-add":
		mustAdmin(auth)
		fs := flag.NewFlagSet("client-add", flag.ExitOnError)
		name := fs.String("name", "", "client name")
		company := fs.String("company", "", "company")
		inactive := fs.Bool("inactive", false, "create deactivated")
		_ = fs.Parse(flag.Args()[1:])
		code, err := clientsSvc.Create(ctx, *name, *company, !*inactive)
		if err != nil {
			fail(err)
		}
		fmt.Println(code)

	case "client-set-active":
		mustAdmin(auth)
		fs := flag.NewFlagSet("client-set-active", flag.ExitOnError)
		code := fs.String("code", "", "access code")
		active := fs.Bool("active", true, "active flag")
		_ = fs.Parse(flag.Args()[1:])
		if err := clientsSvc.SetActive(ctx, *code, *active); err != nil {
			fail(err)
		}

	case "products":
		mustAdmin(auth)
		list, err := productsSvc.List(ctx)
		if err != nil {
			fail(err)
		}
		for _, p := range list {
			fmt.Printf("%s\t%s\t%s\n", p.ID, p.Name, p.Description)
		}

	case "product-add":
		mustAdmin(auth)
		fs := flag.NewFlagSet("product-add", flag.ExitOnError)
		id := fs.String("id", "", "product id")
		name := fs.String("name", "", "product name")
		desc := fs.String("desc", "", "description")
		_ = fs.Parse(flag.Args()[1:])
		if err := productsSvc.Create(ctx, model.Product{ID: *id, Name: *name, Description: *desc}); err != nil {
			fail(err)
		}

	case "publish":
		mustAdmin(auth)
		fs := flag.NewFlagSet("publish", flag.ExitOnError)
		clientsArg := fs.String("clients", "", "comma-separated client codes")
		date := fs.String("date", "", "price date (default today)")
		amounts := priceList{}
		fs.Var(amounts, "price", "PRODUCT=AMOUNT (repeatable)")
		_ = fs.Parse(flag.Args()[1:])

		var codes []string
		for _, c := range strings.Split(*clientsArg, ",") {
			if c = strings.TrimSpace(c); c != "" {
				codes = append(codes, c)
			}
		}
		n, err := pricesSvc.Publish(ctx, *date, codes, amounts)
		if err != nil {
			fail(err)
		}
		fmt.Printf("published %d price rows for %d client(s)\n", n, len(codes))

	default:
		usage()
	}
}

func mustClient(auth service.AuthService) *model.Client {
	c, ok := auth.CurrentClient()
	if !ok {
		fmt.Fprintln(os.Stderr, "client login required")
		os.Exit(1)
	}
	return c
}

func mustAdmin(auth service.AuthService) {
	if !auth.AdminAuthenticated() {
		fmt.Fprintln(os.Stderr, "admin login required")
		os.Exit(1)
	}
}
