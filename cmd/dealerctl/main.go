// Command dealerctl is a small terminal client for the dealer-info API.
// It keeps the admin session (token, role, login time) in a file under the
// user's home directory and restores it on start; sessions expire 24 hours
// after login, exactly like the browser panel.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/priyanshuKshk/dealer-info-api/internal/session"
	"github.com/priyanshuKshk/dealer-info-api/pkg/dealerinfo"
)

const sessionTTL = 24 * time.Hour

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	baseURL := flag.String("api", envOr("DEALER_API_URL", "http://localhost:8080"), "dealer-info API base URL")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot locate home directory")
	}
	store := session.NewFileStore(filepath.Join(home, ".dealerinfo", "session.json"))
	sess := session.NewManager(store, sessionTTL)
	sess.Restore()

	client := dealerinfo.NewClient(*baseURL)
	ctx := context.Background()

	cmd, args := flag.Arg(0), flag.Args()[1:]
	if err := run(ctx, cmd, args, client, sess); err != nil {
		log.Fatal().Err(err).Str("command", cmd).Msg("command failed")
	}
}

func run(ctx context.Context, cmd string, args []string, client *dealerinfo.Client, sess *session.Manager) error {
	switch cmd {
	case "signup":
		return signup(ctx, args, client, sess)
	case "login":
		return login(ctx, args, client, sess)
	case "logout":
		sess.Logout()
		fmt.Println("logged out")
		return nil
	case "status":
		return status(sess)
	case "list":
		return list(ctx, args, client)
	case "add":
		return add(ctx, args, client, sess)
	case "update":
		return update(ctx, args, client, sess)
	case "delete":
		return del(ctx, args, client, sess)
	case "states":
		return printList(client.States(ctx))
	case "districts":
		if len(args) != 1 {
			return fmt.Errorf("usage: dealerctl districts <state>")
		}
		return printList(client.Districts(ctx, args[0]))
	case "cities":
		if len(args) != 2 {
			return fmt.Errorf("usage: dealerctl cities <state> <district>")
		}
		return printList(client.Cities(ctx, args[0], args[1]))
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func signup(ctx context.Context, args []string, client *dealerinfo.Client, sess *session.Manager) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	name := fs.String("name", "", "admin name")
	email := fs.String("email", "", "admin email")
	password := fs.String("password", "", "admin password")
	fs.Parse(args)
	if *name == "" || *email == "" || *password == "" {
		return fmt.Errorf("usage: dealerctl signup -name <name> -email <email> -password <password>")
	}

	token, err := client.Signup(ctx, *name, *email, *password)
	if err != nil {
		return err
	}
	if err := sess.Login(token, "admin"); err != nil {
		return err
	}
	fmt.Println("signed up and logged in")
	return nil
}

func login(ctx context.Context, args []string, client *dealerinfo.Client, sess *session.Manager) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "admin email")
	password := fs.String("password", "", "admin password")
	fs.Parse(args)
	if *email == "" || *password == "" {
		return fmt.Errorf("usage: dealerctl login -email <email> -password <password>")
	}

	token, err := client.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	if err := sess.Login(token, "admin"); err != nil {
		return err
	}
	fmt.Println("logged in")
	return nil
}

func status(sess *session.Manager) error {
	if sess.State() == session.Authenticated {
		fmt.Printf("authenticated, session expires in %s\n", sess.ExpiresIn().Round(time.Second))
	} else {
		fmt.Println("anonymous")
	}
	return nil
}

func list(ctx context.Context, args []string, client *dealerinfo.Client) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	name := fs.String("name", "", "filter by name substring")
	state := fs.String("state", "", "filter by state")
	city := fs.String("city", "", "filter by city")
	fs.Parse(args)

	dealers, err := client.ListDealers(ctx, dealerinfo.ListFilter{Name: *name, State: *state, City: *city})
	if err != nil {
		return err
	}
	for _, d := range dealers {
		fmt.Printf("%s  %-12s %-24s %s, %s, %s  [%s]\n",
			d.ID, d.DealerCode, d.DealershipName, d.City, d.District, d.State, d.Status)
	}
	fmt.Printf("%d dealer(s)\n", len(dealers))
	return nil
}

func add(ctx context.Context, args []string, client *dealerinfo.Client, sess *session.Manager) error {
	token, err := sess.Require()
	if err != nil {
		return err
	}
	client.SetToken(token)

	fs := flag.NewFlagSet("add", flag.ExitOnError)
	d := dealerinfo.Dealer{Country: "India", Status: "active"}
	fs.StringVar(&d.DealershipName, "name", "", "dealership name")
	fs.StringVar(&d.DealerCode, "code", "", "dealer code")
	fs.StringVar(&d.Address, "address", "", "address")
	fs.StringVar(&d.ContactPerson, "contact", "", "contact person")
	fs.StringVar(&d.ContactNumber, "phone", "", "contact number")
	fs.StringVar(&d.Pincode, "pincode", "", "6-digit pincode")
	fs.StringVar(&d.State, "state", "", "state")
	fs.StringVar(&d.District, "district", "", "district")
	fs.StringVar(&d.City, "city", "", "city")
	fs.StringVar(&d.Email, "email", "", "email")
	fs.StringVar(&d.Website, "website", "", "website")
	fs.StringVar(&d.Services, "services", "", "services offered")
	fs.StringVar(&d.Status, "dealer-status", "active", "active or inactive")
	fs.Parse(args)

	created, err := client.CreateDealer(ctx, &d)
	if err != nil {
		return err
	}
	fmt.Printf("created dealer %s (%s)\n", created.ID, created.DealerCode)
	return nil
}

func update(ctx context.Context, args []string, client *dealerinfo.Client, sess *session.Manager) error {
	token, err := sess.Require()
	if err != nil {
		return err
	}
	client.SetToken(token)

	if len(args) < 1 {
		return fmt.Errorf("usage: dealerctl update <id> [-field value ...]")
	}
	id := args[0]

	fs := flag.NewFlagSet("update", flag.ExitOnError)
	flags := map[string]*string{
		"dealershipName": fs.String("name", "", "dealership name"),
		"dealerCode":     fs.String("code", "", "dealer code"),
		"address":        fs.String("address", "", "address"),
		"contactPerson":  fs.String("contact", "", "contact person"),
		"contactNumber":  fs.String("phone", "", "contact number"),
		"pincode":        fs.String("pincode", "", "pincode"),
		"state":          fs.String("state", "", "state"),
		"district":       fs.String("district", "", "district"),
		"city":           fs.String("city", "", "city"),
		"email":          fs.String("email", "", "email"),
		"website":        fs.String("website", "", "website"),
		"services":       fs.String("services", "", "services"),
		"status":         fs.String("dealer-status", "", "active or inactive"),
	}
	fs.Parse(args[1:])

	fields := make(map[string]any)
	for name, value := range flags {
		if *value != "" {
			fields[name] = *value
		}
	}
	if len(fields) == 0 {
		return fmt.Errorf("nothing to update")
	}

	updated, err := client.UpdateDealer(ctx, id, fields)
	if err != nil {
		return err
	}
	fmt.Printf("updated dealer %s (%s)\n", updated.ID, updated.DealerCode)
	return nil
}

func del(ctx context.Context, args []string, client *dealerinfo.Client, sess *session.Manager) error {
	token, err := sess.Require()
	if err != nil {
		return err
	}
	client.SetToken(token)

	if len(args) != 1 {
		return fmt.Errorf("usage: dealerctl delete <id>")
	}
	if err := client.DeleteDealer(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("dealer deleted")
	return nil
}

func printList(items []string, err error) error {
	if err != nil {
		return err
	}
	for _, item := range items {
		fmt.Println(item)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func usage() {
	fmt.Fprintln(os.Stderr, `dealerctl — dealer-info admin client

Usage:
  dealerctl [-api URL] <command> [flags]

Commands:
  signup    -name N -email E -password P   register an admin and log in
  login     -email E -password P           log in
  logout                                   clear the stored session
  status                                   show session state
  list      [-name N] [-state S] [-city C] list dealers
  add       -name N -code C ...            add a dealer (requires login)
  update    <id> [-name N ...]             update a dealer (requires login)
  delete    <id>                           delete a dealer (requires login)
  states                                   list states
  districts <state>                        list districts of a state
  cities    <state> <district>             list cities of a district`)
}
