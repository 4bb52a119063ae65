// Command artscape is a CLI client for the Artscape marketplace backend.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rashedq/artscape/internal/api"
	"github.com/rashedq/artscape/internal/config"
	"github.com/rashedq/artscape/internal/model"
	"github.com/rashedq/artscape/internal/notify"
	"github.com/rashedq/artscape/internal/page"
	"github.com/rashedq/artscape/internal/paging"
	"github.com/rashedq/artscape/internal/query"
	"github.com/rashedq/artscape/internal/router"
	"github.com/rashedq/artscape/internal/session"
	"github.com/rashedq/artscape/internal/token"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// app wires the client stack the way the web front-end does: one client,
// one cache, one session provider, one notification sink.
type app struct {
	client *api.Client
	cache  *query.Cache
	sess   *session.Provider
	notes  *notify.Memory
	router *router.Router
}

func newApp(ctx context.Context, baseURL, tokenPath string) *app {
	cfg := config.Load()
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if tokenPath != "" {
		cfg.TokenPath = tokenPath
	}

	tokens := token.NewFileStore(cfg.TokenPath)
	client, err := api.New(cfg.BaseURL, tokens)
	if err != nil {
		fail(err)
	}
	logger, _ := zap.NewProduction()
	sess := session.New(client, tokens, logger)
	sess.Restore(ctx)

	a := &app{
		client: client,
		cache:  query.NewCache(),
		sess:   sess,
		notes:  &notify.Memory{},
	}
	a.router = router.New(sess)
	return a
}

// flush prints accumulated notices to stderr.
func (a *app) flush() {
	for _, n := range a.notes.Flush() {
		prefix := "ok"
		if n.Level == notify.Error {
			prefix = "error"
		}
		fmt.Fprintf(os.Stderr, "[%s] %s\n", prefix, n.Message)
	}
}

func (a *app) nav() page.Navigator {
	return page.NavigatorFunc(func(path string) {
		fmt.Fprintf(os.Stderr, "-> %s\n", path)
	})
}

// ---- utils ----

func readAll(p string) ([]byte, error) {
	if p == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(p)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func printPager(p paging.Pager) {
	marks := make([]string, 0, 8)
	for _, n := range paging.Window(p.Current, p.TotalPages) {
		switch {
		case n == paging.Ellipsis:
			marks = append(marks, "…")
		case n == p.Current:
			marks = append(marks, fmt.Sprintf("[%d]", n))
		default:
			marks = append(marks, fmt.Sprint(n))
		}
	}
	fmt.Fprintf(os.Stderr, "page %s\n", strings.Join(marks, " "))
}

func fail(err error) {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		fmt.Fprintf(os.Stderr, "api error: status=%d msg=%s\n", apiErr.Status, apiErr.Message)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func need(fs *flag.FlagSet, pairs ...[2]string) {
	for _, p := range pairs {
		if p[1] == "" {
			fmt.Fprintf(os.Stderr, "need -%s\n", p[0])
			os.Exit(1)
		}
	}
	_ = fs
}

func usage() {
	fmt.Fprintf(os.Stderr, `artscape CLI
Usage:
  artscape [-api URL] [-token-path file] <cmd> [args]

Auth:
  register   -name <n> -email <e> -p <password> [-role user|admin]
  login      -email <e> -p <password>              (saves token)
  logout
  whoami

Catalog:
  arts       [-page n]
  art        -id <id>
  art-add    -name <n> -category <c> -price <p> -images f1,f2
  art-edit   -id <id> [-name] [-category] [-price] [-images]
  art-rm     -id <id>
  order      -art <id> -phone <p> -city <c> -street <s> [-phone2] [-zip]
  my-orders  [-page n]
  received-orders [-page n]
  order-status -id <id> -status pending|processing|completed|cancelled

Blogs:
  blogs      [-page n] [-following]
  blog       -id <id> [-comment <commentId>]
  blog-add   -title <t> -desc <d> [-cover file]
  blog-edit  -id <id> [-title] [-desc] [-cover]
  blog-rm    -id <id>
  blog-like / blog-unlike -id <id>
  blog-comment -id <id> -text <t>
  comment-rm -blog <id> -id <commentId>

Profiles:
  profile    -id <userId>
  profile-edit -name <n> -bio <b>
  avatar     -file <img>
  cover      -file <img> [-scale f] [-offset px]
  follow / unfollow -id <userId>

Units & bookings:
  units1     [-page n] [-company] [-building] [-status] [-bedrooms]
  units2     [-page n] [-building] [-status] [-orientation] [-model] [-floor]
  book1 / book2 -unit <id> -name <n> -email <e> -phone <p> [-pay] [-status]
  unit1-add / unit1-edit / unit1-rm    (admin, see -h of each)
  unit2-add / unit2-edit / unit2-rm    (admin)
  bookings   [-page n] [-model] [-pay] [-status]
  export     -ids a,b,c | -all         (writes dated .xlsx)

Other:
  route      -path </some/path>
  version
`)
	os.Exit(2)
}

// main dispatches subcommands against the backend API.
func main() {
	apiURL := flag.String("api", "", "backend API root (overrides env)")
	tokenPath := flag.String("token-path", "", "token file (overrides env)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd := flag.Arg(0)
	args := flag.Args()[1:]

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if cmd == "version" {
		fmt.Printf("artscape %s (%s)\n", version, buildDate)
		return
	}

	a := newApp(ctx, *apiURL, *tokenPath)
	defer a.flush()

	switch cmd {

	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		name := fs.String("name", "", "full name")
		email := fs.String("email", "", "email")
		p := fs.String("p", "", "password")
		role := fs.String("role", "user", "role")
		_ = fs.Parse(args)
		need(fs, [2]string{"name", *name}, [2]string{"email", *email}, [2]string{"p", *p})

		err := a.sess.Signup(ctx, api.SignupRequest{
			FullName:        *name,
			Email:           *email,
			Password:        *p,
			ConfirmPassword: *p,
			Role:            model.Role(*role),
		})
		if err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "email")
		p := fs.String("p", "", "password")
		_ = fs.Parse(args)
		need(fs, [2]string{"email", *email}, [2]string{"p", *p})

		if err := a.sess.Login(ctx, *email, *p); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "logout":
		a.sess.Logout()
		fmt.Println("ok")

	case "whoami":
		u := a.sess.User()
		if u == nil {
			fmt.Println("anonymous")
			return
		}
		printJSON(u)
		if exp, ok := a.sess.TokenExpiry(); ok {
			fmt.Fprintf(os.Stderr, "token expires %s\n", exp.UTC().Format(time.RFC3339))
		}

	case "route":
		fs := flag.NewFlagSet("route", flag.ExitOnError)
		path := fs.String("path", "/", "path to resolve")
		_ = fs.Parse(args)
		printJSON(a.router.Resolve(*path))

	case "arts":
		fs := flag.NewFlagSet("arts", flag.ExitOnError)
		pg := fs.Int("page", 1, "page")
		_ = fs.Parse(args)

		c := page.NewArtsList(a.client, a.cache, a.notes)
		defer c.Close()
		if err := c.Load(ctx); err != nil {
			fail(err)
		}
		if err := c.GoTo(ctx, *pg); err != nil {
			fail(err)
		}
		printJSON(c.Arts())
		printPager(c.Pager())

	case "art":
		fs := flag.NewFlagSet("art", flag.ExitOnError)
		id := fs.String("id", "", "art id")
		_ = fs.Parse(args)
		need(fs, [2]string{"id", *id})

		c := page.NewArtDetail(a.client, a.cache, a.sess, a.notes, a.nav())
		if err := c.Load(ctx, *id); err != nil {
			fail(err)
		}
		art, _ := c.Art()
		printJSON(art)

	case "art-add", "art-edit":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		id := fs.String("id", "", "art id (edit)")
		name := fs.String("name", "", "name")
		category := fs.String("category", "", "category")
		price := fs.Float64("price", 0, "price")
		images := fs.String("images", "", "comma-separated image files")
		_ = fs.Parse(args)

		up := api.ArtUpload{Name: *name, Category: *category, Price: *price}
		for _, f := range strings.Split(*images, ",") {
			if f == "" {
				continue
			}
			data, err := readAll(f)
			if err != nil {
				fail(err)
			}
			up.Images = append(up.Images, api.FileUpload{Name: f, Data: data})
		}

		var (
			out model.Art
			err error
		)
		if cmd == "art-edit" {
			need(fs, [2]string{"id", *id})
			out, err = a.client.UpdateArt(ctx, *id, up)
		} else {
			need(fs, [2]string{"name", *name}, [2]string{"category", *category}, [2]string{"images", *images})
			out, err = a.client.CreateArt(ctx, up)
		}
		if err != nil {
			fail(err)
		}
		a.cache.Invalidate("art")
		printJSON(out)

	case "art-rm":
		fs := flag.NewFlagSet("art-rm", flag.ExitOnError)
		id := fs.String("id", "", "art id")
		_ = fs.Parse(args)
		need(fs, [2]string{"id", *id})
		if err := a.client.DeleteArt(ctx, *id); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "order":
		fs := flag.NewFlagSet("order", flag.ExitOnError)
		art := fs.String("art", "", "art id")
		phone := fs.String("phone", "", "phone number")
		phone2 := fs.String("phone2", "", "secondary phone")
		city := fs.String("city", "", "city")
		street := fs.String("street", "", "street")
		zip := fs.String("zip", "", "zip code")
		_ = fs.Parse(args)
		need(fs, [2]string{"art", *art}, [2]string{"phone", *phone}, [2]string{"city", *city}, [2]string{"street", *street})

		c := page.NewArtDetail(a.client, a.cache, a.sess, a.notes, a.nav())
		if err := c.Load(ctx, *art); err != nil {
			fail(err)
		}
		if err := c.OpenOrder(); err != nil {
			fail(err)
		}
		f, _ := c.Order()
		f.PhoneNumber = *phone
		f.PhoneNumberSecondary = *phone2
		f.City = *city
		f.Street = *street
		f.ZipCode = *zip
		if err := c.SubmitOrder(ctx); err != nil {
			fail(err)
		}

	case "my-orders", "received-orders":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		pg := fs.Int("page", 1, "page")
		_ = fs.Parse(args)

		var c *page.OrdersList
		if cmd == "received-orders" {
			c = page.NewReceivedOrders(a.client, a.cache, a.notes)
		} else {
			c = page.NewMyOrders(a.client, a.cache, a.notes)
		}
		defer c.Close()
		if err := c.Load(ctx); err != nil {
			fail(err)
		}
		if err := c.GoTo(ctx, *pg); err != nil {
			fail(err)
		}
		printJSON(c.Orders())
		printPager(c.Pager())

	case "order-status":
		fs := flag.NewFlagSet("order-status", flag.ExitOnError)
		id := fs.String("id", "", "order id")
		status := fs.String("status", "", "new status")
		_ = fs.Parse(args)
		need(fs, [2]string{"id", *id}, [2]string{"status", *status})

		c := page.NewReceivedOrders(a.client, a.cache, a.notes)
		defer c.Close()
		if err := c.SetStatus(ctx, *id, model.OrderStatus(*status)); err != nil {
			fail(err)
		}

	case "blogs":
		fs := flag.NewFlagSet("blogs", flag.ExitOnError)
		pg := fs.Int("page", 1, "page")
		following := fs.Bool("following", false, "followed authors only")
		_ = fs.Parse(args)

		c := page.NewBlogsList(a.client, a.cache, a.sess, a.notes)
		defer c.Close()
		if err := c.SetFollowing(ctx, *following); err != nil {
			fail(err)
		}
		if err := c.GoTo(ctx, *pg); err != nil {
			fail(err)
		}
		printJSON(c.Blogs())
		printPager(c.Pager())

	case "blog":
		fs := flag.NewFlagSet("blog", flag.ExitOnError)
		id := fs.String("id", "", "blog id")
		comment := fs.String("comment", "", "deep-linked comment id")
		_ = fs.Parse(args)
		need(fs, [2]string{"id", *id})

		c := page.NewBlogDetail(a.client, a.cache, a.sess, a.notes, a.nav())
		if *comment != "" {
			c.SetPendingComment(*comment)
		}
		if err := c.Load(ctx, *id); err != nil {
			fail(err)
		}
		b, _ := c.Blog()
		printJSON(b)
		if cid, ok := c.ConsumePendingComment(); ok {
			fmt.Fprintf(os.Stderr, "jump to comment %s\n", cid)
		}

	case "blog-add", "blog-edit":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		id := fs.String("id", "", "blog id (edit)")
		title := fs.String("title", "", "title")
		desc := fs.String("desc", "", "description")
		cover := fs.String("cover", "", "cover image file")
		_ = fs.Parse(args)

		up := api.BlogUpload{Title: *title, Description: *desc}
		if *cover != "" {
			data, err := readAll(*cover)
			if err != nil {
				fail(err)
			}
			up.Cover = &api.FileUpload{Name: *cover, Data: data}
		}

		var (
			out model.Blog
			err error
		)
		if cmd == "blog-edit" {
			need(fs, [2]string{"id", *id})
			out, err = a.client.UpdateBlog(ctx, *id, up)
		} else {
			need(fs, [2]string{"title", *title}, [2]string{"desc", *desc})
			out, err = a.client.CreateBlog(ctx, up)
		}
		if err != nil {
			fail(err)
		}
		a.cache.Invalidate("blog")
		printJSON(out)

	case "blog-rm":
		fs := flag.NewFlagSet("blog-rm", flag.ExitOnError)
		id := fs.String("id", "", "blog id")
		_ = fs.Parse(args)
		need(fs, [2]string{"id", *id})
		if err := a.client.DeleteBlog(ctx, *id); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "blog-like", "blog-unlike":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		id := fs.String("id", "", "blog id")
		_ = fs.Parse(args)
		need(fs, [2]string{"id", *id})

		c := page.NewBlogDetail(a.client, a.cache, a.sess, a.notes, a.nav())
		if err := c.Load(ctx, *id); err != nil {
			fail(err)
		}
		if (cmd == "blog-like") == c.Liked() {
			fmt.Println("no change")
			return
		}
		if err := c.ToggleLike(ctx); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "blog-comment":
		fs := flag.NewFlagSet("blog-comment", flag.ExitOnError)
		id := fs.String("id", "", "blog id")
		text := fs.String("text", "", "comment text")
		_ = fs.Parse(args)
		need(fs, [2]string{"id", *id}, [2]string{"text", *text})

		c := page.NewBlogDetail(a.client, a.cache, a.sess, a.notes, a.nav())
		if err := c.Load(ctx, *id); err != nil {
			fail(err)
		}
		if err := c.AddComment(ctx, *text); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "comment-rm":
		fs := flag.NewFlagSet("comment-rm", flag.ExitOnError)
		blogID := fs.String("blog", "", "blog id")
		id := fs.String("id", "", "comment id")
		_ = fs.Parse(args)
		need(fs, [2]string{"blog", *blogID}, [2]string{"id", *id})

		c := page.NewBlogDetail(a.client, a.cache, a.sess, a.notes, a.nav())
		if err := c.Load(ctx, *blogID); err != nil {
			fail(err)
		}
		if err := c.DeleteComment(ctx, *id); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	default:
		runProfileOrUnits(ctx, a, cmd, args)
	}
}
