package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rashedq/artscape/internal/api"
	"github.com/rashedq/artscape/internal/forms"
	"github.com/rashedq/artscape/internal/model"
	"github.com/rashedq/artscape/internal/page"
)

// runProfileOrUnits dispatches the profile, unit, and booking
// subcommands.
func runProfileOrUnits(ctx context.Context, a *app, cmd string, args []string) {
	switch cmd {

	case "profile":
		fs := flag.NewFlagSet("profile", flag.ExitOnError)
		id := fs.String("id", "", "user id")
		_ = fs.Parse(args)
		need(fs, [2]string{"id", *id})

		c := page.NewArtistProfile(a.client, a.sess, a.notes, a.nav())
		if err := c.Load(ctx, *id); err != nil {
			fail(err)
		}
		p, _ := c.Profile()
		printJSON(p)

	case "profile-edit":
		fs := flag.NewFlagSet("profile-edit", flag.ExitOnError)
		name := fs.String("name", "", "full name")
		bio := fs.String("bio", "", "bio")
		_ = fs.Parse(args)

		c := mustOwnProfile(ctx, a)
		if err := c.UpdateBio(ctx, *name, *bio); err != nil {
			fail(err)
		}

	case "avatar":
		fs := flag.NewFlagSet("avatar", flag.ExitOnError)
		file := fs.String("file", "", "image file")
		_ = fs.Parse(args)
		need(fs, [2]string{"file", *file})

		data, err := readAll(*file)
		if err != nil {
			fail(err)
		}
		c := mustOwnProfile(ctx, a)
		if err := c.UploadAvatar(ctx, *file, data); err != nil {
			fail(err)
		}

	case "cover":
		fs := flag.NewFlagSet("cover", flag.ExitOnError)
		file := fs.String("file", "", "image file")
		scale := fs.Float64("scale", 1, "zoom scale")
		offset := fs.Float64("offset", 0, "vertical offset (px)")
		_ = fs.Parse(args)
		need(fs, [2]string{"file", *file})

		data, err := readAll(*file)
		if err != nil {
			fail(err)
		}
		c := mustOwnProfile(ctx, a)
		if err := c.UploadCover(ctx, *file, data, *scale, *offset); err != nil {
			fail(err)
		}

	case "follow", "unfollow":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		id := fs.String("id", "", "user id")
		_ = fs.Parse(args)
		need(fs, [2]string{"id", *id})

		c := page.NewArtistProfile(a.client, a.sess, a.notes, a.nav())
		if err := c.Load(ctx, *id); err != nil {
			fail(err)
		}
		if (cmd == "follow") == c.FollowsProfile() {
			fmt.Println("no change")
			return
		}
		if err := c.ToggleFollow(ctx); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "units1":
		fs := flag.NewFlagSet("units1", flag.ExitOnError)
		pg := fs.Int("page", 1, "page")
		company := fs.String("company", "", "company filter")
		building := fs.String("building", "", "building filter")
		status := fs.String("status", "", "status filter")
		bedrooms := fs.String("bedrooms", "", "bedrooms filter")
		_ = fs.Parse(args)

		c := page.NewCompanyOneList(a.client, a.cache, a.sess, a.notes)
		defer c.Close()
		f := api.CompanyOneFilter{Company: *company, Building: *building, Status: *status, Bedrooms: *bedrooms}
		if err := c.SetFilter(ctx, f); err != nil {
			fail(err)
		}
		if err := c.GoTo(ctx, *pg); err != nil {
			fail(err)
		}
		printJSON(c.Units())
		printPager(c.Pager())

	case "units2":
		fs := flag.NewFlagSet("units2", flag.ExitOnError)
		pg := fs.Int("page", 1, "page")
		building := fs.String("building", "", "building filter")
		status := fs.String("status", "", "status filter (applied locally)")
		orientation := fs.String("orientation", "", "orientation filter")
		modelCode := fs.String("model", "", "model code filter")
		floor := fs.String("floor", "", "floor filter")
		_ = fs.Parse(args)

		c := page.NewCompanyTwoList(a.client, a.cache, a.sess, a.notes)
		defer c.Close()
		f := api.CompanyTwoFilter{Building: *building, Status: *status, Orientation: *orientation, ModelCode: *modelCode, Floor: *floor}
		if err := c.SetFilter(ctx, f); err != nil {
			fail(err)
		}
		if err := c.GoTo(ctx, *pg); err != nil {
			fail(err)
		}
		printJSON(c.Displayed())
		printPager(c.Pager())

	case "book1":
		bookOne(ctx, a, args)

	case "book2":
		bookTwo(ctx, a, args)

	case "unit1-add", "unit1-edit":
		unitOneForm(ctx, a, cmd, args)

	case "unit1-rm":
		fs := flag.NewFlagSet("unit1-rm", flag.ExitOnError)
		id := fs.String("id", "", "unit id")
		yes := fs.Bool("yes", false, "skip confirmation")
		_ = fs.Parse(args)
		need(fs, [2]string{"id", *id})

		c := page.NewCompanyOneAdmin(a.client, a.cache, a.notes)
		defer c.Close()
		if err := c.Delete(ctx, *id, confirmFlag(*yes)); err != nil {
			fail(err)
		}

	case "unit2-add", "unit2-edit":
		unitTwoForm(ctx, a, cmd, args)

	case "unit2-rm":
		fs := flag.NewFlagSet("unit2-rm", flag.ExitOnError)
		id := fs.String("id", "", "unit id")
		yes := fs.Bool("yes", false, "skip confirmation")
		_ = fs.Parse(args)
		need(fs, [2]string{"id", *id})

		c := page.NewCompanyTwoAdmin(a.client, a.cache, a.notes)
		defer c.Close()
		if err := c.Delete(ctx, *id, confirmFlag(*yes)); err != nil {
			fail(err)
		}

	case "bookings":
		fs := flag.NewFlagSet("bookings", flag.ExitOnError)
		pg := fs.Int("page", 1, "page")
		unitModel := fs.String("model", "", "unit model filter")
		pay := fs.String("pay", "", "payment method filter")
		status := fs.String("status", "", "status filter (applied locally)")
		_ = fs.Parse(args)

		c := page.NewBookingsAdmin(a.client, a.cache, a.notes)
		defer c.Close()
		f := api.BookingFilter{UnitModel: *unitModel, PaymentMethod: *pay}
		if err := c.SetFilter(ctx, f, *status); err != nil {
			fail(err)
		}
		if err := c.GoTo(ctx, *pg); err != nil {
			fail(err)
		}
		printJSON(c.Displayed())
		printPager(c.Pager())

	case "export":
		fs := flag.NewFlagSet("export", flag.ExitOnError)
		ids := fs.String("ids", "", "comma-separated booking ids")
		all := fs.Bool("all", false, "export every booking")
		_ = fs.Parse(args)

		c := page.NewBookingsAdmin(a.client, a.cache, a.notes)
		defer c.Close()

		var (
			out page.Export
			err error
		)
		if *all {
			out, err = c.ExportAll(ctx)
		} else {
			for _, id := range strings.Split(*ids, ",") {
				if id != "" {
					c.ToggleSelect(id)
				}
			}
			out, err = c.ExportSelected(ctx)
		}
		if err != nil {
			fail(err)
		}
		if err := os.WriteFile(out.Filename, out.Data, 0o644); err != nil {
			fail(err)
		}
		fmt.Println(out.Filename)

	default:
		usage()
	}
}

// mustOwnProfile loads the current user's own profile controller.
func mustOwnProfile(ctx context.Context, a *app) *page.ArtistProfile {
	u := a.sess.User()
	if u == nil {
		fmt.Fprintln(os.Stderr, "login required")
		os.Exit(1)
	}
	c := page.NewArtistProfile(a.client, a.sess, a.notes, a.nav())
	if err := c.Load(ctx, u.ID); err != nil {
		fail(err)
	}
	return c
}

// confirmFlag turns -yes into the delete confirmation callback; without
// it the prompt reads one line from stdin.
func confirmFlag(yes bool) func() bool {
	if yes {
		return nil
	}
	return func() bool {
		fmt.Fprint(os.Stderr, "delete? [y/N] ")
		var line string
		_, _ = fmt.Fscanln(os.Stdin, &line)
		return strings.EqualFold(line, "y")
	}
}

func bookOne(ctx context.Context, a *app, args []string) {
	fs := flag.NewFlagSet("book1", flag.ExitOnError)
	unitID := fs.String("unit", "", "unit id")
	name := fs.String("name", "", "client name")
	email := fs.String("email", "", "client email")
	phone := fs.String("phone", "", "client phone")
	pay := fs.String("pay", string(model.PayCash), "payment method")
	status := fs.String("status", string(model.UnitBooked), "resulting unit status")
	_ = fs.Parse(args)
	need(fs, [2]string{"unit", *unitID}, [2]string{"name", *name}, [2]string{"email", *email}, [2]string{"phone", *phone})

	u, err := a.client.GetCompanyOneUnit(ctx, *unitID)
	if err != nil {
		fail(err)
	}
	c := page.NewCompanyOneList(a.client, a.cache, a.sess, a.notes)
	defer c.Close()
	if err := c.OpenBooking(u); err != nil {
		fail(err)
	}
	f, _ := c.Booking()
	fillBooking(f, *name, *email, *phone, *pay, *status)
	if err := c.SubmitBooking(ctx); err != nil {
		fail(err)
	}
}

func bookTwo(ctx context.Context, a *app, args []string) {
	fs := flag.NewFlagSet("book2", flag.ExitOnError)
	unitID := fs.String("unit", "", "unit id")
	name := fs.String("name", "", "client name")
	email := fs.String("email", "", "client email")
	phone := fs.String("phone", "", "client phone")
	pay := fs.String("pay", string(model.PayCash), "payment method")
	status := fs.String("status", string(model.UnitBooked), "resulting unit status")
	_ = fs.Parse(args)
	need(fs, [2]string{"unit", *unitID}, [2]string{"name", *name}, [2]string{"email", *email}, [2]string{"phone", *phone})

	u, err := a.client.GetCompanyTwoUnit(ctx, *unitID)
	if err != nil {
		fail(err)
	}
	c := page.NewCompanyTwoList(a.client, a.cache, a.sess, a.notes)
	defer c.Close()
	if err := c.OpenBooking(u); err != nil {
		fail(err)
	}
	f, _ := c.Booking()
	fillBooking(f, *name, *email, *phone, *pay, *status)
	if err := c.SubmitBooking(ctx); err != nil {
		fail(err)
	}
}

func fillBooking(f *forms.BookingForm, name, email, phone, pay, status string) {
	f.ClientName = name
	f.Email = email
	f.Phone = phone
	f.PaymentMethod = model.PaymentMethod(pay)
	f.Status = model.UnitStatus(status)
}

func unitOneForm(ctx context.Context, a *app, cmd string, args []string) {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	id := fs.String("id", "", "unit id (edit)")
	company := fs.String("company", string(model.CompanyOneSakaya), "company (Sakaya|Upvida)")
	view := fs.String("view", "", "view")
	orientation := fs.String("orientation", "", "orientation")
	status := fs.String("status", string(model.UnitAvailable), "status")
	unit := fs.String("unit", "", "unit number (Sakaya)")
	building := fs.String("building", "", "building (Sakaya)")
	area := fs.Float64("area", 0, "area (Sakaya)")
	bedrooms := fs.Int("bedrooms", 0, "bedrooms (Sakaya)")
	price := fs.Float64("price", 0, "price (Sakaya)")
	totalPrice := fs.Float64("total-price", 0, "total price (Upvida)")
	totalArea := fs.Float64("total-area", 0, "total area (Upvida)")
	balcony := fs.Float64("balcony", 0, "balcony area (Upvida)")
	netArea := fs.Float64("net-area", 0, "net area (Upvida)")
	modelName := fs.String("model-name", "", "model name (Upvida)")
	floorNo := fs.String("floor", "", "floor number (Upvida)")
	unitNo := fs.String("unit-no", "", "unit number (Upvida)")
	buildingNo := fs.String("building-no", "", "building number (Upvida)")
	towerNo := fs.String("tower", "", "tower number (Upvida)")
	_ = fs.Parse(args)

	c := page.NewCompanyOneAdmin(a.client, a.cache, a.notes)
	defer c.Close()
	if cmd == "unit1-edit" {
		need(fs, [2]string{"id", *id})
		u, err := a.client.GetCompanyOneUnit(ctx, *id)
		if err != nil {
			fail(err)
		}
		c.OpenEdit(u)
	} else {
		c.OpenCreate()
	}

	f, _ := c.Form()
	f.Company = model.CompanyOne(*company)
	f.View = *view
	f.Orientation = *orientation
	f.Status = model.UnitStatus(*status)
	f.Unit = *unit
	f.Building = *building
	f.Area = *area
	f.Bedrooms = *bedrooms
	f.Price = *price
	f.TotalPrice = *totalPrice
	f.TotalArea = *totalArea
	f.Balcony = *balcony
	f.NetArea = *netArea
	f.ModelName = *modelName
	f.FloorNumber = *floorNo
	f.UnitNumber = *unitNo
	f.BuildingNumber = *buildingNo
	f.TowerNumber = *towerNo

	if err := c.Submit(ctx); err != nil {
		fail(err)
	}
}

func unitTwoForm(ctx context.Context, a *app, cmd string, args []string) {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	id := fs.String("id", "", "unit id (edit)")
	company := fs.String("company", string(model.CompanyTwoTilal), "company (Tilal|Manazel|Oyoon|Rikaz)")
	view := fs.String("view", "", "view")
	orientation := fs.String("orientation", "", "orientation")
	status := fs.String("status", string(model.UnitAvailable), "status")
	blockNo := fs.String("block", "", "block number (land)")
	landNo := fs.String("land", "", "land number (land)")
	area := fs.Float64("area", 0, "area (land)")
	ppm := fs.Float64("price-per-meter", 0, "price per meter (land)")
	usage := fs.String("usage", "", "usage (land)")
	totalValue := fs.Float64("total-value", 0, "total value (Tilal)")
	landValue := fs.Float64("land-value", 0, "land value (Manazel/Oyoon)")
	blockArea := fs.Float64("block-area", 0, "block area (Oyoon)")
	unit := fs.String("unit", "", "unit number (Rikaz)")
	building := fs.String("building", "", "building (Rikaz)")
	floor := fs.Int("floor", 0, "floor (Rikaz)")
	totalPrice := fs.Float64("total-price", 0, "total price (Rikaz)")
	totalArea := fs.Float64("total-area", 0, "total area (Rikaz)")
	balcony := fs.Float64("balcony", 0, "balcony area (Rikaz)")
	netArea := fs.Float64("net-area", 0, "net area (Rikaz)")
	modelCode := fs.String("model-code", "", "model code (Rikaz)")
	_ = fs.Parse(args)

	c := page.NewCompanyTwoAdmin(a.client, a.cache, a.notes)
	defer c.Close()
	if cmd == "unit2-edit" {
		need(fs, [2]string{"id", *id})
		u, err := a.client.GetCompanyTwoUnit(ctx, *id)
		if err != nil {
			fail(err)
		}
		c.OpenEdit(u)
	} else {
		c.OpenCreate()
	}

	f, _ := c.Form()
	f.Company = model.CompanyTwo(*company)
	f.View = *view
	f.Orientation = *orientation
	f.Status = model.UnitStatus(*status)
	f.BlockNumber = *blockNo
	f.LandNumber = *landNo
	f.Area = *area
	f.PricePerMeter = *ppm
	f.Usage = *usage
	f.TotalValue = *totalValue
	f.LandValue = *landValue
	f.BlockArea = *blockArea
	f.Unit = *unit
	f.Building = *building
	f.Floor = *floor
	f.TotalPrice = *totalPrice
	f.TotalArea = *totalArea
	f.Balcony = *balcony
	f.NetArea = *netArea
	f.ModelCode = *modelCode

	if err := c.Submit(ctx); err != nil {
		fail(err)
	}
}
