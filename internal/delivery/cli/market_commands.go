package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

func (a *App) runShops(ctx context.Context, args []string) error {
	fs := a.flagSet("shops")
	near := fs.String("near", "", "search origin as lat,lng")
	here := fs.Bool("here", false, "search around the current location")
	radius := fs.Float64("radius", 0, "search radius in km, 0 for no limit")
	if _, err := a.parse(fs, args, 0); err != nil {
		return err
	}

	if *near == "" && !*here {
		shops, err := a.market.Shops(ctx)
		if err != nil {
			return err
		}
		a.printShops(shops)

		return nil
	}

	origin, err := a.searchOrigin(ctx, *near)
	if err != nil {
		return err
	}

	nearby, err := a.market.ShopsNear(ctx, origin, *radius)
	if err != nil {
		return err
	}

	if len(nearby) == 0 {
		fmt.Fprintln(a.stdout, "No shops nearby.")

		return nil
	}

	w := a.table()
	fmt.Fprintln(w, "SLUG\tNAME\tDISTANCE")
	for _, shop := range nearby {
		fmt.Fprintf(w, "%s\t%s\t%.2f km\n", shop.Slug, shop.Name, shop.DistanceKm)
	}

	return errors.WithStack(w.Flush())
}

func (a *App) searchOrigin(ctx context.Context, near string) (orb.Point, error) {
	if near != "" {
		origin, err := parseLatLng(near)
		if err != nil {
			fmt.Fprintln(a.stderr, err)

			return orb.Point{}, errUsage
		}

		return origin, nil
	}

	if a.location == nil {
		return orb.Point{}, domainerrors.ErrLocationUnavailable
	}

	return a.location.CurrentLocation(ctx)
}

func (a *App) runStore(ctx context.Context, args []string) error {
	fs := a.flagSet("store")
	pos, err := a.parse(fs, args, 1)
	if err != nil {
		return err
	}

	detail, err := a.market.StoreProfile(ctx, pos[0])
	if err != nil {
		return err
	}
	if detail == nil {
		return domainerrors.ErrNotFound
	}

	a.printShop(&detail.Shop)
	fmt.Fprintln(a.stdout)
	a.printProducts(detail.Products)

	return nil
}

func (a *App) runMyStore(ctx context.Context, args []string) error {
	fs := a.flagSet("my-store")
	if _, err := a.parse(fs, args, 0); err != nil {
		return err
	}

	shop, err := a.market.MyStore(ctx)
	if err != nil {
		return err
	}
	if shop == nil {
		fmt.Fprintln(a.stdout, "You do not have a store yet. Run 'storefront store-create' to open one.")

		return nil
	}

	a.printShop(shop)

	return nil
}

func (a *App) runMyStores(ctx context.Context, args []string) error {
	fs := a.flagSet("my-stores")
	if _, err := a.parse(fs, args, 0); err != nil {
		return err
	}

	shops, err := a.market.MyStores(ctx)
	if err != nil {
		return err
	}

	a.printShops(shops)

	return nil
}

func (a *App) runProducts(ctx context.Context, args []string) error {
	fs := a.flagSet("products")
	storeID := fs.String("store", "", "only products of this store id")
	if _, err := a.parse(fs, args, 0); err != nil {
		return err
	}

	var (
		products []entity.Product
		err      error
	)
	if *storeID != "" {
		products, err = a.market.StoreProducts(ctx, *storeID)
	} else {
		products, err = a.market.Products(ctx)
	}
	if err != nil {
		return err
	}

	a.printProducts(products)

	return nil
}

func (a *App) runProduct(ctx context.Context, args []string) error {
	fs := a.flagSet("product")
	pos, err := a.parse(fs, args, 1)
	if err != nil {
		return err
	}

	product, err := a.market.Product(ctx, pos[0])
	if err != nil {
		return err
	}
	if product == nil {
		return domainerrors.ErrNotFound
	}

	w := a.table()
	fmt.Fprintf(w, "ID\t%s\n", product.ID)
	fmt.Fprintf(w, "Name\t%s\n", product.Name)
	fmt.Fprintf(w, "Price\t%s\n", util.FormatAmount(product.Price.Float64()))
	fmt.Fprintf(w, "Available\t%t\n", product.IsVisible())
	if product.Brand != "" {
		fmt.Fprintf(w, "Brand\t%s\n", product.Brand)
	}
	if product.Barcode != "" {
		fmt.Fprintf(w, "Barcode\t%s\n", product.Barcode)
	}
	if product.Description != "" {
		fmt.Fprintf(w, "Description\t%s\n", product.Description)
	}
	if product.ImageURL != "" {
		fmt.Fprintf(w, "Image\t%s\n", a.mediaURL(product.ImageURL))
	}

	return errors.WithStack(w.Flush())
}

func (a *App) runStoreCreate(ctx context.Context, args []string) error {
	fs := a.flagSet("store-create")
	name := fs.String("name", "", "store name")
	var lat, lng optionalFloat
	fs.Var(&lat, "lat", "store latitude")
	fs.Var(&lng, "lng", "store longitude")
	logo := fs.String("logo", "", "logo image file")
	avatar := fs.String("avatar", "", "avatar image file")
	if _, err := a.parse(fs, args, 0); err != nil {
		return err
	}

	shop, err := a.market.CreateStore(ctx, usecase.CreateStoreInput{
		Name:      *name,
		Latitude:  lat.value,
		Longitude: lng.value,
		Logo:      entity.FileRef(*logo),
		Avatar:    entity.FileRef(*avatar),
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, "Store created.")
	a.printShop(shop)

	return nil
}

func (a *App) runStoreUpdate(ctx context.Context, args []string) error {
	fs := a.flagSet("store-update")
	id := fs.String("id", "", "store id, defaults to your store")
	name := fs.String("name", "", "store name")
	var lat, lng optionalFloat
	fs.Var(&lat, "lat", "store latitude")
	fs.Var(&lng, "lng", "store longitude")
	logo := fs.String("logo", "", "new logo image file")
	avatar := fs.String("avatar", "", "new avatar image file")
	if _, err := a.parse(fs, args, 0); err != nil {
		return err
	}

	shop, err := a.targetStore(ctx, *id)
	if err != nil {
		return err
	}

	input := usecase.UpdateStoreInput{
		Name:      shop.Name,
		Latitude:  lat.value,
		Longitude: lng.value,
		Logo:      entity.FileRef(*logo),
		Avatar:    entity.FileRef(*avatar),
	}
	if visited(fs)["name"] {
		input.Name = *name
	}

	updated, err := a.market.UpdateStore(ctx, shop.ID, input)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, "Store updated.")
	a.printShop(updated)

	return nil
}

func (a *App) runStoreToggle(ctx context.Context, args []string) error {
	fs := a.flagSet("store-toggle")
	id := fs.String("id", "", "store id, defaults to your store")
	if _, err := a.parse(fs, args, 0); err != nil {
		return err
	}

	shop, err := a.targetStore(ctx, *id)
	if err != nil {
		return err
	}

	updated, err := a.market.ToggleStoreActive(ctx, shop)
	if err != nil {
		return err
	}

	if updated.IsVisible() {
		fmt.Fprintf(a.stdout, "%s is now open.\n", updated.Name)
	} else {
		fmt.Fprintf(a.stdout, "%s is now closed.\n", updated.Name)
	}

	return nil
}

func (a *App) runStoreDelete(ctx context.Context, args []string) error {
	fs := a.flagSet("store-delete")
	pos, err := a.parse(fs, args, 1)
	if err != nil {
		return err
	}

	if err := a.market.DeleteStore(ctx, pos[0]); err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, "Store deleted.")

	return nil
}

// targetStore loads the store with id, or the user's own store when id is empty.
func (a *App) targetStore(ctx context.Context, id string) (*entity.Shop, error) {
	if id == "" {
		shop, err := a.market.MyStore(ctx)
		if err != nil {
			return nil, err
		}
		if shop == nil {
			return nil, domainerrors.ErrStoreNotIdentified
		}

		return shop, nil
	}

	return a.market.Store(ctx, id)
}

func (a *App) runProductCreate(ctx context.Context, args []string) error {
	fs := a.flagSet("product-create")
	storeID := fs.String("store", "", "store id, defaults to your store")
	name := fs.String("name", "", "product name")
	price := fs.Float64("price", 0, "unit price")
	brand := fs.String("brand", "", "brand")
	barcode := fs.String("barcode", "", "barcode")
	description := fs.String("description", "", "description")
	image := fs.String("image", "", "product image file")
	if _, err := a.parse(fs, args, 0); err != nil {
		return err
	}

	product, err := a.market.CreateProduct(ctx, usecase.CreateProductInput{
		StoreID:     *storeID,
		Name:        *name,
		Price:       *price,
		Brand:       *brand,
		Barcode:     *barcode,
		Description: *description,
		Image:       entity.FileRef(*image),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Product %s created (%s).\n", product.Name, product.ID)

	return nil
}

func (a *App) runProductUpdate(ctx context.Context, args []string) error {
	fs := a.flagSet("product-update")
	name := fs.String("name", "", "product name")
	price := fs.Float64("price", 0, "unit price")
	brand := fs.String("brand", "", "brand")
	barcode := fs.String("barcode", "", "barcode")
	description := fs.String("description", "", "description")
	var available optionalBool
	fs.Var(&available, "available", "whether the product can be bought")
	image := fs.String("image", "", "new product image file")
	pos, err := a.parse(fs, args, 1)
	if err != nil {
		return err
	}

	current, err := a.market.Product(ctx, pos[0])
	if err != nil {
		return err
	}
	if current == nil {
		return domainerrors.ErrNotFound
	}

	input := usecase.UpdateProductInput{
		Name:        current.Name,
		Price:       current.Price.Float64(),
		Brand:       current.Brand,
		Barcode:     current.Barcode,
		Description: current.Description,
		IsAvailable: available.value,
		Image:       entity.FileRef(*image),
	}
	for flagName := range visited(fs) {
		switch flagName {
		case "name":
			input.Name = *name
		case "price":
			input.Price = *price
		case "brand":
			input.Brand = *brand
		case "barcode":
			input.Barcode = *barcode
		case "description":
			input.Description = *description
		}
	}

	product, err := a.market.UpdateProduct(ctx, current.ID, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Product %s updated.\n", product.Name)

	return nil
}

func (a *App) runProductDelete(ctx context.Context, args []string) error {
	fs := a.flagSet("product-delete")
	pos, err := a.parse(fs, args, 1)
	if err != nil {
		return err
	}

	if err := a.market.DeleteProduct(ctx, pos[0]); err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, "Product deleted.")

	return nil
}

func (a *App) runStoreQR(ctx context.Context, args []string) error {
	fs := a.flagSet("store-qr")
	out := fs.String("out", "", "PNG output file, defaults to <slug>.png")
	pos, err := a.parse(fs, args, 1)
	if err != nil {
		return err
	}

	slug := pos[0]
	png, err := a.market.StoreQR(ctx, slug)
	if err != nil {
		return err
	}

	path := *out
	if path == "" {
		path = slug + ".png"
	}
	if err := os.WriteFile(path, png, 0o600); err != nil {
		return errors.Wrap(err, "failed to write QR code")
	}

	fmt.Fprintf(a.stdout, "QR code written to %s (%s)\n", path, util.FormatBytes(int64(len(png))))

	return nil
}

func (a *App) printShops(shops []entity.Shop) {
	if len(shops) == 0 {
		fmt.Fprintln(a.stdout, "No shops found.")

		return
	}

	w := a.table()
	fmt.Fprintln(w, "ID\tSLUG\tNAME\tSTATUS")
	for i := range shops {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", shops[i].ID, shops[i].Slug, shops[i].Name, shopStatus(&shops[i]))
	}
	_ = w.Flush()
}

func (a *App) printShop(shop *entity.Shop) {
	w := a.table()
	fmt.Fprintf(w, "ID\t%s\n", shop.ID)
	fmt.Fprintf(w, "Name\t%s\n", shop.Name)
	fmt.Fprintf(w, "Slug\t%s\n", shop.Slug)
	fmt.Fprintf(w, "Status\t%s\n", shopStatus(shop))
	if loc, ok := shop.Location(); ok {
		fmt.Fprintf(w, "Location\t%s,%s\n", formatCoord(loc.Lat()), formatCoord(loc.Lon()))
	}
	if shop.CommissionRate != nil {
		fmt.Fprintf(w, "Commission\t%s%%\n", formatCoord(*shop.CommissionRate))
	}
	if shop.LogoURL != "" {
		fmt.Fprintf(w, "Logo\t%s\n", a.mediaURL(shop.LogoURL))
	}
	if shop.AvatarURL != "" {
		fmt.Fprintf(w, "Avatar\t%s\n", a.mediaURL(shop.AvatarURL))
	}
	_ = w.Flush()
}

func (a *App) printProducts(products []entity.Product) {
	if len(products) == 0 {
		fmt.Fprintln(a.stdout, "No products.")

		return
	}

	w := a.table()
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tAVAILABLE")
	for i := range products {
		p := &products[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", p.ID, p.Name, util.FormatAmount(p.Price.Float64()), p.IsVisible())
	}
	_ = w.Flush()
}

func shopStatus(shop *entity.Shop) string {
	if shop.IsVisible() {
		return "open"
	}

	return "closed"
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
