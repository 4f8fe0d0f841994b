package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func (a *App) runOrders(ctx context.Context, args []string) error {
	fs := a.flagSet("orders")
	if _, err := a.parse(fs, args, 0); err != nil {
		return err
	}

	orders, err := a.orders.ClientOrders(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Fprintln(a.stdout, "No orders yet.")

		return nil
	}

	w := a.table()
	fmt.Fprintln(w, "ID\tSTORE\tSTATUS\tITEMS\tTOTAL\tCREATED")
	for i := range orders {
		o := &orders[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			o.ID, o.StoreName, o.Status, len(o.Items), util.FormatAmount(o.TotalAmount.Float64()), o.CreatedAt)
	}

	return errors.WithStack(w.Flush())
}

func (a *App) runOrderCreate(ctx context.Context, args []string) error {
	fs := a.flagSet("order-create")
	storeID := fs.String("store", "", "store id")
	var lines orderLines
	fs.Var(&lines, "item", "productID[:quantity], repeatable")
	var lat, lng optionalFloat
	fs.Var(&lat, "lat", "delivery latitude")
	fs.Var(&lng, "lng", "delivery longitude")
	address := fs.String("address", "", "delivery address line")
	if _, err := a.parse(fs, args, 0); err != nil {
		return err
	}

	input := usecase.CreateOrderInput{
		StoreID: *storeID,
		Items:   lines,
	}
	if lat.value != nil && lng.value != nil {
		input.DeliveryLocation = &entity.DeliveryLocation{
			Latitude:    *lat.value,
			Longitude:   *lng.value,
			AddressLine: *address,
		}
	}

	order, err := a.orders.CreateOrder(ctx, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Order %s placed with %s: %s (%s)\n",
		order.ID, order.StoreName, util.FormatAmount(order.TotalAmount.Float64()), order.Status)

	return nil
}

func (a *App) runList(ctx context.Context, args []string) error {
	fs := a.flagSet("list")
	add := fs.String("add", "", "append an item")
	done := fs.String("done", "", "toggle the completed mark of an item id")
	remove := fs.String("remove", "", "remove an item id")
	clearAll := fs.Bool("clear", false, "remove every item")
	if _, err := a.parse(fs, args, 0); err != nil {
		return err
	}

	items, err := a.list.Items(ctx)
	if err != nil {
		return err
	}

	changed := false
	switch {
	case *clearAll:
		items, changed = []entity.ListItem{}, true
	case strings.TrimSpace(*add) != "":
		items = append(slices.Clone(items), entity.ListItem{ID: uuid.NewString(), Text: strings.TrimSpace(*add)})
		changed = true
	case *done != "":
		items, changed = toggleItem(items, *done)
	case *remove != "":
		items, changed = removeItem(items, *remove)
	}

	if changed {
		if err := a.list.Save(ctx, items); err != nil {
			return err
		}
	} else if *done != "" || *remove != "" {
		fmt.Fprintln(a.stderr, "No list item with that id.")

		return errUsage
	}

	if len(items) == 0 {
		fmt.Fprintln(a.stdout, "Your shopping list is empty.")

		return nil
	}

	w := a.table()
	for _, item := range items {
		mark := "[ ]"
		if item.Completed {
			mark = "[x]"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", mark, item.Text, item.ID)
	}

	return errors.WithStack(w.Flush())
}

func toggleItem(items []entity.ListItem, id string) ([]entity.ListItem, bool) {
	out := make([]entity.ListItem, len(items))
	copy(out, items)

	for i := range out {
		if out[i].ID == id {
			out[i].Completed = !out[i].Completed

			return out, true
		}
	}

	return items, false
}

func removeItem(items []entity.ListItem, id string) ([]entity.ListItem, bool) {
	out := make([]entity.ListItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}

	return out, len(out) != len(items)
}
