package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/ordertrack/internal/client/api"
)

func (a *App) addOrder(ctx context.Context) error {
	productName, err := getSimpleText(a.reader, "Enter product name", os.Stdout)
	if err != nil {
		return err
	}

	quantityStr, err := getSimpleText(a.reader, "Enter quantity", os.Stdout)
	if err != nil {
		return err
	}
	quantity, err := strconv.ParseInt(quantityStr, 10, 32)
	if err != nil {
		fmt.Println("Quantity must be a whole number")
		return err
	}

	priceStr, err := getSimpleText(a.reader, "Enter price", os.Stdout)
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		fmt.Println("Price must be a number")
		return err
	}

	order, err := a.client.CreateOrder(ctx, productName, int32(quantity), price)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Created order %s\n", order.ID)
	return nil
}

func (a *App) listOrders(ctx context.Context) error {
	orders, err := a.client.ListOrders(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if len(orders) == 0 {
		fmt.Println("No orders yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRODUCT\tQTY\tPRICE\tCREATED")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%s\n",
			o.ID, o.ProductName, o.Quantity, o.Price, o.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

// updateOrder prompts for an order id and new field values. An empty
// answer leaves that field unchanged.
func (a *App) updateOrder(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter order id", os.Stdout)
	if err != nil {
		return err
	}

	patch := &api.OrderPatch{}

	productName, err := getSimpleText(a.reader, "Enter new product name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if productName != "" {
		patch.ProductName = &productName
	}

	quantityStr, err := getSimpleText(a.reader, "Enter new quantity (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if quantityStr != "" {
		quantity, err := strconv.ParseInt(quantityStr, 10, 32)
		if err != nil {
			fmt.Println("Quantity must be a whole number")
			return err
		}
		q := int32(quantity)
		patch.Quantity = &q
	}

	priceStr, err := getSimpleText(a.reader, "Enter new price (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			fmt.Println("Price must be a number")
			return err
		}
		patch.Price = &price
	}

	order, err := a.client.UpdateOrder(ctx, id, patch)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Updated order %s\n", order.ID)
	return nil
}

func (a *App) deleteOrder(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter order id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.client.DeleteOrder(ctx, id); err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("Deleted")
	return nil
}
