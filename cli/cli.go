// Package cli is the command-line front end standing in for the web pages.
// It only formats and dispatches; all behavior lives in services.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"canteenmate/models"
	"canteenmate/services"
)

const usage = `Usage: canteenmate <command> [args]

Menu:
  menu [category]           list menu items (breakfast, lunch, snacks, beverages, desserts)
  search <query>            search names and descriptions
  item <id>                 show one menu item
  availability <id> <on|off>  set an item's availability (staff)

Cart:
  cart                      show the cart
  add <id> [qty]            add a menu item to the cart
  qty <id> <n>              set an entry's quantity (0 removes)
  rm <id>                   remove an entry
  clear                     empty the cart

Orders:
  checkout                  place an order from the cart
  orders                    list your orders, newest first
  order <id>                show one order
  cancel <id>               cancel an order
  reorder <id>              place a new order from an old one
  status <id> <status>      advance an order (staff)

Account:
  login <email>             log in (password from PASSWORD env)
  register <name> <email>   create an account (password from PASSWORD env)
  logout                    log out
  whoami                    show the current user

Contact:
  contact <name> <email> <subject> <message...>  send a message
  messages                  list contact messages (staff)
  mark <id> <read|replied>  triage a contact message (staff)
`

// Run dispatches one command against the session. Errors from services are
// returned as-is for main to print; they are all recoverable.
func Run(ctx context.Context, s *services.Session, args []string) error {
	if len(args) == 0 {
		fmt.Print(usage)
		return nil
	}

	switch args[0] {
	case "menu":
		category := ""
		if len(args) > 1 {
			category = args[1]
		}
		if category != "" && category != services.CategoryAll && !models.ValidCategory(category) {
			return models.ErrInvalidCategory
		}
		items, err := services.ListMenuItems(ctx, s, category)
		if err != nil {
			return err
		}
		printMenuItems(items)
		return nil

	case "search":
		if len(args) < 2 {
			return errors.New("usage: search <query>")
		}
		items, err := services.SearchMenuItems(ctx, s, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		printMenuItems(items)
		return nil

	case "item":
		id, err := intArg(args, 1, "item <id>")
		if err != nil {
			return err
		}
		item, err := services.GetMenuItem(ctx, s, id)
		if err != nil {
			return err
		}
		printMenuItem(*item)
		return nil

	case "availability":
		id, err := intArg(args, 1, "availability <id> <on|off>")
		if err != nil {
			return err
		}
		if len(args) < 3 || (args[2] != "on" && args[2] != "off") {
			return errors.New("usage: availability <id> <on|off>")
		}
		item, err := services.SetMenuItemAvailability(ctx, s, id, args[2] == "on")
		if err != nil {
			return err
		}
		printMenuItem(*item)
		return nil

	case "cart":
		printCart(ctx, s)
		return nil

	case "add":
		id, err := intArg(args, 1, "add <id> [qty]")
		if err != nil {
			return err
		}
		qty := 1
		if len(args) > 2 {
			if qty, err = strconv.Atoi(args[2]); err != nil {
				return fmt.Errorf("bad quantity %q", args[2])
			}
		}
		item, err := services.GetMenuItem(ctx, s, id)
		if err != nil {
			return err
		}
		if !item.IsAvailable {
			return fmt.Errorf("%s is not available right now", item.Name)
		}
		if _, err := services.AddToCart(ctx, s, *item, qty); err != nil {
			return err
		}
		fmt.Printf("Added %s x%d\n", item.Name, qty)
		printCart(ctx, s)
		return nil

	case "qty":
		id, err := intArg(args, 1, "qty <id> <n>")
		if err != nil {
			return err
		}
		n, err := intArg(args, 2, "qty <id> <n>")
		if err != nil {
			return err
		}
		if _, err := services.UpdateCartItem(ctx, s, id, n); err != nil {
			return err
		}
		printCart(ctx, s)
		return nil

	case "rm":
		id, err := intArg(args, 1, "rm <id>")
		if err != nil {
			return err
		}
		services.RemoveFromCart(ctx, s, id)
		printCart(ctx, s)
		return nil

	case "clear":
		services.ClearCart(ctx, s)
		fmt.Println("Cart cleared.")
		return nil

	case "checkout":
		items := services.GetCart(ctx, s)
		if len(items) == 0 {
			return errors.New("cart is empty")
		}
		order, err := services.CreateOrder(ctx, s, items)
		if err != nil {
			return err
		}
		fmt.Println("Order placed.")
		printOrder(*order)
		return nil

	case "orders":
		orders, err := services.ListUserOrders(ctx, s)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("No orders yet.")
			return nil
		}
		for _, o := range orders {
			fmt.Printf("%s  %s  ₹%d  %s\n", o.ID, o.CreatedAt.Format("2006-01-02 15:04"), o.Total, o.Status)
		}
		return nil

	case "order":
		if len(args) < 2 {
			return errors.New("usage: order <id>")
		}
		order, err := services.GetOrder(ctx, s, args[1])
		if err != nil {
			return err
		}
		printOrder(*order)
		return nil

	case "cancel":
		if len(args) < 2 {
			return errors.New("usage: cancel <id>")
		}
		order, err := services.CancelOrder(ctx, s, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Order %s cancelled.\n", order.ID)
		return nil

	case "reorder":
		if len(args) < 2 {
			return errors.New("usage: reorder <id>")
		}
		order, err := services.Reorder(ctx, s, args[1])
		if err != nil {
			return err
		}
		fmt.Println("Order placed.")
		printOrder(*order)
		return nil

	case "status":
		if len(args) < 3 {
			return errors.New("usage: status <id> <preparing|ready|completed|cancelled>")
		}
		order, err := services.UpdateOrderStatus(ctx, s, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Printf("Order %s is now %s.\n", order.ID, order.Status)
		return nil

	case "login":
		if len(args) < 2 {
			return errors.New("usage: login <email>")
		}
		user, err := services.Login(ctx, s, args[1], os.Getenv("PASSWORD"))
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
		return nil

	case "register":
		if len(args) < 3 {
			return errors.New("usage: register <name> <email>")
		}
		user, err := services.Register(ctx, s, args[1], args[2], os.Getenv("PASSWORD"))
		if err != nil {
			return err
		}
		fmt.Printf("Registered %s <%s>. Log in to start ordering.\n", user.Name, user.Email)
		return nil

	case "logout":
		services.Logout(ctx, s)
		fmt.Println("Logged out.")
		return nil

	case "whoami":
		user := services.CurrentUser(ctx, s)
		if user == nil {
			fmt.Println("Not logged in.")
			return nil
		}
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		return nil

	case "contact":
		if len(args) < 5 {
			return errors.New("usage: contact <name> <email> <subject> <message...>")
		}
		msg, err := services.SendContactMessage(ctx, s, args[1], args[2], args[3], strings.Join(args[4:], " "))
		if err != nil {
			return err
		}
		fmt.Printf("Message sent (%s).\n", msg.ID)
		return nil

	case "messages":
		for _, m := range services.ListContactMessages(ctx, s) {
			fmt.Printf("%s  [%s]  %s <%s>: %s\n", m.ID, m.Status, m.Name, m.Email, m.Subject)
		}
		return nil

	case "mark":
		if len(args) < 3 {
			return errors.New("usage: mark <id> <read|replied>")
		}
		msg, err := services.MarkContactMessage(ctx, s, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Printf("Message %s marked %s.\n", msg.ID, msg.Status)
		return nil

	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	}

	return fmt.Errorf("unknown command %q (try help)", args[0])
}

func intArg(args []string, i int, usageLine string) (int, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("usage: %s", usageLine)
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("bad id %q", args[i])
	}
	return n, nil
}

func printMenuItems(items []models.MenuItem) {
	if len(items) == 0 {
		fmt.Println("Nothing found.")
		return
	}
	for _, item := range items {
		printMenuItem(item)
	}
}

func printMenuItem(item models.MenuItem) {
	tags := []string{item.Category}
	if item.IsVeg {
		tags = append(tags, "veg")
	}
	if item.IsPopular {
		tags = append(tags, "popular")
	}
	if !item.IsAvailable {
		tags = append(tags, "sold out")
	}
	fmt.Printf("%2d. %-22s ₹%-4d (%s)\n    %s\n", item.ID, item.Name, item.Price, strings.Join(tags, ", "), item.Description)
}

func printCart(ctx context.Context, s *services.Session) {
	items := services.GetCart(ctx, s)
	if len(items) == 0 {
		fmt.Println("Cart is empty.")
		return
	}
	for _, ci := range items {
		fmt.Printf("%2d. %-22s ₹%d x%d = ₹%d\n", ci.ID, ci.Name, ci.Price, ci.Quantity, ci.Price*int64(ci.Quantity))
	}
	fmt.Printf("Total: ₹%d (%d items)\n", services.CartTotal(ctx, s), services.CartItemCount(ctx, s))
}

func printOrder(o models.Order) {
	fmt.Printf("Order %s  %s  %s\n", o.ID, o.CreatedAt.Format("2006-01-02 15:04"), o.Status)
	for _, ci := range o.Items {
		fmt.Printf("    %-22s ₹%d x%d\n", ci.Name, ci.Price, ci.Quantity)
	}
	fmt.Printf("Total: ₹%d", o.Total)
	if o.EstimatedTime != "" {
		fmt.Printf("  (est. %s)", o.EstimatedTime)
	}
	fmt.Println()
}
