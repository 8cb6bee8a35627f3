package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wadoud17/maktabati-pos/internal/application/service"
	"github.com/wadoud17/maktabati-pos/internal/domain/entity"
	"github.com/wadoud17/maktabati-pos/internal/domain/enum"
	"github.com/wadoud17/maktabati-pos/pkg/apperror"
)

// UI drives the terminal screens. Which screen may render is always decided
// by the guard; the UI never inspects roles itself.
type UI struct {
	session   *service.SessionService
	guard     *service.Guard
	cart      *service.CartService
	catalog   *service.CatalogService
	dashboard *service.DashboardService

	defaultTVA float64
	in         *bufio.Reader
	out        io.Writer
}

// New creates the terminal UI.
func New(
	session *service.SessionService,
	guard *service.Guard,
	cart *service.CartService,
	catalog *service.CatalogService,
	dashboard *service.DashboardService,
	defaultTVA float64,
	in *bufio.Reader,
	out io.Writer,
) *UI {
	return &UI{
		session:    session,
		guard:      guard,
		cart:       cart,
		catalog:    catalog,
		dashboard:  dashboard,
		defaultTVA: defaultTVA,
		in:         in,
		out:        out,
	}
}

// Run restores the session and loops until the user quits.
func (ui *UI) Run(ctx context.Context) {
	ui.session.Restore()

	for {
		user := ui.session.Current()
		if user == nil {
			if !ui.handleLogin(ctx) {
				return
			}
			continue
		}

		fmt.Fprintf(ui.out, "\nConnecte: %s (%s)\n", user.FullName(), user.Role)
		if !ui.open(ctx, service.DefaultScreen(user.Role)) {
			return
		}
		if ui.session.Current() != nil {
			// Screen exited without logout: the user asked to quit.
			return
		}
	}
}

// open navigates to a screen, following at most one guard redirect.
func (ui *UI) open(ctx context.Context, target service.Screen) bool {
	for i := 0; i < 2; i++ {
		decision := ui.guard.Decide(target)
		switch decision.Verdict {
		case service.VerdictPending:
			fmt.Fprintln(ui.out, "Chargement...")
			return true
		case service.VerdictRedirect:
			target = decision.Target
			continue
		case service.VerdictAllow:
			return ui.render(ctx, target)
		}
	}
	return true
}

func (ui *UI) render(ctx context.Context, screen service.Screen) bool {
	switch screen {
	case service.ScreenLogin:
		return ui.handleLogin(ctx)
	case service.ScreenDashboard:
		return ui.dashboardScreen(ctx)
	case service.ScreenProducts:
		return ui.productsScreen(ctx)
	case service.ScreenCheckout:
		return ui.checkoutScreen(ctx)
	}
	return true
}

func (ui *UI) handleLogin(ctx context.Context) bool {
	fmt.Fprintln(ui.out, "\n=== Maktabati POS — Connexion ===")
	fmt.Fprint(ui.out, "Login (vide pour quitter): ")
	login := ui.readLine()
	if login == "" {
		return false
	}
	fmt.Fprint(ui.out, "Mot de passe: ")
	password := ui.readLine()

	if err := ui.session.Login(ctx, login, password); err != nil {
		fmt.Fprintln(ui.out, "Erreur:", apperror.GetAppError(err).Message)
		return true
	}
	return true
}

func (ui *UI) dashboardScreen(ctx context.Context) bool {
	fmt.Fprintln(ui.out, "\n=== Tableau de bord ===")

	summary, err := ui.dashboard.Summary(ctx)
	if err != nil {
		fmt.Fprintln(ui.out, "Erreur analytics:", err)
	} else {
		ui.printSeries("Produits les plus vendus", summary.TopProducts)
		ui.printSeries("Meilleurs clients", summary.TopClients)
		ui.printSeries("Meilleurs vendeurs", summary.TopSellers)
		ui.printSeries("Ventes par mois", summary.TopMonths)
	}

	// Independent fetches: a failure above does not block the stat cards.
	products, perr := ui.catalog.Products(ctx)
	clients, cerr := ui.catalog.Clients(ctx)
	if perr == nil && cerr == nil {
		stats := service.ComputeStats(products, clients)
		fmt.Fprintf(ui.out, "\nProduits: %d | Clients actifs: %d | Chiffre d'affaires: %.2f MAD\n",
			stats.TotalProducts, stats.ActiveClients, stats.Revenue)
	}

	for {
		fmt.Fprintln(ui.out, "\n1) Produits  2) Actualiser  3) Deconnexion  0) Quitter")
		fmt.Fprint(ui.out, "> ")
		switch ui.readLine() {
		case "1":
			return ui.open(ctx, service.ScreenProducts)
		case "2":
			return ui.dashboardScreen(ctx)
		case "3":
			ui.session.Logout()
			return true
		default:
			return true
		}
	}
}

func (ui *UI) printSeries(title string, points []entity.AnalyticsPoint) {
	fmt.Fprintf(ui.out, "\n%s:\n", title)
	for _, p := range points {
		fmt.Fprintf(ui.out, "  %-30s %10.2f  (%d)\n", p.Name, p.Value, p.Count)
	}
}

func (ui *UI) productsScreen(ctx context.Context) bool {
	fmt.Fprintln(ui.out, "\n=== Produits ===")
	products, err := ui.catalog.Products(ctx)
	if err != nil {
		fmt.Fprintln(ui.out, "Erreur:", err)
		return true
	}

	for {
		fmt.Fprint(ui.out, "\nRecherche (vide pour tout, '/retour' pour revenir): ")
		term := ui.readLine()
		if term == "/retour" {
			return ui.open(ctx, service.ScreenDashboard)
		}
		for _, p := range service.Search(products, term) {
			fmt.Fprintf(ui.out, "  #%d %-25s %-12s %8.2f MAD  stock %d\n",
				p.ID, p.Name, p.Reference, p.SellingPrice, p.Quantity)
		}
	}
}

func (ui *UI) checkoutScreen(ctx context.Context) bool {
	fmt.Fprintln(ui.out, "\n=== Caisse ===")
	products, err := ui.catalog.Products(ctx)
	if err != nil {
		fmt.Fprintln(ui.out, "Erreur produits:", err)
		return true
	}
	clients, err := ui.catalog.Clients(ctx)
	if err != nil {
		// The client list is informational; checkout still works anonymously.
		fmt.Fprintln(ui.out, "Erreur clients:", err)
	}

	tva := ui.defaultTVA
	payment := enum.PaymentCash

	for {
		fmt.Fprint(ui.out, "\ncaisse> ")
		line := ui.readLine()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "liste":
			for _, p := range service.Search(products, strings.Join(fields[1:], " ")) {
				fmt.Fprintf(ui.out, "  #%d %-25s %8.2f MAD  stock %d\n", p.ID, p.Name, p.SellingPrice, p.Quantity)
			}
		case "ajouter":
			id, ok := ui.argInt(fields, 1)
			if !ok {
				continue
			}
			product := findProduct(products, id)
			if product == nil {
				fmt.Fprintln(ui.out, "Produit inconnu")
				continue
			}
			ui.cart.AddItem(*product)
		case "qte":
			id, ok1 := ui.argInt(fields, 1)
			qty, ok2 := ui.argInt(fields, 2)
			if ok1 && ok2 {
				ui.cart.SetQuantity(id, qty)
			}
		case "retirer":
			if id, ok := ui.argInt(fields, 1); ok {
				ui.cart.RemoveItem(id)
			}
		case "remise":
			id, ok1 := ui.argInt(fields, 1)
			pct, ok2 := ui.argFloat(fields, 2)
			if ok1 && ok2 {
				ui.cart.SetLineDiscount(id, pct)
			}
		case "globale":
			if pct, ok := ui.argFloat(fields, 1); ok {
				ui.cart.SetGlobalDiscount(pct)
			}
		case "tva":
			if pct, ok := ui.argFloat(fields, 1); ok {
				tva = pct
			}
		case "client":
			if id, ok := ui.argInt(fields, 1); ok {
				ui.cart.SetCustomer(service.FindCustomer(clients, id))
			}
		case "paiement":
			if len(fields) > 1 {
				payment = enum.ParsePaymentMethod(fields[1])
			}
		case "panier":
			ui.printCart(tva)
		case "valider":
			sale, err := ui.cart.Checkout(payment, tva, ui.cart.GlobalDiscount())
			if err != nil {
				fmt.Fprintln(ui.out, "Erreur:", apperror.GetAppError(err).Message)
				continue
			}
			cashier := ""
			if u := ui.session.Current(); u != nil {
				cashier = u.FullName()
			}
			fmt.Fprintln(ui.out, service.RenderReceipt(sale, customerByID(clients, sale.CustomerID), cashier))
		case "deconnexion":
			ui.session.Logout()
			return true
		case "quitter":
			return true
		default:
			fmt.Fprintln(ui.out, "Commandes: liste ajouter qte retirer remise globale tva client paiement panier valider deconnexion quitter")
		}
	}
}

func (ui *UI) printCart(tva float64) {
	lines := ui.cart.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(ui.out, "Panier vide")
		return
	}
	for _, l := range lines {
		fmt.Fprintf(ui.out, "  %dx %-25s %8.2f MAD  remise %.0f%%\n", l.Quantity, l.Product.Name, l.Price, l.Discount)
	}
	fmt.Fprintf(ui.out, "Sous-total: %.2f MAD\n", ui.cart.Subtotal())
	fmt.Fprintf(ui.out, "Total (remise %.0f%%, TVA %.0f%%): %.2f MAD\n",
		ui.cart.GlobalDiscount(), tva, ui.cart.Total(ui.cart.GlobalDiscount(), tva))
}

func (ui *UI) argInt(fields []string, i int) (int, bool) {
	if len(fields) <= i {
		fmt.Fprintln(ui.out, "Argument manquant")
		return 0, false
	}
	v, err := strconv.Atoi(fields[i])
	if err != nil {
		fmt.Fprintln(ui.out, "Nombre invalide:", fields[i])
		return 0, false
	}
	return v, true
}

func (ui *UI) argFloat(fields []string, i int) (float64, bool) {
	if len(fields) <= i {
		fmt.Fprintln(ui.out, "Argument manquant")
		return 0, false
	}
	v, err := strconv.ParseFloat(fields[i], 64)
	if err != nil {
		fmt.Fprintln(ui.out, "Nombre invalide:", fields[i])
		return 0, false
	}
	return v, true
}

func (ui *UI) readLine() string {
	line, _ := ui.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func findProduct(products []entity.Product, id int) *entity.Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}

func customerByID(clients []entity.Customer, id *int) *entity.Customer {
	if id == nil {
		return nil
	}
	return service.FindCustomer(clients, *id)
}
