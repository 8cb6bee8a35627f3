package mockapi

import (
	"log"
	"sync"

	"github.com/wadoud17/maktabati-pos/internal/domain/entity"
	"github.com/wadoud17/maktabati-pos/internal/domain/enum"
	"github.com/wadoud17/maktabati-pos/pkg/utils"
)

// account pairs an identity with its password hash. Only the development
// backend knows passwords; the real backend is external.
type account struct {
	user entity.User
	hash string
}

// Store holds the seeded in-memory data served by the development backend.
type Store struct {
	mu        sync.RWMutex
	accounts  map[string]account
	products  []entity.Product
	clients   []entity.Customer
	analytics entity.Analytics
	nextID    int
}

// NewStore seeds the default data set: one admin, one cashier, a small
// catalog, a handful of clients and ranked analytics series.
func NewStore() *Store {
	s := &Store{accounts: make(map[string]account)}
	s.seed()
	return s
}

func (s *Store) seed() {
	s.addAccount(entity.User{ID: 1, LastName: "Alami", FirstName: "Wadoud", Login: "admin", Role: enum.RoleAdmin}, "admin123")
	s.addAccount(entity.User{ID: 2, LastName: "Benali", FirstName: "Sara", Login: "caisse", Role: enum.RoleCashier}, "caisse123")

	s.products = []entity.Product{
		{ID: 1, Barcode: "6111000001", Reference: "STY-001", Name: "Stylo Bic Bleu", Description: "Stylo a bille", Quantity: 240, BuyingPrice: 1.5, SellingPrice: 3, CategoryID: 1},
		{ID: 2, Barcode: "6111000002", Reference: "CAH-096", Name: "Cahier 96 pages", Description: "Grand format", Quantity: 120, BuyingPrice: 6, SellingPrice: 12, CategoryID: 2},
		{ID: 3, Barcode: "6111000003", Reference: "CLS-A4", Name: "Classeur A4", Description: "Classeur rigide", Quantity: 45, BuyingPrice: 18, SellingPrice: 35, Discount: 5, CategoryID: 2},
		{ID: 4, Barcode: "6111000004", Reference: "CAL-SCI", Name: "Calculatrice scientifique", Description: "12 chiffres", Quantity: 18, BuyingPrice: 85, SellingPrice: 149, CategoryID: 3},
		{ID: 5, Barcode: "6111000005", Reference: "RAM-500", Name: "Ramette papier 500f", Description: "80g A4", Quantity: 60, BuyingPrice: 32, SellingPrice: 55, CategoryID: 1},
	}
	s.nextID = 6

	s.clients = []entity.Customer{
		{ID: 1, Name: "Ecole Al Massira", NationalID: "E784512", BirthDate: "1998-09-01", Phone: "0522456789", Email: "contact@almassira.ma", Address: "Casablanca", LifetimeSpend: 15400},
		{ID: 2, Name: "Karim Idrissi", NationalID: "BK447812", BirthDate: "1985-03-14", Phone: "0661234567", Email: "k.idrissi@gmail.com", Address: "Rabat", LifetimeSpend: 2350},
		{ID: 3, Name: "Librairie Atlas", NationalID: "L102938", BirthDate: "2001-01-20", Phone: "0537998877", Email: "atlas@librairie.ma", Address: "Fes", LifetimeSpend: 8900},
	}

	s.analytics = entity.Analytics{
		TopProducts: []entity.AnalyticsPoint{
			{Name: "Cahier 96 pages", Value: 5460, Count: 455},
			{Name: "Stylo Bic Bleu", Value: 1230, Count: 410},
			{Name: "Ramette papier 500f", Value: 9900, Count: 180},
		},
		TopClients: []entity.AnalyticsPoint{
			{Name: "Ecole Al Massira", Value: 15400, Count: 31},
			{Name: "Librairie Atlas", Value: 8900, Count: 17},
			{Name: "Karim Idrissi", Value: 2350, Count: 9},
		},
		TopSellers: []entity.AnalyticsPoint{
			{Name: "Sara Benali", Value: 21300, Count: 240},
			{Name: "Wadoud Alami", Value: 5350, Count: 42},
		},
		TopMonths: []entity.AnalyticsPoint{
			{Name: "Septembre", Value: 18400, Count: 210},
			{Name: "Octobre", Value: 9800, Count: 122},
			{Name: "Novembre", Value: 7100, Count: 95},
		},
	}
}

func (s *Store) addAccount(user entity.User, password string) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to seed account %s: %v", user.Login, err)
	}
	s.accounts[user.Login] = account{user: user, hash: hash}
}

// Authenticate verifies credentials and returns the identity on success.
func (s *Store) Authenticate(login, password string) (*entity.User, bool) {
	s.mu.RLock()
	acc, ok := s.accounts[login]
	s.mu.RUnlock()
	if !ok || !utils.CheckPasswordHash(password, acc.hash) {
		return nil, false
	}
	user := acc.user
	return &user, true
}

// Products returns the catalog snapshot.
func (s *Store) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Product(nil), s.products...)
}

// AddProduct appends a product, assigning the next id.
func (s *Store) AddProduct(p entity.Product) entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextID
	s.nextID++
	s.products = append(s.products, p)
	return p
}

// Clients returns the client list snapshot.
func (s *Store) Clients() []entity.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Customer(nil), s.clients...)
}

// Analytics returns the analytics bundle.
func (s *Store) Analytics() entity.Analytics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.analytics
}
