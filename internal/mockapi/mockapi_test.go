package mockapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wadoud17/maktabati-pos/internal/application/service"
	"github.com/wadoud17/maktabati-pos/internal/config"
	"github.com/wadoud17/maktabati-pos/internal/domain/entity"
	"github.com/wadoud17/maktabati-pos/internal/domain/enum"
	"github.com/wadoud17/maktabati-pos/internal/infrastructure/api"
	"github.com/wadoud17/maktabati-pos/internal/infrastructure/session"
	"github.com/wadoud17/maktabati-pos/pkg/apperror"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "maktabati-pos-test", Env: "test"},
		JWT: config.JWTConfig{Secret: "test-secret", ExpiryHours: time.Hour},
		RateLimit: config.RateLimitConfig{
			Requests: 100,
			Duration: 1,
		},
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	server := httptest.NewServer(Setup(testConfig(), NewStore()))
	t.Cleanup(server.Close)
	return server
}

func signin(t *testing.T, server *httptest.Server, login, password string) (*entity.User, int) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"login": login, "password": password})
	resp, err := http.Post(server.URL+"/api/Auth/signin", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("signin request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode
	}
	var user entity.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		t.Fatalf("decoding identity failed: %v", err)
	}
	return &user, resp.StatusCode
}

func TestSignInSuccess(t *testing.T) {
	server := newTestServer(t)

	user, status := signin(t, server, "caisse", "caisse123")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if user.Login != "caisse" || user.Role != enum.RoleCashier {
		t.Errorf("unexpected identity: %+v", user)
	}
	if user.Token == "" {
		t.Errorf("signin must issue a token")
	}
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	server := newTestServer(t)

	if _, status := signin(t, server, "caisse", "wrong"); status != http.StatusUnauthorized {
		t.Errorf("wrong password: expected 401, got %d", status)
	}
	if _, status := signin(t, server, "ghost", "caisse123"); status != http.StatusUnauthorized {
		t.Errorf("unknown login: expected 401, got %d", status)
	}
}

func TestDataRoutesRequireToken(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/api/produits", "/api/clients", "/api/analytics"} {
		resp, err := http.Get(server.URL + path)
		if err != nil {
			t.Fatalf("get %s failed: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s without token: expected 401, got %d", path, resp.StatusCode)
		}
	}
}

func TestBadTokenRejectedWithInvalidTokenMessage(t *testing.T) {
	server := newTestServer(t)

	req, _ := http.NewRequest(http.MethodGet, server.URL+"/api/produits", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != apperror.ErrInvalidToken.Code {
		t.Fatalf("expected %d, got %d", apperror.ErrInvalidToken.Code, resp.StatusCode)
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body failed: %v", err)
	}
	if body.Message != apperror.ErrInvalidToken.Message {
		t.Errorf("message: got %q, want %q", body.Message, apperror.ErrInvalidToken.Message)
	}
}

func TestProductsListWithToken(t *testing.T) {
	server := newTestServer(t)
	user, _ := signin(t, server, "admin", "admin123")

	client := api.NewClient(server.URL, func() string { return user.Token })
	var products []entity.Product
	if err := client.Get(context.Background(), "/api/produits", &products); err != nil {
		t.Fatalf("listing products failed: %v", err)
	}
	if len(products) == 0 {
		t.Fatalf("expected seeded products")
	}
	if products[0].Barcode == "" || products[0].SellingPrice <= 0 {
		t.Errorf("product shape looks wrong: %+v", products[0])
	}
}

func TestCreateProductAssignsID(t *testing.T) {
	server := newTestServer(t)
	user, _ := signin(t, server, "admin", "admin123")
	client := api.NewClient(server.URL, func() string { return user.Token })

	m := api.NewMutation[entity.Product](client, http.MethodPost, "/api/produits")
	created, err := m.Do(context.Background(), entity.Product{
		Barcode:      "6111000099",
		Reference:    "AGN-21",
		Name:         "Agenda 2021",
		SellingPrice: 25,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Errorf("created product must receive an id")
	}

	var products []entity.Product
	if err := client.Get(context.Background(), "/api/produits", &products); err != nil {
		t.Fatalf("listing products failed: %v", err)
	}
	found := false
	for _, p := range products {
		if p.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("created product missing from the list")
	}
}

func TestAnalyticsShape(t *testing.T) {
	server := newTestServer(t)
	user, _ := signin(t, server, "admin", "admin123")
	client := api.NewClient(server.URL, func() string { return user.Token })

	var analytics entity.Analytics
	if err := client.Get(context.Background(), "/api/analytics", &analytics); err != nil {
		t.Fatalf("analytics failed: %v", err)
	}
	for name, series := range map[string][]entity.AnalyticsPoint{
		"topProducts": analytics.TopProducts,
		"topClients":  analytics.TopClients,
		"topSellers":  analytics.TopSellers,
		"topMonths":   analytics.TopMonths,
	} {
		if len(series) == 0 {
			t.Errorf("series %s is empty", name)
		}
	}
}

func TestSignInRateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{Requests: 3, Duration: 60}
	server := httptest.NewServer(Setup(cfg, NewStore()))
	defer server.Close()

	var last int
	for i := 0; i < 5; i++ {
		_, last = signin(t, server, "caisse", "wrong")
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst, got %d", last)
	}
}

// End to end: the real client stack against the development backend.
func TestClientSessionAgainstMockAPI(t *testing.T) {
	server := newTestServer(t)

	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	var sessions *service.SessionService
	client := api.NewClient(server.URL, func() string {
		if sessions == nil {
			return ""
		}
		return sessions.Token()
	})
	sessions = service.NewSessionService(client, store)

	if err := sessions.Login(context.Background(), "caisse", "caisse123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	catalog := service.NewCatalogService(client)
	products, err := catalog.Products(context.Background())
	if err != nil {
		t.Fatalf("products failed: %v", err)
	}
	if len(products) == 0 {
		t.Fatalf("expected seeded products")
	}

	// The persisted identity restores a working session in a fresh process.
	restored := service.NewSessionService(client, store)
	restored.Restore()
	if restored.Current() == nil || restored.Token() == "" {
		t.Errorf("restored session must carry the identity and token")
	}

	sessions.Logout()
	if _, err := catalog.Products(context.Background()); err == nil {
		t.Errorf("data routes must fail once the session is gone")
	}
}
