package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AsrafulMasum/bistro-boos-server/internal/config"
	"github.com/AsrafulMasum/bistro-boos-server/internal/database"
	"github.com/AsrafulMasum/bistro-boos-server/internal/handlers"
	"github.com/AsrafulMasum/bistro-boos-server/internal/routes"
	"github.com/AsrafulMasum/bistro-boos-server/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeProvider stands in for the Stripe-backed provider so tests never
// reach the network.
type fakeProvider struct {
	secret     string
	err        error
	gotAmounts []int64
}

func (f *fakeProvider) CreateIntent(amountCents int64) (string, error) {
	f.gotAmounts = append(f.gotAmounts, amountCents)
	if f.err != nil {
		return "", f.err
	}
	return f.secret, nil
}

type testEnv struct {
	app      *fiber.App
	db       *gorm.DB
	cfg      *config.Config
	provider *fakeProvider
	tokens   *services.TokenService
}

// newTestEnv wires the full route table over an in-memory sqlite DB.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}

	provider := &fakeProvider{secret: "pi_test_secret_abc"}

	tokenService := services.NewTokenService(cfg)

	app := fiber.New()
	routes.Setup(app, cfg,
		handlers.NewTokenHandler(tokenService),
		handlers.NewUserHandler(services.NewUserService(db)),
		handlers.NewMenuHandler(services.NewMenuService(db)),
		handlers.NewCartHandler(services.NewCartService(db)),
		handlers.NewPaymentHandler(services.NewPaymentService(db, provider)),
		handlers.NewHealthHandler(db),
	)

	return &testEnv{app: app, db: db, cfg: cfg, provider: provider, tokens: tokenService}
}

func (e *testEnv) bearerFor(t *testing.T, email string) string {
	t.Helper()
	token, err := e.tokens.Issue(map[string]interface{}{"email": email})
	require.NoError(t, err)
	return "Bearer " + token
}

// request performs an in-process request and decodes the JSON response
// into out when out is non-nil.
func (e *testEnv) request(t *testing.T, method, path, bearer string, body interface{}, out interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	if out != nil {
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}
