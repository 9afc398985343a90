package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/contractflow/contractflow/internal/config"
	"github.com/contractflow/contractflow/internal/dto"
	"github.com/contractflow/contractflow/internal/handlers"
	"github.com/contractflow/contractflow/internal/models"
	"github.com/contractflow/contractflow/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newRouteEnv wires the full route table onto a fiber app backed by an
// in-memory database and returns a signed token for a bootstrap admin.
func newRouteEnv(t *testing.T) (*fiber.App, string) {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:        "route-test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.RefreshToken{}, &models.Client{}, &models.Product{},
		&models.Contract{}, &models.Subscription{},
		&models.RateCard{}, &models.SubscriptionTier{},
	))

	lookup := services.NewLookup(db)
	authService := services.NewAuthService(db, cfg)

	admin, err := authService.Register(nil, &dto.RegisterRequest{
		Email: "admin@example.com", Password: "correct horse", FullName: "Admin",
	})
	require.NoError(t, err)

	app := fiber.New()
	Setup(app, cfg, db,
		handlers.NewAuthHandler(authService),
		handlers.NewHealthHandler(),
		handlers.NewUserHandler(services.NewUserService(db)),
		handlers.NewClientHandler(services.NewClientService(db)),
		handlers.NewProductHandler(services.NewProductService(db)),
		handlers.NewContractHandler(services.NewContractService(db)),
		handlers.NewSubscriptionHandler(services.NewSubscriptionService(db, lookup)),
		handlers.NewRateCardHandler(services.NewRateCardService(db)),
		handlers.NewTierHandler(services.NewTierService(db, lookup)),
	)

	claims := jwt.MapClaims{
		"sub":  admin.User.ID.String(),
		"role": admin.User.Role,
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	return app, token
}

func postJSON(t *testing.T, app *fiber.App, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(fiber.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestUserCreateRoute(t *testing.T) {
	app, token := newRouteEnv(t)

	body := fiber.Map{
		"email":     "employee@example.com",
		"password":  "correct horse",
		"full_name": "Employee",
	}

	status, _ := postJSON(t, app, "/api/users", "", body)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, resp := postJSON(t, app, "/api/users", token, body)
	require.Equal(t, fiber.StatusCreated, status)
	user := resp["user"].(map[string]interface{})
	assert.Equal(t, "employee@example.com", user["email"])
	assert.Equal(t, models.RoleEmployee, user["role"])

	// Duplicate email surfaces as a conflict.
	status, _ = postJSON(t, app, "/api/users", token, body)
	assert.Equal(t, fiber.StatusConflict, status)
}
