package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/contractflow/contractflow/internal/models"
	"github.com/contractflow/contractflow/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type handlerEnv struct {
	app            *fiber.App
	subscriptionID uuid.UUID
}

// newHandlerEnv wires the rate card routes onto a fiber app backed by an
// in-memory database, with a stub auth middleware standing in for the JWT
// layer.
func newHandlerEnv(t *testing.T) *handlerEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Client{}, &models.Product{},
		&models.Contract{}, &models.Subscription{},
		&models.RateCard{}, &models.SubscriptionTier{},
	))

	now := time.Now().UTC()
	actorID := uuid.New()
	require.NoError(t, db.Create(&models.User{
		ID: actorID, Email: "ops@example.com", PasswordHash: "x",
		FullName: "Ops", Role: models.RoleAdmin,
		Audit: models.Audit{CreatedAt: now, UpdatedAt: now},
	}).Error)
	client := models.Client{
		ID: uuid.New(), CompanyName: "Acme Corp", Email: "billing@acme.example",
		PhoneNumber: "+4915112345678", Address: "1 Acme Way",
		Audit: models.Audit{CreatedAt: now, UpdatedAt: now},
	}
	require.NoError(t, db.Create(&client).Error)
	contract := models.Contract{
		ID: uuid.New(), ClientID: client.ID, ContractName: "Acme 2025",
		Duration: models.Duration{
			StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		Audit: models.Audit{CreatedAt: now, UpdatedAt: now},
	}
	require.NoError(t, db.Create(&contract).Error)
	product := models.Product{
		ID: uuid.New(), APIName: "geo-lookup", Description: "Geocoding API",
		Audit: models.Audit{CreatedAt: now, UpdatedAt: now},
	}
	require.NoError(t, db.Create(&product).Error)
	sub := models.Subscription{
		ID: uuid.New(), ContractID: contract.ID, ProductID: product.ID,
		PricingType: models.PricingVariable, Strategy: models.StrategyPick,
		Audit: models.Audit{CreatedAt: now, UpdatedAt: now},
	}
	require.NoError(t, db.Create(&sub).Error)

	h := NewRateCardHandler(services.NewRateCardService(db))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if c.Get("Authorization") != "" {
			c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{
				"sub":  actorID.String(),
				"role": models.RoleAdmin,
			}})
		}
		return c.Next()
	})
	app.Post("/api/rate-cards", h.Create)
	app.Get("/api/rate-cards/:id", h.Get)
	app.Put("/api/rate-cards/:id", h.Update)
	app.Delete("/api/rate-cards/:id", h.Archive)

	return &handlerEnv{app: app, subscriptionID: sub.ID}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, authed bool) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer test")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestRateCardRoutes(t *testing.T) {
	env := newHandlerEnv(t)

	create := func(start, end string) (int, map[string]interface{}) {
		return doJSON(t, env.app, fiber.MethodPost, "/api/rate-cards", fiber.Map{
			"subscription_id": env.subscriptionID,
			"start_date":      start,
			"end_date":        end,
		}, true)
	}

	status, body := create("2025-01-01T00:00:00Z", "2025-07-01T00:00:00Z")
	require.Equal(t, fiber.StatusCreated, status)
	firstID := body["id"].(string)
	assert.Equal(t, env.subscriptionID.String(), body["subscription_id"])

	// Overlapping period is rejected with the blocking card's id.
	status, body = create("2025-06-01T00:00:00Z", "2025-09-01T00:00:00Z")
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, true, body["error"])
	assert.Equal(t, firstID, body["conflict_id"])

	// Period outside the contract names the offending field.
	status, body = create("2024-01-01T00:00:00Z", "2025-01-01T00:00:00Z")
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "start_date", body["field"])

	status, _ = doJSON(t, env.app, fiber.MethodGet, "/api/rate-cards/"+firstID, nil, false)
	assert.Equal(t, fiber.StatusOK, status)

	status, body = doJSON(t, env.app, fiber.MethodGet, "/api/rate-cards/not-a-uuid", nil, false)
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid UUID format", body["message"])

	status, _ = doJSON(t, env.app, fiber.MethodGet, "/api/rate-cards/"+uuid.NewString(), nil, false)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestRateCardRoutesRequireActor(t *testing.T) {
	env := newHandlerEnv(t)

	status, body := doJSON(t, env.app, fiber.MethodPost, "/api/rate-cards", fiber.Map{
		"subscription_id": env.subscriptionID,
		"start_date":      "2025-01-01T00:00:00Z",
		"end_date":        "2025-07-01T00:00:00Z",
	}, false)
	require.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Unauthorized", body["message"])
}

func TestRateCardArchiveRoute(t *testing.T) {
	env := newHandlerEnv(t)

	status, body := doJSON(t, env.app, fiber.MethodPost, "/api/rate-cards", fiber.Map{
		"subscription_id": env.subscriptionID,
		"start_date":      "2025-01-01T00:00:00Z",
		"end_date":        "2025-07-01T00:00:00Z",
	}, true)
	require.Equal(t, fiber.StatusCreated, status)
	id := body["id"].(string)

	status, body = doJSON(t, env.app, fiber.MethodDelete, "/api/rate-cards/"+id, nil, true)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Rate card archived successfully", body["message"])

	status, _ = doJSON(t, env.app, fiber.MethodGet, "/api/rate-cards/"+id, nil, false)
	assert.Equal(t, fiber.StatusNotFound, status)
}
