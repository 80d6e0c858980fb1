package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pharmacy-locator/internal/delivery/http/handler"
	"github.com/pharmacy-locator/internal/usecase/dto"
)

// MockLocator is a mock of handler.Locator
type MockLocator struct {
	mock.Mock
}

func (m *MockLocator) Locate(ctx context.Context, situation, location string, radiusM, limit int) *dto.LocatorResponse {
	args := m.Called(ctx, situation, location, radiusM, limit)
	return args.Get(0).(*dto.LocatorResponse)
}

func newTestApp(uc handler.Locator) *fiber.App {
	app := fiber.New()
	h := handler.NewLocatorHandler(uc, zap.NewNop())
	app.Post("/locator", h.Locate)
	return app
}

func post(t *testing.T, app *fiber.App, body string) (int, string, string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/locator", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header.Get("Content-Type"), string(raw)
}

func okResponse() *dto.LocatorResponse {
	phone := "+33 1"
	return &dto.LocatorResponse{
		Status:   dto.StatusOK,
		Provider: "overpass",
		QueryLocation: &dto.QueryLocation{
			Input:      "Paris",
			Lat:        48.8566,
			Lon:        2.3522,
			RawGeocode: map[string]interface{}{},
		},
		Results: []dto.PharmacyResult{{
			Name:        "Pharmacie Centrale",
			Lat:         48.857,
			Lon:         2.351,
			DistanceM:   100,
			AddressTags: map[string]string{},
			Phone:       &phone,
			OSMType:     "node",
			OSMID:       1,
		}},
	}
}

func TestLocatorHandler_Locate(t *testing.T) {
	t.Run("missing location", func(t *testing.T) {
		uc := new(MockLocator)
		status, _, body := post(t, newTestApp(uc), `{"situation":"fever","location":"   "}`)

		assert.Equal(t, fiber.StatusBadRequest, status)
		var got map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(body), &got))
		assert.Equal(t, "error", got["status"])
		assert.Equal(t, "No location provided", got["message"])
		uc.AssertNotCalled(t, "Locate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid body", func(t *testing.T) {
		uc := new(MockLocator)
		status, _, body := post(t, newTestApp(uc), `{"location":`)

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, body, `"status":"error"`)
	})

	t.Run("city used when location absent", func(t *testing.T) {
		uc := new(MockLocator)
		uc.On("Locate", mock.Anything, "", "Lyon", 0, 0).Return(okResponse()).Once()

		status, contentType, _ := post(t, newTestApp(uc), `{"city":"Lyon","query":"Nice"}`)

		assert.Equal(t, fiber.StatusOK, status)
		assert.Contains(t, contentType, "application/json")
		uc.AssertExpectations(t)
	})

	t.Run("query used as last resort", func(t *testing.T) {
		uc := new(MockLocator)
		uc.On("Locate", mock.Anything, "cough", "Nice", 500, 3).Return(okResponse()).Once()

		status, _, _ := post(t, newTestApp(uc), `{"situation":"cough","query":"Nice","radius_m":500,"limit":3}`)

		assert.Equal(t, fiber.StatusOK, status)
		uc.AssertExpectations(t)
	})

	t.Run("json envelope", func(t *testing.T) {
		uc := new(MockLocator)
		uc.On("Locate", mock.Anything, "", "Paris", 0, 0).Return(okResponse()).Once()

		status, _, body := post(t, newTestApp(uc), `{"location":"Paris"}`)

		assert.Equal(t, fiber.StatusOK, status)
		var got dto.LocatorResponse
		require.NoError(t, json.Unmarshal([]byte(body), &got))
		assert.Equal(t, dto.StatusOK, got.Status)
		assert.Equal(t, "overpass", got.Provider)
		require.Len(t, got.Results, 1)
		assert.Equal(t, "Pharmacie Centrale", got.Results[0].Name)
		assert.Contains(t, body, `"email":null`)
	})

	t.Run("pretty text", func(t *testing.T) {
		uc := new(MockLocator)
		uc.On("Locate", mock.Anything, "", "Paris", 0, 0).Return(okResponse()).Once()

		status, contentType, body := post(t, newTestApp(uc), `{"location":"Paris","format":"PRETTY"}`)

		assert.Equal(t, fiber.StatusOK, status)
		assert.Contains(t, contentType, "text/plain")
		assert.True(t, strings.HasPrefix(body, "Top 1 pharmacies near Paris"))
		assert.Contains(t, body, "Phone: +33 1")
	})

	t.Run("not geocoded is an error envelope with 200", func(t *testing.T) {
		uc := new(MockLocator)
		uc.On("Locate", mock.Anything, "", "Atlantis", 0, 0).
			Return(dto.NewErrorResponse("Could not geocode location")).Once()

		status, _, body := post(t, newTestApp(uc), `{"location":"Atlantis","format":"pretty"}`)

		assert.Equal(t, fiber.StatusOK, status)
		assert.JSONEq(t, `{"status":"error","message":"Could not geocode location","results":[]}`, body)
	})

	t.Run("validation errors", func(t *testing.T) {
		uc := new(MockLocator)
		app := newTestApp(uc)

		for _, body := range []string{
			`{"location":"Paris","limit":51}`,
			`{"location":"Paris","radius_m":-5}`,
			`{"location":"Paris","format":"xml"}`,
		} {
			status, _, resp := post(t, app, body)
			assert.Equal(t, fiber.StatusBadRequest, status, body)
			assert.Contains(t, resp, "INVALID_REQUEST")
		}
		uc.AssertNotCalled(t, "Locate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
