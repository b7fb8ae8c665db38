package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/bookingengine/internal/api/handlers"
	"github.com/zatekoja/bookingengine/internal/domain/entities"
	apperrors "github.com/zatekoja/bookingengine/pkg/errors"
)

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body["error"]
}

func TestCatalogHandler_CreateProperty(t *testing.T) {
	properties := new(mockPropertyService)
	properties.On("Create", mock.Anything, mock.MatchedBy(func(p *entities.Property) bool {
		return p.Name == "Seaside Inn" && p.City == "Lisbon" && p.ContactEmail == "front@seaside.example"
	})).Return("prop-1", nil)
	handler := handlers.NewCatalogHandler(properties, new(mockRoomTypeService))

	body := `{"name":"Seaside Inn","address":"1 Beach Rd","city":"Lisbon","country":"PT","contact_email":"front@seaside.example"}`
	req := httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateProperty(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "prop-1", response["id"])
	properties.AssertExpectations(t)
}

func TestCatalogHandler_CreateProperty_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "malformed json", body: `{"name":`, wantErr: "invalid request payload"},
		{name: "missing city", body: `{"name":"A","address":"B","country":"PT"}`, wantErr: "city failed required"},
		{name: "bad contact email", body: `{"name":"A","address":"B","city":"C","country":"PT","contact_email":"nope"}`, wantErr: "contact_email failed email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			properties := new(mockPropertyService)
			handler := handlers.NewCatalogHandler(properties, new(mockRoomTypeService))

			req := httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.CreateProperty(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decodeError(t, w), tt.wantErr)
			properties.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCatalogHandler_ListProperties(t *testing.T) {
	t.Run("empty list encodes as array", func(t *testing.T) {
		properties := new(mockPropertyService)
		properties.On("List", mock.Anything).Return(nil, nil)
		handler := handlers.NewCatalogHandler(properties, new(mockRoomTypeService))

		w := httptest.NewRecorder()
		handler.ListProperties(w, httptest.NewRequest(http.MethodGet, "/api/properties", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		properties := new(mockPropertyService)
		properties.On("List", mock.Anything).Return(nil, apperrors.NewInternalError("failed to list properties", errors.New("down")))
		handler := handlers.NewCatalogHandler(properties, new(mockRoomTypeService))

		w := httptest.NewRecorder()
		handler.ListProperties(w, httptest.NewRequest(http.MethodGet, "/api/properties", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", decodeError(t, w))
	})
}

func TestCatalogHandler_CreateRoomType(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "valid", body: `{"property_id":"P","name":"Deluxe","max_guests":2,"base_price":100}`, wantStatus: http.StatusOK},
		{name: "zero guests", body: `{"property_id":"P","name":"Deluxe","max_guests":0,"base_price":100}`, wantStatus: http.StatusBadRequest},
		{name: "negative price", body: `{"property_id":"P","name":"Deluxe","max_guests":2,"base_price":-1}`, wantStatus: http.StatusBadRequest},
		{name: "missing property", body: `{"name":"Deluxe","max_guests":2,"base_price":100}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roomTypes := new(mockRoomTypeService)
			roomTypes.On("Create", mock.Anything, mock.AnythingOfType("*entities.RoomType")).Return("rt-1", nil)
			handler := handlers.NewCatalogHandler(new(mockPropertyService), roomTypes)

			req := httptest.NewRequest(http.MethodPost, "/api/room-types", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.CreateRoomType(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"id":"rt-1"}`, w.Body.String())
			}
		})
	}
}

func TestCatalogHandler_ListRoomTypes(t *testing.T) {
	roomTypes := new(mockRoomTypeService)
	roomTypes.On("List", mock.Anything, "P").Return([]*entities.RoomType{
		{ID: "rt-1", PropertyID: "P", Name: "Deluxe", MaxGuests: 2, BasePrice: 100},
	}, nil)
	handler := handlers.NewCatalogHandler(new(mockPropertyService), roomTypes)

	w := httptest.NewRecorder()
	handler.ListRoomTypes(w, httptest.NewRequest(http.MethodGet, "/api/room-types?property_id=P", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"rt-1","property_id":"P","name":"Deluxe","max_guests":2,"base_price":100}]`, w.Body.String())
	roomTypes.AssertExpectations(t)
}
