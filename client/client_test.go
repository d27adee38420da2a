package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"camerahive/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerTokenInjected(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	s := New(server.URL).WithToken("tok-123")
	_, err := s.ListCameras(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestEmptyTokenSendsNoAuthHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	s := New(server.URL).WithToken("")
	_, err := s.SampleCameras(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestErrorNormalizedToServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"camera not found"}`))
	}))
	defer server.Close()

	_, err := New(server.URL).WithToken("tok").GetCamera(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, "camera not found", err.Error())
}

func TestErrorWithoutMessageGetsGenericOne(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := New(server.URL).WithToken("tok").AllOrders(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestSessionExpiredMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"401", http.StatusUnauthorized, `{"message":"unauthorized"}`},
		{"invalid token message", http.StatusForbidden, `{"message":"Invalid token"}`},
		{"no token message", http.StatusBadRequest, `{"message":"No token provided"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			_, err := New(server.URL).WithToken("stale").UserOrders(context.Background())
			assert.ErrorIs(t, err, ErrSessionExpired)
		})
	}
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		var data models.LoginData
		require.NoError(t, json.NewDecoder(r.Body).Decode(&data))
		assert.Equal(t, "asha@example.com", data.Email)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"token": "remote-token",
			"user":  map[string]any{"username": "asha", "email": "asha@example.com", "role": "user"},
		})
	}))
	defer server.Close()

	token, user, err := New(server.URL).WithToken("").Login(context.Background(), models.LoginData{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "remote-token", token)
	assert.Equal(t, "asha", user.Username)
	assert.Equal(t, "user", user.Role)
}

func TestInitiatePayment(t *testing.T) {
	days := 3
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/initiate-payment", r.URL.Path)

		var payload struct {
			Items []models.CheckoutLine `json:"items"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Items, 1)
		assert.Equal(t, 600.0, payload.Items[0].Total)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"orderId":   "order_rzp_9",
			"dbOrderId": "db_9",
			"amount":    600.0,
			"currency":  "INR",
		})
	}))
	defer server.Close()

	session, err := New(server.URL).WithToken("tok").InitiatePayment(context.Background(), []models.CheckoutLine{{
		CameraID:   "cam-1",
		Name:       "Sony A7 IV",
		Price:      200,
		RentalDays: &days,
		Type:       models.TypeRent,
		Total:      600,
	}})
	require.NoError(t, err)
	assert.Equal(t, "order_rzp_9", session.GatewayOrderID)
	assert.Equal(t, "db_9", session.LocalOrderID)
	assert.Equal(t, 600.0, session.Amount)
	assert.Equal(t, "INR", session.Currency)
}

func TestVerifyPayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/verify-payment", r.URL.Path)

		var req models.VerifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sig_1", req.GatewaySignature)
		assert.Equal(t, "db_9", req.LocalOrderID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"order": map[string]any{"_id": "ord_9", "total": 600.0, "currency": "INR"},
		})
	}))
	defer server.Close()

	order, err := New(server.URL).WithToken("tok").VerifyPayment(context.Background(), models.VerifyRequest{
		GatewayOrderID:   "order_rzp_9",
		GatewayPaymentID: "pay_9",
		GatewaySignature: "sig_1",
		LocalOrderID:     "db_9",
	})
	require.NoError(t, err)
	assert.Equal(t, "ord_9", order.ID)
	assert.Equal(t, 600.0, order.Total)
}

func TestListCamerasCategoryFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "dslr", r.URL.Query().Get("category"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{"_id": "cam-1", "name": "Canon EOS R5", "price": 1000.0},
		})
	}))
	defer server.Close()

	cameras, err := New(server.URL).WithToken("").ListCameras(context.Background(), "dslr")
	require.NoError(t, err)
	require.Len(t, cameras, 1)
	assert.Equal(t, "Canon EOS R5", cameras[0].Name)
}
