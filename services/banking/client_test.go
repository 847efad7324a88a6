package banking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *PlaidClient {
	c := NewPlaidClient("client-id", "secret", "sandbox")
	c.baseURL = serverURL
	return c
}

func TestCreateLinkToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/link/token/create", r.URL.Path)

		var req linkTokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "client-id", req.ClientID)
		assert.Equal(t, "biz-1", req.User.ClientUserID)

		json.NewEncoder(w).Encode(linkTokenResponse{LinkToken: "link-sandbox-123"})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	token, err := client.CreateLinkToken(context.Background(), "biz-1")
	require.NoError(t, err)
	assert.Equal(t, "link-sandbox-123", token)
}

func TestExchangePublicToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/item/public_token/exchange", r.URL.Path)

		var req exchangeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "public-token-abc", req.PublicToken)

		json.NewEncoder(w).Encode(exchangeResponse{AccessToken: "access-xyz", ItemID: "item-42"})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	access, item, err := client.ExchangePublicToken(context.Background(), "public-token-abc")
	require.NoError(t, err)
	assert.Equal(t, "access-xyz", access)
	assert.Equal(t, "item-42", item)
}

func TestPlaidErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(plaidError{
			ErrorType:    "INVALID_REQUEST",
			ErrorCode:    "INVALID_FIELD",
			ErrorMessage: "client_id is invalid",
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.CreateLinkToken(context.Background(), "biz-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPlaidRejected)
	assert.Contains(t, err.Error(), "INVALID_FIELD")
}
