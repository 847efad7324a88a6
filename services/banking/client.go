package banking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// PlaidClient is a minimal REST client for the Plaid endpoints the
// dashboard needs: creating link tokens and exchanging public tokens.
type PlaidClient struct {
	clientID   string
	secret     string
	baseURL    string
	httpClient *http.Client
}

// NewPlaidClient builds a client for the given Plaid environment
// ("sandbox", "development" or "production").
func NewPlaidClient(clientID, secret, environment string) *PlaidClient {
	return &PlaidClient{
		clientID: clientID,
		secret:   secret,
		baseURL:  fmt.Sprintf("https://%s.plaid.com", environment),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type linkTokenRequest struct {
	ClientID     string       `json:"client_id"`
	Secret       string       `json:"secret"`
	ClientName   string       `json:"client_name"`
	Language     string       `json:"language"`
	CountryCodes []string     `json:"country_codes"`
	User         linkUser     `json:"user"`
	Products     []string     `json:"products"`
	AccountBase  *accountBase `json:"account_filters,omitempty"`
}

type linkUser struct {
	ClientUserID string `json:"client_user_id"`
}

type accountBase struct {
	Depository depositoryFilter `json:"depository"`
}

type depositoryFilter struct {
	AccountSubtypes []string `json:"account_subtypes"`
}

type linkTokenResponse struct {
	LinkToken  string `json:"link_token"`
	Expiration string `json:"expiration"`
}

type exchangeRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	PublicToken string `json:"public_token"`
}

type exchangeResponse struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
}

type plaidError struct {
	ErrorType    string `json:"error_type"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

// CreateLinkToken requests a short-lived link token scoped to the business.
func (c *PlaidClient) CreateLinkToken(ctx context.Context, businessID string) (string, error) {
	reqBody := linkTokenRequest{
		ClientID:     c.clientID,
		Secret:       c.secret,
		ClientName:   "MarketDesk",
		Language:     "en",
		CountryCodes: []string{"US"},
		User:         linkUser{ClientUserID: businessID},
		Products:     []string{"auth"},
		AccountBase: &accountBase{
			Depository: depositoryFilter{AccountSubtypes: []string{"checking", "savings"}},
		},
	}

	var resp linkTokenResponse
	if err := c.post(ctx, "/link/token/create", reqBody, &resp); err != nil {
		return "", err
	}
	return resp.LinkToken, nil
}

// ExchangePublicToken swaps the public token handed back by the Plaid Link
// flow for a persistent access token and the linked item's ID.
func (c *PlaidClient) ExchangePublicToken(ctx context.Context, publicToken string) (accessToken, itemID string, err error) {
	reqBody := exchangeRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		PublicToken: publicToken,
	}

	var resp exchangeResponse
	if err := c.post(ctx, "/item/public_token/exchange", reqBody, &resp); err != nil {
		return "", "", err
	}
	return resp.AccessToken, resp.ItemID, nil
}

func (c *PlaidClient) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: encode request: %v", ErrPlaidInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrPlaidInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: execute request: %v", ErrPlaidUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var perr plaidError
		raw, _ := io.ReadAll(resp.Body)
		if jsonErr := json.Unmarshal(raw, &perr); jsonErr == nil && perr.ErrorCode != "" {
			return fmt.Errorf("%w: %s (%s)", ErrPlaidRejected, perr.ErrorMessage, perr.ErrorCode)
		}
		return fmt.Errorf("%w: unexpected status %d: %s", ErrPlaidRejected, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrPlaidInternal, err)
	}
	return nil
}
