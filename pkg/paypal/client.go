package paypal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StatusCompleted is the only gateway order status that means the payment
// was captured; anything else (CREATED, APPROVED, VOIDED) is not paid.
const StatusCompleted = "COMPLETED"

// GatewayOrder is what the core needs back from the payment gateway: who
// paid, how much, and whether the gateway considers it done.
type GatewayOrder struct {
	ID         string
	Status     string
	Amount     decimal.Decimal
	Currency   string
	PayerEmail string
}

// Gateway is the payment collaborator boundary. The checkout engine never
// talks HTTP directly; tests substitute a stub.
type Gateway interface {
	GetOrder(ctx context.Context, orderID string) (*GatewayOrder, error)
}

type Client struct {
	BaseURL  string
	ClientID string
	Secret   string
	HTTP     *http.Client

	token       string
	tokenExpiry time.Time
}

func NewClient(baseURL, clientID, secret string) *Client {
	return &Client{
		BaseURL:  strings.TrimSuffix(baseURL, "/"),
		ClientID: clientID,
		Secret:   secret,
		HTTP:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (*GatewayOrder, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v2/checkout/orders/"+url.PathEscape(orderID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("paypal: order %s not found", orderID)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("paypal: get order: status %d", res.StatusCode)
	}

	var body struct {
		ID            string `json:"id"`
		Status        string `json:"status"`
		PurchaseUnits []struct {
			Amount struct {
				Value        string `json:"value"`
				CurrencyCode string `json:"currency_code"`
			} `json:"amount"`
		} `json:"purchase_units"`
		Payer struct {
			EmailAddress string `json:"email_address"`
		} `json:"payer"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("paypal: decode order: %w", err)
	}
	if len(body.PurchaseUnits) == 0 {
		return nil, fmt.Errorf("paypal: order %s has no purchase units", orderID)
	}

	amount, err := decimal.NewFromString(body.PurchaseUnits[0].Amount.Value)
	if err != nil {
		return nil, fmt.Errorf("paypal: bad amount %q: %w", body.PurchaseUnits[0].Amount.Value, err)
	}

	return &GatewayOrder{
		ID:         body.ID,
		Status:     body.Status,
		Amount:     amount,
		Currency:   body.PurchaseUnits[0].Amount.CurrencyCode,
		PayerEmail: body.Payer.EmailAddress,
	}, nil
}

// accessToken fetches (and caches) an OAuth client-credentials token.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	form := strings.NewReader("grant_type=client_credentials")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/oauth2/token", form)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.ClientID, c.Secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("paypal: token: status %d", res.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("paypal: decode token: %w", err)
	}

	c.token = body.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(body.ExpiresIn-60) * time.Second)
	return c.token, nil
}
