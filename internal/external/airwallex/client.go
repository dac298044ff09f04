package airwallex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"AirwallexPayments/internal/domain/methods"

	"github.com/google/go-querystring/query"
)

const (
	loginPath       = "/api/v1/authentication/login"
	defaultPageSize = 100
	maxPages        = 10
	tokenLifetime   = 30 * time.Minute
	tokenRefreshGap = time.Minute
)

// Client talks to the processor API. Requests that never get an answer and
// 5xx answers come back as *methods.TransportError.
type Client struct {
	BaseURL           string
	PaymentMethodsURL string
	ClientID          string
	APIKey            string
	HTTP              *http.Client

	mu        sync.Mutex
	token     string
	expiresAt time.Time
	now       func() time.Time
}

func New(baseURL, paymentMethodsPath, clientID, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		BaseURL:           baseURL,
		PaymentMethodsURL: baseURL + paymentMethodsPath,
		ClientID:          clientID,
		APIKey:            apiKey,
		HTTP:              httpClient,
		now:               time.Now,
	}
}

type listParams struct {
	TransactionCurrency string `url:"transaction_currency,omitempty"`
	Active              bool   `url:"active"`
	PageNum             int    `url:"page_num"`
	PageSize            int    `url:"page_size"`
}

type methodType struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type listResp struct {
	HasMore bool         `json:"has_more"`
	Items   []methodType `json:"items"`
}

type loginResp struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// AvailablePaymentMethods lists the active method type names for currency,
// following pagination. Names repeated across transaction modes are returned once.
func (c *Client) AvailablePaymentMethods(ctx context.Context, currency string) ([]string, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	names := make([]string, 0)
	for page := 0; page < maxPages; page++ {
		params, err := query.Values(listParams{
			TransactionCurrency: currency,
			Active:              true,
			PageNum:             page,
			PageSize:            defaultPageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("encode query: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.PaymentMethodsURL+"?"+params.Encode(), nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)

		var out listResp
		if err := c.do(req, "list payment method types", &out); err != nil {
			if errors.Is(err, errUnauthorized) {
				c.dropToken()
			}
			return nil, err
		}

		for _, item := range out.Items {
			if !item.Active || item.Name == "" {
				continue
			}
			if _, ok := seen[item.Name]; ok {
				continue
			}
			seen[item.Name] = struct{}{}
			names = append(names, item.Name)
		}
		if !out.HasMore {
			break
		}
	}
	return names, nil
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.expiresAt.Add(-tokenRefreshGap)) {
		return c.token, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+loginPath, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-client-id", c.ClientID)
	req.Header.Set("x-api-key", c.APIKey)

	var out loginResp
	if err := c.do(req, "login", &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", errors.New("login: empty token")
	}

	c.token = out.Token
	c.expiresAt = c.parseExpiry(out.ExpiresAt)
	return c.token, nil
}

func (c *Client) dropToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

func (c *Client) parseExpiry(raw string) time.Time {
	for _, layout := range []string{"2006-01-02T15:04:05-0700", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return c.now().Add(tokenLifetime)
}

var errUnauthorized = errors.New("unauthorized")

func (c *Client) do(req *http.Request, op string, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &methods.TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	raw, _ := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode/100 == 2:
	case resp.StatusCode >= 500:
		return &methods.TransportError{Op: op, Err: fmt.Errorf("provider %s: %s", resp.Status, string(raw))}
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%s: %w: %s", op, errUnauthorized, string(raw))
	default:
		return fmt.Errorf("%s: provider %s: %s", op, resp.Status, string(raw))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
