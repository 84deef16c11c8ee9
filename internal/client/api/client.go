// Package api implements the HTTP client for the ordertrack server.
// It carries the access token obtained at login on every subsequent
// request and maps HTTP error statuses to client-side sentinels.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/ordertrack/internal/common"
)

type Order struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ProductName string    `json:"product_name"`
	Quantity    int32     `json:"quantity"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type OrderPatch struct {
	ProductName *string  `json:"product_name,omitempty"`
	Quantity    *int32   `json:"quantity,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

type Client struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// IsAuthenticated reports whether a login has produced an access token.
func (c *Client) IsAuthenticated() bool {
	return c.accessToken != ""
}

// Logout discards the stored access token. Tokens are stateless, so
// nothing is sent to the server.
func (c *Client) Logout() {
	c.accessToken = ""
}

type errorResponse struct {
	Error string `json:"error"`
}

// do performs a JSON round trip against the server. A non-nil body is
// encoded as the request payload and a non-nil out receives the decoded
// response. Transport failures are reported as ErrUnavailable.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {

	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.accessToken != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerSchemePrefix+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var er errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&er)
		return mapStatus(resp.StatusCode, er.Error)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return err
		}
	}

	return nil
}

func mapStatus(code int, msg string) error {
	switch code {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusConflict:
		return ErrAlreadyExists
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return ErrUnavailable
	default:
		return fmt.Errorf("server error: %d %s", code, msg)
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func (c *Client) Register(ctx context.Context, userName string, password []byte) error {
	req := credentialsRequest{Username: userName, Password: string(password)}
	return c.do(ctx, http.MethodPost, "/api/auth/register", req, nil)
}

// Login authenticates and stores the issued access token for later calls.
func (c *Client) Login(ctx context.Context, userName string, password []byte) error {
	req := credentialsRequest{Username: userName, Password: string(password)}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return err
	}

	c.accessToken = resp.Token
	return nil
}

type createOrderRequest struct {
	ProductName string  `json:"product_name"`
	Quantity    int32   `json:"quantity"`
	Price       float64 `json:"price"`
}

func (c *Client) CreateOrder(ctx context.Context, productName string, quantity int32, price float64) (*Order, error) {
	req := createOrderRequest{ProductName: productName, Quantity: quantity, Price: price}

	var order Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) UpdateOrder(ctx context.Context, id string, patch *OrderPatch) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPut, "/api/orders/"+id, patch, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/orders/"+id, nil, nil)
}

type statusResponse struct {
	Status string `json:"status"`
}

func (c *Client) Ping(ctx context.Context) error {
	var resp statusResponse
	if err := c.do(ctx, http.MethodGet, "/api/ping", nil, &resp); err != nil {
		return err
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}
