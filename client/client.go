package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"gulshan-laundry/config"
)

// Envelope is the normalized response shape every data source produces.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// DataSource is the transport strategy behind the client: either the
// in-memory mock or the HTTP-backed implementation. The choice is made once
// at composition time, never per call.
type DataSource interface {
	Do(ctx context.Context, method, endpoint string, body interface{}) (*Envelope, error)
}

// Client is the single entry point for every network-shaped operation.
// Construct it explicitly and pass it to consumers; there is no package-level
// instance.
type Client struct {
	source DataSource
	tokens TokenStore
}

func New(source DataSource, tokens TokenStore) *Client {
	return &Client{source: source, tokens: tokens}
}

// FromEnv builds a client for the resolved environment: the mock source when
// mocks are enabled outside production, the HTTP source otherwise.
func FromEnv() *Client {
	env := config.ResolveEnvironment()
	tokens := NewFileTokenStore("")
	if config.MocksEnabled(env) {
		return New(NewMockSource(), tokens)
	}
	return New(&HTTPSource{
		BaseURL: config.APIBaseURL(env),
		Client:  http.DefaultClient,
		Tokens:  tokens,
	}, tokens)
}

func decodeData(env *Envelope, v interface{}) error {
	if env == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, v)
}

func (c *Client) ListPackages(ctx context.Context) ([]Package, error) {
	env, err := c.source.Do(ctx, http.MethodGet, "/packages", nil)
	if err != nil {
		return nil, err
	}
	var packages []Package
	if err := decodeData(env, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (c *Client) CreatePackage(ctx context.Context, pkg Package) (*Package, error) {
	env, err := c.source.Do(ctx, http.MethodPost, "/packages", pkg)
	if err != nil {
		return nil, err
	}
	var created Package
	if err := decodeData(env, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdatePackage(ctx context.Context, id string, pkg Package) (*Package, error) {
	env, err := c.source.Do(ctx, http.MethodPut, "/packages/"+id, pkg)
	if err != nil {
		return nil, err
	}
	var updated Package
	if err := decodeData(env, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	env, err := c.source.Do(ctx, http.MethodGet, "/orders", nil)
	if err != nil {
		return nil, err
	}
	var orders []Order
	if err := decodeData(env, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// SubmitOrder validates the order locally and sends it to the back office.
// Validation failures never reach the data source.
func (c *Client) SubmitOrder(ctx context.Context, order Order) (*Order, error) {
	if err := ValidateOrder(order); err != nil {
		return nil, err
	}
	if order.Email == "" {
		order.Email = "guest@example.com"
	}
	env, err := c.source.Do(ctx, http.MethodPost, "/orders", order)
	if err != nil {
		return nil, err
	}
	var created Order
	if err := decodeData(env, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) error {
	body := map[string]string{"status": status}
	_, err := c.source.Do(ctx, http.MethodPut, "/orders/"+id+"/status", body)
	return err
}

func (c *Client) ListMessages(ctx context.Context) ([]ChatMessage, error) {
	env, err := c.source.Do(ctx, http.MethodGet, "/chat/messages", nil)
	if err != nil {
		return nil, err
	}
	var messages []ChatMessage
	if err := decodeData(env, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Client) SendMessage(ctx context.Context, msg ChatMessage) (*ChatMessage, error) {
	env, err := c.source.Do(ctx, http.MethodPost, "/chat/messages", msg)
	if err != nil {
		return nil, err
	}
	var sent ChatMessage
	if err := decodeData(env, &sent); err != nil {
		return nil, err
	}
	return &sent, nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLogin exchanges credentials for a session token and persists the
// token for later requests.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (*Session, error) {
	env, err := c.source.Do(ctx, http.MethodPost, "/admin/login", credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	var session Session
	if err := decodeData(env, &session); err != nil {
		return nil, err
	}
	if session.Token == "" {
		return nil, errors.New("login response contained no token")
	}
	if c.tokens != nil {
		if err := c.tokens.Save(session.Token); err != nil {
			return nil, err
		}
	}
	return &session, nil
}

type verification struct {
	Valid bool      `json:"valid"`
	User  AdminUser `json:"user"`
}

// VerifyAdminToken checks the persisted token with the back office. Any
// failure clears the stored token so the next page load starts logged out.
func (c *Client) VerifyAdminToken(ctx context.Context) (*AdminUser, error) {
	env, err := c.source.Do(ctx, http.MethodGet, "/admin/verify", nil)
	if err != nil {
		c.clearToken()
		return nil, err
	}
	var result verification
	if err := decodeData(env, &result); err != nil {
		c.clearToken()
		return nil, err
	}
	if !result.Valid {
		c.clearToken()
		return nil, errors.New("token is no longer valid")
	}
	return &result.User, nil
}

// Logout drops the persisted session token.
func (c *Client) Logout() error {
	if c.tokens == nil {
		return nil
	}
	return c.tokens.Clear()
}

func (c *Client) clearToken() {
	if c.tokens != nil {
		_ = c.tokens.Clear()
	}
}
