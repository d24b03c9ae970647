package verifier

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/swappo/swappo-toolkit/internal/models"
	srvErrors "github.com/swappo/swappo-toolkit/pkg/errors"
	"github.com/swappo/swappo-toolkit/pkg/swappo"
)

const (
	ServiceAuth          = "Auth"
	ServiceCatalog       = "Catalog"
	ServiceChat          = "Chat"
	ServiceMatchmaking   = "Matchmaking"
	ServiceNotifications = "Notifications"
)

const (
	pathRegister      = "/register"
	pathLogin         = "/login"
	pathItems         = "/items"
	pathMatches       = "/matches"
	pathNotifications = "/notifications"
)

// TokenFields are the login response fields that may carry the bearer token, in lookup order.
var TokenFields = []string{"access_token", "token"}

var (
	DefaultCredential = models.Credential{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "TestPassword123!",
	}
	IntegrationCredential = models.Credential{
		Username: "integrationtest",
		Email:    "integration@test.com",
		Password: "IntegrationTest123!",
	}
)

// NewE2ECredential returns a credential whose username is suffixed with the unix
// time so repeated runs against persistent services do not collide.
func NewE2ECredential(now time.Time) models.Credential {
	username := fmt.Sprintf("e2etest_%d", now.Unix())
	return models.Credential{
		Username: username,
		Email:    username + "@test.com",
		Password: "E2ETest123!",
	}
}

// Item is the catalog item created by the end-to-end workflow.
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

var WorkflowItem = Item{
	Name:        "Test Item",
	Description: "Integration test item",
	Category:    "electronics",
}

type Options struct {
	HTTPClient   *http.Client
	SmokeTimeout time.Duration
}

// Verifier runs the verification steps against the five Swappo services.
type Verifier struct {
	endpoints    []models.ServiceEndpoint
	clients      map[string]*swappo.Client
	smokeTimeout time.Duration
}

func New(endpoints []models.ServiceEndpoint, opts Options) (*Verifier, error) {
	v := &Verifier{
		endpoints:    endpoints,
		clients:      make(map[string]*swappo.Client, len(endpoints)),
		smokeTimeout: opts.SmokeTimeout,
	}
	for _, e := range endpoints {
		c, err := swappo.NewClient(e, opts.HTTPClient)
		if err != nil {
			return nil, err
		}
		v.clients[e.Name] = c
	}
	for _, name := range []string{ServiceAuth, ServiceCatalog, ServiceMatchmaking, ServiceNotifications} {
		if _, ok := v.clients[name]; !ok {
			return nil, fmt.Errorf("missing endpoint for %s service", name)
		}
	}
	return v, nil
}

func (v *Verifier) Endpoints() []models.ServiceEndpoint {
	return v.endpoints
}

// CheckHealth requires the service's health endpoint to answer 200.
func (v *Verifier) CheckHealth(ctx context.Context, name string) error {
	c, err := v.client(name)
	if err != nil {
		return err
	}
	resp, err := c.Get(ctx, HealthPath)
	if err != nil {
		return err
	}
	return HealthOK.Check(name+" health", resp.StatusCode)
}

// Register creates the user. An already existing user is accepted.
func (v *Verifier) Register(ctx context.Context, cred models.Credential) error {
	resp, err := v.clients[ServiceAuth].PostJSON(ctx, pathRegister, cred)
	if err != nil {
		return err
	}
	return RegisterAccepted.Check("register", resp.StatusCode)
}

// Login returns the bearer token found under one of TokenFields.
func (v *Verifier) Login(ctx context.Context, cred models.Credential) (models.Token, error) {
	resp, err := v.clients[ServiceAuth].PostJSON(ctx, pathLogin, cred.LoginRequest())
	if err != nil {
		return "", err
	}
	if err := LoginOK.Check("login", resp.StatusCode); err != nil {
		return "", err
	}

	var body map[string]any
	if err := resp.JSON(&body); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return ExtractToken(body)
}

// ExtractToken picks the first non-empty string among TokenFields.
func ExtractToken(body map[string]any) (models.Token, error) {
	for _, field := range TokenFields {
		if s, ok := body[field].(string); ok && s != "" {
			return models.Token(s), nil
		}
	}
	return "", srvErrors.NewMissingTokenError(TokenFields...)
}

// Authenticate registers the credential, ignoring the outcome, and logs in.
func (v *Verifier) Authenticate(ctx context.Context, cred models.Credential) (models.Token, error) {
	if err := v.Register(ctx, cred); err != nil {
		if !srvErrors.IsUnexpectedStatusError(err) {
			return "", err
		}
		zap.S().Named("verifier").Debugw("registration not accepted, trying login anyway", "username", cred.Username, "error", err)
	}
	return v.Login(ctx, cred)
}

// CheckAuthorization verifies the catalog rejects anonymous access to a protected
// resource and never rejects the same request carrying token.
func (v *Verifier) CheckAuthorization(ctx context.Context, token models.Token) error {
	catalog := v.clients[ServiceCatalog]

	resp, err := catalog.Get(ctx, pathItems)
	if err != nil {
		return err
	}
	if err := Unauthorized.Check("catalog items without token", resp.StatusCode); err != nil {
		return err
	}

	resp, err = catalog.Get(ctx, pathItems, swappo.WithBearer(token))
	if err != nil {
		return err
	}
	return AuthorizedAccess.Check("catalog items with token", resp.StatusCode)
}

// RunWorkflow creates a catalog item and reads the matchmaking and notification
// endpoints that depend on it. Each step accepts its documented outcome set.
func (v *Verifier) RunWorkflow(ctx context.Context, token models.Token) error {
	bearer := swappo.WithBearer(token)

	resp, err := v.clients[ServiceCatalog].PostJSON(ctx, pathItems, WorkflowItem, bearer)
	if err != nil {
		return err
	}
	if err := CreateItemAccepted.Check("create catalog item", resp.StatusCode); err != nil {
		return err
	}

	resp, err = v.clients[ServiceMatchmaking].Get(ctx, pathMatches, bearer)
	if err != nil {
		return err
	}
	if err := ReadAccepted.Check("read matches", resp.StatusCode); err != nil {
		return err
	}

	resp, err = v.clients[ServiceNotifications].Get(ctx, pathNotifications, bearer)
	if err != nil {
		return err
	}
	return ReadAccepted.Check("read notifications", resp.StatusCode)
}

// Respond issues a bare GET on the service base URL. Any status passes; only
// transport failures are reported.
func (v *Verifier) Respond(ctx context.Context, name string) (int, error) {
	c, err := v.client(name)
	if err != nil {
		return 0, err
	}
	if v.smokeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.smokeTimeout)
		defer cancel()
	}
	resp, err := c.Get(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("%s failed to respond: %w", name, err)
	}
	return resp.StatusCode, nil
}

func (v *Verifier) client(name string) (*swappo.Client, error) {
	c, ok := v.clients[name]
	if !ok {
		return nil, fmt.Errorf("unknown service %q", name)
	}
	return c, nil
}
