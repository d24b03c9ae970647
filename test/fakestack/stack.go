package fakestack

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/swappo/swappo-toolkit/internal/models"
)

const (
	Auth          = "Auth"
	Catalog       = "Catalog"
	Chat          = "Chat"
	Matchmaking   = "Matchmaking"
	Notifications = "Notifications"
)

type user struct {
	id       string
	email    string
	password string
}

// Item is a catalog item held by the fake catalog.
type Item struct {
	ID          string `json:"id"`
	Owner       string `json:"owner"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Stack is an in-process stand-in for the five Swappo services. Auth issues real
// JWTs; catalog, matchmaking and notifications require them.
type Stack struct {
	issuer  *TokenIssuer
	servers map[string]*httptest.Server

	mu             sync.Mutex
	users          map[string]user
	items          []Item
	healthFailures map[string]int
	tokenField     string
	openCatalog    bool
}

// Start launches all five services on loopback listeners.
func Start() (*Stack, error) {
	issuer, err := NewTokenIssuer(time.Hour)
	if err != nil {
		return nil, err
	}

	s := &Stack{
		issuer:         issuer,
		servers:        make(map[string]*httptest.Server),
		users:          make(map[string]user),
		healthFailures: make(map[string]int),
		tokenField:     "access_token",
	}

	s.servers[Auth] = httptest.NewServer(s.authMux())
	s.servers[Catalog] = httptest.NewServer(s.catalogMux())
	s.servers[Chat] = httptest.NewServer(s.baseMux(Chat))
	s.servers[Matchmaking] = httptest.NewServer(s.protectedListMux(Matchmaking, "GET /matches"))
	s.servers[Notifications] = httptest.NewServer(s.protectedListMux(Notifications, "GET /notifications"))

	zap.S().Named("fakestack").Infow("fake swappo stack started", "endpoints", s.Endpoints())
	return s, nil
}

// Endpoints returns the stack's services in polling order.
func (s *Stack) Endpoints() []models.ServiceEndpoint {
	names := []string{Auth, Catalog, Chat, Matchmaking, Notifications}
	out := make([]models.ServiceEndpoint, 0, len(names))
	for _, n := range names {
		out = append(out, models.ServiceEndpoint{Name: n, BaseURL: s.servers[n].URL})
	}
	return out
}

// Stop closes every listener.
func (s *Stack) Stop() {
	for _, srv := range s.servers {
		srv.Close()
	}
}

// FailHealth makes the next n health probes of service answer 503.
func (s *Stack) FailHealth(service string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.healthFailures[service] = n
}

// UseTokenField changes the login response field that carries the token.
func (s *Stack) UseTokenField(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokenField = field
}

// DisableCatalogAuth makes the catalog serve items to anonymous callers.
func (s *Stack) DisableCatalogAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openCatalog = true
}

// Items returns a copy of the created catalog items.
func (s *Stack) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Item(nil), s.items...)
}

func (s *Stack) baseMux(service string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		s.mu.Lock()
		failing := s.healthFailures[service] > 0
		if failing {
			s.healthFailures[service]--
		}
		s.mu.Unlock()

		if failing {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "starting"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": service})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not Found"})
	})
	return mux
}

func (s *Stack) authMux() *http.ServeMux {
	mux := s.baseMux(Auth)

	mux.HandleFunc("POST /register", func(w http.ResponseWriter, r *http.Request) {
		var cred models.Credential
		if err := json.NewDecoder(r.Body).Decode(&cred); err != nil || cred.Username == "" || cred.Password == "" {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "username and password are required"})
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if _, exists := s.users[cred.Username]; exists {
			writeJSON(w, http.StatusConflict, map[string]string{"detail": "user already exists"})
			return
		}
		u := user{id: uuid.NewString(), email: cred.Email, password: cred.Password}
		s.users[cred.Username] = u
		writeJSON(w, http.StatusCreated, map[string]string{"id": u.id, "username": cred.Username})
	})

	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var cred models.Credential
		if err := json.NewDecoder(r.Body).Decode(&cred); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid body"})
			return
		}

		s.mu.Lock()
		u, ok := s.users[cred.Username]
		field := s.tokenField
		s.mu.Unlock()
		if !ok || u.password != cred.Password {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "invalid credentials"})
			return
		}

		token, err := s.issuer.Issue(cred.Username)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{field: token, "token_type": "bearer"})
	})

	return mux
}

func (s *Stack) catalogMux() *http.ServeMux {
	mux := s.baseMux(Catalog)

	mux.HandleFunc("GET /items", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		open := s.openCatalog
		s.mu.Unlock()
		if !open {
			if _, ok := s.authorize(w, r); !ok {
				return
			}
		}
		writeJSON(w, http.StatusOK, s.Items())
	})

	mux.HandleFunc("POST /items", func(w http.ResponseWriter, r *http.Request) {
		owner, ok := s.authorize(w, r)
		if !ok {
			return
		}
		var it Item
		if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid body"})
			return
		}
		if it.Name == "" {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "name is required"})
			return
		}
		it.ID = uuid.NewString()
		it.Owner = owner

		s.mu.Lock()
		s.items = append(s.items, it)
		s.mu.Unlock()
		writeJSON(w, http.StatusCreated, it)
	})

	return mux
}

func (s *Stack) protectedListMux(service, pattern string) *http.ServeMux {
	mux := s.baseMux(service)
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.authorize(w, r); !ok {
			return
		}
		writeJSON(w, http.StatusOK, []any{})
	})
	return mux
}

// authorize writes a 401 and returns false unless the request carries a valid token.
func (s *Stack) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw, err := FromAuthorizationHeader(r.Header.Get("Authorization"))
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Not authenticated"})
		return "", false
	}
	subject, err := s.issuer.Validate(raw)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "invalid token"})
		return "", false
	}
	return subject, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
