package models

// ServiceEndpoint is a named Swappo service reachable over HTTP.
type ServiceEndpoint struct {
	Name    string
	BaseURL string
}

// Credential is used once to register and then to log in.
type Credential struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// LoginRequest is the body sent to the auth service's login endpoint.
func (c Credential) LoginRequest() map[string]string {
	return map[string]string{
		"username": c.Username,
		"password": c.Password,
	}
}

// Token is an opaque bearer credential returned by login.
type Token string

func (t Token) String() string {
	return string(t)
}

// AuthorizationHeader returns the value for the Authorization header.
func (t Token) AuthorizationHeader() string {
	if t == "" {
		return ""
	}
	return "Bearer " + string(t)
}
