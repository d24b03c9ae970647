package infra

import (
	"github.com/swappo/swappo-toolkit/internal/models"
)

// InfraManager abstracts the lifecycle of the services under test.
// External: no-op, the services are already running at the configured URLs.
// Fake: starts the in-process fake stack on loopback listeners.
type InfraManager interface {
	Start() error
	Stop() error
	Endpoints() []models.ServiceEndpoint
}

const (
	ModeExternal = "external"
	ModeFake     = "fake"
)
