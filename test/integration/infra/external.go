package infra

import (
	"go.uber.org/zap"

	"github.com/swappo/swappo-toolkit/internal/models"
)

// ExternalInfraManager targets services managed outside the suite (docker compose, kind).
type ExternalInfraManager struct {
	endpoints []models.ServiceEndpoint
}

func NewExternalInfraManager(endpoints []models.ServiceEndpoint) *ExternalInfraManager {
	return &ExternalInfraManager{endpoints: endpoints}
}

func (e *ExternalInfraManager) Start() error {
	zap.S().Named("infra").Infow("using externally managed services", "endpoints", e.endpoints)
	return nil
}

func (e *ExternalInfraManager) Stop() error { return nil }

func (e *ExternalInfraManager) Endpoints() []models.ServiceEndpoint {
	return e.endpoints
}
