package infra

import (
	"errors"

	"github.com/swappo/swappo-toolkit/internal/models"
	"github.com/swappo/swappo-toolkit/test/fakestack"
)

// FakeInfraManager runs the suite against fakestack.
type FakeInfraManager struct {
	stack          *fakestack.Stack
	healthFailures int
}

// NewFakeInfraManager makes every fake service answer its first healthFailures
// health probes with 503, which exercises the readiness retry loop.
func NewFakeInfraManager(healthFailures int) *FakeInfraManager {
	return &FakeInfraManager{healthFailures: healthFailures}
}

func (f *FakeInfraManager) Start() error {
	stack, err := fakestack.Start()
	if err != nil {
		return err
	}
	for _, e := range stack.Endpoints() {
		stack.FailHealth(e.Name, f.healthFailures)
	}
	f.stack = stack
	return nil
}

func (f *FakeInfraManager) Stop() error {
	if f.stack == nil {
		return errors.New("fake stack is not running")
	}
	f.stack.Stop()
	f.stack = nil
	return nil
}

func (f *FakeInfraManager) Endpoints() []models.ServiceEndpoint {
	if f.stack == nil {
		return nil
	}
	return f.stack.Endpoints()
}
