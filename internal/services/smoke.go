package services

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/swappo/swappo-toolkit/internal/models"
	srvErrors "github.com/swappo/swappo-toolkit/pkg/errors"
)

const (
	SmokeStepValidateItems = "ValidateItems"
	SmokeStepGetItem       = "GetItem"
	SmokeStepGetItems      = "GetItems"
)

var (
	SmokeValidateIDs = []int64{1, 2, 999}
	SmokeGetItemID   = int64(1)
	SmokeGetItemsIDs = []int64{1, 2, 3}
)

// CatalogClient is the read-only surface of the catalog gRPC service.
type CatalogClient interface {
	ValidateItems(ctx context.Context, ids []int64) ([]models.ItemValidation, error)
	// GetItem returns nil, nil when the item does not exist.
	GetItem(ctx context.Context, id int64) (*models.Item, error)
	GetItems(ctx context.Context, ids []int64) (*models.ItemsResult, error)
}

// CatalogSmoke calls the three catalog read RPCs once each and prints the answers.
type CatalogSmoke struct {
	client CatalogClient
	out    io.Writer
}

func NewCatalogSmoke(client CatalogClient, out io.Writer) *CatalogSmoke {
	if out == nil {
		out = os.Stdout
	}
	return &CatalogSmoke{client: client, out: out}
}

// Run stops at the first failing step and returns it as a SmokeStepError.
func (s *CatalogSmoke) Run(ctx context.Context) error {
	log := zap.S().Named("catalog_smoke")
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintln(s.out, "Testing catalog gRPC client...")

	fmt.Fprintf(s.out, "\n1. %s(%v)\n", SmokeStepValidateItems, SmokeValidateIDs)
	validations, err := s.client.ValidateItems(ctx, SmokeValidateIDs)
	if err != nil {
		return srvErrors.NewSmokeStepError(SmokeStepValidateItems, err)
	}
	fmt.Fprintf(s.out, "   %s %d results\n", green("OK"), len(validations))
	for _, v := range validations {
		fmt.Fprintf(s.out, "   item %d: exists=%t, is_active=%t\n", v.ItemID, v.Exists, v.IsActive)
	}

	fmt.Fprintf(s.out, "\n2. %s(%d)\n", SmokeStepGetItem, SmokeGetItemID)
	item, err := s.client.GetItem(ctx, SmokeGetItemID)
	if err != nil {
		return srvErrors.NewSmokeStepError(SmokeStepGetItem, err)
	}
	if item != nil {
		fmt.Fprintf(s.out, "   %s %s\n", green("OK"), item.Name)
	} else {
		fmt.Fprintf(s.out, "   %s item %d not found\n", yellow("WARN"), SmokeGetItemID)
	}

	fmt.Fprintf(s.out, "\n3. %s(%v)\n", SmokeStepGetItems, SmokeGetItemsIDs)
	result, err := s.client.GetItems(ctx, SmokeGetItemsIDs)
	if err != nil {
		return srvErrors.NewSmokeStepError(SmokeStepGetItems, err)
	}
	fmt.Fprintf(s.out, "   %s %d items\n", green("OK"), len(result.Items))
	if len(result.NotFoundIDs) > 0 {
		fmt.Fprintf(s.out, "   not found: %v\n", result.NotFoundIDs)
	}

	fmt.Fprintf(s.out, "\n%s\n", green("All catalog gRPC calls succeeded"))
	log.Infow("catalog smoke passed", "validated", len(validations), "items", len(result.Items))
	return nil
}
