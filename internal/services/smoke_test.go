package services_test

import (
	"bytes"
	"context"
	"errors"

	"github.com/fatih/color"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/swappo/swappo-toolkit/internal/models"
	"github.com/swappo/swappo-toolkit/internal/services"
	srvErrors "github.com/swappo/swappo-toolkit/pkg/errors"
)

type fakeCatalogClient struct {
	items       map[int64]models.Item
	validateErr error
	getItemErr  error
	getItemsErr error
	calls       []string
}

func (f *fakeCatalogClient) ValidateItems(_ context.Context, ids []int64) ([]models.ItemValidation, error) {
	f.calls = append(f.calls, services.SmokeStepValidateItems)
	if f.validateErr != nil {
		return nil, f.validateErr
	}
	out := make([]models.ItemValidation, 0, len(ids))
	for _, id := range ids {
		it, ok := f.items[id]
		out = append(out, models.ItemValidation{ItemID: id, Exists: ok, IsActive: ok && it.IsActive})
	}
	return out, nil
}

func (f *fakeCatalogClient) GetItem(_ context.Context, id int64) (*models.Item, error) {
	f.calls = append(f.calls, services.SmokeStepGetItem)
	if f.getItemErr != nil {
		return nil, f.getItemErr
	}
	it, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (f *fakeCatalogClient) GetItems(_ context.Context, ids []int64) (*models.ItemsResult, error) {
	f.calls = append(f.calls, services.SmokeStepGetItems)
	if f.getItemsErr != nil {
		return nil, f.getItemsErr
	}
	res := &models.ItemsResult{}
	for _, id := range ids {
		if it, ok := f.items[id]; ok {
			res.Items = append(res.Items, it)
		} else {
			res.NotFoundIDs = append(res.NotFoundIDs, id)
		}
	}
	return res, nil
}

var _ = Describe("CatalogSmoke", func() {
	var (
		client *fakeCatalogClient
		out    *bytes.Buffer
		smoke  *services.CatalogSmoke
	)

	BeforeEach(func() {
		color.NoColor = true
		client = &fakeCatalogClient{items: map[int64]models.Item{
			1: {ID: 1, Name: "Vintage camera", IsActive: true},
			2: {ID: 2, Name: "Board game", IsActive: false},
		}}
		out = &bytes.Buffer{}
		smoke = services.NewCatalogSmoke(client, out)
	})

	It("should run all three steps and print the results", func() {
		// Act
		err := smoke.Run(context.Background())

		// Assert
		Expect(err).NotTo(HaveOccurred())
		Expect(client.calls).To(Equal([]string{"ValidateItems", "GetItem", "GetItems"}))
		Expect(out.String()).To(ContainSubstring("OK 3 results"))
		Expect(out.String()).To(ContainSubstring("item 999: exists=false, is_active=false"))
		Expect(out.String()).To(ContainSubstring("item 2: exists=true, is_active=false"))
		Expect(out.String()).To(ContainSubstring("OK Vintage camera"))
		Expect(out.String()).To(ContainSubstring("OK 2 items"))
		Expect(out.String()).To(ContainSubstring("not found: [3]"))
		Expect(out.String()).To(ContainSubstring("All catalog gRPC calls succeeded"))
	})

	It("should warn when the single item is missing", func() {
		delete(client.items, 1)

		err := smoke.Run(context.Background())

		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(ContainSubstring("WARN item 1 not found"))
	})

	It("should abort at the first failing step", func() {
		// Arrange
		client.getItemErr = errors.New("connection refused")

		// Act
		err := smoke.Run(context.Background())

		// Assert
		Expect(err).To(HaveOccurred())
		Expect(srvErrors.IsSmokeStepError(err)).To(BeTrue())
		Expect(err.Error()).To(Equal("GetItem failed: connection refused"))
		Expect(client.calls).To(Equal([]string{"ValidateItems", "GetItem"}))
		Expect(out.String()).NotTo(ContainSubstring("succeeded"))
	})

	It("should wrap a validation failure with its step", func() {
		cause := errors.New("unavailable")
		client.validateErr = cause

		err := smoke.Run(context.Background())

		var stepErr *srvErrors.SmokeStepError
		Expect(errors.As(err, &stepErr)).To(BeTrue())
		Expect(stepErr.Step).To(Equal("ValidateItems"))
		Expect(errors.Is(err, cause)).To(BeTrue())
		Expect(client.calls).To(HaveLen(1))
	})
})
