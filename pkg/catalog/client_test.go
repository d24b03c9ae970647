package catalog_test

import (
	"context"
	"net"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/swappo/swappo-toolkit/internal/models"
	"github.com/swappo/swappo-toolkit/pkg/catalog"
	"github.com/swappo/swappo-toolkit/pkg/catalog/catalogpb"
)

// fakeCatalog answers the catalog RPCs from an in-memory item set.
type fakeCatalog struct {
	catalogpb.UnimplementedCatalogServiceServer

	items   map[int64]models.Item
	failAll codes.Code
	delay   time.Duration
}

func (f *fakeCatalog) check(ctx context.Context) error {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if f.failAll != codes.OK {
		return status.Error(f.failAll, "injected failure")
	}
	return nil
}

func toProto(it models.Item) *catalogpb.Item {
	return &catalogpb.Item{Id: it.ID, Name: it.Name, Description: it.Description, Category: it.Category, IsActive: it.IsActive}
}

func (f *fakeCatalog) ValidateItems(ctx context.Context, req *catalogpb.ValidateItemsRequest) (*catalogpb.ValidateItemsResponse, error) {
	if err := f.check(ctx); err != nil {
		return nil, err
	}
	resp := &catalogpb.ValidateItemsResponse{}
	// unknown ids are left out so the client has to fill them in
	for _, id := range req.GetItemIds() {
		it, ok := f.items[id]
		if !ok {
			continue
		}
		resp.Validations = append(resp.Validations, &catalogpb.ItemValidation{ItemId: id, Exists: true, IsActive: it.IsActive})
	}
	return resp, nil
}

func (f *fakeCatalog) GetItem(ctx context.Context, req *catalogpb.GetItemRequest) (*catalogpb.GetItemResponse, error) {
	if err := f.check(ctx); err != nil {
		return nil, err
	}
	it, ok := f.items[req.GetItemId()]
	if !ok {
		return nil, status.Error(codes.NotFound, "item not found")
	}
	return &catalogpb.GetItemResponse{Item: toProto(it)}, nil
}

func (f *fakeCatalog) GetItems(ctx context.Context, req *catalogpb.GetItemsRequest) (*catalogpb.GetItemsResponse, error) {
	if err := f.check(ctx); err != nil {
		return nil, err
	}
	resp := &catalogpb.GetItemsResponse{}
	for _, id := range req.GetItemIds() {
		it, ok := f.items[id]
		if !ok {
			resp.NotFoundIds = append(resp.NotFoundIds, id)
			continue
		}
		resp.Items = append(resp.Items, toProto(it))
	}
	return resp, nil
}

var _ = Describe("Client", func() {
	var (
		fake   *fakeCatalog
		srv    *grpc.Server
		client *catalog.Client
	)

	BeforeEach(func() {
		fake = &fakeCatalog{items: map[int64]models.Item{
			1: {ID: 1, Name: "Vintage camera", Description: "35mm", Category: "electronics", IsActive: true},
			2: {ID: 2, Name: "Board game", Category: "toys", IsActive: false},
		}}

		lis := bufconn.Listen(1 << 20)
		srv = grpc.NewServer()
		catalogpb.RegisterCatalogServiceServer(srv, fake)
		go func() { _ = srv.Serve(lis) }()

		var err error
		client, err = catalog.NewClient("passthrough:///bufnet",
			catalog.WithTimeout(2*time.Second),
			catalog.WithDialOptions(grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
				return lis.DialContext(ctx)
			})),
		)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(client.Close()).To(Succeed())
		srv.Stop()
	})

	Describe("ValidateItems", func() {
		It("should return one validation per requested id in order", func() {
			// Act
			validations, err := client.ValidateItems(context.Background(), []int64{1, 2, 999})

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(validations).To(Equal([]models.ItemValidation{
				{ItemID: 1, Exists: true, IsActive: true},
				{ItemID: 2, Exists: true, IsActive: false},
				{ItemID: 999, Exists: false, IsActive: false},
			}))
		})

		It("should handle an empty request", func() {
			validations, err := client.ValidateItems(context.Background(), nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(validations).To(BeEmpty())
		})
	})

	Describe("GetItem", func() {
		It("should decode the item", func() {
			item, err := client.GetItem(context.Background(), 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(item).To(Equal(&models.Item{ID: 1, Name: "Vintage camera", Description: "35mm", Category: "electronics", IsActive: true}))
		})

		It("should return nil without error when the item does not exist", func() {
			item, err := client.GetItem(context.Background(), 42)

			Expect(err).NotTo(HaveOccurred())
			Expect(item).To(BeNil())
		})
	})

	Describe("GetItems", func() {
		It("should split found items and missing ids", func() {
			result, err := client.GetItems(context.Background(), []int64{1, 2, 3})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Items).To(HaveLen(2))
			Expect(result.Items[0].Name).To(Equal("Vintage camera"))
			Expect(result.Items[1].Name).To(Equal("Board game"))
			Expect(result.NotFoundIDs).To(Equal([]int64{3}))
		})
	})

	Describe("errors", func() {
		It("should name an unavailable catalog", func() {
			fake.failAll = codes.Unavailable

			_, err := client.ValidateItems(context.Background(), []int64{1})

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(HavePrefix("catalog service is unavailable"))
			Expect(status.Code(err)).To(Equal(codes.Unavailable))
		})

		It("should describe other status codes", func() {
			fake.failAll = codes.Internal

			_, err := client.GetItems(context.Background(), []int64{1})

			Expect(err).To(MatchError("gRPC error from catalog service (GetItems, Internal): injected failure"))
		})

		It("should not hide a GetItem failure other than not found", func() {
			fake.failAll = codes.PermissionDenied

			item, err := client.GetItem(context.Background(), 1)

			Expect(item).To(BeNil())
			Expect(err).To(HaveOccurred())
			Expect(strings.Contains(err.Error(), "PermissionDenied")).To(BeTrue())
		})

		It("should report a deadline as a timeout", func() {
			// Given
			fake.delay = time.Second

			// When
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()
			_, err := client.GetItems(ctx, []int64{1})

			// Then
			Expect(status.Code(err)).To(Equal(codes.DeadlineExceeded))
			Expect(err.Error()).To(ContainSubstring("GetItems timed out"))
		})
	})
})

var _ = Describe("catalog.proto", func() {
	It("should expose the service under its proto package", func() {
		svc := catalogpb.File_catalog_proto.Services().ByName("CatalogService")

		Expect(svc).NotTo(BeNil())
		Expect(string(svc.FullName())).To(Equal("catalog.v1.CatalogService"))
		Expect(svc.Methods().Len()).To(Equal(3))
	})

	It("should carry lowerCamelCase json names", func() {
		fields := (&catalogpb.GetItemsResponse{}).ProtoReflect().Descriptor().Fields()

		Expect(fields.ByName("not_found_ids").JSONName()).To(Equal("notFoundIds"))
		Expect(fields.ByName("items").Message().FullName()).To(BeEquivalentTo("catalog.v1.Item"))
	})
})
