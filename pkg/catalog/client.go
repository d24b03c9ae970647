package catalog

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/swappo/swappo-toolkit/internal/models"
	"github.com/swappo/swappo-toolkit/pkg/catalog/catalogpb"
)

const serviceLabel = "catalog"

// Client calls the catalog gRPC service.
type Client struct {
	conn    *grpc.ClientConn
	rpc     catalogpb.CatalogServiceClient
	timeout time.Duration
}

type Option func(o *options)

type options struct {
	timeout     time.Duration
	dialOptions []grpc.DialOption
}

// WithTimeout bounds every call made by the client. Zero means no bound beyond the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(o *options) { o.dialOptions = append(o.dialOptions, opts...) }
}

// NewClient creates a client for addr over an insecure channel. No connection is
// made until the first call.
func NewClient(addr string, opts ...Option) (*Client, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	dialOpts := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, o.dialOptions...)
	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog client for %s: %w", addr, err)
	}
	return &Client{conn: conn, rpc: catalogpb.NewCatalogServiceClient(conn), timeout: o.timeout}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// ValidateItems returns exactly one validation per requested id, in request order.
// Ids missing from the answer are reported as not existing and not active.
func (c *Client) ValidateItems(ctx context.Context, ids []int64) ([]models.ItemValidation, error) {
	var resp *catalogpb.ValidateItemsResponse
	err := c.call(ctx, catalogpb.CatalogService_ValidateItems_FullMethodName, func(ctx context.Context) (err error) {
		resp, err = c.rpc.ValidateItems(ctx, &catalogpb.ValidateItemsRequest{ItemIds: ids})
		return err
	})
	if err != nil {
		return nil, handleGRPCError(err, "ValidateItems")
	}

	found := make(map[int64]models.ItemValidation)
	for _, v := range resp.GetValidations() {
		found[v.GetItemId()] = models.ItemValidation{
			ItemID:   v.GetItemId(),
			Exists:   v.GetExists(),
			IsActive: v.GetIsActive(),
		}
	}

	out := make([]models.ItemValidation, 0, len(ids))
	for _, id := range ids {
		v, ok := found[id]
		if !ok {
			v = models.ItemValidation{ItemID: id}
		}
		out = append(out, v)
	}
	return out, nil
}

// GetItem returns nil, nil when the catalog does not know the item.
func (c *Client) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	var resp *catalogpb.GetItemResponse
	err := c.call(ctx, catalogpb.CatalogService_GetItem_FullMethodName, func(ctx context.Context) (err error) {
		resp, err = c.rpc.GetItem(ctx, &catalogpb.GetItemRequest{ItemId: id})
		return err
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, handleGRPCError(err, "GetItem")
	}

	if resp.GetItem() == nil {
		return nil, nil
	}
	item := toItem(resp.GetItem())
	return &item, nil
}

func (c *Client) GetItems(ctx context.Context, ids []int64) (*models.ItemsResult, error) {
	var resp *catalogpb.GetItemsResponse
	err := c.call(ctx, catalogpb.CatalogService_GetItems_FullMethodName, func(ctx context.Context) (err error) {
		resp, err = c.rpc.GetItems(ctx, &catalogpb.GetItemsRequest{ItemIds: ids})
		return err
	})
	if err != nil {
		return nil, handleGRPCError(err, "GetItems")
	}

	result := &models.ItemsResult{Items: []models.Item{}, NotFoundIDs: []int64{}}
	for _, it := range resp.GetItems() {
		result.Items = append(result.Items, toItem(it))
	}
	result.NotFoundIDs = append(result.NotFoundIDs, resp.GetNotFoundIds()...)
	return result, nil
}

// call runs fn under the client timeout and logs the outcome.
func (c *Client) call(ctx context.Context, method string, fn func(context.Context) error) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	start := time.Now()
	err := fn(ctx)
	zap.S().Named("catalog_client").Debugw("rpc done", "method", method, "code", status.Code(err).String(), "duration", time.Since(start))
	return err
}

func handleGRPCError(err error, rpc string) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.Unavailable:
		return fmt.Errorf("%s service is unavailable: %w", serviceLabel, err)
	case codes.DeadlineExceeded:
		return fmt.Errorf("%s %s timed out: %w", serviceLabel, rpc, err)
	case codes.NotFound:
		return fmt.Errorf("resource not found in %s service: %w", serviceLabel, err)
	default:
		return fmt.Errorf("gRPC error from %s service (%s, %s): %s", serviceLabel, rpc, st.Code(), st.Message())
	}
}

func toItem(it *catalogpb.Item) models.Item {
	return models.Item{
		ID:          it.GetId(),
		Name:        it.GetName(),
		Description: it.GetDescription(),
		Category:    it.GetCategory(),
		IsActive:    it.GetIsActive(),
	}
}
