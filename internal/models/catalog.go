package models

// ItemValidation reports whether a catalog item exists and is active.
type ItemValidation struct {
	ItemID   int64
	Exists   bool
	IsActive bool
}

// Item is a catalog item as returned by the catalog gRPC service.
type Item struct {
	ID          int64
	Name        string
	Description string
	Category    string
	IsActive    bool
}

// ItemsResult is the answer to a batch lookup.
type ItemsResult struct {
	Items       []Item
	NotFoundIDs []int64
}
