// Package services holds the toolkit's business logic, between the transport
// layers (gin handlers, cobra commands) and the upstream clients.
//
//	shipping handler ──► ShippingService ──► Estimator
//	                                          ├── FormulaEstimator (zone table)
//	                                          └── RateEstimator ──► RatesClient (Easyship)
//
//	catalog smoke cmd ─► CatalogSmoke ─────► CatalogClient (catalog gRPC)
//
// # ShippingService
//
// ShippingService runs exactly one Estimator, picked at startup from
// shipping.strategy, and records every outcome in the prometheus collectors of
// the metrics package. Estimators return typed errors from pkg/errors; mapping
// them to HTTP status codes is left to the handler.
//
// FormulaEstimator computes
//
//	cost = 8.00 + weight_kg*6.50 + zone_cost
//
// rounded to two decimals. Zones are checked in order:
//
//	┌───────────────────────┬───────────┬───────────────────────┬────────────────────┐
//	│ rule                  │ zone_cost │ courier               │ delivery           │
//	├───────────────────────┼───────────┼───────────────────────┼────────────────────┤
//	│ from == to            │ 0.00      │ National Post         │ 2-4 business days  │
//	│ both in EU            │ 12.00     │ DHL Express EU        │ 3-5 business days  │
//	│ either is US          │ 18.00     │ FedEx International   │ 5-8 business days  │
//	│ otherwise             │ 25.00     │ DHL Express Worldwide │ 7-14 business days │
//	└───────────────────────┴───────────┴───────────────────────┴────────────────────┘
//
// RateEstimator sends one synthetic parcel to the rates API and returns the
// cheapest quote. An empty quote list is a NoRatesError.
//
// # CatalogSmoke
//
// CatalogSmoke is a linear diagnostic: ValidateItems, GetItem, GetItems. The
// first failing call aborts the run and is returned as a SmokeStepError.
package services
