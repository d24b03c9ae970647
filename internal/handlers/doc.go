// Package handlers implements the HTTP surface of the shipping function.
//
// Handlers delegate the estimate to the services layer and own request
// parsing, response formatting and the mapping of typed errors to status codes.
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│              HTTP Request (Gin, CORS middleware)                │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Method dispatch (GET health, POST estimate, 405 otherwise)   │
//	│  - JSON body parsing and defaults                               │
//	│  - Error mapping to HTTP status codes                           │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│              services.ShippingService (Estimator)               │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Routes
//
// The function answers on "/" and "/shipping-estimate". OPTIONS preflights are
// answered by the server's CORS middleware before reaching the handler.
//
//	GET   → 200 {"status":"healthy","service":"shipping-estimates","strategy":"formula"}
//	POST  → 200 {"success":true,"estimate":{...}}
//	other → 405 {"success":false,"error":"method not allowed"}
//
// # Request Body
//
// POST expects a non-empty JSON object:
//
//	{
//	  "from_country":   "US",   // default "US"
//	  "to_country":     "FR",   // default "US"
//	  "to_city":        "",     // optional, rate lookup only
//	  "to_postal_code": "",     // optional, rate lookup only
//	  "to_state":       "",     // optional, rate lookup only
//	  "weight_kg":      2.5     // default 1.0
//	}
//
// # Error Mapping
//
//	MalformedRequestError → 400
//	NoRatesError          → 404
//	UpstreamError         → 500 ("Easyship API error: <status>")
//	anything else         → 500 with the error message
//
// Every error body has the shape {"success":false,"error":"..."}.
package handlers
