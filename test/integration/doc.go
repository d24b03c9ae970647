/*
Package main runs the Swappo integration suite against the five platform services.

# Package Structure

	test/integration/
	├── main.go          Entry point: flags, env configuration, InfraManager setup, Ginkgo runner
	├── tests.go         Ginkgo specs (health, registration, authorization, workflow, smoke)
	├── doc.go           This file
	└── infra/
	    ├── infra.go     InfraManager interface + infra modes
	    ├── external.go  ExternalInfraManager (no-op, services already running)
	    └── fake.go      FakeInfraManager (in-process test/fakestack)

# Running

	go run ./test/integration                       # against AUTH_SERVICE_URL .. NOTIFICATIONS_SERVICE_URL
	go run ./test/integration -infra-mode=fake      # against the in-process fake stack

Service URLs default to http://localhost:8001 .. 8005 and are overridden by
AUTH_SERVICE_URL, CATALOG_SERVICE_URL, CHAT_SERVICE_URL, MATCHMAKING_SERVICE_URL
and NOTIFICATIONS_SERVICE_URL.

# Flow

	┌─────────────┐     ┌──────────────────┐     ┌──────────────────────────┐
	│ BeforeSuite │────▶│ WaitForServices  │────▶│ spec groups              │
	│ infra.Start │     │ 30 × 1s / service│     │ health, registration,    │
	└─────────────┘     └────────┬─────────┘     │ authorization, workflow, │
	                             │ failure       │ smoke                    │
	                             ▼               └──────────────────────────┘
	                    every spec skipped, exit 1

A failing assertion only fails its own spec. The process exits with status 1 if
any spec failed.
*/
package main
