// Package verifier checks that a running Swappo deployment is reachable and
// behaves: health readiness, registration and login, authorization enforcement,
// a cross-service workflow and a bare smoke GET per service.
//
// Each step accepts an explicit StatusSet rather than a single status code,
// because the downstream services' state is not controlled by the caller.
package verifier
