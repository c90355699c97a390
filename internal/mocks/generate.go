// Package mocks provides mock implementations for testing the hr3 admin service.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our
// repository and port interfaces. The mocks are generated using go:generate directives
// and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockPageVisitRepository(ctrl)
//	mockRepo.EXPECT().Record(gomock.Any(), gomock.Any()).Return(visit, nil)
//
// Hand-written doubles for the auth ports live in the auth subpackage. The auth flow
// tests prefer stateful, scriptable fakes over expectation-based mocks, so those stay
// maintained by hand.
package mocks

// Generate mock for PageVisitRepository interface from internal/core package.
// This creates MockPageVisitRepository with methods for all PageVisitRepository interface methods:
// Record, ListRecent
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=page_visit_repository_mock.go github.com/hr3-suite/hr3-admin/internal/core PageVisitRepository

// Generate mock for CredentialVerifier interface from internal/ports package.
// This creates MockCredentialVerifier with methods for all CredentialVerifier interface methods:
// Verify
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=credential_verifier_mock.go github.com/hr3-suite/hr3-admin/internal/ports CredentialVerifier
