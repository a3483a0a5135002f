// Package mocks provides mock implementations for testing the gateway
// client.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for our storage interfaces. The mocks are generated using go:generate
// directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	store := mocks.NewMockStore(ctrl)
//	store.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
package mocks

// Generate mock for the token Store interface from the tokenstore package.
// This creates MockStore with methods Load, Save, Clear.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=tokenstore_mock.go github.com/difakses/difakses-go/tokenstore Store
