//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: mocks for service dependencies (go generate ./...)
// - github.com/pressly/goose/v3/cmd/goose: ad-hoc migration authoring; runtime
//   migrations go through cmd/migrate and the embedded migrations package
