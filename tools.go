//go:build tools
// +build tools

package tools

// Build-time tools pinned in go.mod:
//   goose     migrations/ against a live database
//   sqlc      internal/database/generated from sqlc.yaml
//   swag      docs/ from the handler annotations
//   mockery   mocks/ from .mockery.yaml
//   benchstat benchmarks/voting comparisons
import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/sqlc-dev/sqlc/cmd/sqlc"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
	_ "golang.org/x/perf/cmd/benchstat"
)
