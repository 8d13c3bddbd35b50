package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/davrost/arcana/internal/common/uuid Generator

// Generator produces unique identifiers
type Generator interface {
	New() string
}

// DefaultGenerator implements the Generator interface using random V4 UUIDs
type DefaultGenerator struct{}

// New returns a new UUID string
func (g *DefaultGenerator) New() string {
	return uuid.New().String()
}
