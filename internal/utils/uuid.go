package utils

import "github.com/google/uuid"

// UUIDGenerator produces unique identifiers for server-generated names,
// such as stored upload filenames. V7 identifiers are time-ordered, which
// keeps directory listings roughly chronological.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
