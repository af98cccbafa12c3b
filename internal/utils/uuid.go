package utils

import (
	"strings"

	"github.com/google/uuid"
)

// IDGenerator produces time-ordered unique identifiers for evidence items
// and alerts. UUIDv7 keeps IDs sortable by creation time, matching the
// newest-first ordering of the vault and alert feed.
type IDGenerator struct {
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4 if the
// system clock source fails.
func (g *IDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// GenerateEvidenceID returns an evidence identifier in the "EV-XXXXXXXX"
// format shown to operators. The original prototype sliced a millisecond
// timestamp, which collides under load; a UUID tail keeps the familiar shape
// without the collisions.
func (g *IDGenerator) GenerateEvidenceID() string {
	id := g.Generate()
	tail := strings.ReplaceAll(id, "-", "")
	return "EV-" + strings.ToUpper(tail[len(tail)-8:])
}
