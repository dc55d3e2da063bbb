package idgen

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// Generator produces unique booking identifiers.
type Generator interface {
	GenerateID() int64
	BookingReference() string
}

// SnowflakeGenerator issues 64-bit snowflake IDs and short booking
// references derived from them.
type SnowflakeGenerator struct {
	node *snowflake.Node
	mu   sync.Mutex
}

// NewSnowflakeGenerator initializes the generator. nodeID must be unique per
// server instance (0-1023) to prevent collisions.
func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %w", err)
	}
	return &SnowflakeGenerator{node: node}, nil
}

func (g *SnowflakeGenerator) GenerateID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.node.Generate().Int64()
}

// BookingReference returns a display reference like "FL7K2M9Q": the "FL"
// prefix plus the last six base-36 digits of a fresh snowflake ID. Unique per
// process lifetime within the snowflake guarantees.
func (g *SnowflakeGenerator) BookingReference() string {
	id := g.GenerateID()
	encoded := strings.ToUpper(strconv.FormatInt(id, 36))
	if len(encoded) > 6 {
		encoded = encoded[len(encoded)-6:]
	}
	return "FL" + encoded
}
