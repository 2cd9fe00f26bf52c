package snowflake

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

// DefaultNodeID is used when NextID is called before Init, which happens in tests.
const DefaultNodeID = 1

var (
	node *snowflake.Node
	mu   sync.RWMutex
)

// Init initializes the snowflake node with the given node ID.
// Node ID should be unique across all instances (0-1023).
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

// NextID generates a new unique snowflake ID.
func NextID() int64 {
	mu.RLock()
	n := node
	mu.RUnlock()
	if n == nil {
		mu.Lock()
		if node == nil {
			// DefaultNodeID is always within range.
			node, _ = snowflake.NewNode(DefaultNodeID)
		}
		n = node
		mu.Unlock()
	}
	return n.Generate().Int64()
}
