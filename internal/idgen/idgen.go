// Package idgen hands out time-derived unique int64 ids for bookings and
// products. Snowflake ids keep the creation-timestamp ordering while staying
// unique within and across processes.
package idgen

import "github.com/bwmarrin/snowflake"

type Generator struct {
	node *snowflake.Node
}

// New builds a Generator for the given node id (0..1023).
func New(nodeID int64) (*Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &Generator{node: node}, nil
}

// Next returns a fresh id. Ids are strictly increasing per node.
func (g *Generator) Next() int64 {
	return g.node.Generate().Int64()
}
