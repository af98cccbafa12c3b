// SPDX-License-Identifier: Apache-2.0

// Package audit implements the hash-linked custody log.
//
// The chain is tamper-evident, not tamper-proof: blocks reference the
// previous block's hash, so a broken link is detectable, but there is no
// external anchoring, consensus, or persistence. The whole chain lives in
// memory for the lifetime of the session.
package audit

import (
	"strconv"
	"sync"
	"time"

	"github.com/verdantlabs/wastesentry/internal/utils"
	"github.com/verdantlabs/wastesentry/models"
)

// genesisHash is the fixed sentinel hash of block 0.
const genesisHash = "00000000000000000000000000000000"

// Chain is the append-only custody log. All methods are safe for concurrent
// use; a single mutex serializes writers, which is sufficient for the
// single-logical-writer custody service.
type Chain struct {
	mu     sync.RWMutex
	blocks []models.AuditBlock
}

// NewChain creates a chain seeded with the genesis block.
func NewChain() *Chain {
	return &Chain{
		blocks: []models.AuditBlock{{
			Index:        0,
			Timestamp:    time.Now(),
			Action:       models.ActionGenesis,
			Actor:        models.SystemActor,
			ResourceID:   "000",
			PreviousHash: "0",
			Hash:         genesisHash,
		}},
	}
}

// Append records one custody action and returns the new block.
//
// The block hash is the hex SHA-256 of
// index ∥ timestamp ∥ action ∥ actor ∥ resourceID ∥ previousHash,
// linking the block to its predecessor.
func (c *Chain) Append(action, actor, resourceID string) models.AuditBlock {
	c.mu.Lock()
	defer c.mu.Unlock()

	previous := c.blocks[len(c.blocks)-1]
	block := models.AuditBlock{
		Index:        previous.Index + 1,
		Timestamp:    time.Now(),
		Action:       action,
		Actor:        actor,
		ResourceID:   resourceID,
		PreviousHash: previous.Hash,
	}
	block.Hash = hashBlock(block)

	c.blocks = append(c.blocks, block)
	return block
}

// Validate walks the chain and reports whether every block's PreviousHash
// matches its predecessor's Hash.
//
// Content hashes are not recomputed, so Validate detects broken links but
// not a forged block whose link was re-stitched. The limitation matches the
// documented diagnostic: a broken chain is reported, never repaired.
func (c *Chain) Validate() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := 1; i < len(c.blocks); i++ {
		if c.blocks[i].PreviousHash != c.blocks[i-1].Hash {
			return false
		}
	}
	return true
}

// Latest returns the most recently appended block.
func (c *Chain) Latest() models.AuditBlock {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.blocks[len(c.blocks)-1]
}

// Length returns the number of blocks including genesis.
func (c *Chain) Length() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.blocks)
}

// Blocks returns a copy of the chain, newest block last.
func (c *Chain) Blocks() []models.AuditBlock {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.AuditBlock, len(c.blocks))
	copy(out, c.blocks)
	return out
}

func hashBlock(b models.AuditBlock) string {
	content := strconv.Itoa(b.Index) +
		b.Timestamp.Format(time.RFC3339Nano) +
		b.Action +
		b.Actor +
		b.ResourceID +
		b.PreviousHash

	return utils.SHA256HexString(content)
}
