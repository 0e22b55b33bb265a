package websocket

import (
	"sync"

	"github.com/google/btree"

	"github.com/openalpha/stake-farm/x/farm/types"
)

// PoolSnapshot is a pool as read at a given height
type PoolSnapshot struct {
	Height int64           `json:"height"`
	Pool   types.StakePool `json:"pool"`
}

func lessSnapshot(a, b *PoolSnapshot) bool {
	return a.Pool.PoolIndex < b.Pool.PoolIndex
}

// SnapshotCache holds the latest snapshot of every pool ordered by index
type SnapshotCache struct {
	mu     sync.RWMutex
	tree   *btree.BTreeG[*PoolSnapshot]
	height int64
}

// NewSnapshotCache creates an empty cache
func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{
		tree: btree.NewG(16, lessSnapshot),
	}
}

// Update stores pools read at height and returns their snapshots in index
// order. Reads older than the cached height are ignored.
func (c *SnapshotCache) Update(height int64, pools []types.StakePool) []*PoolSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if height < c.height {
		return nil
	}
	c.height = height

	out := make([]*PoolSnapshot, 0, len(pools))
	for _, pool := range pools {
		snap := &PoolSnapshot{Height: height, Pool: pool}
		c.tree.ReplaceOrInsert(snap)
		out = append(out, snap)
	}
	return out
}

// Get returns the cached snapshot of a pool
func (c *SnapshotCache) Get(poolIndex uint64) (*PoolSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	key := &PoolSnapshot{Pool: types.StakePool{PoolIndex: poolIndex}}
	return c.tree.Get(key)
}

// All returns every cached snapshot in index order
func (c *SnapshotCache) All() []*PoolSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*PoolSnapshot, 0, c.tree.Len())
	c.tree.Ascend(func(snap *PoolSnapshot) bool {
		out = append(out, snap)
		return true
	})
	return out
}

// Height returns the height of the latest update
func (c *SnapshotCache) Height() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.height
}

// Len returns the number of cached pools
func (c *SnapshotCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tree.Len()
}
