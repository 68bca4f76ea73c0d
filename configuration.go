package clist

type Configuration struct {
	capacity  uint32
	maxHandle uint32
	debug     bool
}

func Configure() *Configuration {
	return &Configuration{
		capacity:  64,
		maxHandle: 1 << 24,
		debug:     false,
	}
}

// Number of nodes the arena reserves room for up front. The arena still
// grows past this.
// [64]
func (c *Configuration) Capacity(capacity uint32) *Configuration {
	c.capacity = capacity
	return c
}

// Largest handle Claim accepts. Restoring a list which names a larger
// handle fails instead of growing the arena to it. Alloc is not bound by it.
// [16777216]
func (c *Configuration) MaxHandle(max uint32) *Configuration {
	c.maxHandle = max
	return c
}

// Verify ring invariants after every structural mutation and panic when
// they don't hold. O(n) per call, meant for tests.
// [false]
func (c *Configuration) Debug(debug bool) *Configuration {
	c.debug = debug
	return c
}
