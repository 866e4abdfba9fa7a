package estimation

// Builder can build Params.
type Builder struct {
	dataWidth       int
	tagWidth        int
	cacheSize       int
	memAccessDelay  Delay
	singleGateDelay Delay
}

// MakeBuilder creates a builder that starts from ExampleParams.
func MakeBuilder() Builder {
	p := ExampleParams()

	return Builder{
		dataWidth:       p.DataWidth,
		tagWidth:        p.TagWidth,
		cacheSize:       p.CacheSize,
		memAccessDelay:  p.MemAccessDelay,
		singleGateDelay: p.SingleGateDelay,
	}
}

// WithDataWidth sets the number of data bits per cache line.
func (b Builder) WithDataWidth(dataWidth int) Builder {
	b.dataWidth = dataWidth
	return b
}

// WithTagWidth sets the number of tag bits per cache line.
func (b Builder) WithTagWidth(tagWidth int) Builder {
	b.tagWidth = tagWidth
	return b
}

// WithCacheSize sets the number of cache lines.
func (b Builder) WithCacheSize(cacheSize int) Builder {
	b.cacheSize = cacheSize
	return b
}

// WithMemAccessDelay sets the latency of the memory behind the cache.
func (b Builder) WithMemAccessDelay(delay Delay) Builder {
	b.memAccessDelay = delay
	return b
}

// WithSingleGateDelay sets the propagation delay of one gate.
func (b Builder) WithSingleGateDelay(delay Delay) Builder {
	b.singleGateDelay = delay
	return b
}

// Build creates the Params.
func (b Builder) Build() Params {
	return Params{
		DataWidth:       b.dataWidth,
		TagWidth:        b.tagWidth,
		CacheSize:       b.cacheSize,
		MemAccessDelay:  b.memAccessDelay,
		SingleGateDelay: b.singleGateDelay,
	}
}
