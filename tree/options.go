package tree

// DefaultMaxChildren bounds the children slice of a single node. Numeric
// keys map directly to slots, so this also bounds the largest numeric key.
const DefaultMaxChildren = 1 << 20

type Config struct {
	// MaxChildren is the largest children slice a node may have. Zero or
	// less means no limit.
	MaxChildren int
	// MaxNodes is the largest number of nodes in the index. Zero or less
	// means no limit.
	MaxNodes int
}

type Option func(*Config)

func WithMaxChildren(n int) Option {
	return func(c *Config) { c.MaxChildren = n }
}

func WithMaxNodes(n int) Option {
	return func(c *Config) { c.MaxNodes = n }
}

func newConfig(opts []Option) Config {
	cfg := Config{MaxChildren: DefaultMaxChildren}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
