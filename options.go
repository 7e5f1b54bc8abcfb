package tuxobj

type readConfig struct {
	limits Limits
}

type ReadOption func(*readConfig)

func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}

func newReadConfig(opts []ReadOption) readConfig {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	return cfg
}

type writeConfig struct {
	limits      Limits
	compression Compression
	tagsPadding int
	flags       uint8
}

type WriteOption func(*writeConfig)

func WithWriteLimits(l Limits) WriteOption {
	return func(c *writeConfig) { c.limits = l }
}

// WithCompression sets the content compression. The default is zstd at its
// default level.
func WithCompression(comp Compression) WriteOption {
	return func(c *writeConfig) { c.compression = comp }
}

// WithTagsPadding reserves n zero bytes after the tags so they can later be
// rewritten larger without moving the content.
func WithTagsPadding(n int) WriteOption {
	return func(c *writeConfig) { c.tagsPadding = n }
}

// WithFlags sets the header's reserved flag byte.
func WithFlags(flags uint8) WriteOption {
	return func(c *writeConfig) { c.flags = flags }
}
