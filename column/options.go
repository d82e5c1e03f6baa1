package column

// DefaultMaxUserSize bounds a single column's encoded payload, mirroring
// the host document format's own per-element size ceiling. It exists so a
// corrupt or adversarial length field cannot force an unbounded read.
const DefaultMaxUserSize = 16 << 20 // 16 MiB

// ColumnSubtype is the binary element subtype tag identifying a column
// payload within the host document format's binary type.
const ColumnSubtype byte = 0x09

// ViewOption configures NewView.
type ViewOption func(*viewConfig)

type viewConfig struct {
	maxUserSize int
}

func defaultViewConfig() viewConfig {
	return viewConfig{maxUserSize: DefaultMaxUserSize}
}

// WithMaxUserSize overrides the maximum accepted column payload size.
func WithMaxUserSize(n int) ViewOption {
	return func(c *viewConfig) {
		c.maxUserSize = n
	}
}

// BuilderOption configures NewBuilder.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	initialCapacity int
}

func defaultBuilderConfig() builderConfig {
	return builderConfig{initialCapacity: 256}
}

// WithInitialCapacity sets the starting capacity of the builder's internal
// buffer, when the builder owns its own buffer (see NewBuilder).
func WithInitialCapacity(n int) BuilderOption {
	return func(c *builderConfig) {
		c.initialCapacity = n
	}
}
