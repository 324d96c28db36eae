package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStorageDir sets the database directory.
func (b *ConfigBuilder) WithStorageDir(dir string) *ConfigBuilder {
	b.cfg.Storage.Dir = dir
	return b
}

// WithInMemoryStorage keeps the store in memory.
func (b *ConfigBuilder) WithInMemoryStorage(enabled bool) *ConfigBuilder {
	b.cfg.Storage.InMemory = enabled
	return b
}

// WithSyncWrites makes every store write durable before returning.
func (b *ConfigBuilder) WithSyncWrites(enabled bool) *ConfigBuilder {
	b.cfg.Storage.SyncWrites = enabled
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSON = enabled
	return b
}

// WithUnicode enables chess glyphs on the text board.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Output.Unicode = enabled
	return b
}

// WithCoordinates controls the file and rank labels on the text board.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Output.Coordinates = enabled
	return b
}

// WithWorkers sets the number of verify workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
