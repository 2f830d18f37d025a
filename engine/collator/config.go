package collator

// DefaultParaID is the para id used when none is configured.
const DefaultParaID = 100

type Config struct {
	ParaID      uint32
	CompressPoV bool
}

func DefaultConfig() *Config {
	return &Config{
		ParaID:      DefaultParaID,
		CompressPoV: true,
	}
}

type OptionFunc func(*Config)

// WithParaID sets the para id announced in candidate descriptors.
func WithParaID(paraID uint32) OptionFunc {
	return func(cfg *Config) {
		cfg.ParaID = paraID
	}
}

// WithPoVCompression enables or disables compressing the PoV before it is
// handed to the relay chain.
func WithPoVCompression(enabled bool) OptionFunc {
	return func(cfg *Config) {
		cfg.CompressPoV = enabled
	}
}
