package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	Scale  int
	Light  uint
	Map    string
	Seed   int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 256, Height: 256, Scale: 3, Light: 1024, Map: "gradient", Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.UintVar(&c.Light, "light", c.Light, "light field multiplier")
	fs.StringVar(&c.Map, "map", c.Map, "light map to generate (gradient, noise)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for light map generation")
}
