package main

import "flag"

// Command-line flags that select the config file and override a few of its values.
var (
	// configFlag points at the TOML config; a missing file means built-in defaults.
	configFlag = flag.String("config", "raybounce.toml", "path to the TOML config file")

	// seedFlag overrides scene.seed when non-zero.
	seedFlag = flag.Int64("seed", 0, "seed for random boundaries (0 uses the config, then the clock)")

	// densityFlag overrides density.default when positive.
	densityFlag = flag.Float64("density", 0, "starting angle between primary rays in degrees")
)
