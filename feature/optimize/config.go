package optimize

// Config holds image optimization settings.
type Config struct {
	// PNGLevel is the PNG optimization level, 1 (fast) to 6 (smallest). 0 disables.
	PNGLevel int `mapstructure:"png_level" default:"0"`
	// JPGQuality is the JPEG re-encoding quality, 1 to 100. 0 disables.
	JPGQuality int `mapstructure:"jpg_quality" default:"0"`
	// OnlyOnValidation defers optimization to validate-manifest runs, applied to new assets only.
	OnlyOnValidation bool `mapstructure:"only_on_validation" default:"false"`
}

// Enabled reports whether any format gets optimized.
func (c Config) Enabled() bool {
	return c.PNGLevel > 0 || c.JPGQuality > 0
}
