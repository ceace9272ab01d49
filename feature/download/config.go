package download

// Config holds the download pipeline settings.
type Config struct {
	// Path is the folder assets are written to.
	Path string `mapstructure:"path" default:"downloads"`
	// FileExtensions are the formats exported for frames without an extension in their name.
	FileExtensions []string `mapstructure:"file_extensions" default:"png"`
	// FileScales are the exported scale factors.
	FileScales []int `mapstructure:"file_scales" default:"1"`
	// ForceFileExtensions exports every frame in FileExtensions, ignoring name extensions.
	ForceFileExtensions bool `mapstructure:"force_file_extensions" default:"false"`
	// OnlyMissing skips images whose target file already exists.
	OnlyMissing bool `mapstructure:"only_missing" default:"false"`
	// Concurrency bounds simultaneous downloads.
	Concurrency int `mapstructure:"concurrency" default:"8"`
}
