package reconcile

import "time"

const (
	// DefaultExtension is applied to extension-less files when a manifest declares none.
	DefaultExtension = "png"
	// DefaultScale is the only scale expected when a manifest declares none.
	DefaultScale = 1
	// DefaultPath is the asset directory used when a manifest declares none.
	DefaultPath = "downloads"
)

// Manifest is the declared set of assets an export is expected to produce.
type Manifest struct {
	// Files lists asset names, with or without an explicit extension.
	Files []string `toml:"files" json:"files"`

	// FileExtensions is applied to every entry of Files that has no extension.
	FileExtensions []string `toml:"file_extensions" json:"file_extensions"`

	// FileScales lists the exported scale factors. Scale 1 lives at the root,
	// any other scale in a "<scale>.0x" folder.
	FileScales []int `toml:"file_scales" json:"file_scales"`

	// Path is the directory holding the assets.
	Path string `toml:"path" json:"path"`

	// Ignore holds doublestar globs for files that are never reported as new.
	Ignore []string `toml:"ignore" json:"ignore,omitempty"`
}

// WithDefaults returns a copy of the manifest with absent fields set to their defaults.
func (m Manifest) WithDefaults() Manifest {
	if len(m.FileExtensions) == 0 {
		m.FileExtensions = []string{DefaultExtension}
	}
	if len(m.FileScales) == 0 {
		m.FileScales = []int{DefaultScale}
	}
	if m.Path == "" {
		m.Path = DefaultPath
	}
	return m
}

// WithFiles returns a copy of the manifest declaring the given files.
func (m Manifest) WithFiles(files []string) Manifest {
	m.Files = files
	return m
}

// Report holds the outcome of a reconciliation.
// A group with nothing to report is nil.
type Report struct {
	// Missing lists expected paths that were not found, sorted.
	Missing []string `json:"missing,omitempty"`

	// New lists found paths that the manifest does not declare, sorted.
	New []string `json:"new,omitempty"`
}

// HasMissing reports whether any declared asset is absent.
func (r Report) HasMissing() bool {
	return len(r.Missing) > 0
}

// HasNew reports whether any undeclared asset was found.
func (r Report) HasNew() bool {
	return len(r.New) > 0
}

// IsClean reports whether the actual files match the manifest exactly.
func (r Report) IsClean() bool {
	return !r.HasMissing() && !r.HasNew()
}

// CheckResult bundles a report with the inputs it was computed from.
type CheckResult struct {
	// Manifest is the parsed manifest, defaults applied.
	Manifest Manifest `json:"manifest"`

	// AssetsDir is the directory (or storage prefix) that was listed.
	AssetsDir string `json:"assets_dir"`

	// Report is the reconciliation outcome.
	Report Report `json:"report"`

	// CheckedAt is when the listing was captured.
	CheckedAt time.Time `json:"checked_at"`
}

// ActionType represents the type of follow-up action.
type ActionType string

const (
	// ActionOptimize recompresses a new asset in place.
	ActionOptimize ActionType = "optimize"
	// ActionPurge deletes a new asset.
	ActionPurge ActionType = "purge"
)

// Action represents a planned follow-up operation on a single asset.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Path is the asset path relative to the assets directory.
	Path string `json:"path"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`
}

// Plan contains planned actions for a check result.
type Plan struct {
	// AssetsDir is the directory the action paths are relative to.
	AssetsDir string `json:"assets_dir"`

	// Actions contains planned operations.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// Missing counts declared assets that were not found.
	Missing int `json:"missing"`

	// New counts undeclared assets.
	New int `json:"new"`

	// OptimizeActions counts planned optimize actions.
	OptimizeActions int `json:"optimize_actions"`

	// PurgeActions counts planned purge actions.
	PurgeActions int `json:"purge_actions"`
}

// PlanOptions controls which follow-up actions are planned and executed.
type PlanOptions struct {
	// Optimize plans recompression of new assets.
	Optimize bool

	// Purge plans deletion of new assets. Purge takes precedence over Optimize.
	Purge bool

	// DryRun prevents execution of any action if true.
	DryRun bool

	// Confirmed indicates the user has confirmed the actions.
	// If false, nothing executes regardless of DryRun.
	Confirmed bool
}
