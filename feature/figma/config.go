package figma

import "errors"

// DefaultBaseURL is the Figma REST API root.
const DefaultBaseURL = "https://api.figma.com/v1"

// ErrMissingCredentials is returned when the token, file id or document ids are absent.
var ErrMissingCredentials = errors.New("some arguments are missing: check access token, file id or document id")

// Config holds the Figma API settings.
type Config struct {
	// Token is the personal access token sent as X-Figma-Token.
	Token string `mapstructure:"token" default:""`
	// FileID identifies the file (www.figma.com/file/FILE_ID/title?node-id=DOCUMENT_ID).
	FileID string `mapstructure:"file_id" default:""`
	// DocumentIDs lists the document nodes whose frames are exported.
	DocumentIDs []string `mapstructure:"document_ids" default:""`
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.figma.com/v1"`
	// TimeoutSeconds bounds every API request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}

// Validate checks that everything needed to reach the API is present.
func (c Config) Validate() error {
	if c.Token == "" || c.FileID == "" || len(c.DocumentIDs) == 0 {
		return ErrMissingCredentials
	}
	return nil
}
