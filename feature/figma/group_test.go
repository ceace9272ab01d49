package figma

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupFrames(t *testing.T) {
	frames := []Node{
		{ID: "1", Name: "logo.png"},
		{ID: "2", Name: "photo.jpeg"},
		{ID: "3", Name: "photo2.jpg"},
		{ID: "4", Name: "icon.svg"},
		{ID: "5", Name: "doc.pdf"},
		{ID: "6", Name: "banner"},
		{ID: "7", Name: "v1.2-release"},
	}

	groups := GroupFrames(frames, false)
	assert.Equal(t, []string{"1"}, groups[GroupPNG])
	assert.Equal(t, []string{"2", "3"}, groups[GroupJPG])
	assert.Equal(t, []string{"4"}, groups[GroupSVG])
	assert.Equal(t, []string{"5"}, groups[GroupPDF])
	assert.Equal(t, []string{"6", "7"}, groups[GroupFree])

	forced := GroupFrames(frames, true)
	assert.Len(t, forced, 1)
	assert.Len(t, forced[GroupFree], len(frames))
}

func TestImageName(t *testing.T) {
	tests := []struct {
		frame  string
		format string
		want   string
	}{
		{"logo", "png", "logo"},
		{"  logo  ", "png", "logo"},
		{"logo.png", "png", "logo"},
		{"photo.jpeg", "jpg", "photo"},
		{"logo.png", "svg", "logo.png"},
		{"v1.2-release", "png", "v1.2-release"},
		{".hidden", "png", ".hidden"},
	}

	for _, tt := range tests {
		t.Run(tt.frame+"/"+tt.format, func(t *testing.T) {
			assert.Equal(t, tt.want, ImageName(tt.frame, tt.format))
		})
	}
}

func TestImage_FileName(t *testing.T) {
	assert.Equal(t, "logo.svg", Image{Name: "logo", Format: "svg"}.FileName())
}
