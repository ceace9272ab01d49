package figma

import (
	"path"
	"strings"
)

// Frame groups. Frames whose name carries a known extension are exported in that format only;
// the rest ("free") are exported in every configured format.
const (
	GroupPNG  = "png"
	GroupJPG  = "jpg"
	GroupSVG  = "svg"
	GroupPDF  = "pdf"
	GroupFree = "free"
)

// Groups is the deterministic iteration order of frame groups.
var Groups = []string{GroupPNG, GroupJPG, GroupSVG, GroupPDF, GroupFree}

// GroupFrames buckets frame ids by the extension of their name.
// When force is set every frame is free.
func GroupFrames(frames []Node, force bool) map[string][]string {
	groups := make(map[string][]string)
	for _, f := range frames {
		group := GroupFree
		if !force {
			group = groupOf(f.Name)
		}
		groups[group] = append(groups[group], f.ID)
	}
	return groups
}

func groupOf(name string) string {
	switch nameExtension(name) {
	case "png":
		return GroupPNG
	case "jpg", "jpeg":
		return GroupJPG
	case "svg":
		return GroupSVG
	case "pdf":
		return GroupPDF
	default:
		return GroupFree
	}
}

func nameExtension(name string) string {
	base := path.Base(strings.TrimSpace(name))
	idx := strings.LastIndex(base, ".")
	if idx <= 0 {
		return ""
	}
	return base[idx+1:]
}

// ImageName returns the file name (without extension) of a frame exported in format.
// The frame's own extension is dropped when it names the same format.
func ImageName(frameName, format string) string {
	name := strings.TrimSpace(frameName)
	ext := nameExtension(name)
	if ext == "" {
		return name
	}
	if ext == format || (format == "jpg" && ext == "jpeg") {
		return strings.TrimSpace(strings.TrimSuffix(name, "."+ext))
	}
	return name
}
