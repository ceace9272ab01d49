package figma

// NodeType is the Figma node kind.
type NodeType string

const (
	NodeDocument NodeType = "DOCUMENT"
	NodeCanvas   NodeType = "CANVAS"
	NodeFrame    NodeType = "FRAME"
	NodeGroup    NodeType = "GROUP"
)

// Node is a Figma document tree node.
type Node struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     NodeType `json:"type"`
	Children []Node   `json:"children,omitempty"`
}

// Document wraps the root node of a nodes response entry.
type Document struct {
	Document Node `json:"document"`
}

// Page is the response of GET /files/:key/nodes.
type Page struct {
	Name  string              `json:"name"`
	Nodes map[string]Document `json:"nodes"`
}

// ImageURLCollection is the response of GET /images/:key.
// Images maps node ids to a temporary download URL.
type ImageURLCollection struct {
	Err    *string           `json:"err"`
	Images map[string]string `json:"images"`
}

// Image is a renderable frame export.
type Image struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Scale  int    `json:"scale"`
	Format string `json:"format"`
	URL    string `json:"url"`
}

// FileName returns the image file name: the name followed by the format extension.
func (i Image) FileName() string {
	return i.Name + "." + i.Format
}
