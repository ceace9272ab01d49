// Package figma is a minimal client for the Figma REST API.
//
// It lists the frames of document nodes, groups them by the extension of their
// name and resolves the render URLs of each frame for every requested scale and
// format.
package figma
