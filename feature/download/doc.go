// Package download exports the frames of a Figma file into a local folder.
//
// Scale 1 images land at the root of the folder and every other scale in a
// "<scale>.0x" sub folder, the same layout a manifest check expects. Downloads
// run concurrently and fail independently; optimization, publishing and history
// recording are optional stages.
package download
