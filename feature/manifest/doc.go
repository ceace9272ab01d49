// Package manifest connects the reconciliation engine to real asset trees.
//
// It reads TOML manifests, enumerates asset directories (local folders through
// fastwalk, or published objects in a bucket), prints reports and exposes the
// check over HTTP.
//
// # Manifest
//
//	files = ["logo", "icons/arrow.svg"]
//	file_extensions = ["png", "webp"]
//	file_scales = [1, 2]
//	path = "downloads"
//	ignore = ["**/.DS_Store"]
//
// # Endpoints
//
//   - GET /manifest/check?manifest=<path>
//   - GET /manifest/plan?manifest=<path>&optimize=true&purge=false
package manifest
