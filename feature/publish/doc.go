// Package publish mirrors a download folder into an S3 compatible bucket.
//
// Objects keep the folder layout (scale folders included) under an optional
// prefix, so a published tree can be validated with the same manifest as the
// local one.
package publish
