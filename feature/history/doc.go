// Package history keeps a ledger of image downloads in a SQL database.
//
// Records are written by the download pipeline when a database is enabled and
// served by GET /history. Both sqlite and mysql are supported through GORM.
package history
