// Package database opens the optional download history store through GORM.
//
// SQLite is the default and needs nothing but a file path; MySQL is used when
// several machines share one ledger. Connect pings the server before returning
// so that callers can fall back to running without history.
//
// MissingColumns compares a live table against the columns a writer needs,
// using SHOW COLUMNS on MySQL and PRAGMA table_info on SQLite.
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("History disabled", zap.Error(err))
//	}
package database
