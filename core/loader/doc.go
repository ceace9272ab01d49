// Package loader mounts the HTTP features served by `fad start`.
//
// A feature reports whether it can run with the current configuration and
// registers its routes on the router it is given:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Manager.LoadAll skips disabled features, so the history routes disappear
// when no database is configured while manifest checks keep working.
package loader
