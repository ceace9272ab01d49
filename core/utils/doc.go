// Package utils provides small conversion helpers shared by commands and HTTP handlers,
// such as lenient query parameter parsing and comma separated list splitting.
package utils
