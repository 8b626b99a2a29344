// Package domain defines the key types and contracts shared across the app.
// It contains plain types (types subpackage) and interfaces (interfaces
// subpackage) only, re-exported here for compact imports.
package domain
