// Package domain defines the cities data model, the load-cycle states and the
// contracts (client, view regions, renderer) shared across the app.
//
// Plain types live in the types subpackage and interfaces in the interfaces
// subpackage; both are re-exported here as aliases for compact imports.
package domain
