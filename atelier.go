// Package atelier provides the data layer of an interior design studio's
// website: a REST client for the studio backend, transforms that normalize
// its JSON responses, and a fetch engine that always leaves the caller with
// usable data by falling back to bundled content when the backend is down.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, sqlite/, gjson/).
package atelier
