// Package catalog defines the component catalog data model and the
// metadata providers that serve it.
//
// A Provider answers three read-only queries: the category list, the
// components of one category, and a single component by slug. Providers
// never sort; callers render components in the order returned.
//
// Implementations:
//
//   - Seed: an in-memory catalog decoded from YAML or JSON
//   - REST: a PostgREST-style hosted backend
//   - SQL: database/sql over SQLite
//   - Mongo: a MongoDB database with categories and components collections
//   - S3Snapshot: a catalog snapshot object in an S3 bucket
//
// Decorators wrap any Provider:
//
//   - Traced adds OpenTelemetry spans around each call
//   - Sanitizing filters documentation HTML through a bluemonday policy
package catalog
