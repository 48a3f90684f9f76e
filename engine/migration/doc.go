// Package migration rewrites configuration documents written against any
// historical schema into the current canonical schema.
//
// A Migrator runs passes over a document until a pass leaves it unchanged.
// Each pass visits every key once, dispatches it to at most one Migration
// selected from a Registry (exact name, then pattern, then the option's
// declared type), recurses into nested objects, rewrites legacy template
// variables, and finally normalizes the packageRules list.
package migration
