// Package queries contains read-side operations in the CQRS split.
// Roster, health and audit queries are pure computation over resolved
// configuration; rates and expired fan out over carrier adapters; history
// reads go straight to the database, bypassing the aggregate.
package queries
