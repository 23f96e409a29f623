// Package fixture implements the fixture migrator (component L): given
// an old EDIFACT fixture and a schema diff describing what changed
// between two MIG versions, produce a migrated fixture plus notes for
// anything it could not migrate mechanically. The migrator never
// invents payload data; restructured and added groups are flagged for
// manual review instead.
package fixture
