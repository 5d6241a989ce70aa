// Package journal records the outcome of every processed photo in SQLite so
// earlier runs can be reviewed with "pregoogle history".
//
// Each invocation of the title command opens a run identified by a session
// id; every file processed during that run adds one outcome row. Schema
// changes bump schemaVersion; an older database must be deleted to adopt the
// new layout.
package journal
