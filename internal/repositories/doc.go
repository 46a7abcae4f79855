// Package repositories implements SQLite persistence for the drills domain entities.
//
// [DrawRepository] stores played lottery draws. Rows carry a UUID primary key plus a sequence number
// from [NextSequence], which gives stable, human-readable ordering ("draw #42") independent of
// clock resolution.
package repositories
