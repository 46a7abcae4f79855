// Package models defines persisted entities for the drills server.
//
// [Draw] records one played lottery ticket together with the winning numbers and its outcome.
// Entities implement [Model]; storage goes through a [Repository].
package models
