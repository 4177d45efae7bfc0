// Package leaderboard ranks per-level scores and persists them in the
// trailer of the level file ("name - score" lines after the board
// rows). A Board works against any Store; FileStore is the on-disk
// implementation and MemoryStore backs tests.
package leaderboard
