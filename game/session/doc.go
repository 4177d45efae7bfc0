// Package session tracks active games by short, case-insensitive IDs.
// A Manager keeps sessions in memory and can mirror them to a
// SessionPersistence layer so games survive restarts.
package session
