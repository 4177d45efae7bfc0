// Package level manages the directory of playable level files.
//
// A Manager caches parsed levels behind an RWMutex, lists what the
// directory offers, and resolves level names back to file paths so the
// leaderboard store can rewrite a level file's score trailer.
package level
