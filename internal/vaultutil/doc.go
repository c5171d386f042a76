// Package vaultutil collects small platform helpers shared by the vault
// lifecycle operations: random file naming for exported containers and
// manifest loading from disk.
//
// Randomness is drawn from crypto/rand through a package-level reader
// variable so tests can substitute a deterministic source.
package vaultutil
