// Package storage persiste les quelques clés locales du client entre deux exécutions.
package storage

import "context"

// Clés persistées par le client.
const (
	KeyEmail             = "email"
	KeySelectedTrimestre = "selectedTrimestre"
	KeyTrimestreOptions  = "trimestreOptions"
)

// Store est un magasin clé-valeur de chaînes.
type Store interface {
	// Get retourne la valeur et true si la clé existe.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
