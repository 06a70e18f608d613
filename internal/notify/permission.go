package notify

import (
	"strings"

	"github.com/sandeepkv93/pomodesk/internal/storage"
)

// Permission is the user's answer to "may pomodesk raise desktop
// notifications?".
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

func ParsePermission(raw string) Permission {
	switch Permission(strings.ToLower(strings.TrimSpace(raw))) {
	case PermissionGranted:
		return PermissionGranted
	case PermissionDenied:
		return PermissionDenied
	default:
		return PermissionDefault
	}
}

// LoadPermission reads the stored answer; anything unknown is Default.
func LoadPermission(store *storage.Store) Permission {
	return ParsePermission(storage.Get(store, storage.KeyNotificationPermission, string(PermissionDefault)))
}

// SavePermission records the answer. Default is never persisted so the
// prompt can be asked again.
func SavePermission(store *storage.Store, p Permission) {
	if p == PermissionDefault {
		store.Remove(storage.KeyNotificationPermission)
		return
	}
	store.Set(storage.KeyNotificationPermission, string(p))
}
