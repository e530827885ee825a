package catalog

import "github.com/google/uuid"

// namespace roots the name-based IDs derived for seed records.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://gallery.vango.dev/catalog"))

// DeriveID returns a stable UUID for a record kind and slug. Seed files may
// omit IDs; deriving them keeps foreign keys stable across restarts.
func DeriveID(kind, slug string) string {
	return uuid.NewSHA1(namespace, []byte(kind+"/"+slug)).String()
}
