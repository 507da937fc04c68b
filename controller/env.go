package controller

import (
	"database/sql"
	"encoding/json"

	"github.com/go-playground/validator/v10"

	"studio/storage"
)

// Env bundles the external collaborators every handler needs: the catalog
// database, the object store and the static config. It is built once at
// startup and passed by reference into the route table; handlers never
// mutate it.
type Env struct {
	DB        *sql.DB
	Bucket    storage.ObjectStore
	BucketURL string
	JWTSecret string
}

var validate = validator.New()

// parseTags deserializes the stored tags JSON text. Malformed or empty text
// is treated as no tags, never an error.
func parseTags(raw string) []string {
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil || tags == nil {
		return []string{}
	}
	return tags
}

func marshalTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	b, _ := json.Marshal(tags)
	return string(b)
}
