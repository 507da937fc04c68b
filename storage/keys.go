package storage

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var whitespace = regexp.MustCompile(`\s+`)

// sanitize collapses runs of whitespace into a single underscore.
func sanitize(s string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(s), "_")
}

// ProjectID derives the key that groups a customer's images into a project.
func ProjectID(customerNumber, customerName string) string {
	return fmt.Sprintf("%s_%s", customerNumber, sanitize(customerName))
}

// BuildObjectKey constructs the hierarchical object-store key for an upload:
// uploads/{customerNumber}_{customerName}/{category}/{timestamp}-{uuid}{ext}.
// The embedded timestamp and random id guarantee two uploads of the same
// original filename never collide.
func BuildObjectKey(customerNumber, customerName, category, fileName string) string {
	customerFolder := fmt.Sprintf("%s_%s", customerNumber, sanitize(customerName))
	categoryFolder := sanitize(category)
	unique := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), filepath.Ext(fileName))
	return fmt.Sprintf("uploads/%s/%s/%s", customerFolder, categoryFolder, unique)
}

// PublicURL joins the configured public bucket URL with an object key.
func PublicURL(baseURL, key string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + key
}
