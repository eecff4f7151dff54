package services

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/imagevault/internal/common"
)

const (
	maxDescriptionLen = 500
	maxTags           = 20
	maxTagLen         = 64
	maxFilenameLen    = 255
)

// AllowedContentTypes lists the image formats accepted for upload.
var AllowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
	"image/bmp":  {},
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{common.ErrValidation}, args...)...)
}

// assetFields are the caller-supplied descriptive fields shared by reserve
// and confirm.
type assetFields struct {
	OwnerID     string
	DisplayName string
	ContentType string
	ByteSize    int64
	Tags        []string
	Description string
}

func (f assetFields) validate(maxBytes int64) error {
	if strings.TrimSpace(f.OwnerID) == "" {
		return invalid("owner_id is required")
	}
	if strings.TrimSpace(f.DisplayName) == "" {
		return invalid("display_name is required")
	}
	if f.ContentType == "" {
		return invalid("content_type is required")
	}
	if _, ok := AllowedContentTypes[f.ContentType]; !ok {
		return invalid("content_type %q is not an allowed image type", f.ContentType)
	}
	if f.ByteSize <= 0 {
		return invalid("byte_size must be positive")
	}
	if maxBytes > 0 && f.ByteSize > maxBytes {
		return invalid("byte_size %d exceeds the %d byte limit", f.ByteSize, maxBytes)
	}
	if utf8.RuneCountInString(f.Description) > maxDescriptionLen {
		return invalid("description exceeds %d characters", maxDescriptionLen)
	}
	if len(f.Tags) > maxTags {
		return invalid("at most %d tags are allowed", maxTags)
	}
	for _, t := range f.Tags {
		if strings.TrimSpace(t) == "" {
			return invalid("tags must not be empty")
		}
		if utf8.RuneCountInString(t) > maxTagLen {
			return invalid("tag %q exceeds %d characters", t, maxTagLen)
		}
	}
	return nil
}

// normalizeTags trims and de-duplicates tags, keeping first-seen order.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// SanitizeFilename reduces name to a safe object-key component: the last
// path element, with anything outside [A-Za-z0-9._-] replaced by '_',
// shortened to 255 bytes keeping the extension.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = path.Base(name)
	if name == "." || name == "/" {
		name = "_"
	}
	name = unsafeFilenameChars.ReplaceAllString(name, "_")

	if len(name) <= maxFilenameLen {
		return name
	}
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return name[:maxFilenameLen]
	}
	base, ext := name[:i], name[i+1:]
	keep := maxFilenameLen - len(ext) - 1
	if keep < 0 {
		return name[:maxFilenameLen]
	}
	return base[:keep] + "." + ext
}

// StorageKey derives the object key for an asset. It depends only on the
// owner, the server-generated id and the sanitized name.
func StorageKey(ownerID, assetID, displayName string) string {
	owner := unsafeFilenameChars.ReplaceAllString(ownerID, "_")
	return fmt.Sprintf("images/%s/%s_%s", owner, assetID, SanitizeFilename(displayName))
}
