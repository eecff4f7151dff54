package services

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/imagevault/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	long := strings.Repeat("a", 300)

	tests := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"my photo (1).png", "my_photo__1_.png"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\me\cat.gif`, "cat.gif"},
		{"ünïcode.webp", "_n_code.webp"},
		{"dir/", "dir"},
		{long + ".jpeg", strings.Repeat("a", 250) + ".jpeg"},
		{long, strings.Repeat("a", 255)},
	}

	for _, tt := range tests {
		got := SanitizeFilename(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.LessOrEqual(t, len(got), 255)
	}
}

func TestStorageKey(t *testing.T) {
	assert.Equal(t, "images/u1/id-1_cat_1.png", StorageKey("u1", "id-1", "cat 1.png"))
	assert.Equal(t, "images/.._x/id-1_cat.png", StorageKey("../x", "id-1", "cat.png"))
}

func TestNormalizeTags(t *testing.T) {
	assert.Nil(t, normalizeTags(nil))
	assert.Equal(t, []string{"b", "a"}, normalizeTags([]string{" b", "a", "b "}))
}

func TestAssetFields_Validate(t *testing.T) {
	ok := assetFields{OwnerID: "u1", DisplayName: "x.png", ContentType: "image/png", ByteSize: 1}
	assert.NoError(t, ok.validate(10))

	tests := []struct {
		name   string
		mutate func(f *assetFields)
	}{
		{"no owner", func(f *assetFields) { f.OwnerID = " " }},
		{"no name", func(f *assetFields) { f.DisplayName = "" }},
		{"no content type", func(f *assetFields) { f.ContentType = "" }},
		{"not an image", func(f *assetFields) { f.ContentType = "application/pdf" }},
		{"zero size", func(f *assetFields) { f.ByteSize = 0 }},
		{"negative size", func(f *assetFields) { f.ByteSize = -5 }},
		{"too large", func(f *assetFields) { f.ByteSize = 11 }},
		{"long description", func(f *assetFields) { f.Description = strings.Repeat("d", 501) }},
		{"too many tags", func(f *assetFields) { f.Tags = make([]string, 21) }},
		{"empty tag", func(f *assetFields) { f.Tags = []string{"ok", " "} }},
		{"long tag", func(f *assetFields) { f.Tags = []string{strings.Repeat("t", 65)} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ok
			tt.mutate(&f)
			assert.ErrorIs(t, f.validate(10), common.ErrValidation)
		})
	}
}
