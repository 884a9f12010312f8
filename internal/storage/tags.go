// File: tags.go
// Title: Tag Column Codec
// Description: Encodes a tag set into the single text column used by the
//              persons table. Tags are alphanumeric, so a comma separator
//              cannot collide with tag content.

package storage

import (
	"strings"

	"github.com/msto63/tutorbase/internal/model"
)

func encodeTags(tags []model.Tag) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}

func decodeTags(s string) []model.Tag {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]model.Tag, len(parts))
	for i, p := range parts {
		tags[i] = model.Tag(p)
	}
	return model.NewTagSet(tags...)
}
