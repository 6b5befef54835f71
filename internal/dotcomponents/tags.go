package dotcomponents

import "dotcomponents/internal/domain"

// NormalizeTags maps the article's tag collection one-to-one onto the wire
// shape, preserving source order. No deduplication, no filtering; an
// absent handle stays absent. The result is never nil.
func NormalizeTags(src []domain.Tag) []Tag {
	out := make([]Tag, 0, len(src))
	for _, t := range src {
		out = append(out, Tag{
			Properties: TagProperties{
				ID:            t.ID,
				TagType:       t.Type,
				WebTitle:      t.Title,
				TwitterHandle: t.TwitterHandle,
			},
		})
	}
	return out
}

// NormalizeLinks maps submeta links onto the wire shape; the result is
// never nil.
func NormalizeLinks(src []domain.Link) []Link {
	out := make([]Link, 0, len(src))
	for _, l := range src {
		out = append(out, Link{Title: l.Title, URL: l.URL})
	}
	return out
}
