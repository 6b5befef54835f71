package domain

import "time"

// Article is the internal content representation this service consumes.
// It is deliberately richer than the wire model built from it; the wire
// contract lives in internal/dotcomponents and never leaks back here.
type Article struct {
	PageID             string
	Headline           string
	WebTitle           string
	Standfirst         *string
	Byline             string
	MainHTML           string
	BodyHTML           string
	Pillar             *string
	Section            *string
	ContentID          *string
	SeriesID           *string
	ContentType        *string
	WebURL             string
	WebPublicationDate time.Time

	// Comma-joined tag id strings carried verbatim from the content
	// source; they are independent of the Tags list.
	AuthorIDs          *string
	ToneIDs            *string
	KeywordIDs         *string
	CommissioningDesks *string

	Tags   []Tag
	Blocks *ArticleBlocks

	SubMetaSectionLinks []Link
	SubMetaKeywordLinks []Link

	IsImmersive     bool
	IsHosted        bool
	ShouldHideAds   bool
	HasStoryPackage bool
	HasRelated      bool
}

type Tag struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Title         string  `json:"title"`
	TwitterHandle *string `json:"twitterHandle,omitempty"`
}

type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ArticleBlocks is the structured body composition. Legacy content has
// none at all, which is a normal state, not an error.
type ArticleBlocks struct {
	Main *Block  `json:"main,omitempty"`
	Body []Block `json:"body"`
}

type Block struct {
	HTML     string    `json:"html"`
	Elements []Element `json:"elements"`
}

// Element is one rich content element inside a block. Kind discriminates
// the payload fields; unknown kinds still carry their HTML.
type Element struct {
	Kind    string `json:"kind"`
	HTML    string `json:"html,omitempty"`
	URL     string `json:"url,omitempty"`
	Caption string `json:"caption,omitempty"`
}
