// Package dotcomponents builds the versioned render-data model served to
// the external rendering client. The wire shape is defined here, apart
// from the internal content model, so internal refactors never silently
// change the contract; any breaking change to these structs must bump
// Version.
package dotcomponents

// Version is the contract generation of the data model.
const Version = 2

// TagProperties carries one classification tag's metadata. ID and TagType
// are always present; TwitterHandle is null when the tag has none.
type TagProperties struct {
	ID            string  `json:"id"`
	TagType       string  `json:"tagType"`
	WebTitle      string  `json:"webTitle"`
	TwitterHandle *string `json:"twitterHandle"`
}

type Tag struct {
	Properties TagProperties `json:"properties"`
}

// PageElement is one typed element of a block. Type discriminates which
// of the payload fields are meaningful.
type PageElement struct {
	Type    string `json:"_type"`
	HTML    string `json:"html,omitempty"`
	URL     string `json:"url,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// Block is one body unit: its raw HTML plus its elements in document
// order. Elements may be empty, never null.
type Block struct {
	BodyHTML string        `json:"bodyHtml"`
	Elements []PageElement `json:"elements"`
}

// Blocks is the full body composition. Main is the lead unit, distinct
// from the body, and null when absent; Body is always present.
type Blocks struct {
	Main *Block  `json:"main"`
	Body []Block `json:"body"`
}

// ReaderRevenueLink is the monetization destination set for one UI
// placement. All three URLs are always populated.
type ReaderRevenueLink struct {
	Contribute string `json:"contribute"`
	Subscribe  string `json:"subscribe"`
	Support    string `json:"support"`
}

// ReaderRevenueLinks holds exactly the three fixed placements. Adding or
// removing a placement is a contract break and requires a Version bump.
type ReaderRevenueLinks struct {
	Header   ReaderRevenueLink `json:"header"`
	Footer   ReaderRevenueLink `json:"footer"`
	SideMenu ReaderRevenueLink `json:"sideMenu"`
}

type Meta struct {
	IsImmersive     bool `json:"isImmersive"`
	IsHosted        bool `json:"isHosted"`
	ShouldHideAds   bool `json:"shouldHideAds"`
	HasStoryPackage bool `json:"hasStoryPackage"`
	HasRelated      bool `json:"hasRelated"`
}

// Tags groups the tag-related page data. The four id strings are carried
// verbatim from the content source and are not derived from All.
type Tags struct {
	AuthorIDs          *string `json:"authorIds"`
	ToneIDs            *string `json:"toneIds"`
	KeywordIDs         *string `json:"keywordIds"`
	CommissioningDesks *string `json:"commissioningDesks"`
	All                []Tag   `json:"all"`
}

type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type SubMetaLinks struct {
	SectionLabels []Link `json:"sectionLabels"`
	Keywords      []Link `json:"keywords"`
}

type DCContent struct {
	Headline                  string       `json:"headline"`
	Standfirst                *string      `json:"standfirst"`
	Main                      string       `json:"main"`
	Body                      string       `json:"body"`
	Blocks                    Blocks       `json:"blocks"`
	Tags                      Tags         `json:"tags"`
	Byline                    string       `json:"byline"`
	PageID                    string       `json:"pageId"`
	Pillar                    *string      `json:"pillar"`
	WebPublicationDate        int64        `json:"webPublicationDate"`
	WebPublicationDateDisplay string       `json:"webPublicationDateDisplay"`
	SectionName               *string      `json:"sectionName"`
	WebTitle                  string       `json:"webTitle"`
	ContentID                 *string      `json:"contentId"`
	SeriesID                  *string      `json:"seriesId"`
	EditionID                 string       `json:"editionId"`
	EditionLongForm           string       `json:"editionLongForm"`
	ContentType               *string      `json:"contentType"`
	SubMetaLinks              SubMetaLinks `json:"subMetaLinks"`
	WebURL                    string       `json:"webURL"`
	Meta                      Meta         `json:"meta"`
}

type NavLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type NavPillar struct {
	Title string    `json:"title"`
	URL   string    `json:"url"`
	Links []NavLink `json:"links"`
}

type NavMenu struct {
	Pillars    []NavPillar `json:"pillars"`
	OtherLinks []NavLink   `json:"otherLinks"`
}

type DCSite struct {
	Nav                NavMenu            `json:"nav"`
	ReaderRevenueLinks ReaderRevenueLinks `json:"readerRevenueLinks"`
}

type DCConfig struct {
	AjaxURL         string          `json:"ajaxUrl"`
	SiteURL         string          `json:"siteUrl"`
	SentryHost      *string         `json:"sentryHost"`
	SentryPublicKey *string         `json:"sentryPublicKey"`
	Switches        map[string]bool `json:"switches"`
	BeaconURL       string          `json:"beaconUrl"`
}

// DataModel is the root composite served to the rendering client.
type DataModel struct {
	Content DCContent `json:"content"`
	Site    DCSite    `json:"site"`
	Config  DCConfig  `json:"config"`
	Version int       `json:"version"`
}
