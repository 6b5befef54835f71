package dotcomponents

import (
	"fmt"

	"dotcomponents/internal/domain"
	"dotcomponents/internal/switches"
)

// NavigationBuilder produces the site navigation menu for one request
// context.
type NavigationBuilder interface {
	Build(rc domain.RequestContext) NavMenu
}

// Settings holds the already-resolved site-wide values the assembler
// copies into the config tier.
type Settings struct {
	AjaxURL    string
	SiteURL    string
	BeaconURL  string
	Properties map[string]string
}

// Assembler composes the full data model from an article and a request
// context. All collaborators are injected and already resolved; Assemble
// performs no I/O and is deterministic for identical inputs.
type Assembler struct {
	nav      NavigationBuilder
	revenue  RevenueURLBuilder
	snapshot *switches.Snapshot
	settings Settings
	convert  ElementConverter
}

// NewAssembler wires the assembler. A nil converter falls back to
// DefaultElementConverter.
func NewAssembler(
	nav NavigationBuilder,
	revenue RevenueURLBuilder,
	snapshot *switches.Snapshot,
	settings Settings,
	convert ElementConverter,
) *Assembler {
	if convert == nil {
		convert = DefaultElementConverter
	}
	return &Assembler{
		nav:      nav,
		revenue:  revenue,
		snapshot: snapshot,
		settings: settings,
		convert:  convert,
	}
}

// Assemble builds the versioned model for one article/request pair. The
// only failure mode is a defective switch registry; missing optional
// content is a normal state and flows through as explicit null.
func (a *Assembler) Assemble(article *domain.Article, rc domain.RequestContext) (*DataModel, error) {
	switchMap, err := NormalizeSwitches(a.snapshot)
	if err != nil {
		return nil, fmt.Errorf("build switches: %w", err)
	}

	sentryHost, sentryPublicKey := ReportingConfig(a.settings.Properties)

	content := DCContent{
		Headline:                  article.Headline,
		Standfirst:                article.Standfirst,
		Main:                      article.MainHTML,
		Body:                      article.BodyHTML,
		Blocks:                    NormalizeBlocks(article.Blocks, a.convert),
		Tags:                      assembleTags(article),
		Byline:                    article.Byline,
		PageID:                    article.PageID,
		Pillar:                    article.Pillar,
		WebPublicationDate:        article.WebPublicationDate.UnixMilli(),
		WebPublicationDateDisplay: FormatDisplayDate(article.WebPublicationDate, rc.Edition),
		SectionName:               article.Section,
		WebTitle:                  article.WebTitle,
		ContentID:                 article.ContentID,
		SeriesID:                  article.SeriesID,
		EditionID:                 rc.Edition.ID,
		EditionLongForm:           rc.Edition.DisplayName,
		ContentType:               article.ContentType,
		SubMetaLinks: SubMetaLinks{
			SectionLabels: NormalizeLinks(article.SubMetaSectionLinks),
			Keywords:      NormalizeLinks(article.SubMetaKeywordLinks),
		},
		WebURL: article.WebURL,
		Meta: Meta{
			IsImmersive:     article.IsImmersive,
			IsHosted:        article.IsHosted,
			ShouldHideAds:   article.ShouldHideAds,
			HasStoryPackage: article.HasStoryPackage,
			HasRelated:      article.HasRelated,
		},
	}

	site := DCSite{
		Nav:                a.nav.Build(rc),
		ReaderRevenueLinks: NormalizeRevenueLinks(a.revenue, rc),
	}

	config := DCConfig{
		AjaxURL:         a.settings.AjaxURL,
		SiteURL:         a.settings.SiteURL,
		SentryHost:      sentryHost,
		SentryPublicKey: sentryPublicKey,
		Switches:        switchMap,
		BeaconURL:       a.settings.BeaconURL,
	}

	return &DataModel{
		Content: content,
		Site:    site,
		Config:  config,
		Version: Version,
	}, nil
}

func assembleTags(article *domain.Article) Tags {
	return Tags{
		AuthorIDs:          article.AuthorIDs,
		ToneIDs:            article.ToneIDs,
		KeywordIDs:         article.KeywordIDs,
		CommissioningDesks: article.CommissioningDesks,
		All:                NormalizeTags(article.Tags),
	}
}
