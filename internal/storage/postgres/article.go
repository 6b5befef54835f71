package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"dotcomponents/internal/domain"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

type articleRow struct {
	PageID             string    `db:"page_id"`
	Headline           string    `db:"headline"`
	WebTitle           string    `db:"web_title"`
	Standfirst         *string   `db:"standfirst"`
	Byline             string    `db:"byline"`
	MainHTML           string    `db:"main_html"`
	BodyHTML           string    `db:"body_html"`
	Pillar             *string   `db:"pillar"`
	Section            *string   `db:"section"`
	ContentID          *string   `db:"content_id"`
	SeriesID           *string   `db:"series_id"`
	ContentType        *string   `db:"content_type"`
	WebURL             string    `db:"web_url"`
	WebPublicationDate time.Time `db:"web_publication_date"`
	AuthorIDs          *string   `db:"author_ids"`
	ToneIDs            *string   `db:"tone_ids"`
	KeywordIDs         *string   `db:"keyword_ids"`
	CommissioningDesks *string   `db:"commissioning_desks"`
	Blocks             []byte    `db:"blocks"`
	SubMetaSection     []byte    `db:"submeta_section_links"`
	SubMetaKeyword     []byte    `db:"submeta_keyword_links"`
	IsImmersive        bool      `db:"is_immersive"`
	IsHosted           bool      `db:"is_hosted"`
	ShouldHideAds      bool      `db:"should_hide_ads"`
	HasStoryPackage    bool      `db:"has_story_package"`
	HasRelated         bool      `db:"has_related"`
}

// GetByPageID loads one article with its tags and block structure.
// Returns domain.ErrNotFound when the page does not exist.
func (s *ArticleStore) GetByPageID(ctx context.Context, pageID string) (*domain.Article, error) {
	var row articleRow
	err := s.db.GetContext(ctx, &row, `
		SELECT page_id, headline, web_title, standfirst, byline, main_html,
		       body_html, pillar, section, content_id, series_id, content_type,
		       web_url, web_publication_date, author_ids, tone_ids, keyword_ids,
		       commissioning_desks, blocks, submeta_section_links,
		       submeta_keyword_links, is_immersive, is_hosted, should_hide_ads,
		       has_story_package, has_related
		FROM articles
		WHERE page_id = $1`, pageID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select article: %w", err)
	}

	article, err := row.toDomain()
	if err != nil {
		return nil, err
	}

	tags, err := s.tagsByPageID(ctx, pageID)
	if err != nil {
		return nil, fmt.Errorf("select tags: %w", err)
	}
	article.Tags = tags

	return article, nil
}

func (r *articleRow) toDomain() (*domain.Article, error) {
	article := &domain.Article{
		PageID:             r.PageID,
		Headline:           r.Headline,
		WebTitle:           r.WebTitle,
		Standfirst:         r.Standfirst,
		Byline:             r.Byline,
		MainHTML:           r.MainHTML,
		BodyHTML:           r.BodyHTML,
		Pillar:             r.Pillar,
		Section:            r.Section,
		ContentID:          r.ContentID,
		SeriesID:           r.SeriesID,
		ContentType:        r.ContentType,
		WebURL:             r.WebURL,
		WebPublicationDate: r.WebPublicationDate,
		AuthorIDs:          r.AuthorIDs,
		ToneIDs:            r.ToneIDs,
		KeywordIDs:         r.KeywordIDs,
		CommissioningDesks: r.CommissioningDesks,
		IsImmersive:        r.IsImmersive,
		IsHosted:           r.IsHosted,
		ShouldHideAds:      r.ShouldHideAds,
		HasStoryPackage:    r.HasStoryPackage,
		HasRelated:         r.HasRelated,
	}

	if len(r.Blocks) > 0 {
		var blocks domain.ArticleBlocks
		if err := json.Unmarshal(r.Blocks, &blocks); err != nil {
			return nil, fmt.Errorf("unmarshal blocks: %w", err)
		}
		article.Blocks = &blocks
	}
	if len(r.SubMetaSection) > 0 {
		if err := json.Unmarshal(r.SubMetaSection, &article.SubMetaSectionLinks); err != nil {
			return nil, fmt.Errorf("unmarshal submeta section links: %w", err)
		}
	}
	if len(r.SubMetaKeyword) > 0 {
		if err := json.Unmarshal(r.SubMetaKeyword, &article.SubMetaKeywordLinks); err != nil {
			return nil, fmt.Errorf("unmarshal submeta keyword links: %w", err)
		}
	}

	return article, nil
}

func (s *ArticleStore) tagsByPageID(ctx context.Context, pageID string) ([]domain.Tag, error) {
	query := `
		SELECT t.id, t.tag_type, t.web_title, t.twitter_handle
		FROM tags t
		INNER JOIN article_tags at ON at.tag_id = t.id
		WHERE at.article_page_id = $1
		ORDER BY at.position`

	rows, err := s.db.QueryContext(ctx, query, pageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Type, &t.Title, &t.TwitterHandle); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}

	return tags, rows.Err()
}
