//go:build integration

package postgres

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"dotcomponents/internal/domain"
	"dotcomponents/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_articles.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM article_tags")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM tags")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM articles")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) insertArticle(pageID string, blocks *domain.ArticleBlocks) {
	var blocksJSON []byte
	if blocks != nil {
		var err error
		blocksJSON, err = json.Marshal(blocks)
		s.Require().NoError(err)
	}

	_, err := s.db.ExecContext(s.ctx, `
		INSERT INTO articles (
			page_id, headline, web_title, standfirst, byline, main_html,
			body_html, section, content_type, web_url, web_publication_date,
			author_ids, blocks, has_related
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		pageID,
		"Example headline",
		"Example headline | World",
		"A short standfirst",
		"Jane Smith",
		"main html",
		"body html",
		"World news",
		"Article",
		"https://www.example-news.com/"+pageID,
		time.Date(2020, 3, 2, 14, 5, 0, 0, time.UTC),
		"profile/jane-smith",
		blocksJSON,
		true,
	)
	s.Require().NoError(err)
}

func (s *PostgresIntegrationSuite) insertTag(pageID, tagID, tagType, title string, handle *string, position int) {
	_, err := s.db.ExecContext(s.ctx, `
		INSERT INTO tags (id, tag_type, web_title, twitter_handle)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`,
		tagID, tagType, title, handle,
	)
	s.Require().NoError(err)

	_, err = s.db.ExecContext(s.ctx, `
		INSERT INTO article_tags (article_page_id, tag_id, position)
		VALUES ($1, $2, $3)`,
		pageID, tagID, position,
	)
	s.Require().NoError(err)
}

func (s *PostgresIntegrationSuite) TestGetByPageID() {
	store := NewArticleStore(s.db)
	s.insertArticle("world/example", nil)

	article, err := store.GetByPageID(s.ctx, "world/example")
	s.NoError(err)

	s.Equal("world/example", article.PageID)
	s.Equal("Example headline", article.Headline)
	s.Require().NotNil(article.Standfirst)
	s.Equal("A short standfirst", *article.Standfirst)
	s.Nil(article.Pillar)
	s.Require().NotNil(article.AuthorIDs)
	s.Equal("profile/jane-smith", *article.AuthorIDs)
	s.True(article.HasRelated)
	s.Nil(article.Blocks)
	s.Empty(article.Tags)
	s.True(article.WebPublicationDate.Equal(time.Date(2020, 3, 2, 14, 5, 0, 0, time.UTC)))
}

func (s *PostgresIntegrationSuite) TestGetByPageID_NotFound() {
	store := NewArticleStore(s.db)

	article, err := store.GetByPageID(s.ctx, "missing/page")
	s.ErrorIs(err, domain.ErrNotFound)
	s.Nil(article)
}

func (s *PostgresIntegrationSuite) TestGetByPageID_TagsInPositionOrder() {
	store := NewArticleStore(s.db)
	s.insertArticle("world/example", nil)

	s.insertTag("world/example", "world/world", "Keyword", "World news", nil, 2)
	s.insertTag("world/example", "profile/jane-smith", "Contributor", "Jane Smith", utils.Ptr("janesmith"), 1)
	s.insertTag("world/example", "tone/news", "Tone", "News", nil, 3)

	article, err := store.GetByPageID(s.ctx, "world/example")
	s.NoError(err)

	s.Require().Len(article.Tags, 3)
	s.Equal("profile/jane-smith", article.Tags[0].ID)
	s.Equal("world/world", article.Tags[1].ID)
	s.Equal("tone/news", article.Tags[2].ID)
	s.Require().NotNil(article.Tags[0].TwitterHandle)
	s.Equal("janesmith", *article.Tags[0].TwitterHandle)
	s.Nil(article.Tags[1].TwitterHandle)
}

func (s *PostgresIntegrationSuite) TestGetByPageID_Blocks() {
	store := NewArticleStore(s.db)
	blocks := &domain.ArticleBlocks{
		Main: &domain.Block{HTML: "<figure>lead</figure>", Elements: []domain.Element{{Kind: "image", URL: "https://img.example/lead.jpg"}}},
		Body: []domain.Block{
			{HTML: "<p>first</p>", Elements: []domain.Element{{Kind: "text", HTML: "<p>first</p>"}}},
		},
	}
	s.insertArticle("world/with-blocks", blocks)

	article, err := store.GetByPageID(s.ctx, "world/with-blocks")
	s.NoError(err)

	s.Require().NotNil(article.Blocks)
	s.Require().NotNil(article.Blocks.Main)
	s.Equal("<figure>lead</figure>", article.Blocks.Main.HTML)
	s.Require().Len(article.Blocks.Body, 1)
	s.Equal("<p>first</p>", article.Blocks.Body[0].HTML)
	s.Require().Len(article.Blocks.Body[0].Elements, 1)
	s.Equal("text", article.Blocks.Body[0].Elements[0].Kind)
}
