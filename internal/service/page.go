package service

import (
	"context"
	"fmt"
	"log/slog"

	"dotcomponents/internal/domain"
	"dotcomponents/internal/dotcomponents"
)

// PageService turns a page id and request context into the serialized
// render-data document: load the article, assemble the model, encode it.
// Each call is independent; the service holds no mutable state.
type PageService struct {
	articles  ArticleStore
	assembler Assembler
	logger    *slog.Logger
}

func NewPageService(articles ArticleStore, assembler Assembler, logger *slog.Logger) *PageService {
	return &PageService{
		articles:  articles,
		assembler: assembler,
		logger:    logger.With("component", "page_service"),
	}
}

// RenderData returns the canonical JSON document for one page.
func (s *PageService) RenderData(ctx context.Context, pageID string, rc domain.RequestContext) ([]byte, error) {
	model, err := s.assemble(ctx, pageID, rc)
	if err != nil {
		return nil, err
	}
	return dotcomponents.Encode(model)
}

// RenderDataIndented returns the same document indented for debugging.
func (s *PageService) RenderDataIndented(ctx context.Context, pageID string, rc domain.RequestContext) ([]byte, error) {
	model, err := s.assemble(ctx, pageID, rc)
	if err != nil {
		return nil, err
	}
	return dotcomponents.EncodeIndented(model)
}

func (s *PageService) assemble(ctx context.Context, pageID string, rc domain.RequestContext) (*dotcomponents.DataModel, error) {
	article, err := s.articles.GetByPageID(ctx, pageID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	model, err := s.assembler.Assemble(article, rc)
	if err != nil {
		return nil, fmt.Errorf("assemble model: %w", err)
	}

	s.logger.Debug("assembled render data",
		"page_id", pageID,
		"edition", rc.Edition.ID,
		"tags", len(model.Content.Tags.All),
		"body_blocks", len(model.Content.Blocks.Body),
	)

	return model, nil
}
