package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"dotcomponents/internal/domain"
	"dotcomponents/internal/dotcomponents"
)

type ArticleStore interface {
	GetByPageID(ctx context.Context, pageID string) (*domain.Article, error)
}

type Assembler interface {
	Assemble(article *domain.Article, rc domain.RequestContext) (*dotcomponents.DataModel, error)
}
