package mock

import (
	"context"

	"github.com/fwojciec/rescribe"
)

// Ensure ArticleService implements rescribe.ArticleService at compile time.
var _ rescribe.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of rescribe.ArticleService.
type ArticleService struct {
	FindLatestArticleFn func(ctx context.Context) (*rescribe.Article, error)
	CreateArticleFn     func(ctx context.Context, article *rescribe.Article) (*rescribe.Article, error)
	UpdateArticleFn     func(ctx context.Context, id int, upd rescribe.ArticleUpdate) (*rescribe.Article, error)
}

func (s *ArticleService) FindLatestArticle(ctx context.Context) (*rescribe.Article, error) {
	return s.FindLatestArticleFn(ctx)
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *rescribe.Article) (*rescribe.Article, error) {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) UpdateArticle(ctx context.Context, id int, upd rescribe.ArticleUpdate) (*rescribe.Article, error) {
	return s.UpdateArticleFn(ctx, id, upd)
}
