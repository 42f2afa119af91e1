// Package article implements the medical journal: publishing and reading
// articles backed by object storage, with a short-lived read cache.
package article

import (
	"context"
	"fmt"
	"io"
	"math"
	"path"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/medassist/medassist-api/internal/model"
	"github.com/medassist/medassist-api/internal/repository"
	"github.com/medassist/medassist-api/pkg/errors"
	"github.com/medassist/medassist-api/pkg/logger"
	"github.com/medassist/medassist-api/pkg/metrics"
)

const (
	articlesCacheKey   = "articles"
	defaultCacheTTL    = 5 * time.Minute
	defaultAuthor      = "当前用户"
	readTimeCharsPerMn = 500
)

// Config holds article service settings.
type Config struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// Service owns the article list. The whole list is read, modified and
// written back on every publish, mirroring how the blob is stored.
type Service struct {
	store   repository.ArticleStore
	files   repository.FileStore
	cache   *gocache.Cache
	now     func() time.Time
	logger  *logger.Logger
	metrics *metrics.Metrics
}

func NewService(cfg Config, store repository.ArticleStore, files repository.FileStore, log *logger.Logger, m *metrics.Metrics) *Service {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Service{
		store:   store,
		files:   files,
		cache:   gocache.New(ttl, 2*ttl),
		now:     time.Now,
		logger:  log,
		metrics: m,
	}
}

// List returns all articles, newest first.
func (s *Service) List(ctx context.Context) ([]model.Article, error) {
	if cached, ok := s.cache.Get(articlesCacheKey); ok {
		return cached.([]model.Article), nil
	}
	articles, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.ArticleReads.Inc()
	}
	s.cache.SetDefault(articlesCacheKey, articles)
	return articles, nil
}

// Get returns one article by ID.
func (s *Service) Get(ctx context.Context, id string) (*model.Article, error) {
	articles, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range articles {
		if articles[i].ID == id {
			return &articles[i], nil
		}
	}
	return nil, errors.NotFound("Article", nil)
}

// Publish builds the article from req, prepends it to the stored list and
// writes the list back. Concurrent publishers can lose each other's write;
// the store has no conditional put.
func (s *Service) Publish(ctx context.Context, req *model.PublishArticleRequest) (*model.Article, error) {
	now := s.now()
	author := req.Author
	if author == "" {
		author = defaultAuthor
	}
	article := model.Article{
		ID:          fmt.Sprintf("article-%d", now.UnixMilli()),
		Title:       req.Title,
		Content:     req.Content,
		Author:      author,
		Date:        fmt.Sprintf("%d年%d月%d日", now.Year(), int(now.Month()), now.Day()),
		ReadTime:    readTime(req.Content),
		Likes:       0,
		Comments:    0,
		Tags:        req.Tags,
		CoverImage:  req.CoverImage,
		Attachments: req.Attachments,
	}

	existing, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	updated := append([]model.Article{article}, existing...)
	if err := s.store.Save(ctx, updated); err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.ArticleWrites.Inc()
	}
	s.cache.SetDefault(articlesCacheKey, updated)

	s.logger.WithFields(map[string]interface{}{"article_id": article.ID}).Info("published article")
	return &article, nil
}

// Upload stores one attachment file and returns its metadata. The index
// keeps IDs unique when several files arrive in one request.
func (s *Service) Upload(ctx context.Context, filename, contentType string, size int64, r io.Reader, index int) (*model.Attachment, error) {
	ext := path.Ext(filename)
	if ext == "" {
		ext = ".jpg"
	}
	key := fmt.Sprintf("attachments/%d-%d%s", s.now().UnixMilli(), index, ext)
	url, err := s.files.Put(ctx, key, contentType, r)
	if err != nil {
		return nil, err
	}
	return &model.Attachment{
		ID:   fmt.Sprintf("attachment-%d-%d", s.now().UnixMilli(), index),
		Name: filename,
		URL:  url,
		Type: contentType,
		Size: size,
	}, nil
}

// readTime estimates reading duration at 500 characters per minute, with
// a one minute floor.
func readTime(content string) string {
	minutes := math.Round(float64(len([]rune(content))) / readTimeCharsPerMn)
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d分钟阅读", int(minutes))
}
