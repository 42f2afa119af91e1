package article

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/medassist/medassist-api/internal/model"
	"github.com/medassist/medassist-api/pkg/errors"
	"github.com/medassist/medassist-api/pkg/logger"
)

type fakeStore struct {
	articles  []model.Article
	loadCalls int
	saveCalls int
}

func (f *fakeStore) Load(_ context.Context) ([]model.Article, error) {
	f.loadCalls++
	return append([]model.Article(nil), f.articles...), nil
}

func (f *fakeStore) Save(_ context.Context, articles []model.Article) error {
	f.saveCalls++
	f.articles = articles
	return nil
}

type fakeFiles struct {
	lastName string
}

func (f *fakeFiles) Put(_ context.Context, name, _ string, _ io.Reader) (string, error) {
	f.lastName = name
	return "https://bucket.example.com/" + name, nil
}

func newService(store *fakeStore) *Service {
	return NewService(Config{}, store, &fakeFiles{}, logger.NewLogger(&logger.Config{Output: io.Discard}), nil)
}

func TestPublish(t *testing.T) {
	store := &fakeStore{articles: []model.Article{{ID: "article-1", Title: "旧文章"}}}
	s := newService(store)
	s.now = func() time.Time { return time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC) }

	published, err := s.Publish(context.Background(), &model.PublishArticleRequest{
		Title:   "高血压防治",
		Content: strings.Repeat("字", 1200),
		Tags:    []string{"心血管"},
	})
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(published.ID, "article-"))
	assert.Equal(t, "2025年3月7日", published.Date)
	assert.Equal(t, "2分钟阅读", published.ReadTime)
	assert.Equal(t, "当前用户", published.Author)
	assert.Zero(t, published.Likes)
	assert.Zero(t, published.Comments)

	// New article goes first; the whole list is written back.
	assert.Equal(t, 1, store.saveCalls)
	assert.Len(t, store.articles, 2)
	assert.Equal(t, published.ID, store.articles[0].ID)
	assert.Equal(t, "article-1", store.articles[1].ID)
}

func TestPublishKeepsExplicitAuthor(t *testing.T) {
	s := newService(&fakeStore{})

	published, err := s.Publish(context.Background(), &model.PublishArticleRequest{
		Title:   "标题",
		Content: "内容",
		Author:  "李医生",
	})
	assert.NoError(t, err)
	assert.Equal(t, "李医生", published.Author)
}

func TestReadTimeFloor(t *testing.T) {
	assert.Equal(t, "1分钟阅读", readTime("短"))
	assert.Equal(t, "1分钟阅读", readTime(strings.Repeat("字", 700)))
	assert.Equal(t, "2分钟阅读", readTime(strings.Repeat("字", 800)))
	assert.Equal(t, "3分钟阅读", readTime(strings.Repeat("字", 1500)))
}

func TestListUsesCache(t *testing.T) {
	store := &fakeStore{articles: []model.Article{{ID: "article-1"}}}
	s := newService(store)

	first, err := s.List(context.Background())
	assert.NoError(t, err)
	second, err := s.List(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.loadCalls, "second list must come from cache")
}

func TestPublishRefreshesCache(t *testing.T) {
	store := &fakeStore{}
	s := newService(store)

	_, err := s.List(context.Background())
	assert.NoError(t, err)

	published, err := s.Publish(context.Background(), &model.PublishArticleRequest{Title: "t", Content: "c"})
	assert.NoError(t, err)

	articles, err := s.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, articles, 1)
	assert.Equal(t, published.ID, articles[0].ID)
}

func TestGet(t *testing.T) {
	store := &fakeStore{articles: []model.Article{{ID: "article-1", Title: "标题"}}}
	s := newService(store)

	found, err := s.Get(context.Background(), "article-1")
	assert.NoError(t, err)
	assert.Equal(t, "标题", found.Title)

	_, err = s.Get(context.Background(), "article-404")
	assert.True(t, errors.IsNotFound(err))
}

func TestUpload(t *testing.T) {
	files := &fakeFiles{}
	s := NewService(Config{}, &fakeStore{}, files, logger.NewLogger(&logger.Config{Output: io.Discard}), nil)
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }

	attachment, err := s.Upload(context.Background(), "report.pdf", "application/pdf", 2048, strings.NewReader("data"), 1)
	assert.NoError(t, err)
	assert.Equal(t, "attachment-1700000000000-1", attachment.ID)
	assert.Equal(t, "report.pdf", attachment.Name)
	assert.Equal(t, int64(2048), attachment.Size)
	assert.True(t, strings.HasSuffix(files.lastName, ".pdf"))
	assert.Contains(t, attachment.URL, files.lastName)
}
