// Package ossstore persists articles and uploaded files in Alibaba Cloud
// OSS. The article list lives as a single JSON array object that is read,
// modified and written back whole.
package ossstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"github.com/medassist/medassist-api/internal/model"
)

const signedURLExpiry = 24 * 3600 // seconds

// Config holds OSS connection settings.
type Config struct {
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	AccessKeySecret string `mapstructure:"access_key_secret"`
	Bucket          string `mapstructure:"bucket"`
	ArticlesKey     string `mapstructure:"articles_key"`
}

// Store implements repository.ArticleStore and repository.FileStore.
// The OSS SDK is not context-aware; ctx bounds only the surrounding call
// sites.
type Store struct {
	bucket *oss.Bucket
	cfg    Config
}

// New connects to the configured bucket.
func New(cfg Config) (*Store, error) {
	region := cfg.Region
	// Tolerate a full endpoint hostname in the region setting.
	if strings.Contains(region, ".aliyuncs.com") {
		region = strings.SplitN(region, ".", 2)[0]
	}
	cfg.Region = region
	if cfg.ArticlesKey == "" {
		cfg.ArticlesKey = "articles/articles.json"
	}

	client, err := oss.New(fmt.Sprintf("https://%s.aliyuncs.com", region), cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create OSS client: %w", err)
	}
	bucket, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to open OSS bucket %q: %w", cfg.Bucket, err)
	}
	return &Store{bucket: bucket, cfg: cfg}, nil
}

// Load reads the full article list. A missing object means nothing has
// been published yet and yields an empty list.
func (s *Store) Load(ctx context.Context) ([]model.Article, error) {
	body, err := s.bucket.GetObject(s.cfg.ArticlesKey)
	if err != nil {
		if isNoSuchKey(err) {
			return []model.Article{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.cfg.ArticlesKey, err)
	}
	defer body.Close()

	var articles []model.Article
	if err := json.NewDecoder(body).Decode(&articles); err != nil {
		return nil, fmt.Errorf("failed to decode article list: %w", err)
	}
	if articles == nil {
		articles = []model.Article{}
	}
	return articles, nil
}

// Save writes the full article list back. There is no locking or
// conditional put; concurrent writers can overwrite each other.
func (s *Store) Save(ctx context.Context, articles []model.Article) error {
	data, err := json.Marshal(articles)
	if err != nil {
		return fmt.Errorf("failed to encode article list: %w", err)
	}
	if err := s.bucket.PutObject(s.cfg.ArticlesKey, bytes.NewReader(data),
		oss.ContentType("application/json")); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.cfg.ArticlesKey, err)
	}
	return nil
}

// Put uploads a file under the given object key and returns a signed URL,
// falling back to the public bucket URL when signing fails.
func (s *Store) Put(ctx context.Context, key string, contentType string, r io.Reader) (string, error) {
	opts := []oss.Option{}
	if contentType != "" {
		opts = append(opts, oss.ContentType(contentType))
	}
	if err := s.bucket.PutObject(key, r, opts...); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	signed, err := s.bucket.SignURL(key, oss.HTTPGet, signedURLExpiry)
	if err != nil {
		return fmt.Sprintf("https://%s.%s.aliyuncs.com/%s", s.cfg.Bucket, s.cfg.Region, key), nil
	}
	return signed, nil
}

func isNoSuchKey(err error) bool {
	var svcErr oss.ServiceError
	return errors.As(err, &svcErr) && svcErr.Code == "NoSuchKey"
}
