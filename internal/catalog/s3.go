package catalog

import (
	"context"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/vango-dev/gallery/internal/errors"
)

// ObjectGetter is the subset of *s3.Client used by S3Snapshot.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Snapshot serves a catalog snapshot stored as a YAML or JSON object.
// The object is fetched on first use and again on Refresh.
type S3Snapshot struct {
	client ObjectGetter
	bucket string
	key    string

	mu   sync.RWMutex
	seed *Seed
	etag string
}

var _ Provider = (*S3Snapshot)(nil)

// NewS3Snapshot creates a provider for s3://bucket/key.
func NewS3Snapshot(client ObjectGetter, bucket, key string) *S3Snapshot {
	return &S3Snapshot{client: client, bucket: bucket, key: key}
}

// NewS3Client builds an S3 client for region from the default AWS
// configuration chain. A non-empty endpoint selects an S3-compatible store
// with path-style addressing. When no credentials resolve, requests are
// anonymous so public buckets still work.
func NewS3Client(ctx context.Context, region, endpoint string) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, errors.New("E210").Wrap(err)
	}
	return newS3Client(ctx, cfg, endpoint), nil
}

func newS3Client(ctx context.Context, cfg aws.Config, endpoint string) *s3.Client {
	if cfg.Credentials == nil {
		cfg.Credentials = aws.AnonymousCredentials{}
	} else if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
		cfg.Credentials = aws.AnonymousCredentials{}
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}

// Refresh re-reads the snapshot object.
func (s *S3Snapshot) Refresh(ctx context.Context) error {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var missing *types.NoSuchKey
		if errors.As(err, &missing) {
			return errors.New("E220").
				WithDetailf("s3://%s/%s does not exist", s.bucket, s.key).
				WithSuggestion("Upload a snapshot with the layout of the embedded seed file")
		}
		return errors.New("E210").Wrap(err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return errors.New("E210").Wrap(err)
	}
	seed, err := ParseSeed(data)
	if err != nil {
		return errors.New("E211").Wrap(err)
	}

	s.mu.Lock()
	s.seed = seed
	s.etag = aws.ToString(out.ETag)
	s.mu.Unlock()
	return nil
}

// ETag returns the entity tag of the loaded snapshot.
func (s *S3Snapshot) ETag() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.etag
}

func (s *S3Snapshot) current(ctx context.Context) (*Seed, error) {
	s.mu.RLock()
	seed := s.seed
	s.mu.RUnlock()
	if seed != nil {
		return seed, nil
	}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seed, nil
}

// Categories implements Provider.
func (s *S3Snapshot) Categories(ctx context.Context) ([]Category, error) {
	seed, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return seed.Categories(ctx)
}

// ComponentsByCategory implements Provider.
func (s *S3Snapshot) ComponentsByCategory(ctx context.Context, categoryID string) ([]Component, error) {
	seed, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return seed.ComponentsByCategory(ctx, categoryID)
}

// ComponentBySlug implements Provider.
func (s *S3Snapshot) ComponentBySlug(ctx context.Context, slug string) (Component, error) {
	seed, err := s.current(ctx)
	if err != nil {
		return Component{}, err
	}
	return seed.ComponentBySlug(ctx, slug)
}
