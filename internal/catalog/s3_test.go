package catalog

import (
	"context"
	"io"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/vango-dev/gallery/internal/errors"
)

type fakeObjects struct {
	body  string
	etag  string
	err   error
	calls atomic.Int32
}

func (f *fakeObjects) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{
		Body: io.NopCloser(strings.NewReader(f.body)),
		ETag: aws.String(f.etag),
	}, nil
}

const snapshotYAML = `
categories:
  - {slug: actions, name: Actions}
components:
  - {slug: button, name: Button, category: actions, status: stable}
`

func TestS3SnapshotLoadsOnce(t *testing.T) {
	ctx := context.Background()
	objects := &fakeObjects{body: snapshotYAML, etag: `"v1"`}
	p := NewS3Snapshot(objects, "bucket", "catalog.yaml")

	cats, err := p.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(cats) != 1 {
		t.Fatalf("cats = %+v", cats)
	}
	if _, err := p.ComponentBySlug(ctx, "button"); err != nil {
		t.Fatalf("ComponentBySlug: %v", err)
	}
	if objects.calls.Load() != 1 {
		t.Errorf("GetObject calls = %d, want 1", objects.calls.Load())
	}
	if p.ETag() != `"v1"` {
		t.Errorf("ETag() = %q", p.ETag())
	}

	objects.body = strings.Replace(snapshotYAML, "Button", "Button v2", 1)
	objects.etag = `"v2"`
	if err := p.Refresh(ctx); err != nil {
		t.Fatal(err)
	}
	c, _ := p.ComponentBySlug(ctx, "button")
	if c.Name != "Button v2" || p.ETag() != `"v2"` {
		t.Errorf("after refresh: %+v etag %s", c, p.ETag())
	}
}

func TestS3SnapshotErrors(t *testing.T) {
	tests := []struct {
		name    string
		objects *fakeObjects
		code    string
	}{
		{"missing object", &fakeObjects{err: &types.NoSuchKey{}}, "E220"},
		{"transport error", &fakeObjects{err: io.ErrUnexpectedEOF}, "E210"},
		{"invalid snapshot", &fakeObjects{body: "components:\n  - {slug: x, category: nope}\n"}, "E211"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewS3Snapshot(tt.objects, "bucket", "catalog.yaml")
			_, err := p.Categories(context.Background())
			if errors.Code(err) != tt.code {
				t.Errorf("code = %q, want %q (%v)", errors.Code(err), tt.code, err)
			}
		})
	}
}

func TestNewS3ClientCredentials(t *testing.T) {
	failing := aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		return aws.Credentials{}, io.EOF
	})
	static := aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		return aws.Credentials{AccessKeyID: "AKID", SecretAccessKey: "secret"}, nil
	})
	ctx := context.Background()

	t.Run("anonymous when nothing resolves", func(t *testing.T) {
		for _, provider := range []aws.CredentialsProvider{nil, failing} {
			opts := newS3Client(ctx, aws.Config{Region: "us-east-1", Credentials: provider}, "").Options()
			if _, ok := opts.Credentials.(aws.AnonymousCredentials); !ok {
				t.Errorf("credentials = %T, want anonymous", opts.Credentials)
			}
		}
	})

	t.Run("resolved credentials kept", func(t *testing.T) {
		opts := newS3Client(ctx, aws.Config{Region: "us-east-1", Credentials: static}, "").Options()
		creds, err := opts.Credentials.Retrieve(ctx)
		if err != nil || creds.AccessKeyID != "AKID" {
			t.Errorf("credentials = %+v, %v", creds, err)
		}
		if opts.BaseEndpoint != nil || opts.UsePathStyle {
			t.Errorf("endpoint override set without an endpoint: %+v", opts)
		}
	})

	t.Run("custom endpoint", func(t *testing.T) {
		opts := newS3Client(ctx, aws.Config{Region: "eu-west-1", Credentials: static}, "http://minio:9000").Options()
		if aws.ToString(opts.BaseEndpoint) != "http://minio:9000" || !opts.UsePathStyle || opts.Region != "eu-west-1" {
			t.Errorf("options = endpoint %q path-style %v region %q", aws.ToString(opts.BaseEndpoint), opts.UsePathStyle, opts.Region)
		}
	})
}
