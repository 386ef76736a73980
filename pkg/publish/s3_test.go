package publish

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/golia-dev/golia/pkg/builder"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestPublish(t *testing.T) {
	comp := builder.NewComponent()
	if _, err := comp.Doc().AddBody("p", "published", nil); err != nil {
		t.Fatal(err)
	}

	fake := &fakeS3{}
	pub := NewS3Publisher(fake, "my-bucket", "site")

	key, err := pub.Publish(context.Background(), "index.html", comp, false)
	if err != nil {
		t.Fatal(err)
	}
	if key != "site/index.html" {
		t.Errorf("key = %q, want %q", key, "site/index.html")
	}

	in := fake.input
	if in == nil {
		t.Fatal("PutObject not called")
	}
	if got := aws.ToString(in.Bucket); got != "my-bucket" {
		t.Errorf("bucket = %q", got)
	}
	if got := aws.ToString(in.Key); got != "site/index.html" {
		t.Errorf("object key = %q", got)
	}
	if got := aws.ToString(in.ContentType); got != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", got)
	}

	body, err := io.ReadAll(in.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "<p>published</p>") {
		t.Errorf("uploaded body missing rendered content:\n%s", body)
	}
	if aws.ToInt64(in.ContentLength) != int64(len(body)) {
		t.Errorf("content length = %d, body = %d bytes", aws.ToInt64(in.ContentLength), len(body))
	}
}

func TestPublishNoPrefix(t *testing.T) {
	fake := &fakeS3{}
	pub := NewS3Publisher(fake, "b", "")

	key, err := pub.Publish(context.Background(), "page.html", builder.NewComponent(), false)
	if err != nil {
		t.Fatal(err)
	}
	if key != "page.html" {
		t.Errorf("key = %q, want %q", key, "page.html")
	}
}

func TestPublishError(t *testing.T) {
	wantErr := errors.New("access denied")
	fake := &fakeS3{err: wantErr}
	pub := NewS3Publisher(fake, "b", "p")

	_, err := pub.Publish(context.Background(), "x.html", builder.NewComponent(), false)
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want wrapped %v", err, wantErr)
	}
	if !strings.Contains(err.Error(), "s3://b/p/x.html") {
		t.Errorf("err = %v, want object path in message", err)
	}
}
