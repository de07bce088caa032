//go:build s3routes
// +build s3routes

// This file provides an S3-backed route filesystem. It is excluded from
// regular builds because it requires the AWS SDK.
//
// To use it in your project, build with the "s3routes" tag and add the SDK:
//   go get github.com/aws/aws-sdk-go-v2
//   go get github.com/aws/aws-sdk-go-v2/config
//   go get github.com/aws/aws-sdk-go-v2/service/s3

package routefs

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3FS reads a route tree from an S3 bucket. Keys are treated as
// slash-separated paths; a "directory" is any common prefix.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	client := s3.NewFromConfig(cfg)
//	fsys := routefs.NewS3FS(client, "my-bucket")
//
//	scanner := routes.NewScanner("app/routes", routes.WithFS(fsys))
type S3FS struct {
	client *s3.Client
	bucket string
}

// NewS3FS creates a route filesystem over the given bucket.
func NewS3FS(client *s3.Client, bucket string) *S3FS {
	return &S3FS{client: client, bucket: bucket}
}

func (f *S3FS) ListEntries(dir string) ([]string, error) {
	prefix := keyPrefix(dir)

	paginator := s3.NewListObjectsV2Paginator(f.client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(f.bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String("/"),
	})

	var names []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(context.Background())
		if err != nil {
			return nil, fmt.Errorf("s3 list %q: %w", dir, err)
		}

		// Common prefixes are the subdirectories of dir.
		for _, cp := range page.CommonPrefixes {
			if cp.Prefix == nil {
				continue
			}
			name := strings.TrimSuffix(strings.TrimPrefix(*cp.Prefix, prefix), "/")
			if name != "" {
				names = append(names, name)
			}
		}

		for _, obj := range page.Contents {
			if obj.Key == nil {
				continue
			}
			name := strings.TrimPrefix(*obj.Key, prefix)
			if name != "" && !strings.Contains(name, "/") {
				names = append(names, name)
			}
		}
	}

	return names, nil
}

func (f *S3FS) IsDirectory(p string) (bool, error) {
	if p == "" || p == "." {
		return true, nil
	}

	// A key with content under it acts as a directory.
	out, err := f.client.ListObjectsV2(context.Background(), &s3.ListObjectsV2Input{
		Bucket:  aws.String(f.bucket),
		Prefix:  aws.String(keyPrefix(p)),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return false, fmt.Errorf("s3 stat %q: %w", p, err)
	}
	return len(out.Contents) > 0 || len(out.CommonPrefixes) > 0, nil
}

func (f *S3FS) JoinPath(elem ...string) string {
	return path.Join(elem...)
}

func (f *S3FS) RelativePath(base, target string) (string, error) {
	if base == "" || base == "." {
		return target, nil
	}

	base = strings.TrimSuffix(base, "/")
	if target == base {
		return ".", nil
	}
	if rest, ok := strings.CutPrefix(target, base+"/"); ok {
		return rest, nil
	}
	return "", fmt.Errorf("routefs: %q is not under %q", target, base)
}

// keyPrefix converts a directory path to an S3 key prefix.
func keyPrefix(dir string) string {
	dir = strings.Trim(dir, "/")
	if dir == "" || dir == "." {
		return ""
	}
	return dir + "/"
}
