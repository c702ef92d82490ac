// Package publish writes exported snapshot files to a local directory or a
// Cloud Storage bucket.
package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/storage"
	"github.com/gofrs/flock"
	"google.golang.org/api/option"

	"github.com/LXMachado/tinnie-house-revamp/internal/constants"
)

// Publisher stores a named snapshot file.
type Publisher interface {
	Publish(ctx context.Context, name string, data []byte) error
	Close() error
}

// Target is a parsed --out value.
type Target struct {
	Bucket string
	Prefix string
	Dir    string
}

// IsGCS reports whether the target is a Cloud Storage location.
func (t Target) IsGCS() bool {
	return t.Bucket != ""
}

func (t Target) String() string {
	if t.IsGCS() {
		if t.Prefix == "" {
			return "gs://" + t.Bucket
		}
		return "gs://" + t.Bucket + "/" + t.Prefix
	}
	return t.Dir
}

// ParseTarget accepts gs://bucket[/prefix] or a local directory path.
func ParseTarget(s string) (Target, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Target{}, errors.New("output target is empty")
	}
	rest, ok := strings.CutPrefix(s, "gs://")
	if !ok {
		return Target{Dir: filepath.Clean(s)}, nil
	}
	bucket, prefix, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return Target{}, fmt.Errorf("missing bucket in %q", s)
	}
	return Target{Bucket: bucket, Prefix: strings.Trim(prefix, "/")}, nil
}

// Open returns the publisher for t. credentialsFile is only used for GCS and
// may be empty to use application default credentials.
func Open(ctx context.Context, t Target, credentialsFile string) (Publisher, error) {
	if t.IsGCS() {
		return NewGCSPublisher(ctx, t.Bucket, t.Prefix, credentialsFile)
	}
	return NewLocalPublisher(t.Dir)
}

// LocalPublisher writes files into a directory. A lock file keeps two
// exports from interleaving their writes.
type LocalPublisher struct {
	dir  string
	mu   sync.Mutex
	lock *flock.Flock
}

func NewLocalPublisher(dir string) (*LocalPublisher, error) {
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &LocalPublisher{
		dir:  dir,
		lock: flock.New(filepath.Join(dir, ".export.lock")),
	}, nil
}

// Publish replaces dir/name atomically.
func (p *LocalPublisher) Publish(ctx context.Context, name string, data []byte) error {
	if name != filepath.Base(name) {
		return fmt.Errorf("invalid snapshot name %q", name)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	locked, err := p.lock.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return fmt.Errorf("acquire export lock: %w", err)
	}
	if !locked {
		return errors.New("another export holds the lock")
	}
	defer func() { _ = p.lock.Unlock() }()

	tmp, err := os.CreateTemp(p.dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	if err := os.Chmod(tmpName, constants.FilePermissions); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", name, err)
	}
	if err := os.Rename(tmpName, filepath.Join(p.dir, name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

func (p *LocalPublisher) Close() error {
	return nil
}

// GCSPublisher uploads files as objects under a bucket prefix, where the
// edge deployment reads them.
type GCSPublisher struct {
	client *storage.Client
	bucket string
	prefix string
}

func NewGCSPublisher(ctx context.Context, bucket, prefix, credentialsFile string) (*GCSPublisher, error) {
	var client *storage.Client
	var err error
	if credentialsFile != "" {
		client, err = storage.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	} else {
		client, err = storage.NewClient(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	return &GCSPublisher{client: client, bucket: bucket, prefix: prefix}, nil
}

func (p *GCSPublisher) objectName(name string) string {
	if p.prefix == "" {
		return name
	}
	return p.prefix + "/" + name
}

func (p *GCSPublisher) Publish(ctx context.Context, name string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	wc := p.client.Bucket(p.bucket).Object(p.objectName(name)).NewWriter(ctx)
	wc.ContentType = constants.MimeTypeJSON
	wc.CacheControl = "public, max-age=60"
	if _, err := io.Copy(wc, bytes.NewReader(data)); err != nil {
		_ = wc.Close()
		return fmt.Errorf("failed to upload %s: %w", name, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", name, err)
	}
	return nil
}

func (p *GCSPublisher) Close() error {
	return p.client.Close()
}
