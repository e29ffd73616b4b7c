package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	storage_go "github.com/supabase-community/storage-go"
	supabase "github.com/supabase-community/supabase-go"
)

// Config holds configuration required to reach the Supabase storage bucket.
type Config struct {
	// SupabaseURL is the Supabase project URL.
	// Example: "https://[project-ref].supabase.co"
	SupabaseURL string

	// SupabaseKey is the Supabase API key (service_role for server-side use).
	SupabaseKey string

	// Bucket is the storage bucket the image directory syncs into.
	Bucket string
}

// Enabled reports whether the config carries enough to attempt a sync.
func (c Config) Enabled() bool {
	return c.SupabaseURL != "" && c.SupabaseKey != "" && c.Bucket != ""
}

// FileFilter decides whether a directory entry is part of the sync set.
type FileFilter func(name string) bool

// Client uploads files to a Supabase storage bucket.
type Client struct {
	sdk *supabase.Client
	cfg Config
}

// NewClient constructs a storage client.
func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg}
}

// Connect initializes the Supabase SDK client.
func (c *Client) Connect() error {
	if !c.cfg.Enabled() {
		return fmt.Errorf("supabase URL, key and bucket must all be provided")
	}
	sdk, err := supabase.NewClient(c.cfg.SupabaseURL, c.cfg.SupabaseKey, nil)
	if err != nil {
		return fmt.Errorf("initialize supabase SDK: %w", err)
	}
	c.sdk = sdk
	return nil
}

// SyncDir uploads every file in dir accepted by keep into the bucket,
// overwriting objects that already exist. Files rejected by keep (source
// documents in particular) never leave the machine.
func (c *Client) SyncDir(ctx context.Context, dir string, keep FileFilter) error {
	if c.sdk == nil {
		return fmt.Errorf("storage client not connected")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read sync dir %s: %w", dir, err)
	}

	upsert := true
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() || (keep != nil && !keep(entry.Name())) {
			continue
		}
		if err := c.uploadFile(dir, entry.Name(), upsert); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) uploadFile(dir, name string, upsert bool) error {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	contentType := contentTypeFor(name)
	_, err = c.sdk.Storage.UploadFile(c.cfg.Bucket, name, f, storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return fmt.Errorf("upload %s to bucket %s: %w", name, c.cfg.Bucket, err)
	}
	return nil
}

// contentTypeFor maps an image filename to its MIME type.
func contentTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
