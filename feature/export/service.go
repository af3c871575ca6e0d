package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"customer-service/core/storage"
	"customer-service/feature/customer/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Millisecond precision keeps back-to-back exports from overwriting each other.
const objectTimeLayout = "20060102T150405.000Z"

// ErrNotFound is returned when a named export does not exist.
var ErrNotFound = errors.New("export not found")

// CustomerLister is the part of the customer service an export needs.
type CustomerLister interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
}

// Snapshot is the document uploaded for each export.
type Snapshot struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Count       int               `json:"count"`
	Customers   []models.Customer `json:"customers"`
}

// Report describes a finished export.
type Report struct {
	Object string `json:"object"`
	Count  int    `json:"count"`
	Size   int64  `json:"size"`
}

// Service handles export operations.
type Service struct {
	customers CustomerLister
	client    storage.Client
	bucket    string
	region    string
	prefix    string
	logger    *zap.Logger
	sf        singleflight.Group
	now       func() time.Time
}

// NewService creates a new export service.
func NewService(customers CustomerLister, client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	return &Service{
		customers: customers,
		client:    client,
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		prefix:    cfg.ExportPrefix,
		logger:    logger,
		now:       time.Now,
	}
}

// Export uploads a snapshot of all customers.
// Callers arriving while an export is running receive that export's report.
func (s *Service) Export(ctx context.Context) (*Report, error) {
	result, err, shared := s.sf.Do("export", func() (interface{}, error) {
		return s.export(ctx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Export result shared between callers")
	}
	return result.(*Report), nil
}

func (s *Service) export(ctx context.Context) (*Report, error) {
	customers, err := s.customers.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	generated := s.now().UTC()
	data, err := json.Marshal(Snapshot{
		GeneratedAt: generated,
		Count:       len(customers),
		Customers:   customers,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := storage.EnsureBucket(ctx, s.client, s.bucket, s.region); err != nil {
		return nil, err
	}

	object := s.ObjectName(generated)
	_, err = s.client.PutObject(ctx, s.bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", object, err)
	}

	s.logger.Info("Customer export uploaded",
		zap.String("bucket", s.bucket),
		zap.String("object", object),
		zap.Int("count", len(customers)),
	)

	return &Report{Object: object, Count: len(customers), Size: int64(len(data))}, nil
}

// ObjectName returns the object key for a snapshot generated at t.
func (s *Service) ObjectName(t time.Time) string {
	stamp := strings.Replace(t.UTC().Format(objectTimeLayout), ".", "", 1)
	return s.prefix + "customers-" + stamp + ".json"
}

// List returns the keys of stored exports, oldest first.
func (s *Service) List(ctx context.Context) ([]string, error) {
	objects := []string{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list exports: %w", obj.Err)
		}
		objects = append(objects, obj.Key)
	}
	return objects, nil
}

// Get downloads and decodes the export stored under the prefix with the given name.
func (s *Service) Get(ctx context.Context, name string) (*Snapshot, error) {
	object, err := s.objectKey(name)
	if err != nil {
		return nil, err
	}

	reader, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, translateObjectError(object, err)
	}
	defer reader.Close()

	var snapshot Snapshot
	if err := json.NewDecoder(reader).Decode(&snapshot); err != nil {
		return nil, translateObjectError(object, err)
	}
	return &snapshot, nil
}

// Delete removes the export with the given name, failing with ErrNotFound
// when no such export is stored.
func (s *Service) Delete(ctx context.Context, name string) error {
	object, err := s.objectKey(name)
	if err != nil {
		return err
	}

	// S3 reports success for removing a missing key, so check existence first.
	if _, err := s.client.StatObject(ctx, s.bucket, object, minio.StatObjectOptions{}); err != nil {
		return translateObjectError(object, err)
	}

	if err := s.client.RemoveObject(ctx, s.bucket, object, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove %s: %w", object, err)
	}
	s.logger.Info("Customer export removed", zap.String("object", object))
	return nil
}

// objectKey maps an export name such as customers-20261017T120000000Z.json to its key.
// Names that could escape the export prefix are rejected as not found.
func (s *Service) objectKey(name string) (string, error) {
	if !strings.HasPrefix(name, "customers-") || !strings.HasSuffix(name, ".json") || strings.Contains(name, "/") {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return s.prefix + name, nil
}

func translateObjectError(object string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: %s", ErrNotFound, object)
	}
	return fmt.Errorf("failed to read %s: %w", object, err)
}
