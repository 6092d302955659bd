package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jhoicas/registro-api/internal/application/mutation"
	"github.com/jhoicas/registro-api/internal/domain/form"
	"github.com/jhoicas/registro-api/pkg/config"
)

var _ mutation.ImageStore = (*S3ImageStore)(nil)

// S3ImageStore guarda imágenes en un bucket S3-compatible (AWS S3, MinIO,
// etc.) y retorna la URL del objeto.
type S3ImageStore struct {
	client   *s3.Client
	bucket   string
	endpoint string
}

// NewS3ImageStore construye el store S3 desde la configuración.
func NewS3ImageStore(cfg config.StorageConfig) (*S3ImageStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage s3: bucket requerido")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("storage s3: credenciales requeridas")
	}

	endpoint := cfg.Endpoint
	if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey, cfg.SecretKey, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("storage s3: configuración AWS: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return &S3ImageStore{client: client, bucket: cfg.Bucket, endpoint: endpoint}, nil
}

// Save sube el binario al bucket bajo la clave derivada del displayName y
// retorna la URL del objeto. El mismo nombre sobrescribe el objeto anterior.
func (s *S3ImageStore) Save(ctx context.Context, img *form.File, displayName string) (string, error) {
	key := StorageKey(displayName, img.MediaType)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(img.Data),
		ContentType: aws.String(img.MediaType),
	})
	if err != nil {
		return "", fmt.Errorf("subir imagen %s: %w", key, err)
	}
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key), nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key), nil
}
