package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	sc "github.com/godsapp/freizeit-server/internal/server/config"
	"github.com/godsapp/freizeit-server/internal/server/models"
	"github.com/godsapp/freizeit-server/internal/server/repositories/repomanager"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}
)

// Upload is a file received from a multipart form, destined for object
// storage.
type Upload struct {
	Filename string
	Body     io.Reader
}

// FreizeitService creates trip records and stores their logos in an
// S3-compatible backend, keeping only the object key in the database.
type FreizeitService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewFreizeitService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config) *FreizeitService {
	return &FreizeitService{db: db, repomanager: m, config: cfg}
}

// RandomStorageKey returns a date-bucketed random object key, keeping the
// original file extension so stored logos stay recognizable.
func RandomStorageKey(filename string) string {
	d := time.Now()
	return fmt.Sprintf("logos/%d/%d/%d/%v%s", d.Year(), d.Month(), d.Day(), uuid.New(), path.Ext(filename))
}

func (s *FreizeitService) getS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

func (s *FreizeitService) storeLogo(ctx context.Context, up *Upload) (string, error) {
	if up == nil {
		return "", nil
	}

	client, err := s.getS3Client(ctx)
	if err != nil {
		return "", err
	}

	key := RandomStorageKey(up.Filename)
	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
		Body:   up.Body,
	})
	if err != nil {
		return "", fmt.Errorf("error storing logo: %w", err)
	}
	return key, nil
}

// Create uploads the optional logos and inserts the trip record. Logo keys
// are empty when no file was provided.
func (s *FreizeitService) Create(ctx context.Context, f *models.Freizeit, logo, churchLogo *Upload) (*models.Freizeit, error) {
	logoKey, err := s.storeLogo(ctx, logo)
	if err != nil {
		return nil, err
	}
	churchLogoKey, err := s.storeLogo(ctx, churchLogo)
	if err != nil {
		return nil, err
	}

	f.LogoKey = logoKey
	f.ChurchLogoKey = churchLogoKey

	repo := s.repomanager.Freizeiten(s.db)
	f, err = repo.Create(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("error creating freizeit: %w", err)
	}
	return f, nil
}
