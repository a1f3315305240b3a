package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/travelmate-app/travelmate-backend/config"
	apperrors "github.com/travelmate-app/travelmate-backend/errors"
	"github.com/travelmate-app/travelmate-backend/logger"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// S3Uploader is the subset of the S3 client the image service uses.
type S3Uploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// ImageService stores destination photos in S3-compatible object storage.
type ImageService struct {
	client        S3Uploader
	bucket        string
	publicBaseURL string
	maxBytes      int64
}

// NewS3Client builds an S3 client from the storage config. A custom endpoint
// switches the client into path-style mode for S3-compatible providers.
func NewS3Client(ctx context.Context, cfg config.StorageConfig) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("loading storage credentials: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return client, nil
}

func NewImageService(client S3Uploader, cfg config.StorageConfig) *ImageService {
	return &ImageService{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		maxBytes:      cfg.MaxUploadBytes,
	}
}

// UploadDestinationImage validates and stores one image, returning its public
// URL. Content type is sniffed from the bytes, never trusted from the client.
func (s *ImageService) UploadDestinationImage(ctx context.Context, destinationID string, r io.Reader) (string, error) {
	log := logger.GetLogger()

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", apperrors.ValidationFailed("image_too_large",
			fmt.Sprintf("Image exceeds the %d byte limit", s.maxBytes))
	}

	mtype := mimetype.Detect(data)
	ext, ok := allowedImageTypes[mtype.String()]
	if !ok {
		return "", apperrors.ValidationFailed("unsupported_image_type",
			fmt.Sprintf("Unsupported image type %s", mtype.String()))
	}

	key := path.Join("destinations", destinationID, uuid.NewString()+ext)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(mtype.String()),
		CacheControl: aws.String("public, max-age=31536000"),
	})
	if err != nil {
		log.Errorw("Failed to upload image", "error", err, "key", key)
		return "", apperrors.ExternalService("storage", fmt.Errorf("uploading image: %w", err))
	}

	log.Infow("Destination image uploaded",
		"destinationID", destinationID,
		"key", key,
		"bytes", len(data),
		"contentType", mtype.String())

	return s.publicBaseURL + "/" + key, nil
}

// DeleteImage removes a previously uploaded object by its public URL.
func (s *ImageService) DeleteImage(ctx context.Context, imageURL string) error {
	key := strings.TrimPrefix(imageURL, s.publicBaseURL+"/")
	if key == imageURL || key == "" {
		return apperrors.ValidationFailed("invalid_image_url", "Image URL is not managed by this service")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return apperrors.ExternalService("storage", fmt.Errorf("deleting image %s: %w", key, err))
	}

	return nil
}
