package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const (
	pictureKeyPrefix  = "profile-pictures"
	defaultPresignTTL = 15 * time.Minute
)

// Replaced in tests.
var (
	loadDefaultAWSConfig  = config.LoadDefaultConfig
	newS3ClientFromConfig = s3.NewFromConfig
	newS3PresignClient    = func(c *s3.Client) putPresigner { return s3.NewPresignClient(c) }
	newObjectKey          = func(userID uuid.UUID) string {
		return fmt.Sprintf("%s/%s/%s", pictureKeyPrefix, userID, uuid.New())
	}
)

type putPresigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Config holds the object storage settings.
type S3Config struct {
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
	Bucket       string
	Expires      time.Duration
}

// PicturePresigner issues presigned PUT URLs for profile pictures on an
// S3-compatible store.
type PicturePresigner struct {
	presigner putPresigner
	bucket    string
	expires   time.Duration
	now       func() time.Time
}

// NewPicturePresigner builds the S3 client. No request is made until a URL is presigned.
func NewPicturePresigner(ctx context.Context, cfg S3Config) (*PicturePresigner, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	expires := cfg.Expires
	if expires <= 0 {
		expires = defaultPresignTTL
	}

	return &PicturePresigner{
		presigner: newS3PresignClient(client),
		bucket:    cfg.Bucket,
		expires:   expires,
		now:       time.Now,
	}, nil
}

// PresignPut returns a fresh object key for the user and a URL to upload it.
func (p *PicturePresigner) PresignPut(ctx context.Context, userID uuid.UUID) (string, string, time.Time, error) {
	key := newObjectKey(userID)
	issuedAt := p.now()

	req, err := p.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(p.expires))
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("presign put: %w", err)
	}

	return key, req.URL, issuedAt.Add(p.expires), nil
}
