package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/barber-booking/internal/config"
)

const (
	MaxAvatarBytes = 5 << 20
	avatarMaxSide  = 256
	avatarQuality  = 80
)

var ErrInvalidImage = errors.New("invalid_image")

// Transcode decodes a PNG or JPEG, shrinks it to fit avatarMaxSide and
// re-encodes it as WebP. Smaller images keep their size.
func Transcode(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(io.LimitReader(r, MaxAvatarBytes))
	if err != nil {
		return nil, ErrInvalidImage
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, ErrInvalidImage
	}

	if w > avatarMaxSide || h > avatarMaxSide {
		if w >= h {
			h = h * avatarMaxSide / w
			w = avatarMaxSide
		} else {
			w = w * avatarMaxSide / h
			h = avatarMaxSide
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: avatarQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// AvatarStore keeps user avatars in an S3-compatible bucket.
type AvatarStore struct {
	client    ObjectPutter
	bucket    string
	publicURL string
}

func NewAvatarStore(cfg *config.Config) *AvatarStore {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := cfg.S3PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return newAvatarStore(client, cfg.S3Bucket, publicURL)
}

func newAvatarStore(client ObjectPutter, bucket, publicURL string) *AvatarStore {
	return &AvatarStore{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Upload transcodes the image and stores it under a fresh key, returning
// its public URL.
func (s *AvatarStore) Upload(ctx context.Context, userID uuid.UUID, r io.Reader) (string, error) {
	data, err := Transcode(r)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("avatars/%s/%s.webp", userID, uuid.NewString())

	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String("image/webp"),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	}); err != nil {
		return "", err
	}

	return s.publicURL + "/" + key, nil
}
