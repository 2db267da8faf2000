package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	sc "github.com/avoganov/ancora/internal/server/config"
)

func newAudioService() *AudioService {
	cfg := &sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "ancora-audio",
	}
	return NewAudioService(cfg)
}

func TestGetUploadURL_ErrorFromConfigLoader(t *testing.T) {
	svc := newAudioService()

	orig := loadDefaultAWSConfig
	defer func() { loadDefaultAWSConfig = orig }()
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, _, err := svc.GetUploadURL(context.Background(), "u1")
	if err == nil || err.Error() != "load-fail" {
		t.Fatalf("want load-fail, got %v", err)
	}
}

func TestGetDownloadURL_ErrorFromConfigLoader(t *testing.T) {
	svc := newAudioService()

	orig := loadDefaultAWSConfig
	defer func() { loadDefaultAWSConfig = orig }()
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, err := svc.GetDownloadURL(context.Background(), "any-key")
	if err == nil || err.Error() != "load-fail" {
		t.Fatalf("want load-fail, got %v", err)
	}
}

func TestGetUploadURL_PresignError(t *testing.T) {
	svc := newAudioService()

	origPut := presignPutObject
	defer func() { presignPutObject = origPut }()
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign-fail")
	}

	_, _, err := svc.GetUploadURL(context.Background(), "u1")
	if err == nil || err.Error() != "presign-fail" {
		t.Fatalf("want presign-fail, got %v", err)
	}
}

func TestGetUploadURL_Success(t *testing.T) {
	svc := newAudioService()

	origPut := presignPutObject
	defer func() { presignPutObject = origPut }()

	var gotBucket, gotKey string
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		gotBucket = aws.ToString(in.Bucket)
		gotKey = aws.ToString(in.Key)
		return &v4.PresignedHTTPRequest{URL: "http://signed/put"}, nil
	}

	key, url, err := svc.GetUploadURL(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "http://signed/put" {
		t.Fatalf("unexpected url: %q", url)
	}
	if key != gotKey || gotBucket != "ancora-audio" {
		t.Fatalf("key/bucket mismatch: key=%q signedKey=%q bucket=%q", key, gotKey, gotBucket)
	}
	if !strings.HasPrefix(key, "audio/u1/") {
		t.Fatalf("key not scoped to user: %q", key)
	}
}

func TestGetDownloadURL_Success(t *testing.T) {
	svc := newAudioService()

	origGet := presignGetObject
	defer func() { presignGetObject = origGet }()

	var gotKey string
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		gotKey = aws.ToString(in.Key)
		return &v4.PresignedHTTPRequest{URL: "http://signed/get"}, nil
	}

	url, err := svc.GetDownloadURL(context.Background(), "audio/u1/2026/3/1/abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "http://signed/get" {
		t.Fatalf("unexpected url: %q", url)
	}
	if gotKey != "audio/u1/2026/3/1/abc" {
		t.Fatalf("unexpected key: %q", gotKey)
	}
}
