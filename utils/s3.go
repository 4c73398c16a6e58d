package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"mime"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var s3Client *s3.Client

func InitS3() {
	region := os.Getenv("S3_REGION")
	if region == "" {
		region = os.Getenv("AWS_REGION") // fallback
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		log.Fatalf("Unable to load AWS config for S3: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
}

// DecodeBase64Image splits a "data:<mime>;base64,<data>" payload into its
// raw bytes and content type.
func DecodeBase64Image(base64Data string) ([]byte, string, error) {
	parts := strings.Split(base64Data, ",")
	if len(parts) != 2 {
		return nil, "", fmt.Errorf("invalid base64 image")
	}

	mediaType := strings.SplitN(parts[0], ":", 2)
	if len(mediaType) != 2 {
		return nil, "", fmt.Errorf("invalid base64 image header")
	}
	contentType := strings.SplitN(mediaType[1], ";", 2)[0] // "image/jpeg"

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %v", err)
	}
	return data, contentType, nil
}

// UploadAlertPhoto stores the image bytes under alert-photos/ and returns
// its public URL.
func UploadAlertPhoto(data []byte, contentType string) (string, error) {
	if s3Client == nil {
		return "", fmt.Errorf("S3 client not initialized")
	}

	ext := extensionFor(contentType)
	key := fmt.Sprintf("alert-photos/%d%s", time.Now().UnixNano(), ext)

	_, err := s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %v", err)
	}

	if cfURL := os.Getenv("CLOUDFRONT_URL"); cfURL != "" {
		return fmt.Sprintf("%s/%s", cfURL, key), nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", os.Getenv("S3_BUCKET"), key), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 {
		return "." + parts[1]
	}
	return ""
}
