package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Storage uploads binary assets to an S3-compatible object store and hands
// back public URLs. The URL, not the bytes, is what gets persisted.
type Storage struct {
	client *s3.S3
	bucket string
	host   string
}

func NewStorage(accessKey, secretKey, bucket, region, endpoint string) *Storage {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
		Credentials: credentials.NewStaticCredentials(
			accessKey, secretKey, "",
		),
	}))
	return &Storage{client: s3.New(sess), bucket: bucket, host: hostFromEndpoint(endpoint)}
}

// hostFromEndpoint strips the scheme and any trailing slash so the endpoint
// can double as the public URL host in virtual-hosted style.
func hostFromEndpoint(endpoint string) string {
	host := strings.TrimPrefix(endpoint, "https://")
	host = strings.TrimPrefix(host, "http://")
	return strings.TrimSuffix(host, "/")
}

func (s *Storage) publicURL(filePath string) string {
	return fmt.Sprintf("https://%s.%s/%s", s.bucket, s.host, filePath)
}

func (s *Storage) UploadFile(file []byte, fileName, folder, contentType string) (string, error) {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	_, err := s.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return s.publicURL(filePath), nil
}
