package utility

import (
	"fmt"
	"mime/multipart"

	"github.com/aws/aws-sdk-go/aws/session"

	s3 "trafficmaster/aws"
)

// S3ImageStore uploads question images to an S3 bucket.
type S3ImageStore struct {
	bucket string
	region string
	sess   *session.Session
}

func NewS3ImageStore(awsConfig s3.AWSConfig, bucket string) *S3ImageStore {
	return &S3ImageStore{
		bucket: bucket,
		region: awsConfig.Region,
		sess:   s3.CreateSession(awsConfig),
	}
}

func (s *S3ImageStore) SaveImage(fileHeader *multipart.FileHeader, name string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	key := fmt.Sprintf("assets/questions/%s", name)
	if err := s3.UploadObject(s.bucket, key, s.sess, file); err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
