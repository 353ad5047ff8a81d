package objectstore

import (
	"bytes"
	"context"
	"io"

	"github.com/certhub/certhub/config"
	"github.com/certhub/certhub/config/configkey"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type ObjectStore interface {
	SaveObjectToBucket(bucket string, objectName string, data []byte, contentType string) error
	GetObjectFromBucket(bucket string, objectName string) ([]byte, error)
}

type Impl struct {
	MinioClient *minio.Client
}

func NewObjectStore() (*Impl, error) {
	client, err := GetMinioClient()
	if err != nil {
		return nil, err
	}
	return &Impl{MinioClient: client}, nil
}

func (obs *Impl) SaveObjectToBucket(bucket string, objectName string, data []byte, contentType string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	exists, _ := obs.MinioClient.BucketExists(ctx, bucket)
	if !exists {
		err := obs.MinioClient.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
		if err != nil {
			logrus.Error(err)
		}
	}

	uploadInfo, err := obs.MinioClient.PutObject(ctx, bucket, objectName,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return err
	}

	logrus.Infof("Saved to bucket: %+v", uploadInfo)
	return nil
}

func (obs *Impl) GetObjectFromBucket(bucket string, objectName string) ([]byte, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	objectPtr, err := obs.MinioClient.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	return io.ReadAll(objectPtr)
}

func GetMinioClient() (*minio.Client, error) {
	accessKey := viper.GetString(configkey.MinioAccessKey)
	secretKey := viper.GetString(configkey.MinioSecretKey)
	minioHost := config.MustGetString(configkey.MinioHost)
	secure := viper.GetBool(configkey.MinioSecure)

	minioClient, err := minio.New(minioHost, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	return minioClient, nil
}
