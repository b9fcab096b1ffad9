// Package archive guarda copias de los archivos de carga masiva en S3.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Dill1027/DT-Price-List/internal/application/bulkupload"
)

var _ bulkupload.Archiver = (*S3Archive)(nil)

// PutObjectAPI es el subconjunto de *s3.Client que usa el archivo.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archive implementa bulkupload.Archiver sobre un bucket de S3.
type S3Archive struct {
	client PutObjectAPI
	bucket string
	prefix string
}

// NewS3Archive crea el archivo; prefix se antepone a cada clave (sin "/" final).
func NewS3Archive(client PutObjectAPI, bucket, prefix string) *S3Archive {
	return &S3Archive{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// Key devuelve la clave completa del objeto para key.
func (a *S3Archive) Key(key string) string {
	if a.prefix == "" {
		return key
	}
	return a.prefix + "/" + key
}

// Archive sube data como un objeto nuevo.
func (a *S3Archive) Archive(ctx context.Context, key, contentType string, data []byte) error {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(a.Key(key)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", a.Key(key), err)
	}
	return nil
}
