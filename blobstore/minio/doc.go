// Package minio provides a blobstore.BlobStore for MinIO and other
// S3-compatible object stores, as an export destination.
//
// Example:
//
//	client, _ := minio.New("play.min.io", &minio.Options{
//	    Creds: credentials.NewStaticV4(accessKey, secretKey, ""),
//	})
//	store := miniostore.NewStore(client, "my-bucket", "exports/")
package minio
