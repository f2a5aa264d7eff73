// Package s3 provides an S3-backed blobstore.BlobStore for exports, plus a
// DynamoDB-backed publish log for tracking the latest export atomically.
//
// Create table for the publish log with:
//
//	aws dynamodb create-table \
//	  --table-name tablefilter-exports \
//	  --attribute-definitions AttributeName=base_uri,AttributeType=S AttributeName=version,AttributeType=N \
//	  --key-schema AttributeName=base_uri,KeyType=HASH AttributeName=version,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
package s3
