package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrConcurrentPublish is returned when another writer published the same
// version concurrently.
var ErrConcurrentPublish = errors.New("concurrent publish detected")

// DDBClient is the interface for DynamoDB operations used by PublishLog.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// PublishLog tracks the latest published export with DynamoDB.
//
// S3 has no compare-and-swap, so repeatedly exporting a filtered dataset and
// pointing consumers at "the current export" needs an external commit log.
// DynamoDB conditional writes provide the atomic pointer update: each publish
// appends a monotonically increasing version row, and readers resolve the
// highest version.
//
// Table schema:
//   - Partition key: base_uri (string) - the S3 bucket/prefix
//   - Sort key: version (number) - monotonically increasing version
type PublishLog struct {
	ddbClient DDBClient
	tableName string
	baseURI   string
}

// NewPublishLog creates a publish log over the given DynamoDB table.
// baseURI should be "s3://bucket/prefix", used as the partition key.
func NewPublishLog(ddbClient DDBClient, tableName, baseURI string) *PublishLog {
	return &PublishLog{
		ddbClient: ddbClient,
		tableName: tableName,
		baseURI:   baseURI,
	}
}

// Latest returns the most recently published version and export key.
// Version zero means nothing has been published yet.
func (l *PublishLog) Latest(ctx context.Context) (uint64, string, error) {
	resp, err := l.ddbClient.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(l.tableName),
		KeyConditionExpression: aws.String("base_uri = :uri"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uri": &types.AttributeValueMemberS{Value: l.baseURI},
		},
		ScanIndexForward: aws.Bool(false), // Descending order
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return 0, "", fmt.Errorf("failed to query DynamoDB: %w", err)
	}

	if len(resp.Items) == 0 {
		return 0, "", nil
	}

	item := resp.Items[0]
	versionAttr, ok := item["version"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, "", errors.New("invalid version attribute in DynamoDB")
	}
	keyAttr, ok := item["export_key"].(*types.AttributeValueMemberS)
	if !ok {
		return 0, "", errors.New("invalid export_key attribute in DynamoDB")
	}

	var version uint64
	if _, err := fmt.Sscanf(versionAttr.Value, "%d", &version); err != nil {
		return 0, "", fmt.Errorf("failed to parse version: %w", err)
	}

	return version, keyAttr.Value, nil
}

// Publish atomically records exportKey as the next version using a DynamoDB
// conditional write. Returns the committed version.
func (l *PublishLog) Publish(ctx context.Context, exportKey string) (uint64, error) {
	currentVersion, _, err := l.Latest(ctx)
	if err != nil {
		return 0, err
	}

	newVersion := currentVersion + 1

	// Conditional put: only succeed if this version doesn't exist yet.
	_, err = l.ddbClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(l.tableName),
		Item: map[string]types.AttributeValue{
			"base_uri":   &types.AttributeValueMemberS{Value: l.baseURI},
			"version":    &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", newVersion)},
			"export_key": &types.AttributeValueMemberS{Value: exportKey},
		},
		ConditionExpression: aws.String("attribute_not_exists(version)"),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return 0, ErrConcurrentPublish
		}
		return 0, fmt.Errorf("failed to commit version to DynamoDB: %w", err)
	}

	return newVersion, nil
}
