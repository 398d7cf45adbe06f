package crew

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/aws/aws-sdk-go/service/dynamodb/expression"
)

// Attribute names of the composite key.
const (
	AttributeMovieID  = "movieId"
	AttributeCrewRole = "crewRole"
)

// Store finds the crew records stored under a (movieId, crewRole) key.
type Store interface {
	FindCrew(ctx context.Context, movieID int64, role string) ([]Record, error)
}

// DynamoStore is a Store backed by a DynamoDB table.
type DynamoStore struct {
	svc       dynamodbiface.DynamoDBAPI
	tableName string
	indexName string
}

var _ Store = (*DynamoStore)(nil)

// NewDynamoStore returns a store querying tableName. When indexName is not
// empty the query runs against that secondary index instead.
func NewDynamoStore(svc dynamodbiface.DynamoDBAPI, tableName, indexName string) *DynamoStore {
	return &DynamoStore{
		svc:       svc,
		tableName: tableName,
		indexName: indexName,
	}
}

// FindCrew issues a single Query on the composite key and decodes the
// returned items in the order DynamoDB sent them.
func (s *DynamoStore) FindCrew(ctx context.Context, movieID int64, role string) ([]Record, error) {
	keyCond := expression.Key(AttributeMovieID).Equal(expression.Value(movieID)).
		And(expression.Key(AttributeCrewRole).Equal(expression.Value(role)))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("building key condition: %w", err)
	}

	params := &dynamodb.QueryInput{
		TableName:                 aws.String(s.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}
	if s.indexName != "" {
		params.IndexName = aws.String(s.indexName)
	}

	res, err := s.svc.QueryWithContext(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("querying crew of movie %d (%s): %w", movieID, role, err)
	}

	records := make([]Record, 0, len(res.Items))
	if err := dynamodbattribute.UnmarshalListOfMaps(res.Items, &records); err != nil {
		return nil, fmt.Errorf("decoding crew records: %w", err)
	}

	return records, nil
}
