package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kbju-backend/application/ports"
	"kbju-backend/domain/meal"
	apperrors "kbju-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"
)

// MealRepository implements ports.MealRepository against a DynamoDB table
// keyed by user_id (partition) and timestamp (sort).
type MealRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewMealRepository creates a new MealRepository
func NewMealRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.MealRepository {
	return &MealRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// mealItem is the DynamoDB item structure for a nutrition record.
type mealItem struct {
	UserID      string  `dynamodbav:"user_id"`
	Timestamp   string  `dynamodbav:"timestamp"`
	Calories    float64 `dynamodbav:"calories"`
	Protein     float64 `dynamodbav:"protein"`
	Fat         float64 `dynamodbav:"fat"`
	Carbs       float64 `dynamodbav:"carbs"`
	MealType    string  `dynamodbav:"meal_type,omitempty"`
	Description string  `dynamodbav:"description,omitempty"`
}

func toItem(m meal.Meal) mealItem {
	return mealItem{
		UserID:      m.UserID,
		Timestamp:   meal.FormatTimestamp(m.Timestamp),
		Calories:    m.Calories,
		Protein:     m.Protein,
		Fat:         m.Fat,
		Carbs:       m.Carbs,
		MealType:    m.MealType,
		Description: m.Description,
	}
}

func (it mealItem) toMeal() (meal.Meal, error) {
	ts, err := meal.ParseTimestamp(it.Timestamp)
	if err != nil {
		return meal.Meal{}, fmt.Errorf("invalid timestamp attribute %q: %w", it.Timestamp, err)
	}
	return meal.Meal{
		UserID:      it.UserID,
		Timestamp:   ts,
		Calories:    it.Calories,
		Protein:     it.Protein,
		Fat:         it.Fat,
		Carbs:       it.Carbs,
		MealType:    it.MealType,
		Description: it.Description,
	}, nil
}

// Save persists one meal with PutItem. An exact partition+sort key collision
// overwrites the previous record; the microsecond sort key makes that rare
// but the store offers no uniqueness guard beyond the key.
func (r *MealRepository) Save(ctx context.Context, m meal.Meal) error {
	av, err := attributevalue.MarshalMap(toItem(m))
	if err != nil {
		return apperrors.NewStorageError("failed to marshal meal").WithCause(err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		return r.storageError("put meal", m.UserID, err)
	}

	r.logger.Debug("Saved meal to DynamoDB",
		zap.String("userID", m.UserID),
		zap.String("timestamp", meal.FormatTimestamp(m.Timestamp)),
	)

	return nil
}

// ListByUser returns up to limit meals for a user in the store's native
// order, ascending by the timestamp sort key.
func (r *MealRepository) ListByUser(ctx context.Context, userID string, limit int) ([]meal.Meal, error) {
	keyCond := expression.Key("user_id").Equal(expression.Value(userID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build query expression").WithCause(err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(int32(limit)),
	}

	result, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, r.storageError("query meals", userID, err)
	}

	return r.unmarshalItems(result.Items)
}

// ListByUserBetween returns all meals for a user with timestamps in
// [start, end], both ends inclusive, following pagination until the range is
// exhausted.
func (r *MealRepository) ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]meal.Meal, error) {
	keyCond := expression.Key("user_id").Equal(expression.Value(userID)).
		And(expression.Key("timestamp").Between(
			expression.Value(meal.FormatTimestamp(start)),
			expression.Value(meal.FormatTimestamp(end)),
		))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build query expression").WithCause(err)
	}

	meals := []meal.Meal{}
	var startKey map[string]dynamodbtypes.AttributeValue

	for {
		input := &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
		}

		result, err := r.client.Query(ctx, input)
		if err != nil {
			return nil, r.storageError("query meals by range", userID, err)
		}

		page, err := r.unmarshalItems(result.Items)
		if err != nil {
			return nil, err
		}
		meals = append(meals, page...)

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	return meals, nil
}

func (r *MealRepository) unmarshalItems(items []map[string]dynamodbtypes.AttributeValue) ([]meal.Meal, error) {
	var raw []mealItem
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, apperrors.NewStorageError("failed to unmarshal meals").WithCause(err)
	}

	meals := make([]meal.Meal, 0, len(raw))
	for _, it := range raw {
		m, err := it.toMeal()
		if err != nil {
			return nil, apperrors.NewStorageError("corrupt meal item").WithCause(err)
		}
		meals = append(meals, m)
	}
	return meals, nil
}

// storageError classifies a DynamoDB failure, logging the AWS error code when
// one is present.
func (r *MealRepository) storageError(op, userID string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		r.logger.Error("DynamoDB operation failed",
			zap.String("operation", op),
			zap.String("userID", userID),
			zap.String("errorCode", apiErr.ErrorCode()),
			zap.Error(err),
		)
	} else {
		r.logger.Error("DynamoDB operation failed",
			zap.String("operation", op),
			zap.String("userID", userID),
			zap.Error(err),
		)
	}
	return apperrors.NewStorageError(fmt.Sprintf("dynamodb %s failed", op)).WithCause(err)
}
