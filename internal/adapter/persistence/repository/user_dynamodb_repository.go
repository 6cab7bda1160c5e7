package repository

import (
	"context"
	"time"

	"vizinhanca-ativa/internal/domain/entities"
	"vizinhanca-ativa/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUsersTableName = "users"

	usersTypeIndex = "user_type-index"
)

type userItem struct {
	ID          string `dynamodbav:"id"`
	FullName    string `dynamodbav:"full_name"`
	CompanyName string `dynamodbav:"company_name,omitempty"`
	UserType    string `dynamodbav:"user_type"`
	Category    string `dynamodbav:"category,omitempty"`
	Location    string `dynamodbav:"location,omitempty"`
	Phone       string `dynamodbav:"phone,omitempty"`
	LogoURL     string `dynamodbav:"logo_url,omitempty"`
	Reputation  string `dynamodbav:"reputation"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// UserDynamoRepository persists profiles keyed by the identity provider's
// subject id. Upsert overwrites the whole item; the usecase is responsible
// for carrying forward fields the caller may not set.
type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) Upsert(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) ListByType(ctx context.Context, role entities.UserRole) ([]entities.User, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usersTypeIndex),
		KeyConditionExpression: aws.String("user_type = :user_type"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_type": &types.AttributeValueMemberS{Value: string(role)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.User, 0, len(out.Items))
	for _, raw := range out.Items {
		var it userItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromUserItem(it))
	}
	return items, nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:          u.ID,
		FullName:    u.FullName,
		CompanyName: u.CompanyName,
		UserType:    string(u.UserType),
		Category:    string(u.Category),
		Location:    u.Location,
		Phone:       u.Phone,
		LogoURL:     u.LogoURL,
		Reputation:  u.Reputation.String(),
		CreatedAt:   u.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromUserItem(it userItem) entities.User {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.User{
		ID:          it.ID,
		FullName:    it.FullName,
		CompanyName: it.CompanyName,
		UserType:    entities.UserRole(it.UserType),
		Category:    entities.DemandCategory(it.Category),
		Location:    it.Location,
		Phone:       it.Phone,
		LogoURL:     it.LogoURL,
		Reputation:  decimalFromString(it.Reputation),
		CreatedAt:   createdAt,
	}
}
