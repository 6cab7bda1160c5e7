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
	"github.com/shopspring/decimal"
)

const (
	defaultCampaignsTableName  = "campaigns"
	defaultSupportersTableName = "supporters"

	campaignsEntityIndex    = "entity-index"
	supportersCampaignIndex = "campaign_id-index"
	supportersProviderIndex = "provider_id-index"

	campaignEntityValue = "campaign"
)

// campaignItem deliberately omits "current": the running total is stored as
// a native DynamoDB number so the transactional ADD in AddSupporter can
// operate on it, and is read/written manually next to the struct.
type campaignItem struct {
	ID          string `dynamodbav:"id"`
	Entity      string `dynamodbav:"entity"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description"`
	ImageURL    string `dynamodbav:"image_url,omitempty"`
	Goal        string `dynamodbav:"goal"`
	CreatorID   string `dynamodbav:"creator_id"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type supporterItem struct {
	ID         string `dynamodbav:"id"`
	CampaignID string `dynamodbav:"campaign_id"`
	ProviderID string `dynamodbav:"provider_id"`
	Amount     string `dynamodbav:"amount"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// CampaignDynamoRepository persists campaigns and supporter contributions.
//
// Table requirements:
//   - campaigns: PK id; GSI entity-index (entity, created_at)
//   - supporters: PK id; GSIs campaign_id-index (campaign_id, created_at),
//     provider_id-index (provider_id)
//
// A campaign's "current" total changes only inside the AddSupporter
// transaction, by exactly the amount of the supporter record written with it.

type CampaignDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	supportersTable string
}

var _ interfaces.ICampaignRepository = (*CampaignDynamoRepository)(nil)

func NewCampaignDynamoRepository(ddb *dynamodb.Client) *CampaignDynamoRepository {
	return &CampaignDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("CAMPAIGNS_TABLE", defaultCampaignsTableName),
		supportersTable: getenvDefault("SUPPORTERS_TABLE", defaultSupportersTableName),
	}
}

func (r *CampaignDynamoRepository) Create(ctx context.Context, c entities.Campaign) (entities.Campaign, error) {
	av, err := attributevalue.MarshalMap(toCampaignItem(c))
	if err != nil {
		return entities.Campaign{}, err
	}
	av["current"] = &types.AttributeValueMemberN{Value: c.Current.String()}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Campaign{}, mapConditionalErr(err, interfaces.ErrRecordExists)
	}
	return c, nil
}

func (r *CampaignDynamoRepository) GetByID(ctx context.Context, id string) (entities.Campaign, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Campaign{}, err
	}
	if len(out.Item) == 0 {
		return entities.Campaign{}, nil
	}
	return campaignFromAttributes(out.Item)
}

func (r *CampaignDynamoRepository) List(ctx context.Context) ([]entities.Campaign, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(campaignsEntityIndex),
		KeyConditionExpression: aws.String("entity = :entity"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":entity": &types.AttributeValueMemberS{Value: campaignEntityValue},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Campaign, 0, len(out.Items))
	for _, raw := range out.Items {
		c, err := campaignFromAttributes(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, nil
}

// AddSupporter writes the supporter record and adds its amount to the
// campaign's current total in one transaction. The ADD is commutative, so
// concurrent contributions each land exactly once, and no reader ever sees
// the supporter without the raised total or vice versa.
func (r *CampaignDynamoRepository) AddSupporter(ctx context.Context, s entities.Supporter) (entities.Supporter, error) {
	av, err := attributevalue.MarshalMap(toSupporterItem(s))
	if err != nil {
		return entities.Supporter{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.supportersTable),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: s.CampaignID},
					},
					ConditionExpression: aws.String("attribute_exists(#id)"),
					UpdateExpression:    aws.String("ADD #current :amount"),
					ExpressionAttributeNames: map[string]string{
						"#id":      "id",
						"#current": "current",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount": &types.AttributeValueMemberN{Value: s.Amount.String()},
					},
				},
			},
		},
	})
	if err != nil {
		return entities.Supporter{}, mapTransactErr(err, interfaces.ErrRecordExists, interfaces.ErrConditionalCheckFailed)
	}
	return s, nil
}

func (r *CampaignDynamoRepository) ListSupportersByCampaignID(ctx context.Context, campaignID string) ([]entities.Supporter, error) {
	return r.querySupporters(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.supportersTable),
		IndexName:              aws.String(supportersCampaignIndex),
		KeyConditionExpression: aws.String("campaign_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: campaignID},
		},
	})
}

func (r *CampaignDynamoRepository) ListSupportersByProviderID(ctx context.Context, providerID string) ([]entities.Supporter, error) {
	return r.querySupporters(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.supportersTable),
		IndexName:              aws.String(supportersProviderIndex),
		KeyConditionExpression: aws.String("provider_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: providerID},
		},
	})
}

func (r *CampaignDynamoRepository) querySupporters(ctx context.Context, in *dynamodb.QueryInput) ([]entities.Supporter, error) {
	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Supporter, 0, len(out.Items))
	for _, raw := range out.Items {
		var it supporterItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSupporterItem(it))
	}
	return items, nil
}

func toCampaignItem(c entities.Campaign) campaignItem {
	return campaignItem{
		ID:          c.ID,
		Entity:      campaignEntityValue,
		Title:       c.Title,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Goal:        c.Goal.String(),
		CreatorID:   c.CreatorID,
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func campaignFromAttributes(raw map[string]types.AttributeValue) (entities.Campaign, error) {
	var it campaignItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Campaign{}, err
	}

	current := decimal.Zero
	if n, ok := raw["current"].(*types.AttributeValueMemberN); ok {
		current = decimalFromString(n.Value)
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Campaign{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		ImageURL:    it.ImageURL,
		Goal:        decimalFromString(it.Goal),
		Current:     current,
		CreatorID:   it.CreatorID,
		CreatedAt:   createdAt,
	}, nil
}

func toSupporterItem(s entities.Supporter) supporterItem {
	return supporterItem{
		ID:         s.ID,
		CampaignID: s.CampaignID,
		ProviderID: s.ProviderID,
		Amount:     s.Amount.String(),
		CreatedAt:  s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSupporterItem(it supporterItem) entities.Supporter {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Supporter{
		ID:         it.ID,
		CampaignID: it.CampaignID,
		ProviderID: it.ProviderID,
		Amount:     decimalFromString(it.Amount),
		CreatedAt:  createdAt,
	}
}
