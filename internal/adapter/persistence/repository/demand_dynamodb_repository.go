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
	defaultDemandsTableName   = "demands"
	defaultProposalsTableName = "proposals"

	demandsAuthorIndex        = "author_id-index"
	demandsEntityIndex        = "entity-index"
	demandsHiredProviderIndex = "hired_provider_id-index"
	proposalsDemandIndex      = "demand_id-index"
	proposalsProviderIndex    = "provider_id-index"

	// Constant partition value for the entity-index, which exists only to
	// list all demands newest-first.
	demandEntityValue = "demand"
)

type demandItem struct {
	ID             string   `dynamodbav:"id"`
	Entity         string   `dynamodbav:"entity"`
	Title          string   `dynamodbav:"title"`
	Category       string   `dynamodbav:"category"`
	Description    string   `dynamodbav:"description"`
	Location       string   `dynamodbav:"location"`
	AuthorID       string   `dynamodbav:"author_id"`
	Status         string   `dynamodbav:"status"`
	ProposalsCount int      `dynamodbav:"proposals_count"`
	SafetyConcerns []string `dynamodbav:"safety_concerns"`
	CreatedAt      string   `dynamodbav:"created_at"`

	HiredProviderID   string `dynamodbav:"hired_provider_id,omitempty"`
	HiredProviderName string `dynamodbav:"hired_provider_name,omitempty"`
	HiredValue        string `dynamodbav:"hired_value,omitempty"`
	HiredAt           string `dynamodbav:"hired_at,omitempty"`
}

type proposalItem struct {
	ID                 string `dynamodbav:"id"`
	DemandID           string `dynamodbav:"demand_id"`
	Message            string `dynamodbav:"message"`
	Value              string `dynamodbav:"value"`
	ProviderID         string `dynamodbav:"provider_id"`
	ProviderName       string `dynamodbav:"provider_name"`
	ProviderReputation string `dynamodbav:"provider_reputation"`
	CreatedAt          string `dynamodbav:"created_at"`
}

// DemandDynamoRepository persists demands and their proposals in DynamoDB.
//
// Table requirements:
//   - demands: PK id; GSIs author_id-index (author_id, created_at),
//     entity-index (entity, created_at), hired_provider_id-index
//   - proposals: PK id; GSIs demand_id-index (demand_id, created_at),
//     provider_id-index (provider_id)
//
// proposals_count on a demand is maintained exclusively by the
// TransactWriteItems in CreateProposal, so it can never drift from the
// number of proposal records.

type DemandDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	proposalsTable string
}

var _ interfaces.IDemandRepository = (*DemandDynamoRepository)(nil)

func NewDemandDynamoRepository(ddb *dynamodb.Client) *DemandDynamoRepository {
	return &DemandDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("DEMANDS_TABLE", defaultDemandsTableName),
		proposalsTable: getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
	}
}

func (r *DemandDynamoRepository) Create(ctx context.Context, d entities.Demand) (entities.Demand, error) {
	it := toDemandItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Demand{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Demand{}, mapConditionalErr(err, interfaces.ErrRecordExists)
	}
	return d, nil
}

func (r *DemandDynamoRepository) GetByID(ctx context.Context, id string) (entities.Demand, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Demand{}, err
	}
	if len(out.Item) == 0 {
		return entities.Demand{}, nil
	}

	var it demandItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Demand{}, err
	}
	return fromDemandItem(it), nil
}

// List queries the author index when an owner filter is present, the
// constant-partition entity index otherwise. Both are keyed on created_at so
// ScanIndexForward=false yields newest-first without sorting in memory. The
// query is stateless and restartable; no cursor survives the call.
func (r *DemandDynamoRepository) List(ctx context.Context, filter interfaces.DemandFilter) ([]entities.Demand, error) {
	in := &dynamodb.QueryInput{
		TableName:        aws.String(r.tableName),
		ScanIndexForward: aws.Bool(false),
	}

	values := map[string]types.AttributeValue{}
	names := map[string]string{}

	if filter.OwnerID != "" {
		in.IndexName = aws.String(demandsAuthorIndex)
		in.KeyConditionExpression = aws.String("author_id = :author")
		values[":author"] = &types.AttributeValueMemberS{Value: filter.OwnerID}
	} else {
		in.IndexName = aws.String(demandsEntityIndex)
		in.KeyConditionExpression = aws.String("entity = :entity")
		values[":entity"] = &types.AttributeValueMemberS{Value: demandEntityValue}
	}

	if filter.Category != "" {
		in.FilterExpression = aws.String("#category = :category")
		names["#category"] = "category"
		values[":category"] = &types.AttributeValueMemberS{Value: string(filter.Category)}
	}

	in.ExpressionAttributeValues = values
	if len(names) > 0 {
		in.ExpressionAttributeNames = names
	}

	return r.queryDemands(ctx, in)
}

func (r *DemandDynamoRepository) ListByHiredProviderID(ctx context.Context, providerID string) ([]entities.Demand, error) {
	return r.queryDemands(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(demandsHiredProviderIndex),
		KeyConditionExpression: aws.String("hired_provider_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: providerID},
		},
	})
}

func (r *DemandDynamoRepository) queryDemands(ctx context.Context, in *dynamodb.QueryInput) ([]entities.Demand, error) {
	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Demand, 0, len(out.Items))
	for _, raw := range out.Items {
		var it demandItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDemandItem(it))
	}
	return items, nil
}

// Hire is the one-time transition aberto -> contratado, implemented as a
// compare-and-swap on status. Concurrent hires serialize on the condition:
// exactly one update sees status "aberto", the rest get
// ErrConditionalCheckFailed.
func (r *DemandDynamoRepository) Hire(ctx context.Context, demandID string, rec entities.HireRecord) (entities.Demand, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: demandID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :aberto"),
		UpdateExpression: aws.String("SET #status = :contratado, #hired_provider_id = :pid, " +
			"#hired_provider_name = :pname, #hired_value = :value, #hired_at = :hired_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":                  "id",
			"#status":              "status",
			"#hired_provider_id":   "hired_provider_id",
			"#hired_provider_name": "hired_provider_name",
			"#hired_value":         "hired_value",
			"#hired_at":            "hired_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aberto":     &types.AttributeValueMemberS{Value: string(entities.DemandStatusAberto)},
			":contratado": &types.AttributeValueMemberS{Value: string(entities.DemandStatusContratado)},
			":pid":        &types.AttributeValueMemberS{Value: rec.ProviderID},
			":pname":      &types.AttributeValueMemberS{Value: rec.ProviderName},
			":value":      &types.AttributeValueMemberS{Value: rec.Value.String()},
			":hired_at":   &types.AttributeValueMemberS{Value: rec.HiredAt.UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Demand{}, mapConditionalErr(err, interfaces.ErrConditionalCheckFailed)
	}

	var it demandItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Demand{}, err
	}
	return fromDemandItem(it), nil
}

// CreateProposal writes the proposal record and increments the parent's
// proposals_count as one transaction, conditioned on the demand still being
// "aberto". ADD is commutative, so concurrent submissions against the same
// demand each land with a correct count. Readers observe both writes or
// neither.
func (r *DemandDynamoRepository) CreateProposal(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	it := toProposalItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Proposal{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.proposalsTable),
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
						"id": &types.AttributeValueMemberS{Value: p.DemandID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :aberto"),
					UpdateExpression:    aws.String("ADD #proposals_count :one"),
					ExpressionAttributeNames: map[string]string{
						"#id":              "id",
						"#status":          "status",
						"#proposals_count": "proposals_count",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":aberto": &types.AttributeValueMemberS{Value: string(entities.DemandStatusAberto)},
						":one":    &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
		},
	})
	if err != nil {
		return entities.Proposal{}, mapTransactErr(err, interfaces.ErrRecordExists, interfaces.ErrConditionalCheckFailed)
	}
	return p, nil
}

func (r *DemandDynamoRepository) GetProposalByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.proposalsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *DemandDynamoRepository) ListProposalsByDemandID(ctx context.Context, demandID string) ([]entities.Proposal, error) {
	return r.queryProposals(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.proposalsTable),
		IndexName:              aws.String(proposalsDemandIndex),
		KeyConditionExpression: aws.String("demand_id = :did"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did": &types.AttributeValueMemberS{Value: demandID},
		},
		ScanIndexForward: aws.Bool(false),
	})
}

func (r *DemandDynamoRepository) ListProposalsByProviderID(ctx context.Context, providerID string) ([]entities.Proposal, error) {
	return r.queryProposals(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.proposalsTable),
		IndexName:              aws.String(proposalsProviderIndex),
		KeyConditionExpression: aws.String("provider_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: providerID},
		},
	})
}

func (r *DemandDynamoRepository) queryProposals(ctx context.Context, in *dynamodb.QueryInput) ([]entities.Proposal, error) {
	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Proposal, 0, len(out.Items))
	for _, raw := range out.Items {
		var it proposalItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProposalItem(it))
	}
	return items, nil
}

func toDemandItem(d entities.Demand) demandItem {
	it := demandItem{
		ID:             d.ID,
		Entity:         demandEntityValue,
		Title:          d.Title,
		Category:       string(d.Category),
		Description:    d.Description,
		Location:       d.Location,
		AuthorID:       d.AuthorID,
		Status:         string(d.Status),
		ProposalsCount: d.ProposalsCount,
		SafetyConcerns: d.SafetyConcerns,
		CreatedAt:      d.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if d.Status == entities.DemandStatusContratado {
		it.HiredProviderID = d.HiredProviderID
		it.HiredProviderName = d.HiredProviderName
		it.HiredValue = d.HiredValue.String()
		it.HiredAt = d.HiredAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromDemandItem(it demandItem) entities.Demand {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	d := entities.Demand{
		ID:             it.ID,
		Title:          it.Title,
		Category:       entities.DemandCategory(it.Category),
		Description:    it.Description,
		Location:       it.Location,
		AuthorID:       it.AuthorID,
		Status:         entities.DemandStatus(it.Status),
		ProposalsCount: it.ProposalsCount,
		SafetyConcerns: it.SafetyConcerns,
		CreatedAt:      createdAt,
	}
	if d.SafetyConcerns == nil {
		d.SafetyConcerns = []string{}
	}
	if it.HiredProviderID != "" {
		d.HiredProviderID = it.HiredProviderID
		d.HiredProviderName = it.HiredProviderName
		d.HiredValue = decimalFromString(it.HiredValue)
		d.HiredAt, _ = time.Parse(time.RFC3339Nano, it.HiredAt)
	}
	return d
}

func toProposalItem(p entities.Proposal) proposalItem {
	return proposalItem{
		ID:                 p.ID,
		DemandID:           p.DemandID,
		Message:            p.Message,
		Value:              p.Value.String(),
		ProviderID:         p.ProviderID,
		ProviderName:       p.ProviderName,
		ProviderReputation: p.ProviderReputation.String(),
		CreatedAt:          p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProposalItem(it proposalItem) entities.Proposal {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Proposal{
		ID:                 it.ID,
		DemandID:           it.DemandID,
		Message:            it.Message,
		Value:              decimalFromString(it.Value),
		ProviderID:         it.ProviderID,
		ProviderName:       it.ProviderName,
		ProviderReputation: decimalFromString(it.ProviderReputation),
		CreatedAt:          createdAt,
	}
}
