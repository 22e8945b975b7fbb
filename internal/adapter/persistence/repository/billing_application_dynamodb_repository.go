package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pj_billing/internal/domain/entities"
	"pj_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultApplicationsTableName = "billing_applications"
	applicationsStatusIndex      = "status-index"
)

type billingApplicationItem struct {
	ID            string `dynamodbav:"id"`
	BillingNumber string `dynamodbav:"billing_number"`
	ProjectName   string `dynamodbav:"project_name"`
	ClientName    string `dynamodbav:"client_name"`
	Amount        int64  `dynamodbav:"amount"`
	Status        string `dynamodbav:"status"`
	AppliedAt     string `dynamodbav:"applied_at"`
	AppliedBy     string `dynamodbav:"applied_by"`
	ApprovedBy    string `dynamodbav:"approved_by,omitempty"`
	ApprovedAt    string `dynamodbav:"approved_at,omitempty"`
	Comment       string `dynamodbav:"comment,omitempty"`
}

// BillingApplicationDynamoRepository persists BillingApplication in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//
// Status transitions go through conditional updates so the precondition status
// is checked atomically with the write: a concurrent decision on the same id
// fails the condition instead of silently winning.

type BillingApplicationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillingApplicationRepository = (*BillingApplicationDynamoRepository)(nil)

func NewBillingApplicationDynamoRepository(ddb *dynamodb.Client) *BillingApplicationDynamoRepository {
	return &BillingApplicationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPLICATIONS_TABLE", defaultApplicationsTableName),
	}
}

func (r *BillingApplicationDynamoRepository) Create(ctx context.Context, app entities.BillingApplication) (entities.BillingApplication, error) {
	it := toBillingApplicationItem(app)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BillingApplication{}, err
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
		return entities.BillingApplication{}, err
	}
	return app, nil
}

func (r *BillingApplicationDynamoRepository) GetByID(ctx context.Context, id string) (entities.BillingApplication, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BillingApplication{}, err
	}
	if len(out.Item) == 0 {
		return entities.BillingApplication{}, nil
	}

	var it billingApplicationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BillingApplication{}, err
	}
	return fromBillingApplicationItem(it), nil
}

func (r *BillingApplicationDynamoRepository) List(ctx context.Context) ([]entities.BillingApplication, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalApplications(out.Items)
}

func (r *BillingApplicationDynamoRepository) ListByStatus(ctx context.Context, status entities.ApplicationStatus) ([]entities.BillingApplication, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(applicationsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalApplications(out.Items)
}

// UpdateStatus applies the change only while the stored status is one of
// `from`. A failed condition yields a zero-value application and no error,
// matching the repository contract for conflicts.
func (r *BillingApplicationDynamoRepository) UpdateStatus(ctx context.Context, id string, from []entities.ApplicationStatus, change interfaces.StatusChange) (entities.BillingApplication, error) {
	sets := []string{"#status = :status"}
	names := map[string]string{"#status": "status"}
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(change.Status)},
	}

	if change.ApprovedBy != "" {
		sets = append(sets, "#approved_by = :approved_by")
		names["#approved_by"] = "approved_by"
		values[":approved_by"] = &types.AttributeValueMemberS{Value: change.ApprovedBy}
	}
	if change.ApprovedAt != nil {
		sets = append(sets, "#approved_at = :approved_at")
		names["#approved_at"] = "approved_at"
		values[":approved_at"] = &types.AttributeValueMemberS{Value: change.ApprovedAt.UTC().Format(time.RFC3339Nano)}
	}
	if change.AppliedAt != nil {
		sets = append(sets, "#applied_at = :applied_at")
		names["#applied_at"] = "applied_at"
		values[":applied_at"] = &types.AttributeValueMemberS{Value: change.AppliedAt.UTC().Format(time.RFC3339Nano)}
	}
	if change.Comment != nil {
		sets = append(sets, "#comment = :comment")
		names["#comment"] = "comment"
		values[":comment"] = &types.AttributeValueMemberS{Value: *change.Comment}
	}
	if change.Amount != nil {
		sets = append(sets, "#amount = :amount")
		names["#amount"] = "amount"
		values[":amount"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", *change.Amount)}
	}

	condParts := make([]string, 0, len(from))
	for i, s := range from {
		ph := fmt.Sprintf(":from%d", i)
		condParts = append(condParts, ph)
		values[ph] = &types.AttributeValueMemberS{Value: string(s)}
	}
	condition := fmt.Sprintf("attribute_exists(#id) AND #status IN (%s)", strings.Join(condParts, ", "))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.BillingApplication{}, nil
		}
		return entities.BillingApplication{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.BillingApplication{}, nil
	}

	var it billingApplicationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.BillingApplication{}, err
	}
	return fromBillingApplicationItem(it), nil
}

func unmarshalApplications(raw []map[string]types.AttributeValue) ([]entities.BillingApplication, error) {
	items := make([]entities.BillingApplication, 0, len(raw))
	for _, m := range raw {
		var it billingApplicationItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBillingApplicationItem(it))
	}
	return items, nil
}

func toBillingApplicationItem(app entities.BillingApplication) billingApplicationItem {
	it := billingApplicationItem{
		ID:            app.ID,
		BillingNumber: app.BillingNumber,
		ProjectName:   app.ProjectName,
		ClientName:    app.ClientName,
		Amount:        app.Amount,
		Status:        string(app.Status),
		AppliedAt:     app.AppliedAt.UTC().Format(time.RFC3339Nano),
		AppliedBy:     app.AppliedBy,
		ApprovedBy:    app.ApprovedBy,
		Comment:       app.Comment,
	}
	if app.ApprovedAt != nil {
		it.ApprovedAt = app.ApprovedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromBillingApplicationItem(it billingApplicationItem) entities.BillingApplication {
	appliedAt, _ := time.Parse(time.RFC3339Nano, it.AppliedAt)
	app := entities.BillingApplication{
		ID:            it.ID,
		BillingNumber: it.BillingNumber,
		ProjectName:   it.ProjectName,
		ClientName:    it.ClientName,
		Amount:        it.Amount,
		Status:        entities.ApplicationStatus(it.Status),
		AppliedAt:     appliedAt,
		AppliedBy:     it.AppliedBy,
		ApprovedBy:    it.ApprovedBy,
		Comment:       it.Comment,
	}
	if it.ApprovedAt != "" {
		if ts, err := time.Parse(time.RFC3339Nano, it.ApprovedAt); err == nil {
			app.ApprovedAt = &ts
		}
	}
	return app
}
