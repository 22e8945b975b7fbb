package repository

import (
	"context"

	"pj_billing/internal/domain/entities"
	"pj_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProjectsTableName = "projects"

type projectItem struct {
	ID             string `dynamodbav:"id"`
	Name           string `dynamodbav:"name"`
	Category       string `dynamodbav:"category"`
	Client         string `dynamodbav:"client"`
	BaselineAmount int64  `dynamodbav:"baseline_amount"`
	Status         string `dynamodbav:"status"`
}

// ProjectCatalogDynamoRepository is the read-only project catalog backed by
// DynamoDB. Writes happen only through the seed CLI.
//
// Table requirements:
//   - PK: id (string)

type ProjectCatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectCatalog = (*ProjectCatalogDynamoRepository)(nil)

func NewProjectCatalogDynamoRepository(ddb *dynamodb.Client) *ProjectCatalogDynamoRepository {
	return &ProjectCatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectCatalogDynamoRepository) ListProjects(ctx context.Context) ([]entities.Project, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	projects := make([]entities.Project, 0, len(out.Items))
	for _, raw := range out.Items {
		var it projectItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		projects = append(projects, fromProjectItem(it))
	}
	return projects, nil
}

func (r *ProjectCatalogDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

// Put writes a project record; used by the seed CLI only.
func (r *ProjectCatalogDynamoRepository) Put(ctx context.Context, p entities.Project) error {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:             p.ID,
		Name:           p.Name,
		Category:       string(p.Category),
		Client:         p.Client,
		BaselineAmount: p.BaselineAmount,
		Status:         p.Status,
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID:             it.ID,
		Name:           it.Name,
		Category:       entities.ProjectCategory(it.Category),
		Client:         it.Client,
		BaselineAmount: it.BaselineAmount,
		Status:         it.Status,
	}
}
