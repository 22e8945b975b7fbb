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

const defaultTemplatesTableName = "email_templates"

type emailTemplateItem struct {
	Category string `dynamodbav:"category"`
	Subject  string `dynamodbav:"subject"`
	Body     string `dynamodbav:"body"`
	Active   bool   `dynamodbav:"active"`
}

// EmailTemplateDynamoRepository resolves per-category email templates.
//
// Table requirements:
//   - PK: category (string)
//
// A missing or inactive template resolves to nil; the draft layer falls back
// to the built-in general template.

type EmailTemplateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITemplateProvider = (*EmailTemplateDynamoRepository)(nil)

func NewEmailTemplateDynamoRepository(ddb *dynamodb.Client) *EmailTemplateDynamoRepository {
	return &EmailTemplateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TEMPLATES_TABLE", defaultTemplatesTableName),
	}
}

func (r *EmailTemplateDynamoRepository) GetTemplateByCategory(ctx context.Context, category entities.ProjectCategory) (*entities.EmailTemplate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"category": &types.AttributeValueMemberS{Value: string(category)},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it emailTemplateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	if !it.Active {
		return nil, nil
	}
	tpl := entities.EmailTemplate{
		Category: it.Category,
		Subject:  it.Subject,
		Body:     it.Body,
		Active:   it.Active,
	}
	return &tpl, nil
}

// Put writes a template record; used by the seed CLI only.
func (r *EmailTemplateDynamoRepository) Put(ctx context.Context, tpl entities.EmailTemplate) error {
	av, err := attributevalue.MarshalMap(emailTemplateItem{
		Category: tpl.Category,
		Subject:  tpl.Subject,
		Body:     tpl.Body,
		Active:   tpl.Active,
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
