package repository

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sort"
	"strconv"

	"billed_service/internal/domain/entities"
	"billed_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultBillsTableName = "bills"

type billItem struct {
	ID           string `dynamodbav:"id"`
	Type         string `dynamodbav:"type"`
	Name         string `dynamodbav:"name"`
	Amount       string `dynamodbav:"amount"`
	Date         string `dynamodbav:"date"`
	Vat          string `dynamodbav:"vat,omitempty"`
	Pct          int    `dynamodbav:"pct"`
	Commentary   string `dynamodbav:"commentary,omitempty"`
	FileURL      string `dynamodbav:"file_url,omitempty"`
	FileName     string `dynamodbav:"file_name,omitempty"`
	Status       string `dynamodbav:"status"`
	CommentAdmin string `dynamodbav:"comment_admin,omitempty"`
	Email        string `dynamodbav:"email"`
}

// BillDynamoRepository persists Bill entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Failures are translated into the store's error taxonomy
// (entities.StoreError) so the views can surface "Erreur 404"/"Erreur 500"
// verbatim; the underlying AWS error only goes to the log.

type BillDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillRepository = (*BillDynamoRepository)(nil)

func NewBillDynamoRepository(ddb *dynamodb.Client) *BillDynamoRepository {
	return &BillDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BILLS_TABLE", defaultBillsTableName),
	}
}

func (r *BillDynamoRepository) FetchAll(ctx context.Context) ([]entities.Bill, error) {
	var bills []entities.Bill

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, storeFailure("fetch-all", err)
		}
		for _, raw := range out.Items {
			var it billItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, storeFailure("fetch-all unmarshal", err)
			}
			bills = append(bills, fromBillItem(it))
		}
	}

	// Scan order is undefined; pin it to insertion order so the listing's
	// stable sort keeps equal dates deterministic.
	sort.SliceStable(bills, func(i, j int) bool { return bills[i].ID < bills[j].ID })
	return bills, nil
}

func (r *BillDynamoRepository) Create(ctx context.Context, b entities.Bill) ([]entities.Bill, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	av, err := attributevalue.MarshalMap(toBillItem(b))
	if err != nil {
		return nil, storeFailure("create marshal", err)
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
		return nil, storeFailure("create", err)
	}

	// The store contract returns the updated collection, not the new record.
	return r.FetchAll(ctx)
}

func (r *BillDynamoRepository) UpdateReview(ctx context.Context, id string, status entities.BillStatus, commentAdmin string) (entities.Bill, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #comment_admin = :comment_admin"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":        &types.AttributeValueMemberS{Value: string(status)},
			":comment_admin": &types.AttributeValueMemberS{Value: commentAdmin},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#status":        "status",
			"#comment_admin": "comment_admin",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Bill{}, nil
		}
		return entities.Bill{}, storeFailure("update-review", err)
	}
	if len(out.Attributes) == 0 {
		return entities.Bill{}, nil
	}

	var it billItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Bill{}, storeFailure("update-review unmarshal", err)
	}
	return fromBillItem(it), nil
}

func storeFailure(op string, err error) error {
	log.Printf("[bills][repository] %s failed err=%v", op, err)
	var rnf *types.ResourceNotFoundException
	if errors.As(err, &rnf) {
		return entities.NewStoreError(http.StatusNotFound)
	}
	return entities.NewStoreError(http.StatusInternalServerError)
}

func toBillItem(b entities.Bill) billItem {
	return billItem{
		ID:           b.ID,
		Type:         b.Type,
		Name:         b.Name,
		Amount:       strconv.FormatFloat(b.Amount, 'f', -1, 64),
		Date:         b.Date,
		Vat:          b.Vat,
		Pct:          b.Pct,
		Commentary:   b.Commentary,
		FileURL:      b.FileURL,
		FileName:     b.FileName,
		Status:       string(b.Status),
		CommentAdmin: b.CommentAdmin,
		Email:        b.Email,
	}
}

func fromBillItem(it billItem) entities.Bill {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Bill{
		ID:           it.ID,
		Type:         it.Type,
		Name:         it.Name,
		Amount:       amount,
		Date:         it.Date,
		Vat:          it.Vat,
		Pct:          it.Pct,
		Commentary:   it.Commentary,
		FileURL:      it.FileURL,
		FileName:     it.FileName,
		Status:       entities.BillStatus(it.Status),
		CommentAdmin: it.CommentAdmin,
		Email:        it.Email,
	}
}
