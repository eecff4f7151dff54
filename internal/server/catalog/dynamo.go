package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/dmitrijs2005/imagevault/internal/common"
	"github.com/dmitrijs2005/imagevault/internal/server/models"
)

const (
	attrID          = "asset_id"
	attrOwner       = "owner_id"
	attrCreatedSort = "created_sort"
	attrStatus      = "status"

	// Fixed width so that lexical order of created_sort is time order.
	sortTimeLayout = "2006-01-02T15:04:05.000000000Z"
)

// DynamoAPI is the subset of *dynamodb.Client used by Dynamo.
type DynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

var newDynamoClient = func(cfg aws.Config) DynamoAPI {
	return dynamodb.NewFromConfig(cfg)
}

// Dynamo is a Backend over a DynamoDB table keyed by asset_id with a global
// secondary index on (owner_id, created_sort).
type Dynamo struct {
	client DynamoAPI
	table  string
	index  string
}

func NewDynamo(cfg aws.Config, table, index string) *Dynamo {
	return NewDynamoWithClient(newDynamoClient(cfg), table, index)
}

func NewDynamoWithClient(client DynamoAPI, table, index string) *Dynamo {
	return &Dynamo{client: client, table: table, index: index}
}

func sortKey(t time.Time, id string) string {
	return t.UTC().Format(sortTimeLayout) + "#" + id
}

func parseSortKey(s string) (time.Time, error) {
	ts, _, ok := strings.Cut(s, "#")
	if !ok {
		return time.Time{}, fmt.Errorf("malformed sort key %q", s)
	}
	return time.Parse(sortTimeLayout, ts)
}

func (d *Dynamo) item(a *models.Asset) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(a)
	if err != nil {
		return nil, fmt.Errorf("marshal asset: %w", err)
	}
	item[attrCreatedSort] = &types.AttributeValueMemberS{Value: sortKey(a.CreatedAt, a.ID)}
	return item, nil
}

// Put writes a. A pending write is conditioned on the stored record, if
// any, still being pending.
func (d *Dynamo) Put(ctx context.Context, a *models.Asset) error {
	item, err := d.item(a)
	if err != nil {
		return err
	}
	in := &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	}
	if !a.Completed() {
		in.ConditionExpression = aws.String("attribute_not_exists(#id) OR #status = :pending")
		in.ExpressionAttributeNames = map[string]string{"#id": attrID, "#status": attrStatus}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(models.StatusPending)},
		}
	}

	_, err = d.client.PutItem(ctx, in)
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return regressed(a)
	}
	if err != nil {
		return storeUnavailable("dynamodb put item", err)
	}
	return nil
}

// Update writes a only over an existing record, so a record deleted
// concurrently stays deleted.
func (d *Dynamo) Update(ctx context.Context, a *models.Asset) error {
	item, err := d.item(a)
	if err != nil {
		return err
	}
	cond := "attribute_exists(#id)"
	names := map[string]string{"#id": attrID}
	var values map[string]types.AttributeValue
	if !a.Completed() {
		cond += " AND #status = :pending"
		names["#status"] = attrStatus
		values = map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(models.StatusPending)},
		}
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                           aws.String(d.table),
		Item:                                item,
		ConditionExpression:                 aws.String(cond),
		ExpressionAttributeNames:            names,
		ExpressionAttributeValues:           values,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		if len(ccf.Item) == 0 {
			return common.ErrNotFound
		}
		return regressed(a)
	}
	if err != nil {
		return storeUnavailable("dynamodb update item", err)
	}
	return nil
}

func (d *Dynamo) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{attrID: &types.AttributeValueMemberS{Value: id}}
}

func (d *Dynamo) Get(ctx context.Context, id string) (*models.Asset, error) {
	out, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(d.table),
		Key:            d.key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, storeUnavailable("dynamodb get item", err)
	}
	if len(out.Item) == 0 {
		return nil, common.ErrNotFound
	}

	var a models.Asset
	if err := attributevalue.UnmarshalMap(out.Item, &a); err != nil {
		return nil, fmt.Errorf("unmarshal asset %s: %w", id, err)
	}
	return &a, nil
}

func (d *Dynamo) Delete(ctx context.Context, id string) error {
	_, err := d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.table),
		Key:       d.key(id),
	})
	if err != nil {
		return storeUnavailable("dynamodb delete item", err)
	}
	return nil
}

func (d *Dynamo) Range(ctx context.Context, q RangeQuery) (*RangePage, error) {
	if q.OwnerID == "" {
		return d.scanRange(ctx, q)
	}
	return d.queryRange(ctx, q)
}

// queryRange reads the owner's partition of the index in sort-key order.
func (d *Dynamo) queryRange(ctx context.Context, q RangeQuery) (*RangePage, error) {
	after := q.After
	if after != nil && q.From != nil && after.CreatedAt.Before(*q.From) {
		// The inclusive lower bound already starts past the cursor.
		after = nil
	}
	if after != nil && q.To != nil && after.CreatedAt.After(*q.To) {
		return &RangePage{}, nil
	}

	cond := "#owner = :owner"
	values := map[string]types.AttributeValue{
		":owner": &types.AttributeValueMemberS{Value: q.OwnerID},
	}
	// '#' sorts below every id character and '~' above, so the bounds cover
	// every id at the boundary instants.
	switch {
	case q.From != nil && q.To != nil:
		cond += " AND #sort BETWEEN :from AND :to"
	case q.From != nil:
		cond += " AND #sort >= :from"
	case q.To != nil:
		cond += " AND #sort <= :to"
	}
	if q.From != nil {
		values[":from"] = &types.AttributeValueMemberS{Value: q.From.UTC().Format(sortTimeLayout) + "#"}
	}
	if q.To != nil {
		values[":to"] = &types.AttributeValueMemberS{Value: q.To.UTC().Format(sortTimeLayout) + "#~"}
	}

	in := &dynamodb.QueryInput{
		TableName:                 aws.String(d.table),
		IndexName:                 aws.String(d.index),
		KeyConditionExpression:    aws.String(cond),
		ExpressionAttributeNames:  map[string]string{"#owner": attrOwner, "#sort": attrCreatedSort},
		ExpressionAttributeValues: values,
		ScanIndexForward:          aws.Bool(true),
	}
	if q.Limit > 0 {
		in.Limit = aws.Int32(int32(q.Limit))
	}
	if after != nil {
		in.ExclusiveStartKey = map[string]types.AttributeValue{
			attrID:          &types.AttributeValueMemberS{Value: after.ID},
			attrOwner:       &types.AttributeValueMemberS{Value: q.OwnerID},
			attrCreatedSort: &types.AttributeValueMemberS{Value: sortKey(after.CreatedAt, after.ID)},
		}
	}

	out, err := d.client.Query(ctx, in)
	if err != nil {
		return nil, storeUnavailable("dynamodb query", err)
	}

	page := &RangePage{}
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &page.Assets); err != nil {
		return nil, fmt.Errorf("unmarshal assets: %w", err)
	}
	if len(out.LastEvaluatedKey) > 0 {
		next, err := positionFromKey(out.LastEvaluatedKey)
		if err != nil {
			return nil, err
		}
		page.Next = next
	}
	return page, nil
}

func positionFromKey(key map[string]types.AttributeValue) (*Position, error) {
	id, ok := key[attrID].(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.New("last evaluated key lacks asset_id")
	}
	sk, ok := key[attrCreatedSort].(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.New("last evaluated key lacks created_sort")
	}
	t, err := parseSortKey(sk.Value)
	if err != nil {
		return nil, err
	}
	return &Position{CreatedAt: t, ID: id.Value}, nil
}

// scanRange serves listings without an owner. It reads the whole table and
// orders in memory; the index cannot serve it.
// TODO: add a sparse all-assets index so unfiltered listing stops scanning.
func (d *Dynamo) scanRange(ctx context.Context, q RangeQuery) (*RangePage, error) {
	var all []*models.Asset
	var start map[string]types.AttributeValue
	for {
		out, err := d.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(d.table),
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, storeUnavailable("dynamodb scan", err)
		}

		var chunk []*models.Asset
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &chunk); err != nil {
			return nil, fmt.Errorf("unmarshal assets: %w", err)
		}
		for _, a := range chunk {
			if inRange(a, q) {
				all = append(all, a)
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		start = out.LastEvaluatedKey
	}

	sort.Slice(all, func(i, j int) bool {
		return PositionOf(all[i]).Before(PositionOf(all[j]))
	})

	page := &RangePage{Assets: all}
	if q.Limit > 0 && len(all) > q.Limit {
		page.Assets = all[:q.Limit]
		next := PositionOf(page.Assets[q.Limit-1])
		page.Next = &next
	}
	return page, nil
}

// EnsureTable creates the table and its owner index when they do not exist
// and waits until the table is active.
func (d *Dynamo) EnsureTable(ctx context.Context, wait time.Duration) error {
	_, err := d.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(d.table)})
	if err == nil {
		return nil
	}
	var nf *types.ResourceNotFoundException
	if !errors.As(err, &nf) {
		return storeUnavailable("dynamodb describe table", err)
	}

	_, err = d.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:   aws.String(d.table),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(attrID), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String(attrOwner), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String(attrCreatedSort), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(attrID), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{{
			IndexName: aws.String(d.index),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(attrOwner), KeyType: types.KeyTypeHash},
				{AttributeName: aws.String(attrCreatedSort), KeyType: types.KeyTypeRange},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}},
	})
	if err != nil {
		return storeUnavailable("dynamodb create table", err)
	}

	if wait <= 0 {
		return nil
	}
	w := dynamodb.NewTableExistsWaiter(d.client)
	if err := w.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(d.table)}, wait); err != nil {
		return storeUnavailable("dynamodb wait for table", err)
	}
	return nil
}
