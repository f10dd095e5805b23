package sheetstore

import (
	"context"
	"errors"
	"os"
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSheetsTableName = "pdv_sheets"

type rowItem struct {
	Sheet string   `dynamodbav:"sheet"`
	Row   int      `dynamodbav:"row"`
	Cells []string `dynamodbav:"cells"`
}

// DynamoStore keeps sheet rows in a single DynamoDB table.
//
// Table requirements:
//   - PK: sheet (string)
//   - SK: row (number)
//
// Each item carries the row's cells as a list of strings, preserving the
// positional column contract of the original spreadsheet. Appends compute the
// destination row from the current row count; two concurrent appends can pick
// the same slot, in which case the conditional put makes the loser fail
// instead of silently overwriting.

type DynamoStore struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ RowStore = (*DynamoStore)(nil)

func NewDynamoStore(ddb *dynamodb.Client) *DynamoStore {
	return &DynamoStore{
		ddb:       ddb,
		tableName: getenvDefault("SHEETS_TABLE", defaultSheetsTableName),
	}
}

func (s *DynamoStore) GetRows(ctx context.Context, sheet string) ([]Row, error) {
	var rows []Row

	var startKey map[string]types.AttributeValue
	for {
		out, err := s.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.tableName),
			KeyConditionExpression: aws.String("#sheet = :sheet"),
			ExpressionAttributeNames: map[string]string{
				"#sheet": "sheet",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":sheet": &types.AttributeValueMemberS{Value: sheet},
			},
			ScanIndexForward:  aws.Bool(true),
			ConsistentRead:    aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var it rowItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			rows = append(rows, Row{Index: it.Row, Cells: it.Cells})
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Index < rows[j].Index })
	return rows, nil
}

func (s *DynamoStore) AppendRows(ctx context.Context, sheet string, values [][]string) error {
	existing, err := s.GetRows(ctx, sheet)
	if err != nil {
		return err
	}
	next := len(existing) + DataStartRow

	for i, cells := range values {
		it := rowItem{Sheet: sheet, Row: next + i, Cells: cells}
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return err
		}

		_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(s.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#row)"),
			ExpressionAttributeNames: map[string]string{
				"#row": "row",
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *DynamoStore) UpdateRange(ctx context.Context, sheet string, rowIndex, startCol int, cells []string) error {
	if len(cells) == 0 {
		return nil
	}

	key := map[string]types.AttributeValue{
		"sheet": &types.AttributeValueMemberS{Value: sheet},
		"row":   &types.AttributeValueMemberN{Value: strconv.Itoa(rowIndex)},
	}

	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return err
	}
	if len(out.Item) == 0 {
		return ErrRowNotFound
	}

	var it rowItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return err
	}

	// Whole-list write. A ranged `SET #cells[n]` on a list shorter than n
	// appends at the end instead of writing index n, so the row is padded
	// locally and written back in full.
	av, err := attributevalue.Marshal(patchCells(it.Cells, startCol, cells))
	if err != nil {
		return err
	}

	_, err = s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.tableName),
		Key:                 key,
		ConditionExpression: aws.String("attribute_exists(#row)"),
		UpdateExpression:    aws.String("SET #cells = :cells"),
		ExpressionAttributeNames: map[string]string{
			"#row":   "row",
			"#cells": "cells",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cells": av,
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return ErrRowNotFound
		}
		return err
	}
	return nil
}

func (s *DynamoStore) ClearRange(ctx context.Context, sheet string, rowIndex, width int) error {
	return s.UpdateRange(ctx, sheet, rowIndex, 0, make([]string, width))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
