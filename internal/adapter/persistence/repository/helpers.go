package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBAPI is the subset of *dynamodb.Client the repositories use.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseTimePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, *s)
	if err != nil {
		return nil
	}
	return &t
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringAV(s string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: s}
}

func stringPtrAV(s *string) types.AttributeValue {
	if s == nil {
		return nil
	}
	return stringAV(*s)
}

func timePtrAV(t *time.Time) types.AttributeValue {
	return stringPtrAV(formatTimePtr(t))
}

func floatPtrAV(v *float64) types.AttributeValue {
	if v == nil {
		return nil
	}
	return &types.AttributeValueMemberN{Value: floatToString(*v)}
}

func stringListAV(vs []string) types.AttributeValue {
	if len(vs) == 0 {
		return nil
	}
	out := make([]types.AttributeValue, len(vs))
	for i, v := range vs {
		out[i] = stringAV(v)
	}
	return &types.AttributeValueMemberL{Value: out}
}

// itemUpdate collects the SET/REMOVE clauses of one UpdateItem call and the equality
// guards of its condition. Every attribute is addressed as #name and valued as :name.
type itemUpdate struct {
	sets    []string
	removes []string
	guards  []string
	names   map[string]string
	values  map[string]types.AttributeValue
}

func newItemUpdate() *itemUpdate {
	return &itemUpdate{
		names:  map[string]string{"#id": "id"},
		values: map[string]types.AttributeValue{},
	}
}

func (u *itemUpdate) name(attr string) string {
	n := "#" + attr
	u.names[n] = attr
	return n
}

func (u *itemUpdate) set(attr string, v types.AttributeValue) *itemUpdate {
	u.sets = append(u.sets, u.name(attr)+" = :"+attr)
	u.values[":"+attr] = v
	return u
}

// setOnce writes v only when attr is absent from the stored item. A nil v is skipped.
func (u *itemUpdate) setOnce(attr string, v types.AttributeValue) *itemUpdate {
	if v == nil {
		return u
	}
	n := u.name(attr)
	u.sets = append(u.sets, n+" = if_not_exists("+n+", :"+attr+")")
	u.values[":"+attr] = v
	return u
}

// setOrRemove writes v, or removes attr when v is nil.
func (u *itemUpdate) setOrRemove(attr string, v types.AttributeValue) *itemUpdate {
	if v == nil {
		u.removes = append(u.removes, u.name(attr))
		return u
	}
	return u.set(attr, v)
}

// expect adds "#attr = :expected_attr" to the condition.
func (u *itemUpdate) expect(attr string, v types.AttributeValue) *itemUpdate {
	u.guards = append(u.guards, u.name(attr)+" = :expected_"+attr)
	u.values[":expected_"+attr] = v
	return u
}

func (u *itemUpdate) expression() string {
	expr := "SET " + strings.Join(u.sets, ", ")
	if len(u.removes) > 0 {
		expr += " REMOVE " + strings.Join(u.removes, ", ")
	}
	return expr
}

func (u *itemUpdate) condition() string {
	return strings.Join(append([]string{"attribute_exists(#id)"}, u.guards...), " AND ")
}

// conditionFailure reports whether err is a failed condition and returns the stored
// item at the time of the check, when DynamoDB sent it back.
func conditionFailure(err error) (map[string]types.AttributeValue, bool) {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return cfe.Item, true
	}
	return nil, false
}

// transactConditionFailure is conditionFailure for the transact item at index i.
func transactConditionFailure(err error, i int) (map[string]types.AttributeValue, bool) {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) || i >= len(tce.CancellationReasons) {
		return nil, false
	}
	reason := tce.CancellationReasons[i]
	if reason.Code == nil || *reason.Code != "ConditionalCheckFailed" {
		return nil, false
	}
	return reason.Item, true
}
