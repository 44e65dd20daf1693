package repository

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeItem = map[string]types.AttributeValue

// fakeDynamo is an in-memory store of tables keyed by the "id" string attribute. Scan
// and Query return pages of pageSize items to exercise the paginators. Condition and
// update expressions are understood in the small grammar the repositories emit.
type fakeDynamo struct {
	mu       sync.Mutex
	tables   map[string]map[string]fakeItem
	pageSize int

	batchCalls   int
	transactErr  error
	transactions int
}

var _ DynamoDBAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]fakeItem{}, pageSize: 2}
}

func keyOf(item fakeItem) string {
	if s, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) table(name *string) map[string]fakeItem {
	t, ok := f.tables[aws.ToString(name)]
	if !ok {
		t = map[string]fakeItem{}
		f.tables[aws.ToString(name)] = t
	}
	return t
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.table(in.TableName)[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.table(in.TableName)
	id := keyOf(in.Item)
	if !evalCondition(t[id], aws.ToString(in.ConditionExpression), in.ExpressionAttributeNames, in.ExpressionAttributeValues) {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("put condition failed")}
	}
	t[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.table(in.TableName)
	id := keyOf(in.Key)
	old := t[id]
	if !evalCondition(old, aws.ToString(in.ConditionExpression), in.ExpressionAttributeNames, in.ExpressionAttributeValues) {
		cfe := &types.ConditionalCheckFailedException{Message: aws.String("update condition failed")}
		if in.ReturnValuesOnConditionCheckFailure == types.ReturnValuesOnConditionCheckFailureAllOld {
			cfe.Item = old
		}
		return nil, cfe
	}
	t[id] = applyUpdate(old, in.Key, aws.ToString(in.UpdateExpression), in.ExpressionAttributeNames, in.ExpressionAttributeValues)
	return &dynamodb.UpdateItemOutput{Attributes: t[id]}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.table(in.TableName), keyOf(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items, last := f.page(f.sorted(in.TableName, nil), in.ExclusiveStartKey)
	return &dynamodb.ScanOutput{Items: items, LastEvaluatedKey: last}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rid := in.ExpressionAttributeValues[":rid"].(*types.AttributeValueMemberS).Value
	items, last := f.page(f.sorted(in.TableName, func(it fakeItem) bool {
		v, ok := it["requisicao_id"].(*types.AttributeValueMemberS)
		return ok && v.Value == rid
	}), in.ExclusiveStartKey)
	return &dynamodb.QueryOutput{Items: items, LastEvaluatedKey: last}, nil
}

func (f *fakeDynamo) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batchCalls++
	for name, reqs := range in.RequestItems {
		t := f.table(aws.String(name))
		for _, w := range reqs {
			if w.DeleteRequest != nil {
				delete(t, keyOf(w.DeleteRequest.Key))
			}
		}
	}
	return &dynamodb.BatchWriteItemOutput{}, nil
}

// TransactWriteItems checks every condition first and applies nothing unless all pass.
func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transactions++
	if f.transactErr != nil {
		return nil, f.transactErr
	}

	reasons := make([]types.CancellationReason, len(in.TransactItems))
	failed := false
	for i, ti := range in.TransactItems {
		reasons[i] = types.CancellationReason{Code: aws.String("None")}
		var (
			old    fakeItem
			cond   string
			names  map[string]string
			values map[string]types.AttributeValue
			ret    types.ReturnValuesOnConditionCheckFailure
		)
		switch {
		case ti.Update != nil:
			old = f.table(ti.Update.TableName)[keyOf(ti.Update.Key)]
			cond, names, values, ret = aws.ToString(ti.Update.ConditionExpression), ti.Update.ExpressionAttributeNames, ti.Update.ExpressionAttributeValues, ti.Update.ReturnValuesOnConditionCheckFailure
		case ti.Put != nil:
			old = f.table(ti.Put.TableName)[keyOf(ti.Put.Item)]
			cond, names, values, ret = aws.ToString(ti.Put.ConditionExpression), ti.Put.ExpressionAttributeNames, ti.Put.ExpressionAttributeValues, ti.Put.ReturnValuesOnConditionCheckFailure
		default:
			return nil, errors.New("fake: unsupported transact item")
		}
		if !evalCondition(old, cond, names, values) {
			failed = true
			reasons[i].Code = aws.String("ConditionalCheckFailed")
			if ret == types.ReturnValuesOnConditionCheckFailureAllOld {
				reasons[i].Item = old
			}
		}
	}
	if failed {
		return nil, &types.TransactionCanceledException{Message: aws.String("transaction cancelled"), CancellationReasons: reasons}
	}

	for _, ti := range in.TransactItems {
		if ti.Update != nil {
			t := f.table(ti.Update.TableName)
			id := keyOf(ti.Update.Key)
			t[id] = applyUpdate(t[id], ti.Update.Key, aws.ToString(ti.Update.UpdateExpression), ti.Update.ExpressionAttributeNames, ti.Update.ExpressionAttributeValues)
		} else {
			f.table(ti.Put.TableName)[keyOf(ti.Put.Item)] = ti.Put.Item
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func (f *fakeDynamo) sorted(name *string, keep func(fakeItem) bool) []fakeItem {
	t := f.table(name)
	ids := make([]string, 0, len(t))
	for id, it := range t {
		if keep == nil || keep(it) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	out := make([]fakeItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, t[id])
	}
	return out
}

func (f *fakeDynamo) page(all []fakeItem, start fakeItem) ([]fakeItem, fakeItem) {
	from := 0
	if start != nil {
		after := keyOf(start)
		for from < len(all) && keyOf(all[from]) <= after {
			from++
		}
	}
	to := from + f.pageSize
	if to >= len(all) {
		return all[from:], nil
	}
	return all[from:to], fakeItem{"id": all[to-1]["id"]}
}

var (
	attrFnRe     = regexp.MustCompile(`^(attribute_exists|attribute_not_exists)\((#\w+)\)$`)
	equalsRe     = regexp.MustCompile(`^(#\w+) = (:\w+)$`)
	setClauseRe  = regexp.MustCompile(`(#\w+) = (?:if_not_exists\((#\w+), (:\w+)\)|(:\w+))`)
	removeNameRe = regexp.MustCompile(`#\w+`)
)

// evalCondition supports clauses joined by AND: attribute_exists(#n),
// attribute_not_exists(#n) and #n = :v. An empty expression always holds.
func evalCondition(item fakeItem, expr string, names map[string]string, values map[string]types.AttributeValue) bool {
	if strings.TrimSpace(expr) == "" {
		return true
	}
	for _, clause := range strings.Split(expr, " AND ") {
		clause = strings.TrimSpace(clause)
		if m := attrFnRe.FindStringSubmatch(clause); m != nil {
			_, ok := item[names[m[2]]]
			if (m[1] == "attribute_exists") != ok {
				return false
			}
			continue
		}
		if m := equalsRe.FindStringSubmatch(clause); m != nil {
			if !sameValue(item[names[m[1]]], values[m[2]]) {
				return false
			}
			continue
		}
		panic("fake: unsupported condition clause " + clause)
	}
	return true
}

// applyUpdate supports "SET #a = :a, #b = if_not_exists(#b, :b) REMOVE #c, #d".
func applyUpdate(old, key fakeItem, expr string, names map[string]string, values map[string]types.AttributeValue) fakeItem {
	next := fakeItem{}
	for k, v := range old {
		next[k] = v
	}
	for k, v := range key {
		next[k] = v
	}

	setPart, removePart := expr, ""
	if i := strings.Index(expr, "REMOVE "); i >= 0 {
		setPart, removePart = expr[:i], expr[i+len("REMOVE "):]
	}
	for _, m := range setClauseRe.FindAllStringSubmatch(setPart, -1) {
		attr := names[m[1]]
		if m[2] != "" {
			if _, exists := next[attr]; !exists {
				next[attr] = values[m[3]]
			}
			continue
		}
		next[attr] = values[m[4]]
	}
	for _, n := range removeNameRe.FindAllString(removePart, -1) {
		delete(next, names[n])
	}
	return next
}

func sameValue(a, b types.AttributeValue) bool {
	switch av := a.(type) {
	case *types.AttributeValueMemberS:
		bv, ok := b.(*types.AttributeValueMemberS)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberN:
		bv, ok := b.(*types.AttributeValueMemberN)
		return ok && av.Value == bv.Value
	default:
		return false
	}
}
