package dynamo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// strKey builds a DynamoDB primary key map with a single string attribute.
func strKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		name: &types.AttributeValueMemberS{Value: value},
	}
}

// buildUpdateExpr converts a map of field->value into a DynamoDB SET expression.
// Keys may be dotted paths ("kyc.aadhaar.number"); each path segment gets its
// own expression attribute name so reserved words are safe anywhere.
func buildUpdateExpr(updates map[string]interface{}) (expr string, names map[string]string, values map[string]types.AttributeValue, err error) {
	names = make(map[string]string)
	values = make(map[string]types.AttributeValue)
	expr = "SET "
	i := 0
	for k, v := range updates {
		valueKey := fmt.Sprintf(":v%d", i)
		av, mErr := attributevalue.Marshal(v)
		if mErr != nil {
			return "", nil, nil, fmt.Errorf("marshal field %s: %w", k, mErr)
		}
		values[valueKey] = av
		if i > 0 {
			expr += ", "
		}
		expr += fmt.Sprintf("%s = %s", namePath(k, i, names), valueKey)
		i++
	}
	if i == 0 {
		return "", nil, nil, errors.New("no fields to update")
	}
	return expr, names, values, nil
}

// namePath registers expression attribute names for every segment of a
// (possibly dotted) field path and returns the placeholder path.
func namePath(field string, i int, names map[string]string) string {
	segs := strings.Split(field, ".")
	keys := make([]string, len(segs))
	for j, seg := range segs {
		key := fmt.Sprintf("#f%d_%d", i, j)
		names[key] = seg
		keys[j] = key
	}
	return strings.Join(keys, ".")
}

// isConditionFailed reports whether err is a DynamoDB conditional-check failure.
func isConditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

// isTransactionConflict reports whether err is a cancelled TransactWriteItems
// call (any item's condition failed).
func isTransactionConflict(err error) bool {
	var tc *types.TransactionCanceledException
	return errors.As(err, &tc)
}
