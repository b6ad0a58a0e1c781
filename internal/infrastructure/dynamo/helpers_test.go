package dynamo

import (
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpdateExpr_Empty(t *testing.T) {
	_, _, _, err := buildUpdateExpr(map[string]interface{}{})
	require.Error(t, err)
}

func TestBuildUpdateExpr_SingleField(t *testing.T) {
	expr, names, values, err := buildUpdateExpr(map[string]interface{}{"customer_name": "Asha"})
	require.NoError(t, err)
	assert.Equal(t, "SET #f0_0 = :v0", expr)
	assert.Equal(t, map[string]string{"#f0_0": "customer_name"}, names)
	require.Contains(t, values, ":v0")
	s, ok := values[":v0"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "Asha", s.Value)
}

func TestBuildUpdateExpr_NestedPath(t *testing.T) {
	expr, names, _, err := buildUpdateExpr(map[string]interface{}{"kyc.aadhaar.number": "1234"})
	require.NoError(t, err)
	assert.Equal(t, "SET #f0_0.#f0_1.#f0_2 = :v0", expr)
	assert.Equal(t, "kyc", names["#f0_0"])
	assert.Equal(t, "aadhaar", names["#f0_1"])
	assert.Equal(t, "number", names["#f0_2"])
}

func TestBuildUpdateExpr_MultipleFields(t *testing.T) {
	expr, names, values, err := buildUpdateExpr(map[string]interface{}{
		"city":  "Pune",
		"state": "MH",
	})
	require.NoError(t, err)
	assert.Len(t, names, 2)
	assert.Len(t, values, 2)
	assert.Equal(t, 1, strings.Count(expr, ", "))
	assert.True(t, strings.HasPrefix(expr, "SET "))
}
