package backend

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamelCase(t *testing.T) {
	assert.Equal(t, "createdAt", CamelCase("created_at"))
	assert.Equal(t, "takeUpId", CamelCase("take_up_id"))
	assert.Equal(t, "status", CamelCase("status"))
	assert.Equal(t, "street_1", CamelCase("street_1"))
	assert.Equal(t, "alreadyCamel", CamelCase("alreadyCamel"))
}

func TestNormalizeKeys_Object(t *testing.T) {
	out, err := NormalizeKeys([]byte(`{"package_number":"1","street":{"created_at":"x"}}`))
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Contains(t, m, "packageNumber")
	assert.NotContains(t, m, "package_number")
	assert.JSONEq(t, `{"created_at":"x"}`, string(m["street"]), "objetos aninhados não são alterados")
}

func TestNormalizeKeys_ArrayAndScalars(t *testing.T) {
	out, err := NormalizeKeys([]byte(`[{"take_up_id":"T1"}, 3, "x"]`))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"takeUpId":"T1"}, 3, "x"]`, string(out))

	out, err = NormalizeKeys([]byte(`true`))
	require.NoError(t, err)
	assert.Equal(t, "true", string(out))
}

func TestNormalizeKeys_CamelKeyWins(t *testing.T) {
	out, err := NormalizeKeys([]byte(`{"created_at":"snake","createdAt":"camel"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"createdAt":"camel"}`, string(out))
}
