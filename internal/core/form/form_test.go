package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidator_AllPass verifies Err is nil when every check passes.
func TestValidator_AllPass(t *testing.T) {
	var v Validator
	v.Require("name", "Alice")
	v.OneOf("category", "General Inquiry", []string{"General Inquiry"})

	assert.NoError(t, v.Err())
}

// TestValidator_CollectsFields verifies every failing field is reported.
func TestValidator_CollectsFields(t *testing.T) {
	var v Validator
	v.Require("name", "  ")
	v.Require("email", "")
	v.OneOf("category", "Nope", []string{"A", "B"})
	v.Add("quantity", "must be at least 1")

	err := v.Err()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 4)
	assert.Equal(t, "name", verr.Fields[0].Field)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "quantity")
}

// TestValidator_OneOfSkipsEmpty verifies empty values are left to Require.
func TestValidator_OneOfSkipsEmpty(t *testing.T) {
	var v Validator
	v.OneOf("category", "", []string{"A"})
	assert.NoError(t, v.Err())
}
