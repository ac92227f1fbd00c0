package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RequireNoError fails the test immediately if err is not nil.
func RequireNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	require.NoError(t, err, msgAndArgs...)
}

// AssertErrorContains checks that err contains the expected substring.
func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), expected)
}

// AssertRequiredFieldMessage checks that the validation messages carry the
// French required-field message for the given field.
func AssertRequiredFieldMessage(t *testing.T, messages []string, field string) {
	t.Helper()
	assert.Contains(t, messages, fmt.Sprintf("Le champ %s est requis", field))
}

// AssertRangeMessage checks that the validation messages carry the French
// out-of-range message for the given field and received value.
func AssertRangeMessage(t *testing.T, messages []string, field string, min, max, got int) {
	t.Helper()
	assert.Contains(t, messages, fmt.Sprintf("%s doit être entre %d et %d, reçu : %d", field, min, max, got))
}
