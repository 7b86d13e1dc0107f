package stripe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIntentStatus(t *testing.T) {
	assert.Equal(t, "none", NormalizeIntentStatus(""))
	assert.Equal(t, "none", NormalizeIntentStatus("  "))
	assert.Equal(t, "succeeded", NormalizeIntentStatus("succeeded"))
	assert.Equal(t, "pending", NormalizeIntentStatus("processing"))
	assert.Equal(t, "pending", NormalizeIntentStatus("requires_action"))
	assert.Equal(t, "pending", NormalizeIntentStatus("requires_payment_method"))
	assert.Equal(t, "failed", NormalizeIntentStatus("canceled"))
	assert.Equal(t, "requires_capture", NormalizeIntentStatus("requires_capture"))
}
