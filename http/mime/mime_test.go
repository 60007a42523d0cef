package mime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplies(t *testing.T) {
	assert.True(t, Complies(JSON, "application/json"))
	assert.True(t, Complies(JSON, "application/json; charset=utf-8"))
	assert.True(t, Complies(JSON, "Application/JSON"))
	assert.True(t, Complies(URLEncoded, "application/x-www-form-urlencoded"))
	assert.False(t, Complies(JSON, "text/plain"))
	assert.False(t, Complies(JSON, ""))
}
