package chars

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsChar(t *testing.T) {
	assert.True(t, IsChar(0))
	assert.True(t, IsChar('a'))
	assert.True(t, IsChar(127))
	assert.False(t, IsChar(128))
	assert.False(t, IsChar(255))
}

func TestIsControl(t *testing.T) {
	assert.True(t, IsControl(0))
	assert.True(t, IsControl('\t'))
	assert.True(t, IsControl(31))
	assert.True(t, IsControl(127))
	assert.False(t, IsControl(' '))
	assert.False(t, IsControl('a'))
	assert.False(t, IsControl(128))
}

func TestIsDigit(t *testing.T) {
	assert.True(t, IsDigit('0'))
	assert.True(t, IsDigit('9'))
	assert.False(t, IsDigit('/'))
	assert.False(t, IsDigit(':'))
	assert.False(t, IsDigit('a'))
}

func TestIsSpecial(t *testing.T) {
	for _, c := range []byte("()<>@,;:\\\"/[]?={} \t") {
		assert.True(t, IsSpecial(c), "special: %q", c)
	}

	assert.False(t, IsSpecial('a'))
	assert.False(t, IsSpecial('-'))
	assert.False(t, IsSpecial('_'))
}

func TestIsToken(t *testing.T) {
	for _, c := range []byte("GETget0129!#$%&'*+-._~^`|") {
		assert.True(t, IsToken(c), "token: %q", c)
	}

	assert.False(t, IsToken(' '))
	assert.False(t, IsToken(':'))
	assert.False(t, IsToken('\r'))
	assert.False(t, IsToken('\n'))
	assert.False(t, IsToken(0))
	assert.False(t, IsToken(128))
}
