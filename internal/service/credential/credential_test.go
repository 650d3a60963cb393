package credential

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	assert := assert.New(t)

	password := "longenoughpassword1"

	hashed, err := Hash(password)
	assert.Nil(err)
	assert.NotEmpty(hashed)
	assert.NotEqual(password, hashed)

	t.Run("round trip", func(t *testing.T) {
		match, err := Verify(password, hashed)
		assert.Nil(err)
		assert.True(match)
	})

	t.Run("mismatch is not an error", func(t *testing.T) {
		match, err := Verify("someotherpassword", hashed)
		assert.Nil(err)
		assert.False(match)
	})

	t.Run("fresh salt per call", func(t *testing.T) {
		again, err := Hash(password)
		assert.Nil(err)
		assert.NotEqual(hashed, again)
	})

	t.Run("malformed stored hash", func(t *testing.T) {
		_, err := Verify(password, "not-a-bcrypt-hash")
		assert.NotNil(err)
	})
}
