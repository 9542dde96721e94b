package to

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyString(t *testing.T) {
	t.Run("nil pointer", func(t *testing.T) {
		assert.Equal(t, "", EmptyString(nil))
	})
	t.Run("non-nil pointer", func(t *testing.T) {
		s := "value"
		assert.Equal(t, "value", EmptyString(&s))
	})
}

func TestValue(t *testing.T) {
	t.Run("nil pointer yields zero value", func(t *testing.T) {
		assert.Equal(t, 0, Value[int](nil))
	})
	t.Run("non-nil pointer", func(t *testing.T) {
		assert.Equal(t, 42, Value(Ptr(42)))
	})
}
