package bizarromath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetChunkWidthRejectsInvalid(t *testing.T) {
	defer func() {
		r := recover()
		assert.NotNil(t, r)
		SetChunkWidth(32) // restore the suite's frozen width
	}()
	SetChunkWidth(24)
}

func TestWidthMask(t *testing.T) {
	assert.Equal(t, uint64(0xFF), widthMask(8))
	assert.Equal(t, uint64(0xFFFFFFFF), widthMask(32))
	assert.Equal(t, ^uint64(0), widthMask(64))
}
