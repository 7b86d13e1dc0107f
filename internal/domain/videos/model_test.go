package videos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeType(t *testing.T) {
	assert.Equal(t, TypeSeries, NormalizeType("series"))
	assert.Equal(t, TypeSeries, NormalizeType(" Series "))
	assert.Equal(t, TypeMovie, NormalizeType("movie"))
	assert.Equal(t, TypeMovie, NormalizeType(""))
	assert.Equal(t, TypeMovie, NormalizeType("documentary"))
}

func TestVideoType(t *testing.T) {
	assert.Equal(t, TypeMovie, VideoType(nil))
	assert.Equal(t, TypeMovie, VideoType(&Video{}))
	assert.Equal(t, TypeSeries, VideoType(&Video{Type: "series"}))
}
