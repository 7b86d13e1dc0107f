package plans

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartition(t *testing.T) {
	catalog := []Plan{
		{ID: 1, Tier: TierBasic},
		{ID: 2, Tier: TierBasic},
		{ID: 3, Tier: TierAdvance},
		{ID: 4, Tier: TierBasic},
		{ID: 5, Tier: TierAdvance},
		{ID: 6, Tier: TierBasic},
		{ID: 7, Tier: TierAdvance},
		{ID: 8, Tier: TierBasic},
	}

	basic, advance := Partition(catalog)

	assert.Len(t, basic, 5)
	assert.Len(t, advance, 3)

	// catalog order is preserved within each bucket
	assert.Equal(t, []uint{1, 2, 4, 6, 8}, ids(basic))
	assert.Equal(t, []uint{3, 5, 7}, ids(advance))
}

func TestPartitionEmpty(t *testing.T) {
	basic, advance := Partition(nil)
	assert.Empty(t, basic)
	assert.Empty(t, advance)
}

func ids(list []Plan) []uint {
	out := make([]uint, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}
