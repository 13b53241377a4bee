package repositories

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uyumplast-system/pkg/types"
)

func TestOrderSearchAppliesToCountAndList(t *testing.T) {
	filter := types.Filter{
		Search: "труба",
		Filter: map[string]interface{}{"status": "confirmed"},
	}

	countSQL, countArgs, err := orderCountBuilder(filter).ToSql()
	require.NoError(t, err)
	listSQL, listArgs, err := orderListBuilder(filter).ToSql()
	require.NoError(t, err)

	// Поиск должен сужать и подсчёт, и выборку, иначе total_count
	// пагинации расходится со списком.
	assert.Contains(t, countSQL, "ILIKE")
	assert.Contains(t, listSQL, "ILIKE")
	assert.Contains(t, countArgs, "%труба%")
	assert.Contains(t, listArgs, "%труба%")
	assert.Contains(t, countArgs, "confirmed")
}

func TestOrderSearchEmptyIsNoop(t *testing.T) {
	countSQL, _, err := orderCountBuilder(types.Filter{}).ToSql()
	require.NoError(t, err)
	assert.False(t, strings.Contains(countSQL, "ILIKE"))

	listSQL, _, err := orderListBuilder(types.Filter{}).ToSql()
	require.NoError(t, err)
	assert.False(t, strings.Contains(listSQL, "ILIKE"))
}
