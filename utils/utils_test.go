package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hmcol/graff/utils"
)

func TestMinMaxSlice(t *testing.T) {
	require.Equal(t, 1, utils.MinSlice([]int{3, 1, 2}))
	require.Equal(t, 3, utils.MaxSlice([]int{3, 1, 2}))

	require.Equal(t, -2.5, utils.MinSlice([]float64{0, -2.5, 4}))
	require.Equal(t, 4.0, utils.MaxSlice([]float64{0, -2.5, 4}))

	require.Equal(t, 7, utils.MinSlice([]int{7}))
	require.Equal(t, 7, utils.MaxSlice([]int{7}))
}
