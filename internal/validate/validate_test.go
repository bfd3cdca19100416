package validate

import (
	"testing"

	"lavkapos/internal/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositiveFloat(t *testing.T) {
	v, err := PositiveFloat("12.5", "Price")
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)

	// Comma decimal separator and surrounding whitespace are accepted
	v, err = PositiveFloat("  3,75 ", "Price")
	require.NoError(t, err)
	assert.Equal(t, 3.75, v)

	for _, bad := range []string{"", "abc", "12,5,0", "0", "-4"} {
		_, err := PositiveFloat(bad, "Price")
		require.Error(t, err, "input %q", bad)
		assert.Equal(t, apierror.InvalidInput, apierror.KindOf(err))
	}
}

func TestFloatAllowsZeroAndNegative(t *testing.T) {
	v, err := Float("0", "Quantity")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	v, err = Float("-1,5", "Quantity")
	require.NoError(t, err)
	assert.Equal(t, -1.5, v)
}

func TestNonEmpty(t *testing.T) {
	v, err := NonEmpty("  Apples ", "Name")
	require.NoError(t, err)
	assert.Equal(t, "Apples", v)

	_, err = NonEmpty("   ", "Name")
	require.Error(t, err)
	assert.Equal(t, apierror.InvalidInput, apierror.KindOf(err))
}

func TestISODate(t *testing.T) {
	d, err := ISODate("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", d.Format(DateLayout))

	for _, bad := range []string{"", "09.03.2024", "2024/03/09", "2024-3-9", "2024-13-01", "yesterday"} {
		_, err := ISODate(bad)
		require.Error(t, err, "input %q", bad)
	}
}
