package words_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/domain"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/words"
)

func TestConvert_Basics(t *testing.T) {
	assert.Equal(t, "Zero", words.Convert(0))
	assert.Equal(t, "One", words.Convert(1))
	assert.Equal(t, "Nineteen", words.Convert(19))
	assert.Equal(t, "Twenty", words.Convert(20))
	assert.Equal(t, "Ninety Nine", words.Convert(99))
}

func TestConvert_Minus(t *testing.T) {
	assert.Equal(t, "Minus "+words.Convert(5), words.Convert(-5))
	assert.Equal(t, "Minus Two Hundred and Ninety Five", words.Convert(-295))
}

func TestConvert_AndInsertion(t *testing.T) {
	assert.Equal(t, "Two Hundred and Ninety Five", words.Convert(295))
	assert.Equal(t, "One Hundred", words.Convert(100))
	// "and" also joins a larger group directly to trailing tens/ones
	assert.Equal(t, "One Thousand and Fifty", words.Convert(1050))
}

func TestConvert_IndianGrouping(t *testing.T) {
	assert.Equal(t, "One Thousand", words.Convert(1000))
	assert.Equal(t, "One Lakh", words.Convert(100000))
	assert.Equal(t, "One Crore", words.Convert(10000000))
	// 1234567 = 12 Lakh, 34 Thousand, 5 Hundred, 67
	assert.Equal(t, "Twelve Lakh Thirty Four Thousand Five Hundred and Sixty Seven", words.Convert(1234567))
	// crore group is itself converted recursively
	assert.Equal(t, "Twelve Crore Thirty Four Lakh Fifty Six Thousand Seven Hundred and Eighty Nine", words.Convert(123456789))
}

func TestConvertAmount_Paise(t *testing.T) {
	got, err := words.ConvertAmount(250.75)
	require.NoError(t, err)
	assert.Equal(t, "Two Hundred and Fifty and Seventy Five Paise", got)

	got, err = words.ConvertAmount(250)
	require.NoError(t, err)
	assert.Equal(t, "Two Hundred and Fifty", got)

	// paise rounding carries into the rupee part
	got, err = words.ConvertAmount(99.999)
	require.NoError(t, err)
	assert.Equal(t, "One Hundred", got)
}

func TestConvertAmount_NonFinite(t *testing.T) {
	_, err := words.ConvertAmount(math.NaN())
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = words.ConvertAmount(math.Inf(1))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}
