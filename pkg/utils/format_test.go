package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsValidPHMobile(t *testing.T) {
	valid := []string{"09171234567", "09991234567", "09000000000"}
	for _, s := range valid {
		require.True(t, IsValidPHMobile(s), s)
	}

	invalid := []string{
		"",
		"0917123456",    // ten digits
		"091712345678",  // twelve digits
		"08171234567",   // wrong prefix
		"9171234567",    // missing leading zero
		"+639171234567", // international format
		"0917-123-4567",
		"0917123456a",
	}
	for _, s := range invalid {
		require.False(t, IsValidPHMobile(s), s)
	}
}

func TestFormatPeso(t *testing.T) {
	cases := map[float64]string{
		0:          "₱0.00",
		45:         "₱45.00",
		1455:       "₱1,455.00",
		3830:       "₱3,830.00",
		1234.56:    "₱1,234.56",
		1234567.89: "₱1,234,567.89",
		-500:       "-₱500.00",
	}
	for amount, want := range cases {
		require.Equal(t, want, FormatPeso(amount))
	}
}

func TestIsValidEmail(t *testing.T) {
	require.True(t, IsValidEmail("maria@example.com"))
	require.False(t, IsValidEmail("maria@example"))
	require.False(t, IsValidEmail("not-an-email"))
}

func TestSlugify(t *testing.T) {
	require.Equal(t, "toyota-vios-2022", Slugify("Toyota Vios 2022"))
	require.Equal(t, "honda-click-125i", Slugify("  Honda Click 125i!  "))
	require.Equal(t, "", Slugify("!!!"))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	require.Equal(t, "Mar 10, 2026", FormatDate(d))
}
