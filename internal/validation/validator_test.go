package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeOutputFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain name gets extension appended",
			input: "combined_data",
			want:  "combined_data.xlsx",
		},
		{
			name:  "name with extension is unchanged",
			input: "combined_data.xlsx",
			want:  "combined_data.xlsx",
		},
		{
			name:  "uppercase extension is not recognized",
			input: "report.XLSX",
			want:  "report.XLSX.xlsx",
		},
		{
			name:  "other extension is kept and suffixed",
			input: "report.csv",
			want:  "report.csv.xlsx",
		},
		{
			name:  "dotted name keeps inner dots",
			input: "q1.final",
			want:  "q1.final.xlsx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeOutputFileName(tt.input))
		})
	}
}

func TestSheetName(t *testing.T) {
	tests := []struct {
		name string
		stem string
		want string
	}{
		{
			name: "plain stem is unchanged",
			stem: "sales_2024",
			want: "sales_2024",
		},
		{
			name: "forbidden characters are replaced",
			stem: `a[b]c*d?e:f/g\h`,
			want: "a_b_c_d_e_f_g_h",
		},
		{
			name: "long stem is truncated to the limit",
			stem: "abcdefghijklmnopqrstuvwxyz_abcdefghijklmnopqrstuvwxyz",
			want: "abcdefghijklmnopqrstuvwxyz_abcd",
		},
		{
			name: "truncation happens before replacement",
			stem: strings.Repeat("x", 31) + "[tail]",
			want: strings.Repeat("x", 31),
		},
		{
			name: "forbidden character at the cutoff is still replaced",
			stem: strings.Repeat("x", 30) + "[tail]",
			want: strings.Repeat("x", 30) + "_",
		},
		{
			name: "empty stem stays empty",
			stem: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SheetName(tt.stem)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len([]rune(got)), SheetNameMaxLength)
		})
	}
}

func TestSheetNameMultiByte(t *testing.T) {
	// Truncation counts characters, not bytes. 40 three-byte runes must be
	// cut to exactly 31 runes without splitting one in the middle.
	stem := strings.Repeat("日", 40)
	got := SheetName(stem)
	require.Equal(t, strings.Repeat("日", 31), got)
}

func TestNameRegistryClaim(t *testing.T) {
	t.Run("distinct names pass through", func(t *testing.T) {
		reg := NewNameRegistry()
		assert.Equal(t, "east", reg.Claim("east"))
		assert.Equal(t, "west", reg.Claim("west"))
	})

	t.Run("duplicates get numeric suffixes", func(t *testing.T) {
		reg := NewNameRegistry()
		assert.Equal(t, "sales", reg.Claim("sales"))
		assert.Equal(t, "sales_2", reg.Claim("sales"))
		assert.Equal(t, "sales_3", reg.Claim("sales"))
	})

	t.Run("comparison is case-insensitive", func(t *testing.T) {
		reg := NewNameRegistry()
		assert.Equal(t, "Sales", reg.Claim("Sales"))
		assert.Equal(t, "SALES_2", reg.Claim("SALES"))
	})

	t.Run("suffixed name still fits the length limit", func(t *testing.T) {
		reg := NewNameRegistry()
		long := strings.Repeat("x", SheetNameMaxLength)

		first := reg.Claim(long)
		second := reg.Claim(long)

		require.Equal(t, long, first)
		assert.Equal(t, strings.Repeat("x", 29)+"_2", second)
		assert.LessOrEqual(t, len([]rune(second)), SheetNameMaxLength)
	})

	t.Run("suffixed collision keeps counting", func(t *testing.T) {
		reg := NewNameRegistry()
		reg.Claim("sales")
		reg.Claim("sales_2")

		// "sales_2" is taken by a genuine file, so the second "sales"
		// claim has to move on to "sales_3".
		assert.Equal(t, "sales_3", reg.Claim("sales"))
	})

	t.Run("released names can be claimed again without a suffix", func(t *testing.T) {
		reg := NewNameRegistry()
		require.Equal(t, "sales", reg.Claim("sales"))

		reg.Release("sales")
		assert.Equal(t, "sales", reg.Claim("sales"))
	})

	t.Run("release is case-insensitive like claim", func(t *testing.T) {
		reg := NewNameRegistry()
		reg.Claim("Sales")

		reg.Release("SALES")
		assert.Equal(t, "Sales", reg.Claim("Sales"))
	})
}
