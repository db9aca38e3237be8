package code_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gudangkita/gudang-api/internal/domain/code"
)

func TestGenerate_BaseCodes(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		existing []string
		want     string
	}{
		{"three tokens", "Alpha Beta Corp", nil, "ALP-BET-COR"},
		{"short tokens kept whole", "Es Teh 2L", nil, "ES-TEH-2L"},
		{"lowercase input uppercased", "kopi susu", nil, "KOP-SUS"},
		{"diacritics stripped", "Café Señor", nil, "CAF-SEN"},
		{"punctuation splits tokens", "Gula/Pasir (1kg)", nil, "GUL-PAS-1KG"},
		{"long result truncated to 16", "Sambal Terasi Pedas Manis Asin", nil, "SAM-TER-PED-MAN-"},
		{"empty name falls back to stem", "   ", nil, "PRD"},
		{"non-ascii only falls back to stem", "☕☕☕", nil, "PRD"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := code.Generate(tc.input, tc.existing, "", code.StemProduct)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	existing := []string{"KOP-SUS", "ES-TEH"}
	first := code.Generate("Roti Bakar", existing, "", code.StemProduct)
	second := code.Generate("Roti Bakar", existing, "", code.StemProduct)
	assert.Equal(t, first, second)
	assert.Equal(t, "ROT-BAK", first)
}

func TestGenerate_CollisionSuffixes(t *testing.T) {
	existing := []string{"ALP-BET-COR"}
	assert.Equal(t, "ALP-BET-COR-2", code.Generate("Alpha Beta Corp", existing, "", code.StemProduct))

	existing = append(existing, "ALP-BET-COR-2", "ALP-BET-COR-3")
	assert.Equal(t, "ALP-BET-COR-4", code.Generate("Alpha Beta Corp", existing, "", code.StemProduct))
}

func TestGenerate_CollisionIsCaseInsensitive(t *testing.T) {
	existing := []string{"alp-bet-cor"}
	assert.Equal(t, "ALP-BET-COR-2", code.Generate("Alpha Beta Corp", existing, "", code.StemProduct))
}

func TestGenerate_ExcludeOwnCodeOnRename(t *testing.T) {
	// Renaming the entity that already owns ALP-BET-COR keeps its code.
	existing := []string{"ALP-BET-COR", "KOP-SUS"}
	got := code.Generate("Alpha Beta Corp", existing, "ALP-BET-COR", code.StemProduct)
	assert.Equal(t, "ALP-BET-COR", got)
}

func TestGenerate_StemCollision(t *testing.T) {
	got := code.OutletCode("", []string{"OUT"}, "")
	assert.Equal(t, "OUT-2", got)
}

func TestOutletCode_Stem(t *testing.T) {
	assert.Equal(t, "OUT", code.OutletCode("!!!", nil, ""))
	assert.Equal(t, "CAB-UTA", code.OutletCode("Cabang Utama", nil, ""))
}
