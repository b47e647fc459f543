package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shipmark/internal/domain"
)

func TestParseZone(t *testing.T) {
	cases := []struct {
		raw  string
		want domain.Zone
		ok   bool
	}{
		{"anymall", domain.ZoneAnymall, true},
		{"Anymall", domain.ZoneAnymall, true},
		{"HELLOBEAR", domain.ZoneHelloBear, true},
		{"hello bear", domain.ZoneHelloBear, true},
		{" yummy ", domain.ZoneYummy, true},
		{"homey", domain.ZoneHomey, true},
		{"warehouse", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			z, ok := domain.ParseZone(tc.raw)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, z)
			}
		})
	}
}

func TestLabelTypeNeedsPrint(t *testing.T) {
	assert.True(t, domain.LabelFood.NeedsPrint())
	assert.True(t, domain.LabelInsectWarning.NeedsPrint())
	assert.True(t, domain.LabelCautionOnly.NeedsPrint())
	assert.True(t, domain.LabelRepack.NeedsPrint())
	assert.False(t, domain.LabelNoPrint.NeedsPrint())
	assert.False(t, domain.LabelNormal.NeedsPrint())
}

func TestRowStatusScore(t *testing.T) {
	assert.Equal(t, 3, domain.RowStatusInsect.Score())
	assert.Equal(t, 2, domain.RowStatusFood.Score())
	assert.Equal(t, 1, domain.RowStatusCaution.Score())
	assert.Equal(t, 0, domain.RowStatusEmpty.Score())
}
