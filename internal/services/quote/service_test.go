package quote_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jthurston/EmbCalc/internal/domain"
	quotesvc "github.com/jthurston/EmbCalc/internal/services/quote"
	settingssvc "github.com/jthurston/EmbCalc/internal/services/settings"
	"github.com/jthurston/EmbCalc/internal/store"
)

func newServices(t *testing.T) (*quotesvc.Service, *settingssvc.Service) {
	t.Helper()
	log := zaptest.NewLogger(t)
	fs := store.NewSettingsFileStore(t.TempDir(), log)
	ss := settingssvc.New(fs, log)
	return quotesvc.New(ss, log), ss
}

func strp(s string) *string { return &s }

func TestQuote_DefaultRates(t *testing.T) {
	qs, _ := newServices(t)

	got, err := qs.Quote(domain.OrderForm{Stitches: "5000"})
	require.NoError(t, err)

	assert.Equal(t, 2.50, got.StitchCost)
	assert.Equal(t, 2.50, got.PerItemCost)
	assert.Equal(t, 2.50, got.TotalCost)
}

func TestQuote_UsesSavedRates(t *testing.T) {
	qs, ss := newServices(t)

	_, err := ss.Update(domain.SettingsPatch{
		StitchRate:    strp("0.75"),
		AppliqueRate:  strp("1.50"),
		InsuranceRate: strp("0.20"),
	})
	require.NoError(t, err)

	got, err := qs.Quote(domain.OrderForm{
		Stitches:  "2000",
		Appliques: "1",
		BlankCost: "10",
	})
	require.NoError(t, err)

	assert.Equal(t, 1.50, got.StitchCost)
	assert.Equal(t, 1.50, got.AppliqueCost)
	assert.Equal(t, 10.0, got.BlankCost)
	assert.Equal(t, 2.00, got.InsuranceCost)
	assert.Equal(t, 15.00, got.PerItemCost)
	assert.Equal(t, 15.00, got.TotalCost)
}

func TestQuote_RejectedFormReportsFields(t *testing.T) {
	qs, _ := newServices(t)

	_, err := qs.Quote(domain.OrderForm{})
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "stitches", verr.Fields[0].Field)
}
