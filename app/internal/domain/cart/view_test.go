package cart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/naturemart/app/internal/domain/currency"
)

func TestView_EmptyCart(t *testing.T) {
	v := NewStore(currency.DefaultRates()).View()

	require.Equal(t, currency.USD, v.Currency)
	require.NotNil(t, v.Lines)
	require.Empty(t, v.Lines)
	require.Equal(t, 0, v.ItemCount)
	require.Equal(t, 0.0, v.Total)
}

func TestView_UsesSelectedCurrency(t *testing.T) {
	s := NewStore(currency.DefaultRates())
	s.AddToCart(tea(), 2)
	s.Add(soap())
	s.SetSelectedCurrency(currency.EUR)

	v := s.View()

	require.Equal(t, currency.EUR, v.Currency)
	require.Equal(t, 3, v.ItemCount)
	require.Equal(t, s.CartTotal(currency.EUR), v.Total)
	require.Len(t, v.Lines, 2)

	first := v.Lines[0]
	require.Equal(t, "prod1", first.ProductID)
	require.Equal(t, "Ceylon Black Tea", first.Name)
	require.Equal(t, 2, first.Quantity)
	require.Equal(t, 12.99, first.UnitPriceUSD)
	require.InDelta(t, 12.99*0.92, first.UnitPrice, 1e-9)
	require.InDelta(t, 12.99*2*0.92, first.LineTotal, 1e-9)
}
