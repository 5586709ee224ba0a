package accounting_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-kasir/internal/accounting"
	"github.com/noah-isme/backend-kasir/internal/money"
	"github.com/noah-isme/backend-kasir/internal/sale"
)

func TestRecordSaleKeepsBookingOrder(t *testing.T) {
	svc := accounting.NewService(zerolog.Nop())

	first := sale.Summary{SaleID: uuid.New(), TotalWithVAT: money.FromFloat(50.40)}
	second := sale.Summary{SaleID: uuid.New(), TotalWithVAT: money.FromFloat(22.40)}

	require.NoError(t, svc.RecordSale(context.Background(), first))
	require.NoError(t, svc.RecordSale(context.Background(), second))

	booked := svc.RecordedSales()
	require.Len(t, booked, 2)
	require.Equal(t, first.SaleID, booked[0].SaleID)
	require.Equal(t, second.SaleID, booked[1].SaleID)
}

func TestUpdateStatisticsAccumulatesRevenue(t *testing.T) {
	svc := accounting.NewService(zerolog.Nop())

	svc.UpdateStatistics(money.FromFloat(50.40))
	svc.UpdateStatistics(money.FromFloat(22.40))

	require.True(t, svc.Revenue().Equal(money.FromFloat(72.80)),
		"revenue = %s", svc.Revenue())
}

func TestRecordedSalesReturnsCopy(t *testing.T) {
	svc := accounting.NewService(zerolog.Nop())
	require.NoError(t, svc.RecordSale(context.Background(), sale.Summary{SaleID: uuid.New()}))

	booked := svc.RecordedSales()
	booked[0].SaleID = uuid.Nil

	require.NotEqual(t, uuid.Nil, svc.RecordedSales()[0].SaleID)
}
