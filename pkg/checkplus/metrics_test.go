package checkplus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"golang.org/x/time/rate"
)

func outcomeCounts(t *testing.T, reader sdkmetric.Reader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	counts := map[string]int64{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != outcomeCounterName {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, point := range sum.DataPoints {
				operation, _ := point.Attributes.Value(attribute.Key("operation"))
				outcome, _ := point.Attributes.Value(attribute.Key("outcome"))
				group, _ := point.Attributes.Value(attribute.Key("carrier_group"))
				require.Equal(t, "COMMON_MOBILE_SKT", group.AsString())
				counts[operation.AsString()+"/"+outcome.AsString()] += point.Value
			}
		}
	}
	return counts
}

func TestOutcomeCounter(t *testing.T) {
	provider := newFakeProvider(t)
	reader := sdkmetric.NewManualReader()
	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		meterProvider.Shutdown(context.Background())
	})

	session, err := NewSession(Options{
		Carrier:       CarrierSKT,
		LandingURL:    provider.landingURL(),
		BaseURL:       provider.server.URL,
		Limiter:       rate.NewLimiter(rate.Inf, 0),
		MeterProvider: meterProvider,
	})
	require.NoError(t, err)
	defer session.Close()
	ctx := context.Background()

	_, err = session.Init(ctx, MethodSMS, "")
	require.NoError(t, err)
	res, err := session.CheckSMSVerification(ctx, fakeSMSCode)
	require.NoError(t, err)
	require.False(t, res.Success)

	counts := outcomeCounts(t, reader)
	require.Equal(t, map[string]int64{
		"init/success":           1,
		"check_sms/soft_failure": 1,
	}, counts)
}
