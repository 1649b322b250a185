package utils

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveLedgerTotalNeverGoesBack(t *testing.T) {
	ObserveLedgerTotal(1_000_007)
	ObserveLedgerTotal(1_000_006)
	assert.Equal(t, float64(1_000_007), testutil.ToFloat64(LedgerTotalOrders))

	ObserveLedgerTotal(1_000_008)
	assert.Equal(t, float64(1_000_008), testutil.ToFloat64(LedgerTotalOrders))
}
