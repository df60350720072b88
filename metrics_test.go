package dynarray

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Registration(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	require.NotNil(t, m)

	// Vec families are only gathered after first use
	m.Reallocations.WithLabelValues(opGrow).Add(0)

	metricFamilies, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, metricFamilies, 2)

	names := make(map[string]bool)
	for _, mf := range metricFamilies {
		names[mf.GetName()] = true
	}
	require.True(t, names["dynarray_reallocations_total"])
	require.True(t, names["dynarray_elements_copied_total"])
}

func TestMetrics_Reallocations(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	arr := New[int](WithMetrics(m))

	require.NoError(t, arr.AddAll(1, 2, 3))
	require.Equal(t, float64(1), testutil.ToFloat64(m.Reallocations.WithLabelValues(opGrow)))

	require.NoError(t, arr.EnsureCapacity(10))
	require.Equal(t, float64(1), testutil.ToFloat64(m.Reallocations.WithLabelValues(opEnsure)))

	arr.TrimToSize()
	require.Equal(t, float64(1), testutil.ToFloat64(m.Reallocations.WithLabelValues(opTrim)))

	// 1 element on grow, 3 on ensure, 3 on trim
	require.Equal(t, float64(7), testutil.ToFloat64(m.ElementsCopied))
}

func TestMetrics_SharedAcrossArrays(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	a := New[string](WithMetrics(m))
	b := New[string](WithMetrics(m))

	require.NoError(t, a.AddAll("x", "y"))
	require.NoError(t, b.AddAll("x", "y"))
	require.Equal(t, float64(2), testutil.ToFloat64(m.Reallocations.WithLabelValues(opGrow)))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() { m.observe(opGrow, 3) })
}
