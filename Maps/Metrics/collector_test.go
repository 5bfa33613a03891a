package Metrics

import (
	"strings"
	"testing"

	Probe_Table "github.com/g-m-twostay/probe-table"
	"github.com/g-m-twostay/probe-table/Maps/ProbeMap"
	"github.com/g-m-twostay/probe-table/Maps/SyncMap"
	"github.com/op/go-logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector(t *testing.T) {
	logging.SetLevel(logging.WARNING, "probemap")
	M := SyncMap.New[int, int](ProbeMap.MustNew[int, int](Probe_Table.IdentityHash[int](), ProbeMap.WithInitialCapacity(8), ProbeMap.WithProbeStep(3)))
	for i := 0; i < 5; i++ {
		M.Add(i, i)
	}
	M.Delete(0)

	c := NewCollector("test", M)
	if n := testutil.CollectAndCount(c); n != 6 {
		t.Errorf("collected %d metrics", n)
	}
	expected := `
# HELP probetable_capacity Length of the slot array.
# TYPE probetable_capacity gauge
probetable_capacity{table="test"} 16
# HELP probetable_deleted Tombstoned slots.
# TYPE probetable_deleted gauge
probetable_deleted{table="test"} 1
# HELP probetable_resizes_total Rebuilds that doubled the capacity.
# TYPE probetable_resizes_total counter
probetable_resizes_total{table="test"} 1
# HELP probetable_used_elements Live entries.
# TYPE probetable_used_elements gauge
probetable_used_elements{table="test"} 4
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected),
		"probetable_capacity", "probetable_deleted", "probetable_resizes_total", "probetable_used_elements"); err != nil {
		t.Error(err)
	}
}

func TestCollector_Register(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	M := SyncMap.New[string, string](ProbeMap.MustNew[string, string](nil))
	if err := reg.Register(NewCollector("a", M)); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(NewCollector("b", M)); err != nil {
		t.Errorf("distinct table labels should register: %v", err)
	}
	if err := reg.Register(NewCollector("a", M)); err == nil {
		t.Error("duplicate collector registered")
	}
	if _, err := reg.Gather(); err != nil {
		t.Error(err)
	}
}
