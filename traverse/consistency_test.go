package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/snarlgraph/support"
	"github.com/katalvlaran/snarlgraph/traverse"
)

func diamondAlleles() []traverse.Traversal {
	return []traverse.Traversal{
		{fwd(1), fwd(2), fwd(4)},
		{fwd(1), fwd(3), fwd(4)},
	}
}

func TestConsistency_CaseTable(t *testing.T) {
	travs := diamondAlleles()
	calc := traverse.ConsistencyCalculator{}

	cases := []struct {
		name string
		read traverse.Read
		want []bool
	}{
		{
			name: "spans whole site",
			read: traverse.Read{Visits: visits(fwd(1), fwd(2), fwd(4))},
			// Both boundaries reached; the second allele counts as a
			// possible deletion crossing.
			want: []bool{true, true},
		},
		{
			name: "interior only",
			read: traverse.Read{Visits: visits(fwd(2))},
			want: []bool{false, false},
		},
		{
			name: "front plus interior",
			read: traverse.Read{Visits: visits(fwd(1), fwd(2))},
			want: []bool{true, false},
		},
		{
			name: "end plus interior",
			read: traverse.Read{Visits: visits(fwd(3), fwd(4))},
			want: []bool{false, true},
		},
		{
			name: "boundary only",
			read: traverse.Read{Visits: visits(fwd(1))},
			want: []bool{false, false},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, calc.CalculateConsistency(travs, tc.read))
		})
	}
}

func TestConsistency_StrandIgnored(t *testing.T) {
	travs := diamondAlleles()
	calc := traverse.ConsistencyCalculator{}

	// Orientation of the visits does not matter, only node identity.
	read := traverse.Read{Visits: visits(rev(4), rev(2), rev(1)), ReverseStrand: true}
	assert.Equal(t, []bool{true, true}, calc.CalculateConsistency(travs, read))
}

func TestTraversalSupport_StrandSplit(t *testing.T) {
	travs := diamondAlleles()
	reads := []traverse.Read{
		{Name: "a", Visits: visits(fwd(1), fwd(2))},
		{Name: "b", Visits: visits(fwd(1), fwd(2)), ReverseStrand: true},
		{Name: "c", Visits: visits(fwd(1), fwd(3))},
	}

	cons := make([][]bool, len(reads))
	calc := traverse.ConsistencyCalculator{}
	for i, r := range reads {
		cons[i] = calc.CalculateConsistency(travs, r)
	}

	got := traverse.TraversalSupportCalculator{}.CalculateSupports(travs, reads, cons)
	assert.Equal(t, []support.Support{
		support.Make(1, 1, 0),
		support.Make(1, 0, 0),
	}, got)
}
