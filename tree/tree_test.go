package tree

import (
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"gopkg.in/yaml.v3"
)

// (7 2 (3 (5 1 8) 1))
var deep = N(7, L(2), N(3, N(5, L(1), L(8)), L(1)))

// corpus is a fixed set of trees used by the property tests.
var corpus = []Tree{
	L(8),
	N(4),
	N(1, L(3), L(2)),
	deep,
	N(0, N(-2), N(5, N(-9), L(1))),
	N(9, N(8, L(7), L(6)), N(5, L(4), L(3))),
	N(2, L(2), L(2), N(2, L(2))),
}

func TestString(t *testing.T) {
	tests := []struct {
		tree Tree
		want string
	}{
		{L(8), "8"},
		{N(4), "(4)"},
		{N(1, L(3), L(2)), "(1 3 2)"},
		{deep, "(7 2 (3 (5 1 8) 1))"},
		{N(-1, N(-2)), "(-1 (-2))"},
	}
	for _, tt := range tests {
		if got := tt.tree.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestHas(t *testing.T) {
	tests := []struct {
		tree Tree
		v    int
		want bool
	}{
		{L(8), 8, true},
		{L(8), 9, false},
		{N(4), 4, true},
		{N(4), 0, false},
		{deep, 7, true},
		{deep, 8, true},
		{deep, 5, true},
		{deep, 6, false},
	}
	for _, tt := range tests {
		if got := Has(tt.tree, tt.v); got != tt.want {
			t.Errorf("Has(%v, %d) = %v, want %v", tt.tree, tt.v, got, tt.want)
		}
	}
}

func TestMap(t *testing.T) {
	inc := func(v int) int { return v + 1 }
	if got := Map(L(8), inc); !Equal(got, L(9)) {
		t.Errorf("Map(8, +1) = %v, want 9", got)
	}
	got := Map(deep, inc)
	want := N(8, L(3), N(4, N(6, L(2), L(9)), L(2)))
	if !Equal(got, want) {
		t.Errorf("Map(%v, +1) = %v, want %v", deep, got, want)
	}
	// the input is left alone
	if deep.String() != "(7 2 (3 (5 1 8) 1))" {
		t.Errorf("Map modified its input: %v", deep)
	}
}

func TestMapLaws(t *testing.T) {
	id := func(v int) int { return v }
	f := func(v int) int { return v*3 - 1 }
	g := func(v int) int { return -v }
	for _, tr := range corpus {
		if got := Map(tr, id); !Equal(got, tr) {
			t.Errorf("Map(%v, id) = %v", tr, got)
		}
		a := Map(Map(tr, f), g)
		b := Map(tr, func(v int) int { return g(f(v)) })
		if !Equal(a, b) {
			t.Errorf("Map(Map(%v, f), g) = %v, Map(t, g.f) = %v", tr, a, b)
		}
		if !SameShape(a, tr) {
			t.Errorf("Map(%v) changed shape: %v", tr, a)
		}
	}
}

func TestCountLeaves(t *testing.T) {
	if got := CountLeaves(deep); got != 4 {
		t.Errorf("CountLeaves(%v) = %d, want 4", deep, got)
	}
	if got := CountLeaves(L(0)); got != 1 {
		t.Errorf("CountLeaves(0) = %d, want 1", got)
	}
	if got := CountLeaves(N(3)); got != 0 {
		t.Errorf("CountLeaves((3)) = %d, want 0", got)
	}
	if got := CountLeaves(N(3, N(2), N(1))); got != 0 {
		t.Errorf("CountLeaves((3 (2) (1))) = %d, want 0", got)
	}
}

func TestSort(t *testing.T) {
	got := Sort(N(1, L(3), L(2)))
	want := N(1, L(2), L(3))
	if !Equal(got, want) {
		t.Errorf("Sort((1 3 2)) = %v, want %v", got, want)
	}
}

func TestSortProperties(t *testing.T) {
	for _, tr := range corpus {
		before := tr.String()
		s := Sort(tr)
		want := Preorder(tr)
		slices.Sort(want)
		if got := Preorder(s); !slices.Equal(got, want) {
			t.Errorf("Preorder(Sort(%v)) = %v, want %v", tr, got, want)
		}
		if !SameShape(s, tr) {
			t.Errorf("Sort(%v) = %v, shape differs", tr, s)
		}
		if tr.String() != before {
			t.Errorf("Sort modified its input: %v, was %v", tr, before)
		}
	}
}

func TestPreorder(t *testing.T) {
	got := Preorder(deep)
	want := []int{7, 2, 3, 5, 1, 8, 1}
	if diff := pretty.Diff(got, want); len(diff) != 0 {
		t.Errorf("Preorder(%v): %v", deep, diff)
	}
}

func TestEqualAndShape(t *testing.T) {
	if !Equal(&Node{Value: 1}, &Node{Value: 1, Children: []Tree{}}) {
		t.Errorf("nil and empty children should be equal")
	}
	if Equal(L(1), N(1)) {
		t.Errorf("Equal(1, (1)) = true")
	}
	if !SameShape(N(1, L(2)), N(9, L(9))) {
		t.Errorf("SameShape((1 2), (9 9)) = false")
	}
	if SameShape(N(1, L(2)), N(1, N(2))) {
		t.Errorf("SameShape((1 2), (1 (2))) = true")
	}
	if SameShape(N(1, L(2)), N(1, L(2), L(3))) {
		t.Errorf("SameShape((1 2), (1 2 3)) = true")
	}
}

func TestFixtures(t *testing.T) {
	data, err := os.ReadFile("testdata/trees.yaml")
	if err != nil {
		t.Fatal(err)
	}
	var cases []struct {
		Name   string    `yaml:"name"`
		Tree   yaml.Node `yaml:"tree"`
		Sorted yaml.Node `yaml:"sorted"`
		Leaves int       `yaml:"leaves"`
	}
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatal(err)
	}
	if len(cases) == 0 {
		t.Fatal("no test cases in testdata/trees.yaml")
	}
	for _, tt := range cases {
		tr, err := FromYAML(&tt.Tree)
		if err != nil {
			t.Errorf("%s: %v", tt.Name, err)
			continue
		}
		want, err := FromYAML(&tt.Sorted)
		if err != nil {
			t.Errorf("%s: %v", tt.Name, err)
			continue
		}
		if got := Sort(tr); !Equal(got, want) {
			t.Errorf("%s: Sort(%v) = %v, want %v", tt.Name, tr, got, want)
		}
		if got := CountLeaves(tr); got != tt.Leaves {
			t.Errorf("%s: CountLeaves(%v) = %d, want %d", tt.Name, tr, got, tt.Leaves)
		}
	}
}

func TestDecodeSharedAlias(t *testing.T) {
	tr, err := Decode([]byte("node: 0\nchildren: [&s {node: 1, children: [2]}, *s]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := tr.String(), "(0 (1 2) (1 2))"; got != want {
		t.Errorf("Decode = %v, want %v", got, want)
	}
}

func TestDecode(t *testing.T) {
	tr, err := Decode([]byte("node: 7\nchildren:\n  - 2\n  - node: 3\n    children: [{node: 5, children: [1, 8]}, 1]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(tr, deep) {
		t.Errorf("Decode = %# v, want %v", pretty.Formatter(tr), deep)
	}
}

var decodeErrorTests = []struct {
	input string
	error string
}{
	{"", "empty document"},
	{"[1, 2]", "must be an integer or a mapping"},
	{"x", "is not an integer"},
	{"{children: [1]}", "node has no label"},
	{"{node: 1, kids: [2]}", `unknown key "kids"`},
	{"{node: 1, children: 2}", "children must be a sequence"},
	{"{node: 1, children: [y]}", "is not an integer"},
	{"{node: [1]}", "is not an integer"},
	{"&a {node: 1, children: [*a]}\n", "line 1: alias refers to itself"},
	{"&a {node: 1, children: [2, {node: 3, children: [*a]}]}\n", "alias refers to itself"},
	{"{node: 1, node: 2, children: [3], children: [4, 5]}", `line 1: duplicate key "node"`},
	{"node: 1\nchildren: [3]\nchildren: [4, 5]\n", `line 3: duplicate key "children"`},
}

func TestDecodeErrors(t *testing.T) {
	for _, tt := range decodeErrorTests {
		_, err := Decode([]byte(tt.input))
		if err == nil {
			t.Errorf("Decode(%q): expected an error but found none", tt.input)
		} else if !strings.Contains(err.Error(), tt.error) {
			t.Errorf("Decode(%q): unexpected error: %v, want %q", tt.input, err, tt.error)
		}
	}
}
