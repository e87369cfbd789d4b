package targetgraph

import (
	"strings"
	"testing"
)

func TestToDOT(t *testing.T) {
	g, err := Build(buildDoc(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	dot := ToDOT(g, Options{})
	if !strings.HasPrefix(dot, "digraph targets {\n") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("ToDOT() not wrapped in a digraph:\n%s", dot)
	}

	wantLines := []string{
		"rankdir=TB;",
		`"A1" [label="App"];`,
		`"B2" [label="Lib"];`,
		`"A1" -> "B2";`,
		`"A1" -> "D4" [style=dashed];`,
		`"C3" -> "A1";`,
	}
	for _, line := range wantLines {
		if !strings.Contains(dot, line) {
			t.Errorf("ToDOT() missing %q:\n%s", line, dot)
		}
	}
}

func TestToDOTDirection(t *testing.T) {
	g := chain(t, []string{"A1"}, nil)

	dot := ToDOT(g, Options{Direction: "LR"})
	if !strings.Contains(dot, "rankdir=LR;") {
		t.Errorf("ToDOT(LR) missing rankdir=LR:\n%s", dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	g, err := Build(buildDoc(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	dot := ToDOT(g, Options{Detailed: true})
	// Multi-line labels reach Graphviz as escaped newlines.
	if want := `label="App\nPBXNativeTarget\ncom.apple.product-type.application"`; !strings.Contains(dot, want) {
		t.Errorf("ToDOT(detailed) missing %q:\n%s", want, dot)
	}
	if want := `label="All\nPBXAggregateTarget"`; !strings.Contains(dot, want) {
		t.Errorf("ToDOT(detailed) missing %q:\n%s", want, dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := `<?xml version="1.0"?>
<svg width="134pt" height="188pt" viewBox="0.00 0.00 133.68 188.00" xmlns="http://www.w3.org/2000/svg">
<g></g>
</svg>`
	out := string(normalizeViewBox([]byte(in)))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 133.68 188.00" width="134" height="188">`
	if !strings.Contains(out, want) {
		t.Errorf("normalizeViewBox:\ngot  %s\nwant root %s", out, want)
	}

	// Without a viewBox the input passes through untouched.
	plain := "<svg><g/></svg>"
	if got := string(normalizeViewBox([]byte(plain))); got != plain {
		t.Errorf("normalizeViewBox(no viewBox) = %s", got)
	}
}
