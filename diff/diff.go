package diff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/skolemize/go-fol/ir"
)

// Op classifies one edit run.
type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) String() string {
	switch o {
	case Equal:
		return "equal"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	default:
		return "unknown"
	}
}

// Edit is a run of consecutive symbols sharing one op.
type Edit struct {
	Op   Op
	Syms []string
}

// Symbols diffs two symbol sequences. Runs of equal symbols are kept
// together, deletions precede insertions at each change point.
func Symbols(from, to []string) []Edit {
	symMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapSymsTo(symMap, runeMap, from)
	toRunes := mapSymsTo(symMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	edits := make([]Edit, 0, len(diffs))
	for i := range diffs {
		d := &diffs[i]
		e := Edit{Op: opOf(d.Type)}
		for _, r := range d.Text {
			e.Syms = append(e.Syms, runeMap[r])
		}
		edits = append(edits, e)
	}
	return edits
}

func opOf(t diffpatch.Operation) Op {
	switch t {
	case diffpatch.DiffDelete:
		return Delete
	case diffpatch.DiffInsert:
		return Insert
	default:
		return Equal
	}
}

func mapSymsTo(m map[string]rune, im map[rune]string, syms []string) []rune {
	rs := make([]rune, len(syms))
	for i, s := range syms {
		r, ok := m[s]
		if !ok {
			r = rune(len(m))
			m[s] = r
			im[r] = s
		}
		rs[i] = r
	}
	return rs
}

// Terms diffs the renderings of two terms.
func Terms(from, to *ir.Term) []Edit {
	return Symbols(strings.Fields(from.String()), strings.Fields(to.String()))
}

// Formulas diffs the renderings of two formulas.
func Formulas(from, to *ir.Formula) []Edit {
	return Symbols(strings.Fields(from.String()), strings.Fields(to.String()))
}

// Render writes edits as one line. With colors, deleted runs are red
// and inserted runs green; without, they carry -[ ] and +[ ] markers.
func Render(edits []Edit, colored bool) string {
	del := color.New(color.FgRed, color.CrossedOut).SprintFunc()
	ins := color.New(color.FgGreen).SprintFunc()
	parts := make([]string, 0, len(edits))
	for _, e := range edits {
		run := strings.Join(e.Syms, " ")
		switch {
		case e.Op == Equal:
			parts = append(parts, run)
		case colored && e.Op == Delete:
			parts = append(parts, del(run))
		case colored && e.Op == Insert:
			parts = append(parts, ins(run))
		case e.Op == Delete:
			parts = append(parts, "-[ "+run+" ]")
		default:
			parts = append(parts, "+[ "+run+" ]")
		}
	}
	return strings.Join(parts, " ")
}
