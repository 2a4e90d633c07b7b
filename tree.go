package camcal

import (
	"github.com/pkg/errors"
	"github.com/tidwall/btree"
)

var ErrDuplicatePreset = errors.New("DUPLICATE")

type makerNode struct {
	name   string
	models *btree.BTree
}

type modelNode struct {
	name    string
	presets []*presetNode
	byName  map[string]*presetNode
}

type presetNode struct {
	name    string
	tunings *btree.BTree
}

type tuningNode struct {
	tuning int
	coeffs [4]float64
}

// PresetTree accumulates preset rows keyed by maker, model, preset name and tuning.
// Makers, models and tunings are kept ordered, presets stay in the order they were first seen.
type PresetTree struct {
	makers *btree.BTree
	rows   int
}

func NewPresetTree() *PresetTree {
	return &PresetTree{makers: btree.NewNonConcurrent(byMakerName)}
}

func (t *PresetTree) Insert(row PresetRow) error {
	mk := t.resolveMaker(row.Maker)
	md := mk.resolveModel(row.Model)
	ps := md.resolvePreset(row.Preset)

	if ps.tunings.Get(&tuningNode{tuning: row.Tuning}) != nil {
		return errors.Wrapf(
			ErrDuplicatePreset,
			"maker %q, model %q, preset %q, tuning %d",
			row.Maker, row.Model, row.Preset, row.Tuning)
	}

	ps.tunings.Set(&tuningNode{tuning: row.Tuning, coeffs: row.Coefficients})
	t.rows++

	return nil
}

func (t *PresetTree) Len() int {
	return t.rows
}

func (t *PresetTree) resolveMaker(name string) *makerNode {
	if found := t.makers.Get(&makerNode{name: name}); found != nil {
		return found.(*makerNode)
	}

	mk := &makerNode{name: name, models: btree.NewNonConcurrent(byModelName)}
	t.makers.Set(mk)
	return mk
}

func (mk *makerNode) resolveModel(name string) *modelNode {
	if found := mk.models.Get(&modelNode{name: name}); found != nil {
		return found.(*modelNode)
	}

	md := &modelNode{name: name, byName: make(map[string]*presetNode)}
	mk.models.Set(md)
	return md
}

func (md *modelNode) resolvePreset(name string) *presetNode {
	if ps, ok := md.byName[name]; ok {
		return ps
	}

	ps := &presetNode{name: name, tunings: btree.NewNonConcurrent(byTuning)}
	md.byName[name] = ps
	md.presets = append(md.presets, ps)
	return ps
}

func (t *PresetTree) eachMaker(fn func(mk *makerNode)) {
	t.makers.Ascend(nil, func(item interface{}) bool {
		fn(item.(*makerNode))
		return true
	})
}

func (mk *makerNode) eachModel(fn func(md *modelNode)) {
	mk.models.Ascend(nil, func(item interface{}) bool {
		fn(item.(*modelNode))
		return true
	})
}

func (ps *presetNode) eachTuning(fn func(tn *tuningNode)) {
	ps.tunings.Ascend(nil, func(item interface{}) bool {
		fn(item.(*tuningNode))
		return true
	})
}

func byMakerName(a, b interface{}) bool {
	m1, m2 := a.(*makerNode), b.(*makerNode)
	return m1.name < m2.name
}

func byModelName(a, b interface{}) bool {
	m1, m2 := a.(*modelNode), b.(*modelNode)
	return m1.name < m2.name
}

func byTuning(a, b interface{}) bool {
	t1, t2 := a.(*tuningNode), b.(*tuningNode)
	return t1.tuning < t2.tuning
}
