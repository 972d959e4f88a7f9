package validator

import (
	language "github.com/hanpama/gqlquery/internal/language"
)

func (v *validator) uniqueFragmentNames() {
	known := map[string]*language.FragmentDefinition{}
	for _, frag := range v.doc.Fragments() {
		if first, ok := known[frag.Name]; ok {
			v.report(msgDuplicateFragmentName(frag.Name), first.NamePosition, frag.NamePosition)
			continue
		}
		known[frag.Name] = frag
	}
}

func (v *validator) knownFragmentNames() {
	o := &observers{fragmentSpread: func(s *language.FragmentSpread) {
		if _, ok := v.fragments[s.Name]; !ok {
			v.report(msgUnknownFragment(s.Name), s.Position)
		}
	}}
	o.walkDocument(v.doc)
}

// noUnusedFragments reports fragments that no operation reaches, directly or
// through other fragments.
func (v *validator) noUnusedFragments() {
	used := map[string]bool{}
	for _, op := range v.doc.Operations() {
		for _, frag := range v.referencedFragments(op) {
			used[frag.Name] = true
		}
	}
	for _, frag := range v.doc.Fragments() {
		if !used[frag.Name] {
			v.report(msgUnusedFragment(frag.Name), frag.Position)
		}
	}
}

// cycleFrame is one fragment on the depth-first path of noFragmentCycles.
type cycleFrame struct {
	name    string
	spreads []*language.FragmentSpread
	next    int
}

// noFragmentCycles reports each spread cycle once. A fragment is expanded
// only the first time it is reached, so a cycle is reported from the
// fragment through which it was first entered.
func (v *validator) noFragmentCycles() {
	visited := map[string]bool{}
	onPath := map[string]int{} // fragment name -> index into path where it was entered
	var path []*language.FragmentSpread
	var stack []*cycleFrame

	enter := func(frag *language.FragmentDefinition) {
		if visited[frag.Name] {
			return
		}
		visited[frag.Name] = true
		spreads := v.spreadsOf(frag)
		if len(spreads) == 0 {
			return
		}
		onPath[frag.Name] = len(path)
		stack = append(stack, &cycleFrame{name: frag.Name, spreads: spreads})
	}

	for _, frag := range v.doc.Fragments() {
		enter(frag)
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.next > 0 {
				path = path[:len(path)-1]
			}
			if top.next == len(top.spreads) {
				delete(onPath, top.name)
				stack = stack[:len(stack)-1]
				continue
			}
			spread := top.spreads[top.next]
			top.next++
			path = append(path, spread)

			start, cyclic := onPath[spread.Name]
			if !cyclic {
				if target := v.fragments[spread.Name]; target != nil {
					enter(target)
				}
				continue
			}
			cycle := path[start:]
			via := make([]string, 0, len(cycle)-1)
			locs := make([]language.Position, 0, len(cycle))
			for i, s := range cycle {
				if i < len(cycle)-1 {
					via = append(via, s.Name)
				}
				locs = append(locs, s.Position)
			}
			v.report(msgFragmentCycle(spread.Name, via), locs...)
		}
	}
}
