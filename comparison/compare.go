package comparison

import (
	"bytes"
	"fmt"

	"github.com/your-org/pfcp-codec/ie"
	"github.com/your-org/pfcp-codec/message"
)

// accumulator collects Differences, enforcing MaxReportedDifferences.
type accumulator struct {
	opts  Options
	diffs []Difference
	full  bool
}

func (a *accumulator) add(d Difference) {
	if a.full {
		return
	}
	a.diffs = append(a.diffs, d)
	if a.opts.HasMaxReportedDifferences && len(a.diffs) >= a.opts.MaxReportedDifferences {
		a.full = true
	}
}

// Compare decides whether left and right are equivalent under opts,
// following the algorithm in the codec's comparison-engine design:
// compare headers, then per-IE-type multiplicity-aware comparison,
// recursing into grouped IEs and applying semantic comparators where
// configured.
func Compare(left, right message.Message, opts Options) Result {
	acc := &accumulator{opts: opts}

	compareHeaders(left.GetHeader(), right.GetHeader(), opts, acc)

	leftIEs, lerr := message.IEs(left)
	rightIEs, rerr := message.IEs(right)
	if lerr != nil || rerr != nil {
		acc.add(Difference{Path: "<message>", Kind: KindValueMismatch,
			LeftSummary: errSummary(lerr), RightSummary: errSummary(rerr)})
		return finish(acc)
	}

	if opts.StrictIEOrder {
		compareOrdered(leftIEs, rightIEs, "", opts, acc)
	} else {
		compareByType(leftIEs, rightIEs, "", opts, acc)
	}

	return finish(acc)
}

func finish(acc *accumulator) Result {
	if len(acc.diffs) == 0 {
		return Result{Matched: true}
	}
	return Result{Matched: false, Differences: acc.diffs, Truncated: acc.full}
}

func errSummary(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}

func compareHeaders(l, r message.Header, opts Options, acc *accumulator) {
	if l.Type != r.Type {
		acc.add(Difference{Path: "header.Type", Kind: KindValueMismatch,
			LeftSummary: l.Type.String(), RightSummary: r.Type.String()})
	}
	if !opts.IgnoreSEID && (l.HasSEID != r.HasSEID || l.SEID != r.SEID) {
		acc.add(Difference{Path: "header.SEID", Kind: KindHeaderMismatch,
			LeftSummary: fmt.Sprintf("%v/%d", l.HasSEID, l.SEID), RightSummary: fmt.Sprintf("%v/%d", r.HasSEID, r.SEID)})
	}
	if !opts.IgnoreSequence && l.SequenceNumber != r.SequenceNumber {
		acc.add(Difference{Path: "header.SequenceNumber", Kind: KindHeaderMismatch,
			LeftSummary: fmt.Sprintf("%d", l.SequenceNumber), RightSummary: fmt.Sprintf("%d", r.SequenceNumber)})
	}
	if !opts.IgnorePriority && (l.HasPriority != r.HasPriority || l.Priority != r.Priority) {
		acc.add(Difference{Path: "header.Priority", Kind: KindHeaderMismatch,
			LeftSummary: fmt.Sprintf("%v/%d", l.HasPriority, l.Priority), RightSummary: fmt.Sprintf("%v/%d", r.HasPriority, r.Priority)})
	}
}

// compareOrdered implements strict-ie-order: the two sequences must match
// position for position.
func compareOrdered(left, right []ie.IE, path string, opts Options, acc *accumulator) {
	n := len(left)
	if len(right) > n {
		n = len(right)
	}
	for i := 0; i < n; i++ {
		if acc.full {
			return
		}
		switch {
		case i >= len(left):
			acc.add(Difference{Path: childPath(path, right[i].Type, i), Kind: KindMissingLeft,
				LeftSummary: "<absent>", RightSummary: summarize(right[i].Payload, opts.IncludePayloadInDiff)})
		case i >= len(right):
			acc.add(Difference{Path: childPath(path, left[i].Type, i), Kind: KindMissingRight,
				LeftSummary: summarize(left[i].Payload, opts.IncludePayloadInDiff), RightSummary: "<absent>"})
		case left[i].Type != right[i].Type:
			acc.add(Difference{Path: path, Kind: KindOrderMismatch,
				LeftSummary: left[i].Type.String(), RightSummary: right[i].Type.String()})
		default:
			if opts.shouldCompare(left[i].Type) {
				compareInstance(left[i], right[i], childPath(path, left[i].Type, i), opts, acc)
			}
		}
	}
}

// compareByType partitions both sides by IE type and applies the
// configured multiplicity and optional-IE policy per type.
func compareByType(left, right []ie.IE, path string, opts Options, acc *accumulator) {
	leftByType := partition(left)
	rightByType := partition(right)

	seen := map[ie.Type]bool{}
	order := []ie.Type{}
	for _, i := range left {
		if !seen[i.Type] {
			seen[i.Type] = true
			order = append(order, i.Type)
		}
	}
	for _, i := range right {
		if !seen[i.Type] {
			seen[i.Type] = true
			order = append(order, i.Type)
		}
	}

	for _, t := range order {
		if acc.full {
			return
		}
		if !opts.shouldCompare(t) {
			continue
		}
		ls, rs := leftByType[t], rightByType[t]
		compareGroup(ls, rs, childPath(path, t, -1), opts, acc)
	}
}

func partition(ies []ie.IE) map[ie.Type][]ie.IE {
	out := map[ie.Type][]ie.IE{}
	for _, i := range ies {
		out[i.Type] = append(out[i.Type], i)
	}
	return out
}

// compareGroup compares all instances of one IE type under the
// multiplicity and optional-IE policy.
func compareGroup(left, right []ie.IE, path string, opts Options, acc *accumulator) {
	if len(left) == 0 && len(right) == 0 {
		return
	}
	if len(left) == 0 || len(right) == 0 {
		resolvePresenceMismatch(left, right, path, opts, acc)
		return
	}

	switch opts.IEMultiplicityMode {
	case SetEquality:
		n := len(left)
		if len(right) > n {
			n = len(right)
		}
		for i := 0; i < n; i++ {
			if acc.full {
				return
			}
			if i >= len(left) {
				acc.add(Difference{Path: indexPath(path, i), Kind: KindMissingLeft,
					LeftSummary: "<absent>", RightSummary: summarize(right[i].Payload, opts.IncludePayloadInDiff)})
				continue
			}
			if i >= len(right) {
				acc.add(Difference{Path: indexPath(path, i), Kind: KindMissingRight,
					LeftSummary: summarize(left[i].Payload, opts.IncludePayloadInDiff), RightSummary: "<absent>"})
				continue
			}
			compareInstance(left[i], right[i], indexPath(path, i), opts, acc)
		}

	case Lenient:
		for i, l := range left {
			if acc.full {
				return
			}
			matched := false
			for _, r := range right {
				if instancesEqual(l, r, opts) {
					matched = true
					break
				}
			}
			if !matched {
				acc.add(Difference{Path: indexPath(path, i), Kind: KindMissingRight,
					LeftSummary: summarize(l.Payload, opts.IncludePayloadInDiff), RightSummary: "<no matching instance>"})
			}
		}
		for i, r := range right {
			if acc.full {
				return
			}
			matched := false
			for _, l := range left {
				if instancesEqual(l, r, opts) {
					matched = true
					break
				}
			}
			if !matched {
				acc.add(Difference{Path: indexPath(path, i), Kind: KindMissingLeft,
					LeftSummary: "<no matching instance>", RightSummary: summarize(r.Payload, opts.IncludePayloadInDiff)})
			}
		}

	default: // ExactMatch
		usedRight := make([]bool, len(right))
		for i, l := range left {
			if acc.full {
				return
			}
			found := -1
			for j, r := range right {
				if usedRight[j] {
					continue
				}
				if instancesEqual(l, r, opts) {
					found = j
					break
				}
			}
			if found == -1 {
				acc.add(Difference{Path: indexPath(path, i), Kind: KindValueMismatch,
					LeftSummary: summarize(l.Payload, opts.IncludePayloadInDiff), RightSummary: "<no unmatched equal instance>"})
				continue
			}
			usedRight[found] = true
		}
		for j, used := range usedRight {
			if !used {
				acc.add(Difference{Path: indexPath(path, j), Kind: KindValueMismatch,
					LeftSummary: "<no unmatched equal instance>", RightSummary: summarize(right[j].Payload, opts.IncludePayloadInDiff)})
			}
		}
	}
}

// instancesEqual reports whether two IE instances of the same type are
// equal under opts, without emitting a Difference (used by Lenient/
// ExactMatch to search for a match).
func instancesEqual(l, r ie.IE, opts Options) bool {
	probe := &accumulator{opts: Options{}}
	compareInstance(l, r, "", opts, probe)
	return len(probe.diffs) == 0
}

func resolvePresenceMismatch(left, right []ie.IE, path string, opts Options, acc *accumulator) {
	switch opts.OptionalIEMode {
	case IgnoreMissing:
		return
	case RequireLeft:
		// left may lack what right has; left having extra right lacks is a mismatch.
		if len(right) == 0 {
			emitAllMissingRight(left, path, opts, acc)
		}
		return
	case RequireRight:
		if len(left) == 0 {
			emitAllMissingLeft(right, path, opts, acc)
		}
		return
	default: // Strict
		if len(left) == 0 {
			emitAllMissingLeft(right, path, opts, acc)
		} else {
			emitAllMissingRight(left, path, opts, acc)
		}
	}
}

func emitAllMissingLeft(right []ie.IE, path string, opts Options, acc *accumulator) {
	for i, r := range right {
		acc.add(Difference{Path: indexPath(path, i), Kind: KindMissingLeft,
			LeftSummary: "<absent>", RightSummary: summarize(r.Payload, opts.IncludePayloadInDiff)})
	}
}

func emitAllMissingRight(left []ie.IE, path string, opts Options, acc *accumulator) {
	for i, l := range left {
		acc.add(Difference{Path: indexPath(path, i), Kind: KindMissingRight,
			LeftSummary: summarize(l.Payload, opts.IncludePayloadInDiff), RightSummary: "<absent>"})
	}
}

// compareInstance compares a single pair of same-type IE instances:
// semantic comparator if configured, grouped recursion if applicable,
// otherwise raw payload equality.
func compareInstance(l, r ie.IE, path string, opts Options, acc *accumulator) {
	if opts.useSemanticFor(l.Type) {
		if eq, ok := semanticEqual(l, r, opts); ok {
			if !eq {
				acc.add(Difference{Path: path, Kind: KindValueMismatch,
					LeftSummary: summarize(l.Payload, opts.IncludePayloadInDiff), RightSummary: summarize(r.Payload, opts.IncludePayloadInDiff)})
			}
			return
		}
		// Fall through to structural comparison if no semantic comparator
		// is registered for this type.
	}

	if opts.DeepCompareGrouped && ie.IsGrouped(l.Type) {
		lc, lerr := l.ChildIEs()
		rc, rerr := r.ChildIEs()
		if lerr == nil && rerr == nil {
			compareByType(lc, rc, path, opts, acc)
			return
		}
	}

	if !bytes.Equal(l.Payload, r.Payload) || l.HasEnterpriseID != r.HasEnterpriseID || l.EnterpriseID != r.EnterpriseID {
		acc.add(Difference{Path: path, Kind: KindValueMismatch,
			LeftSummary: summarize(l.Payload, opts.IncludePayloadInDiff), RightSummary: summarize(r.Payload, opts.IncludePayloadInDiff)})
	}
}

func childPath(parent string, t ie.Type, index int) string {
	name := t.String()
	if index >= 0 {
		name = fmt.Sprintf("%s[%d]", name, index)
	}
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

func indexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}
