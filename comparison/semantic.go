package comparison

import (
	"bytes"
	"encoding/binary"

	"github.com/your-org/pfcp-codec/ie"
)

// semanticComparators maps an IE type to a comparator that decides
// equality by meaning rather than by bytes. The second return value
// reports whether a comparator exists for the type; compareInstance falls
// back to structural comparison when it doesn't.
var semanticComparators = map[ie.Type]func(l, r ie.IE) bool{
	ie.FTEID: fteidEqual,
}

// semanticEqual applies opts.TimestampToleranceSecs for timestamp IEs
// (handled directly here since the tolerance lives in Options, not in a
// fixed per-type comparator) and otherwise dispatches to
// semanticComparators.
func semanticEqual(l, r ie.IE, opts Options) (equal bool, ok bool) {
	if ie.IsTimestamp(l.Type) {
		tolerance := 0
		if opts.HasTimestampTolerance {
			tolerance = opts.TimestampToleranceSecs
		}
		return timestampEqualWithin(l, r, tolerance), true
	}
	cmp, found := semanticComparators[l.Type]
	if !found {
		return false, false
	}
	return cmp(l, r), true
}

func timestampEqualWithin(l, r ie.IE, toleranceSecs int) bool {
	if len(l.Payload) < 4 || len(r.Payload) < 4 {
		return bytes.Equal(l.Payload, r.Payload)
	}
	lv := binary.BigEndian.Uint32(l.Payload)
	rv := binary.BigEndian.Uint32(r.Payload)
	var delta uint32
	if lv > rv {
		delta = lv - rv
	} else {
		delta = rv - lv
	}
	return delta <= uint32(toleranceSecs)
}

// fteidEqual treats two explicit (non-CHOOSE) F-TEIDs with matching
// TEID/IPv4/IPv6 as equal regardless of ChooseID, since ChooseID is only
// meaningful when Choose is set and carries no wire effect otherwise. Any
// F-TEID still using CHOOSE falls back to exact structural equality since
// the UP function hasn't resolved a concrete address/TEID yet.
func fteidEqual(l, r ie.IE) bool {
	lf, lerr := ie.UnmarshalFTEID(l.Payload)
	rf, rerr := ie.UnmarshalFTEID(r.Payload)
	if lerr != nil || rerr != nil {
		return bytes.Equal(l.Payload, r.Payload)
	}
	if lf.Choose || rf.Choose {
		return bytes.Equal(l.Payload, r.Payload)
	}
	return lf.TEID == rf.TEID && lf.IPv4.Equal(rf.IPv4) && lf.IPv6.Equal(rf.IPv6)
}
