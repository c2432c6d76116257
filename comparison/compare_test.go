package comparison

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pfcp-codec/ie"
	"github.com/your-org/pfcp-codec/message"
)

func mustHeartbeat(t *testing.T, seq uint32, recovery time.Time) message.HeartbeatRequestMessage {
	t.Helper()
	m, err := message.NewHeartbeatRequestBuilder(seq).
		SetRecoveryTimeStamp(ie.NewRecoveryTimeStamp(recovery)).
		Build()
	require.NoError(t, err)
	return m
}

func TestCompare_ReflexivityMatchesItself(t *testing.T) {
	m := mustHeartbeat(t, 7, time.Unix(1700000000, 0))
	result := Compare(m, m, Default())
	assert.True(t, result.Matched)
	assert.Empty(t, result.Differences)
}

func TestCompare_DifferentSequenceIsADiffByDefault(t *testing.T) {
	left := mustHeartbeat(t, 1, time.Unix(1700000000, 0))
	right := mustHeartbeat(t, 2, time.Unix(1700000000, 0))

	result := Compare(left, right, Default())
	assert.False(t, result.Matched)
	require.Len(t, result.Differences, 1)
	assert.Equal(t, KindHeaderMismatch, result.Differences[0].Kind)
}

func TestCompare_IgnoreSequenceSkipsSequenceDiff(t *testing.T) {
	left := mustHeartbeat(t, 1, time.Unix(1700000000, 0))
	right := mustHeartbeat(t, 2, time.Unix(1700000000, 0))

	opts := Default()
	opts.IgnoreSequence = true
	result := Compare(left, right, opts)
	assert.True(t, result.Matched)
}

func TestCompare_TimestampTolerance(t *testing.T) {
	left := mustHeartbeat(t, 1, time.Unix(1700000000, 0))
	right := mustHeartbeat(t, 1, time.Unix(1700000003, 0))

	strict := Default()
	strict.UseSemanticComparison = true
	result := Compare(left, right, strict)
	assert.False(t, result.Matched, "zero tolerance should still diff a 3s drift")

	lenient := Default()
	lenient.UseSemanticComparison = true
	lenient.HasTimestampTolerance = true
	lenient.TimestampToleranceSecs = 5
	result = Compare(left, right, lenient)
	assert.True(t, result.Matched, "5s tolerance should absorb a 3s drift")
}

func buildSessionEstablishment(t *testing.T, seq uint32, pdrIDs ...uint16) message.SessionEstablishmentRequestMessage {
	t.Helper()
	b := message.NewSessionEstablishmentRequestBuilder(seq, 0x1122334455).
		SetNodeID(ie.NewNodeIDFQDN("upf.example.com")).
		SetFSEID(ie.NewFSEID(0x1122334455, nil, nil)).
		AddCreateFAR(ie.CreateFARIE{
			FARID:       ie.NewFARID(1),
			ApplyAction: ie.ApplyActionIE{Forward: true},
		})
	for _, id := range pdrIDs {
		b = b.AddCreatePDR(ie.CreatePDRIE{
			PDRID:      ie.NewPDRID(id),
			Precedence: ie.NewPrecedence(100),
			PDI:        ie.PdiIE{SourceInterface: ie.NewSourceInterface(0)},
		})
	}
	m, err := b.Build()
	require.NoError(t, err)
	return m
}

func TestCompare_ExactMatchVsSetEqualityOnPermutedRepeatedIE(t *testing.T) {
	left := buildSessionEstablishment(t, 1, 1, 2, 3)
	right := buildSessionEstablishment(t, 1, 3, 2, 1)

	exact := Default()
	exact.IEMultiplicityMode = ExactMatch
	result := Compare(left, right, exact)
	assert.True(t, result.Matched, "ExactMatch ignores order within a repeated IE type")

	setEq := Default()
	setEq.IEMultiplicityMode = SetEquality
	result = Compare(left, right, setEq)
	assert.False(t, result.Matched, "SetEquality requires the same order")
}

func TestCompare_OptionalIEModeIgnoreMissing(t *testing.T) {
	left := mustHeartbeat(t, 1, time.Unix(1700000000, 0))

	m, err := message.NewHeartbeatResponseBuilder(1).
		SetRecoveryTimeStamp(ie.NewRecoveryTimeStamp(time.Unix(1700000000, 0))).
		Build()
	require.NoError(t, err)

	// Different message types are always a mismatch regardless of IE policy.
	opts := Default()
	opts.OptionalIEMode = IgnoreMissing
	result := Compare(left, m, opts)
	assert.False(t, result.Matched)
}

func TestCompare_MaxReportedDifferencesTruncates(t *testing.T) {
	left := buildSessionEstablishment(t, 1, 1, 2, 3)
	right := buildSessionEstablishment(t, 2, 4, 5, 6)

	opts := Default()
	opts.HasMaxReportedDifferences = true
	opts.MaxReportedDifferences = 1
	result := Compare(left, right, opts)
	assert.False(t, result.Matched)
	assert.True(t, result.Truncated)
	assert.Len(t, result.Differences, 1)
}
