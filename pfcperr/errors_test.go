package pfcperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidLength_Error(t *testing.T) {
	err := &InvalidLength{IEName: "PDRID", IEType: 56, Expected: 2, Actual: 1}
	assert.Contains(t, err.Error(), "PDRID")
	assert.Contains(t, err.Error(), "expected at least 2 bytes, got 1")
}

func TestMissingMandatoryIE_ErrorVariants(t *testing.T) {
	inMessage := &MissingMandatoryIE{IEType: 1, IEName: "NodeID", MessageType: "HeartbeatRequest"}
	assert.Contains(t, inMessage.Error(), "in message HeartbeatRequest")

	inGroup := &MissingMandatoryIE{IEType: 2, IEName: "PDI", ParentIE: "CreatePDR"}
	assert.Contains(t, inGroup.Error(), "in grouped IE CreatePDR")

	bare := &MissingMandatoryIE{IEType: 3, IEName: "Cause"}
	assert.NotContains(t, bare.Error(), "in message")
	assert.NotContains(t, bare.Error(), "in grouped IE")
}

func TestEncodingError_Unwrap(t *testing.T) {
	cause := errors.New("invalid utf-8")
	err := &EncodingError{IEName: "ApnDnn", IEType: 72, Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestAs_RecoversConcreteKind(t *testing.T) {
	var err error = &InvalidValue{Field: "CTag.PCP", Value: "8", Constraint: "0-7"}

	iv, ok := As[*InvalidValue](err)
	require := assert.New(t)
	require.True(ok)
	require.Equal("CTag.PCP", iv.Field)

	_, ok = As[*TruncatedBuffer](err)
	require.False(ok)
}

func TestDuplicateIE_Error(t *testing.T) {
	err := &DuplicateIE{IEType: 56, IEName: "PDRID", Parent: "CreatePDR"}
	assert.Contains(t, err.Error(), "duplicate IE PDRID")
}

func TestUnsupportedVersion_Error(t *testing.T) {
	err := &UnsupportedVersion{Got: 2, Supported: 1}
	assert.Contains(t, err.Error(), "unsupported header version 2")
}

func TestTruncatedBuffer_Error(t *testing.T) {
	err := &TruncatedBuffer{Need: 8, Have: 4, Context: "header"}
	assert.Contains(t, err.Error(), "need 8 bytes, have 4")
}
