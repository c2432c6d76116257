package ie

import (
	"encoding/binary"

	"github.com/your-org/pfcp-codec/pfcperr"
)

// volumeIE is the shared codec behind VolumeThreshold, VolumeQuota, and
// VolumeMeasurement: a flags byte (TOVOL/ULVOL/DLVOL bits) gating zero to
// three following 8-byte big-endian counters, in strict total/uplink/
// downlink order, per TS 29.244 clause 8.2.4.
type volumeIE struct {
	t Type
}

type volumeFields struct {
	Total    *uint64
	Uplink   *uint64
	Downlink *uint64
}

const (
	volFlagTOVOL = 0
	volFlagULVOL = 1
	volFlagDLVOL = 2
)

func (v volumeIE) marshal(f volumeFields) []byte {
	var flags byte
	flags = setBit(flags, volFlagTOVOL, f.Total != nil)
	flags = setBit(flags, volFlagULVOL, f.Uplink != nil)
	flags = setBit(flags, volFlagDLVOL, f.Downlink != nil)

	payload := []byte{flags}
	for _, val := range []*uint64{f.Total, f.Uplink, f.Downlink} {
		if val != nil {
			buf := make([]byte, 8)
			binary.BigEndian.PutUint64(buf, *val)
			payload = append(payload, buf...)
		}
	}
	return payload
}

func (v volumeIE) unmarshal(payload []byte) (volumeFields, error) {
	if len(payload) < 1 {
		return volumeFields{}, &pfcperr.InvalidLength{IEName: v.t.String(), IEType: uint16(v.t), Expected: 1, Actual: 0}
	}
	flags := payload[0]
	rest := payload[1:]
	var f volumeFields

	read := func() (uint64, error) {
		if len(rest) < 8 {
			return 0, &pfcperr.InvalidLength{IEName: v.t.String(), IEType: uint16(v.t), Expected: 8, Actual: len(rest)}
		}
		val := binary.BigEndian.Uint64(rest[:8])
		rest = rest[8:]
		return val, nil
	}

	if bitSet(flags, volFlagTOVOL) {
		val, err := read()
		if err != nil {
			return volumeFields{}, err
		}
		f.Total = &val
	}
	if bitSet(flags, volFlagULVOL) {
		val, err := read()
		if err != nil {
			return volumeFields{}, err
		}
		f.Uplink = &val
	}
	if bitSet(flags, volFlagDLVOL) {
		val, err := read()
		if err != nil {
			return volumeFields{}, err
		}
		f.Downlink = &val
	}
	return f, nil
}

// VolumeThresholdIE triggers a usage report once accumulated traffic
// crosses Total, Uplink, or Downlink bytes (any subset may be set).
type VolumeThresholdIE struct{ volumeFields }

func NewVolumeThreshold(total, uplink, downlink *uint64) VolumeThresholdIE {
	return VolumeThresholdIE{volumeFields{Total: total, Uplink: uplink, Downlink: downlink}}
}
func (v VolumeThresholdIE) ToIE() IE {
	return New(VolumeThreshold, volumeIE{VolumeThreshold}.marshal(v.volumeFields))
}
func UnmarshalVolumeThreshold(payload []byte) (VolumeThresholdIE, error) {
	f, err := volumeIE{VolumeThreshold}.unmarshal(payload)
	return VolumeThresholdIE{f}, err
}

// VolumeQuotaIE bounds how much traffic a URR may pass before its quota is
// considered exhausted.
type VolumeQuotaIE struct{ volumeFields }

func NewVolumeQuota(total, uplink, downlink *uint64) VolumeQuotaIE {
	return VolumeQuotaIE{volumeFields{Total: total, Uplink: uplink, Downlink: downlink}}
}
func (v VolumeQuotaIE) ToIE() IE {
	return New(VolumeQuota, volumeIE{VolumeQuota}.marshal(v.volumeFields))
}
func UnmarshalVolumeQuota(payload []byte) (VolumeQuotaIE, error) {
	f, err := volumeIE{VolumeQuota}.unmarshal(payload)
	return VolumeQuotaIE{f}, err
}

// VolumeMeasurementIE reports the actual traffic counted over a URR's
// measurement interval.
type VolumeMeasurementIE struct{ volumeFields }

func NewVolumeMeasurement(total, uplink, downlink *uint64) VolumeMeasurementIE {
	return VolumeMeasurementIE{volumeFields{Total: total, Uplink: uplink, Downlink: downlink}}
}
func (v VolumeMeasurementIE) ToIE() IE {
	return New(VolumeMeasurement, volumeIE{VolumeMeasurement}.marshal(v.volumeFields))
}
func UnmarshalVolumeMeasurement(payload []byte) (VolumeMeasurementIE, error) {
	f, err := volumeIE{VolumeMeasurement}.unmarshal(payload)
	return VolumeMeasurementIE{f}, err
}
