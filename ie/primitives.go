package ie

import (
	"net"
	"time"

	"github.com/your-org/pfcp-codec/pfcperr"
)

// ntpEpochOffset is the number of seconds between the NTP epoch
// (1900-01-01T00:00:00Z) and the Unix epoch, per 3GPP TS 23.012's use of
// 32-bit NTP seconds for PFCP timestamp IEs.
const ntpEpochOffset = 2208988800

// ntpToTime converts a 3GPP 32-bit NTP seconds-since-1900 value to a Go time.
func ntpToTime(seconds uint32) time.Time {
	return time.Unix(int64(seconds)-ntpEpochOffset, 0).UTC()
}

// timeToNTP converts a Go time to 3GPP 32-bit NTP seconds-since-1900,
// truncating sub-second precision and clamping to zero for times before the
// NTP epoch.
func timeToNTP(t time.Time) uint32 {
	unix := t.Unix() + ntpEpochOffset
	if unix < 0 {
		return 0
	}
	return uint32(unix)
}

// macAddressLen is the wire length of a single MAC address, used by every IE
// that carries one or more of them (MACAddress, MACAddressesDetected,
// MACAddressesRemoved).
const macAddressLen = 6

// readMAC reads one 6-byte MAC address at the front of b.
func readMAC(b []byte) (net.HardwareAddr, error) {
	if len(b) < macAddressLen {
		return nil, &pfcperr.InvalidLength{IEName: "MACAddress", Expected: macAddressLen, Actual: len(b)}
	}
	mac := make(net.HardwareAddr, macAddressLen)
	copy(mac, b[:macAddressLen])
	return mac, nil
}

// readIPv4 reads a 4-byte IPv4 address at the front of b.
func readIPv4(b []byte) (net.IP, error) {
	if len(b) < net.IPv4len {
		return nil, &pfcperr.InvalidLength{IEName: "IPv4Address", Expected: net.IPv4len, Actual: len(b)}
	}
	ip := make(net.IP, net.IPv4len)
	copy(ip, b[:net.IPv4len])
	return ip, nil
}

// readIPv6 reads a 16-byte IPv6 address at the front of b.
func readIPv6(b []byte) (net.IP, error) {
	if len(b) < net.IPv6len {
		return nil, &pfcperr.InvalidLength{IEName: "IPv6Address", Expected: net.IPv6len, Actual: len(b)}
	}
	ip := make(net.IP, net.IPv6len)
	copy(ip, b[:net.IPv6len])
	return ip, nil
}

// bitSet reports whether bit n (0-indexed from the LSB) is set in flags.
func bitSet(flags byte, n uint) bool {
	return flags&(1<<n) != 0
}

// setBit returns flags with bit n (0-indexed from the LSB) set if v is true.
func setBit(flags byte, n uint, v bool) byte {
	if v {
		return flags | (1 << n)
	}
	return flags &^ (1 << n)
}
