package scan

import (
	"fmt"
	"io"
	"net"
	"strings"
)

// TargetIterator yields the addresses a scan should visit: a single
// host/address, or every address in a CIDR block. Sweep iterators built with
// NewSweepIterator skip the network and broadcast addresses.
type TargetIterator struct {
	target    string
	isCIDR    bool
	hostsOnly bool
	index     int
	ip        net.IP
	ipnet     *net.IPNet
	network   net.IP
	broadcast net.IP
	peeked    net.IP
}

func NewTargetIterator(target string) *TargetIterator {

	ip, ipnet, err := net.ParseCIDR(target)

	ti := &TargetIterator{
		target: target,
		isCIDR: err == nil,
	}

	if ti.isCIDR {
		ti.ip = ip.Mask(ipnet.Mask)
		ti.ipnet = ipnet
		ti.network = ip.Mask(ipnet.Mask)
		ti.broadcast = broadcastAddr(ipnet)
	}

	return ti
}

// NewSweepIterator builds an iterator over the host addresses of a network
// range, accepting either CIDR notation or a bare three-octet prefix such as
// "192.168.1" (treated as its /24). Network and broadcast addresses are
// skipped, so a /24 yields the 254 addresses .1 through .254.
func NewSweepIterator(prefix string) (*TargetIterator, error) {

	block := prefix
	if !strings.Contains(block, "/") && net.ParseIP(block) == nil {
		candidate := block + ".0/24"
		if _, _, err := net.ParseCIDR(candidate); err == nil {
			block = candidate
		}
	}

	ti := NewTargetIterator(block)
	if !ti.isCIDR {
		return nil, fmt.Errorf("invalid network prefix '%s': expected CIDR notation or a three-octet prefix like 192.168.1", prefix)
	}
	ti.hostsOnly = true

	return ti, nil
}

// Peek returns the address Next will yield, without advancing.
func (ti *TargetIterator) Peek() (net.IP, error) {
	if ti.peeked != nil {
		return ti.peeked, nil
	}
	ip, err := ti.Next()
	if err != nil {
		return nil, err
	}
	ti.peeked = ip
	return ip, nil
}

// Next returns the next address, or io.EOF when the iterator is exhausted.
func (ti *TargetIterator) Next() (net.IP, error) {

	if ti.peeked != nil {
		ip := ti.peeked
		ti.peeked = nil
		return ip, nil
	}

	ti.index++
	if !ti.isCIDR {
		if ti.index > 1 {
			return nil, io.EOF
		}
		return ti.resolve()
	}

	for ti.ipnet.Contains(ti.ip) {
		tIP := make(net.IP, len(ti.ip))
		copy(tIP, ti.ip)
		ti.incrementIP()

		if ti.hostsOnly && (tIP.Equal(ti.network) || tIP.Equal(ti.broadcast)) {
			continue
		}

		return tIP, nil
	}

	return nil, io.EOF
}

func (ti *TargetIterator) resolve() (net.IP, error) {

	if ip := net.ParseIP(ti.target); ip != nil {
		return ip, nil
	}

	ips, err := net.LookupIP(ti.target)
	if err != nil {
		return nil, err
	}
	if len(ips) == 0 {
		return nil, fmt.Errorf("Lookup failed for '%s'", ti.target)
	}
	return ips[0], nil
}

func (ti *TargetIterator) incrementIP() {
	for j := len(ti.ip) - 1; j >= 0; j-- {
		ti.ip[j]++
		if ti.ip[j] > 0 {
			break
		}
	}
}

func broadcastAddr(ipnet *net.IPNet) net.IP {
	base := ipnet.IP.Mask(ipnet.Mask)
	out := make(net.IP, len(base))
	copy(out, base)
	for i := range out {
		out[i] |= ^ipnet.Mask[i]
	}
	return out
}
