package netutil

import (
	"fmt"
	"net"
	"os"
	"strings"
)

// ResolveIPv4 resolves target to its first IPv4 address. IPv4 literals pass
// through unchanged; IPv6-only targets are an error since the sweep and probe
// defaults speak IPv4.
func ResolveIPv4(target string) (string, error) {

	if ip := net.ParseIP(target); ip != nil {
		if ip4 := ip.To4(); ip4 != nil {
			return ip4.String(), nil
		}
		return "", fmt.Errorf("'%s' is an IPv6 address, expected IPv4", target)
	}

	ips, err := net.LookupIP(target)
	if err != nil {
		return "", err
	}

	for _, ip := range ips {
		if ip4 := ip.To4(); ip4 != nil {
			return ip4.String(), nil
		}
	}

	return "", fmt.Errorf("'%s' has no IPv4 addresses", target)
}

// ReverseLookup returns the first PTR name for addr, without the trailing
// dot.
func ReverseLookup(addr string) (string, error) {

	if net.ParseIP(addr) == nil {
		return "", fmt.Errorf("'%s' is not a valid IP address", addr)
	}

	names, err := net.LookupAddr(addr)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no PTR records for '%s'", addr)
	}

	return strings.TrimSuffix(names[0], "."), nil
}

// LocalIP returns the address of the interface that would route to the
// internet. No packets are sent; connecting a UDP socket only selects a
// source address. Falls back to loopback when there is no route.
func LocalIP() string {

	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()

	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

// Hostname returns the local hostname, or "unknown" if the OS will not say.
func Hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}
