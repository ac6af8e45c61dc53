package scan

import (
	"net"

	"github.com/google/gopacket/macs"
	"github.com/mostlygeek/arp"
)

// EnrichDevices fills in MAC addresses and manufacturers for hosts present in
// the local ARP cache, best effort. Hosts outside the local segment simply
// stay undecorated.
func (r *SweepResult) EnrichDevices() {
	for i := range r.Hosts {
		mac, manufacturer := deviceInfo(r.Hosts[i].IP)
		r.Hosts[i].MAC = mac
		r.Hosts[i].Manufacturer = manufacturer
	}
}

func deviceInfo(ip net.IP) (string, string) {

	macStr := arp.Search(ip.String())
	if macStr == "" || macStr == "00:00:00:00:00:00" {
		return "", ""
	}

	mac, err := net.ParseMAC(macStr)
	if err != nil {
		return "", ""
	}

	prefix := [3]byte{
		mac[0],
		mac[1],
		mac[2],
	}

	return mac.String(), macs.ValidMACPrefixMap[prefix]
}
