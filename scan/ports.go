package scan

import "sort"

// DefaultPorts is the set scanned when the caller does not select ports
// explicitly: every port in the well-known service table, ascending.
var DefaultPorts []int

func init() {

	for port := range knownPorts {
		DefaultPorts = append(DefaultPorts, port)
	}
	sort.Ints(DefaultPorts)
}

// DescribePort names the well-known service on a port, or returns "" for
// ports not in the table. The table is static configuration; it implies
// nothing about what is actually listening.
func DescribePort(port int) string {
	if s, ok := knownPorts[port]; ok {
		return s
	}

	return ""
}
