package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strconv"
)

// Regenerates scan/known.go from the IANA service names registry, keeping
// only the ports in wantedPorts. Add a port here and re-run to grow the
// table.
var wantedPorts = []int{
	20, 21, 22, 23, 25, 53, 80, 88, 110, 111, 119, 123, 135, 139, 143, 179,
	389, 443, 445, 465, 514, 515, 543, 548, 554, 587, 631, 636, 873, 902,
	990, 993, 995, 1025, 1080, 1194, 1433, 1521, 1723, 2049, 2375, 2376,
	3000, 3128, 3268, 3306, 3389, 5060, 5222, 5432, 5672, 5900, 5984, 6379,
	6667, 8000, 8080, 8443, 8888, 9000, 9090, 9200, 11211, 27017,
}

func main() {

	resp, err := http.Get("https://www.iana.org/assignments/service-names-port-numbers/service-names-port-numbers.csv")
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	wanted := map[int]bool{}
	for _, port := range wantedPorts {
		wanted[port] = true
	}

	names := map[int]string{}

	reader := csv.NewReader(resp.Body)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			panic(err)
		}

		if len(record) < 3 || record[2] != "tcp" || record[0] == "" || record[1] == "" {
			continue
		}

		port, err := strconv.Atoi(record[1])
		if err != nil || !wanted[port] {
			continue
		}

		if _, ok := names[port]; !ok {
			names[port] = record[0]
		}
	}

	output, err := os.Create("./scan/known.go")
	if err != nil {
		panic(err)
	}
	defer output.Close()

	output.Write([]byte(`package scan

// generated by tools/update-ports.go from
// https://www.iana.org/assignments/service-names-port-numbers/service-names-port-numbers.csv
var knownPorts = map[int]string{`))

	ports := make([]int, 0, len(names))
	for port := range names {
		ports = append(ports, port)
	}
	sort.Ints(ports)

	for _, port := range ports {
		output.Write([]byte(fmt.Sprintf(`
	%d: "%s",`, port, names[port])))
	}

	output.Write([]byte(`
}
`))
}
