package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

func main() {

	resp, err := http.Get("https://www.iana.org/assignments/service-names-port-numbers/service-names-port-numbers.csv")
	if err != nil {
		panic(err)
	}

	output, err := os.Create("./scan/known.go")
	if err != nil {
		panic(err)
	}
	defer output.Close()

	output.Write([]byte(`package scan

// data from https://www.iana.org/assignments/service-names-port-numbers/service-names-port-numbers.csv
// regenerate with tools/update-ports.go

var knownPorts = map[int]PortInfo{`))

	lastPort := ""
	reader := csv.NewReader(resp.Body)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			panic(err)
		}

		keyword := record[0]
		port := record[1]
		protocol := record[2]
		description := record[3]

		if keyword == "" || port == "" || protocol != "tcp" {
			continue
		}

		// Port ranges and duplicate udp/tcp rows aren't wanted; keep the
		// first tcp assignment for each single port number.
		if strings.Contains(port, "-") || port == lastPort {
			continue
		}
		lastPort = port

		description = strings.ReplaceAll(description, "\n", " ")
		description = strings.ReplaceAll(description, `"`, `\"`)

		output.Write([]byte(fmt.Sprintf("\n\t%s: {%q, %q},", port, keyword, description)))
	}

	output.Write([]byte("\n}\n"))
}
