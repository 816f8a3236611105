package main

import (
	"fmt"
	"log"
	"os"

	"github.com/LenaMarochkina/IPP-Project1/isa"
	"github.com/LenaMarochkina/IPP-Project1/parse"
	"github.com/LenaMarochkina/IPP-Project1/verify"
)

func main() {
	prog, err := parse.NewAssembler(isa.IPPcode24()).Run(os.Stdin)
	if err != nil {
		log.Fatalf("Failed to translate source: %v", err)
	}

	report := verify.GenerateReport(prog)
	report.WriteReport(os.Stdout)

	if len(report.Issues) > 0 {
		fmt.Printf("\n%d labels need attention before this program can run\n",
			len(report.Issues))
		os.Exit(1)
	}
}
