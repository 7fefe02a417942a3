// Command ipv6fmt is a thin command-line front end over the ipv6addr
// library: parse, format, and compare endpoints from the shell.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/sirupsen/logrus"

	"rosalind.dev/ipv6addr"
)

var (
	app     = kingpin.New("ipv6fmt", "Parse, format, and compare IPv6 endpoints.")
	verbose = app.Flag("verbose", "Enable debug logging (and FSM tracing, if built with -tags ipv6trace).").Bool()

	parseCmd    = app.Command("parse", "Parse an endpoint and print its structured fields.")
	parseArg    = parseCmd.Arg("endpoint", "endpoint to parse").Required().String()
	formatCmd   = app.Command("format", "Parse an endpoint and print its canonical form.")
	formatArg   = formatCmd.Arg("endpoint", "endpoint to parse").Required().String()
	compareCmd  = app.Command("compare", "Compare two endpoints.")
	compareArgA = compareCmd.Arg("a", "first endpoint").Required().String()
	compareArgB = compareCmd.Arg("b", "second endpoint").Required().String()
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	var err error
	switch cmd {
	case parseCmd.FullCommand():
		err = runParse(*parseArg)
	case formatCmd.FullCommand():
		err = runFormat(*formatArg)
	case compareCmd.FullCommand():
		err = runCompare(*compareArgA, *compareArgB)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runParse(endpoint string) error {
	addr, err := ipv6addr.ParseAddr(endpoint)
	if err != nil {
		return err
	}

	fmt.Printf("components: %04x\n", addr.Components)
	fmt.Printf("ipv4-embedded: %t\n", addr.IsIPv4Embedded())
	if addr.Zone != "" {
		fmt.Printf("zone: %s\n", addr.Zone)
	}
	if addr.HasMask() {
		fmt.Printf("mask: /%d\n", addr.Mask)
	}
	if addr.HasPort() {
		fmt.Printf("port: %d\n", addr.Port)
	}

	canonical := ipv6addr.MustFormat(&addr)
	fmt.Printf("canonical: %s\n", canonical)
	return nil
}

func runFormat(endpoint string) error {
	addr, err := ipv6addr.ParseAddr(endpoint)
	if err != nil {
		return err
	}
	fmt.Println(ipv6addr.MustFormat(&addr))
	return nil
}

func runCompare(a, b string) error {
	addrA, err := ipv6addr.ParseAddr(a)
	if err != nil {
		return err
	}
	addrB, err := ipv6addr.ParseAddr(b)
	if err != nil {
		return err
	}

	switch d := ipv6addr.Compare(&addrA, &addrB); {
	case d < 0:
		fmt.Println("<")
	case d > 0:
		fmt.Println(">")
	default:
		fmt.Println("=")
	}
	return nil
}
