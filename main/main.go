// Command packbits packs and unpacks 7-bit compacted files and computes the
// tool's checksums. Library errors surface on stderr with a failure status;
// nothing is retried.
package main

import (
	"fmt"
	"log"
	"os"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: packbits <command> [flags] <file...>

commands:
  pack     7-bit pack a file, optionally compress, and wrap it in a frame
  unpack   reverse of pack, verifying frame CRC and recorded checksum
  sum      print checksums of files as a table or JSON`)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("packbits: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "pack":
		err = runPack(os.Args[2:])
	case "unpack":
		err = runUnpack(os.Args[2:])
	case "sum":
		err = runSum(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}
