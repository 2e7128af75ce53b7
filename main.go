package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/go-dpkg/deb"
	"github.com/etnz/go-dpkg/version"
	"gopkg.in/yaml.v3"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "info":
		runInfo(os.Args[2:])
	case "digest":
		runDigest(os.Args[2:])
	case "compare":
		runCompare(os.Args[2:])
	case "sort":
		runSort(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: go-dpkg <command> [flags]")
	fmt.Println("Commands:")
	fmt.Println("  info <file.deb>      Print the package control metadata")
	fmt.Println("  digest <file.deb>    Print md5/sha1/sha256 checksums and size")
	fmt.Println("  compare <v1> <v2>    Compare two Debian version strings (-1, 0 or 1)")
	fmt.Println("  sort                 Sort version strings read from stdin")
}

func runInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	format := fs.String("format", "text", "Output format: text, json or yaml")
	ignoreMissing := fs.Bool("ignore-missing", false, "Tolerate control files lacking required fields")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Println("Usage: go-dpkg info [flags] <file.deb>")
		os.Exit(1)
	}

	var opts []deb.Option
	if *ignoreMissing {
		opts = append(opts, deb.IgnoreMissing())
	}

	ctrl, err := deb.ExtractControlFile(context.Background(), fs.Arg(0), opts...)
	if err != nil {
		fmt.Printf("Fatal: %v\n", err)
		os.Exit(1)
	}

	switch *format {
	case "text":
		fmt.Print(ctrl.String())
	case "json", "yaml":
		headers := make(map[string]string)
		for _, f := range ctrl.Fields() {
			headers[f.Name] = f.Value
		}
		if err := encode(*format, headers); err != nil {
			fmt.Printf("Fatal: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("Fatal: unknown format %q\n", *format)
		os.Exit(1)
	}
}

func runDigest(args []string) {
	fs := flag.NewFlagSet("digest", flag.ExitOnError)
	format := fs.String("format", "text", "Output format: text, json or yaml")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Println("Usage: go-dpkg digest [flags] <file.deb>")
		os.Exit(1)
	}

	info, err := deb.DigestFile(fs.Arg(0))
	if err != nil {
		fmt.Printf("Fatal: %v\n", err)
		os.Exit(1)
	}

	switch *format {
	case "text":
		fmt.Printf("md5: %s\n", info.MD5)
		fmt.Printf("sha1: %s\n", info.SHA1)
		fmt.Printf("sha256: %s\n", info.SHA256)
		fmt.Printf("size: %d\n", info.Size)
	case "json", "yaml":
		if err := encode(*format, info); err != nil {
			fmt.Printf("Fatal: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("Fatal: unknown format %q\n", *format)
		os.Exit(1)
	}
}

func runCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	debPath := fs.String("deb", "", "Compare against the version of this .deb file instead of a literal")
	fs.Parse(args)

	var v1, v2 string
	switch {
	case *debPath != "" && fs.NArg() == 1:
		ctrl, err := deb.ExtractControlFile(context.Background(), *debPath)
		if err != nil {
			fmt.Printf("Fatal: %v\n", err)
			os.Exit(1)
		}
		v1, v2 = ctrl.Version(), fs.Arg(0)
	case fs.NArg() == 2:
		v1, v2 = fs.Arg(0), fs.Arg(1)
	default:
		fmt.Println("Usage: go-dpkg compare <v1> <v2>")
		fmt.Println("       go-dpkg compare -deb <file.deb> <version>")
		os.Exit(1)
	}

	c, err := version.Compare(v1, v2)
	if err != nil {
		fmt.Printf("Fatal: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(c)
}

func runSort(args []string) {
	fs := flag.NewFlagSet("sort", flag.ExitOnError)
	fs.Parse(args)

	var versions []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			versions = append(versions, line)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Printf("Fatal: reading stdin: %v\n", err)
		os.Exit(1)
	}

	if err := version.Sort(versions); err != nil {
		fmt.Printf("Fatal: %v\n", err)
		os.Exit(1)
	}
	for _, v := range versions {
		fmt.Println(v)
	}
}

// encode marshals v to stdout in the requested format.
func encode(format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(v)
	}
	return fmt.Errorf("unknown format %q", format)
}
