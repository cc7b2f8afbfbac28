package main

import (
	"encoding/binary"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/structkit/cstruct"
	"github.com/structkit/cstruct/render"
)

func main() {
	var (
		file        = flag.String("file", "", "Header file to parse (includes are followed)")
		dir         = flag.String("dir", "", "Directory whose *.h files are parsed")
		structName  = flag.String("struct", "", "Root struct for pack/unpack/tree")
		endian      = flag.String("endian", "little", "Byte order: little or big")
		tree        = flag.Bool("tree", false, "Print the layout tree and exit")
		list        = flag.Bool("list", false, "List declared structs and exit")
		packJSON    = flag.String("pack", "", "JSON value to pack; hex is written to stdout")
		unpackFrom  = flag.String("unpack", "", "File of hex or raw bytes to unpack ('-' for stdin)")
		verbose     = flag.Bool("v", false, "Verbose build logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *file == "" && *dir == "" {
		fmt.Fprintln(os.Stderr, "Usage: cstruct -file <header.h> | -dir <include-dir> [flags]")
		fmt.Fprintln(os.Stderr, "       cstruct -file <header.h> -list")
		fmt.Fprintln(os.Stderr, "       cstruct -file <header.h> -struct Name -tree")
		fmt.Fprintln(os.Stderr, "       cstruct -file <header.h> -struct Name -pack '{...}'")
		fmt.Fprintln(os.Stderr, "       cstruct -file <header.h> -struct Name -unpack data.bin")
		fmt.Fprintln(os.Stderr, "       cstruct -file <header.h> -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*file, *dir, *structName, *endian, *tree, *list, *packJSON, *unpackFrom, *verbose, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(file, dir, structName, endian string, tree, list bool, packJSON, unpackFrom string, verbose, interactive bool) error {
	order, err := byteOrder(endian)
	if err != nil {
		return err
	}

	opts := []cstruct.Option{cstruct.WithByteOrder(order)}
	if verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer log.Sync()
		opts = append(opts, cstruct.WithLogger(log))
	}

	reg, err := buildRegistry(file, dir, opts)
	if err != nil {
		return err
	}

	if interactive {
		return runInteractive(reg)
	}

	if list {
		for _, name := range reg.Names() {
			st, _ := reg.LayoutOf(name)
			fmt.Printf("%s  (%d bytes, %d fields)\n", name, st.Size, len(st.Fields))
		}
		return nil
	}

	if structName == "" {
		return fmt.Errorf("-struct is required (use -list to see declared structs)")
	}
	st, err := reg.LayoutOf(structName)
	if err != nil {
		return err
	}

	if tree {
		colored := term.IsTerminal(int(os.Stdout.Fd()))
		fmt.Print(render.Tree(st, colored))
		return nil
	}

	if packJSON != "" {
		return runPack(reg, structName, packJSON)
	}
	if unpackFrom != "" {
		return runUnpack(reg, structName, unpackFrom)
	}

	return fmt.Errorf("nothing to do: pass -tree, -list, -pack or -unpack")
}

func buildRegistry(file, dir string, opts []cstruct.Option) (*cstruct.Registry, error) {
	if file != "" {
		src := &dirSource{root: filepath.Dir(file)}
		return cstruct.BuildRegistryFS(src, []string{filepath.Base(file)}, opts...)
	}
	entries, err := headerEntries(dir)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no *.h files in %s", dir)
	}
	return cstruct.BuildRegistryFS(&dirSource{root: dir}, entries, opts...)
}

func runPack(reg *cstruct.Registry, structName, packJSON string) error {
	if !gjson.Valid(packJSON) {
		return fmt.Errorf("-pack value is not valid JSON")
	}
	value, ok := gjson.Parse(packJSON).Value().(map[string]any)
	if !ok {
		return fmt.Errorf("-pack value must be a JSON object")
	}
	data, err := reg.Pack(structName, value)
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(data))
	return nil
}

func runUnpack(reg *cstruct.Registry, structName, from string) error {
	var raw []byte
	var err error
	if from == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(from)
	}
	if err != nil {
		return err
	}

	// Accept either a hex string or raw binary.
	if decoded, hexErr := hex.DecodeString(strings.TrimSpace(string(raw))); hexErr == nil {
		raw = decoded
	}

	value, err := reg.Unpack(structName, raw)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func byteOrder(name string) (binary.ByteOrder, error) {
	switch name {
	case "little":
		return binary.LittleEndian, nil
	case "big":
		return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("unknown byte order %q (want little or big)", name)
}
