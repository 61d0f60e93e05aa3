// Command hamtctl is a small CLI for exercising a trie stored as a
// CBOR snapshot file: insert, find, and delete individual keys, or
// print summary stats, without writing any Go code.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/hamt-go/hamt/codec"
	"github.com/hamt-go/hamt/config"
	"github.com/hamt-go/hamt/hamt"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	fs := flag.NewFlagSet(os.Args[1], flag.ExitOnError)
	file := fs.String("file", "trie.cbor", "path to the trie's CBOR snapshot file")
	w := fs.Uint("w", 4, "bits consumed per interior table level (new trie only)")
	t := fs.Uint("t", 8, "bits consumed at the root (new trie only)")
	fs.Parse(os.Args[2:])

	var err error
	switch os.Args[1] {
	case "init":
		err = runInit(*file, uint8(*w), uint8(*t))
	case "insert":
		err = runInsert(*file, fs.Args())
	case "find":
		err = runFind(*file, fs.Args())
	case "delete":
		err = runDelete(*file, fs.Args())
	case "stats":
		err = runStats(*file)
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "hamtctl:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: hamtctl <init|insert|find|delete|stats> [-file path] [-w n] [-t n] [args...]")
	fmt.Fprintln(os.Stderr, "  keys and values are given and printed as hex-encoded strings")
}

func runInit(file string, w, t uint8) error {
	p := config.Params{W: w, T: t}
	if err := p.Validate(); err != nil {
		return err
	}
	root, err := hamt.New(p.W, p.T)
	if err != nil {
		return err
	}
	return save(file, root)
}

func runInsert(file string, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("insert requires <key-hex> <value-hex>")
	}
	key, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("decode key: %w", err)
	}
	value, err := hex.DecodeString(args[1])
	if err != nil {
		return fmt.Errorf("decode value: %w", err)
	}
	root, err := load(file)
	if err != nil {
		return err
	}
	leaf, err := hamt.NewLeaf(key, value)
	if err != nil {
		return err
	}
	if err := root.Insert(leaf); err != nil {
		return err
	}
	return save(file, root)
}

func runFind(file string, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("find requires <key-hex>")
	}
	key, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("decode key: %w", err)
	}
	root, err := load(file)
	if err != nil {
		return err
	}
	value, err := root.Find(key)
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(value))
	return nil
}

func runDelete(file string, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("delete requires <key-hex>")
	}
	key, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("decode key: %w", err)
	}
	root, err := load(file)
	if err != nil {
		return err
	}
	if err := root.Delete(key); err != nil {
		return err
	}
	return save(file, root)
}

func runStats(file string) error {
	root, err := load(file)
	if err != nil {
		return err
	}
	fmt.Printf("w=%d t=%d leaves=%d tables=%d\n", root.W(), root.T(), root.LeafCount(), root.TableCount())
	return nil
}

func load(file string) (*hamt.Root, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	return codec.Decode(data)
}

func save(file string, root *hamt.Root) error {
	data, err := codec.Encode(root)
	if err != nil {
		return err
	}
	return os.WriteFile(file, data, 0o644)
}
