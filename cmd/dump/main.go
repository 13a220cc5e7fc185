// Command dump prints the section list of a WebAssembly module, the Go
// equivalent of the original crate's examples/dump.rs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vertexdlt/wasmbin/wasm"
)

var (
	includeRaw bool
	onlyKind   string
)

var rootCmd = &cobra.Command{
	Use:   "dump <file.wasm>",
	Short: "Print the section list of a WebAssembly module",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	rootCmd.Flags().BoolVar(&includeRaw, "include-raw", false, "dump raw bytes of unparsed or unchanged section blobs")
	rootCmd.Flags().StringVar(&onlyKind, "section", "", "only print sections whose kind name matches (e.g. \"code\", \"custom\")")
}

func runDump(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := wasm.DecodeModule(f)
	if err != nil {
		return fmt.Errorf("decoding module: %w", err)
	}

	for i, s := range m.Sections {
		name := s.Kind().String()
		if onlyKind != "" && name != onlyKind {
			continue
		}
		fmt.Printf("[%d] %s\n", i, name)
		if custom, ok := s.(*wasm.CustomSec); ok {
			printCustom(custom)
		}
		if includeRaw {
			printRaw(s)
		}
	}
	return nil
}

func printCustom(s *wasm.CustomSec) {
	switch c := s.Typed().(type) {
	case wasm.NameSection:
		fmt.Printf("    name: %d sub-section(s)\n", len(c.SubSections))
	case wasm.ProducersSection:
		fmt.Printf("    producers: %d field(s)\n", len(c.Fields))
	case wasm.ExternalDebugInfoSection:
		fmt.Printf("    external_debug_info: %s\n", c.URL)
	case wasm.SourceMappingURLSection:
		fmt.Printf("    sourceMappingURL: %s\n", c.URL)
	case wasm.BuildIDSection:
		fmt.Printf("    build_id: % x\n", c.Data)
	case wasm.RawCustomSection:
		fmt.Printf("    %s: %d byte(s)\n", c.Name, len(c.Data))
	}
}

// rawBytes is implemented by every concrete section type's Payload blob
// (Blob.RawBytes); Section itself carries no such method.
type rawBytes interface {
	RawBytes() ([]byte, bool)
}

func printRaw(s wasm.Section) {
	var payload rawBytes
	switch sec := s.(type) {
	case *wasm.CustomSec:
		payload = sec.Payload
	case *wasm.TypeSec:
		payload = sec.Payload
	case *wasm.ImportSec:
		payload = sec.Payload
	case *wasm.FunctionSec:
		payload = sec.Payload
	case *wasm.TableSec:
		payload = sec.Payload
	case *wasm.MemorySec:
		payload = sec.Payload
	case *wasm.ExceptionSec:
		payload = sec.Payload
	case *wasm.GlobalSec:
		payload = sec.Payload
	case *wasm.ExportSec:
		payload = sec.Payload
	case *wasm.StartSec:
		payload = sec.Payload
	case *wasm.ElementSec:
		payload = sec.Payload
	case *wasm.DataCountSec:
		payload = sec.Payload
	case *wasm.CodeSec:
		payload = sec.Payload
	case *wasm.DataSec:
		payload = sec.Payload
	default:
		return
	}
	raw, fromInput := payload.RawBytes()
	if !fromInput {
		return
	}
	fmt.Printf("    raw: % x\n", raw)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
