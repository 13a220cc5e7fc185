// Command buildid decodes a WebAssembly module, appends a "build_id"
// custom section carrying a fresh UUID, and re-encodes it in place, the Go
// equivalent of the original crate's examples/build_id.rs.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/vertexdlt/wasmbin/wasm"
)

var rootCmd = &cobra.Command{
	Use:   "buildid <file.wasm>",
	Short: "Append a fresh build_id custom section to a WebAssembly module",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuildID,
}

func runBuildID(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	m, err := wasm.DecodeModule(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("decoding module: %w", err)
	}

	id := uuid.New()
	fmt.Println("Generated UUID:", id)

	payload := wasm.CustomSectionPayload{Name: "build_id", Data: id[:]}
	section := &wasm.CustomSec{
		Payload: wasm.NewBlobFromValue[wasm.CustomSectionPayload, *wasm.CustomSectionPayload](payload),
	}
	m.Sections = append(m.Sections, section)

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := m.EncodeWasm(out); err != nil {
		return fmt.Errorf("encoding module: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
