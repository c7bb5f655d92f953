// Command matlfix checks and repairs material documents against shader
// descriptors.
//
//	matlfix check model.numatb.json --shaders shaders.json
//	matlfix fix model.numatb.json --shaders shaders.json -o fixed.json
//	matlfix preset model.numatb.json --presets presets.json --material body --preset PRESET_METAL
//	matlfix new material.yaml --label BODY
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "matlfix:", err)
		os.Exit(1)
	}
}
