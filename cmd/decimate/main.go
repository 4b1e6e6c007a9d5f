// Command decimate is a small CLI demo that loads a triangle mesh from a
// restricted OBJ file, simplifies it to a target triangle count using the
// Garland–Heckbert quadric-error simplifier, and writes the result back
// out, logging the before/after triangle counts.
//
// Usage:
//
//	decimate -in mesh.obj -target 500 -out out.obj
package main

import (
	"flag"
	"log"
	"os"

	"github.com/r-silveira/xbimgeometry/meshio"
	"github.com/r-silveira/xbimgeometry/simplify"
)

func main() {
	in := flag.String("in", "", "input OBJ-subset mesh file (required)")
	out := flag.String("out", "", "output OBJ-subset mesh file (required)")
	target := flag.Int("target", 0, "target triangle count (required)")
	precision := flag.Float64("precision", 1e-4, "model precision carried into the output mesh")
	flag.Parse()

	if *in == "" || *out == "" || *target <= 0 {
		flag.Usage()
		log.Fatal("decimate: -in, -out and -target are all required, and -target must be positive")
	}

	inFile, err := os.Open(*in)
	if err != nil {
		log.Fatalf("decimate: opening %s: %v", *in, err)
	}
	defer inFile.Close()

	m, err := meshio.ParseOBJSubset(inFile)
	if err != nil {
		log.Fatalf("decimate: parsing %s: %v", *in, err)
	}

	before := len(m.Triangles)
	result := simplify.Run(m, *target, *precision)
	after := len(result.Triangles)

	log.Printf("decimate: %d -> %d triangles (target %d)", before, after, *target)

	outFile, err := os.Create(*out)
	if err != nil {
		log.Fatalf("decimate: creating %s: %v", *out, err)
	}
	defer outFile.Close()

	if err := meshio.WriteOBJSubset(outFile, result); err != nil {
		log.Fatalf("decimate: writing %s: %v", *out, err)
	}
}
