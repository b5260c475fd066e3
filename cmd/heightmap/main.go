// Command heightmap turns an image into a greedy-meshed terrain.
// The input is rescaled to the requested footprint, each pixel's
// luminance picks a column height, and the resulting voxel grid is
// meshed and written out as a Wavefront OBJ file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"time"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"blockmesh/pkg/geometry"
	"blockmesh/pkg/meshing"
	"blockmesh/pkg/shape"
	"blockmesh/pkg/voxel"
)

// column is a boolean terrain voxel.
type column bool

func (c column) Visibility() voxel.Visibility {
	if c {
		return voxel.Opaque
	}
	return voxel.Empty
}

func (c column) MergeValue() bool { return bool(c) }

func (c column) MergeValueFacingNeighbor() bool { return bool(c) }

func main() {
	in := flag.String("in", "", "input image (png or jpeg)")
	out := flag.String("out", "terrain.obj", "output OBJ file")
	size := flag.Int("size", 64, "terrain footprint in voxels per side")
	height := flag.Int("height", 32, "maximum terrain height in voxels")
	voxelSize := flag.Float64("voxel-size", 1, "world units per voxel")
	flag.Parse()

	logger := golog.NewDevelopmentLogger("heightmap")

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *size < 1 || *height < 1 {
		logger.Fatal("size and height must be positive")
	}

	if err := run(*in, *out, *size, *height, float32(*voxelSize), logger); err != nil {
		logger.Fatal(err)
	}
}

func run(in, out string, size, height int, voxelSize float32, logger golog.Logger) error {
	img, err := loadImage(in)
	if err != nil {
		return err
	}

	heights := sampleHeights(img, size, height)

	voxels, s, err := extrude(heights, size, height)
	if err != nil {
		return err
	}

	cfg := geometry.RightHandedYUp()
	dims := s.Dims()
	min := [3]uint32{0, 0, 0}
	max := [3]uint32{dims[0] - 1, dims[1] - 1, dims[2] - 1}

	start := time.Now()
	buf := meshing.NewGreedyBuffer(len(voxels))
	if err := meshing.GreedyQuads[bool](voxels, s, min, max, &cfg, buf); err != nil {
		return err
	}

	var mesh meshing.MeshBuffer
	mesh.AppendQuadBuffer(&cfg, &buf.Quads, voxelSize)
	logger.Infof("meshed %dx%dx%d grid: %d quads, %d vertices in %s",
		dims[0], dims[1], dims[2], buf.Quads.NumQuads(), mesh.NumVertices(), time.Since(start))

	if err := writeOBJ(out, &mesh); err != nil {
		return err
	}
	logger.Infof("wrote %s", out)
	return nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input image")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return img, nil
}

// sampleHeights rescales the image to size x size and maps each pixel's
// luminance onto [1, height].
func sampleHeights(img image.Image, size, height int) []int {
	scaled := image.NewGray16(image.Rect(0, 0, size, size))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	heights := make([]int, size*size)
	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			y := scaled.Gray16At(x, z).Y
			h := 1 + int(y)*(height-1)/0xffff
			heights[z*size+x] = h
		}
	}
	return heights
}

// extrude builds a padded voxel grid whose interior holds the terrain
// columns. The one-voxel halo stays empty so boundary faces mesh.
func extrude(heights []int, size, height int) ([]column, *shape.Box, error) {
	dims := [3]uint32{uint32(size) + 2, uint32(height) + 2, uint32(size) + 2}
	s, err := shape.NewBox(dims, shape.OrderZYX)
	if err != nil {
		return nil, nil, err
	}

	voxels := make([]column, s.Size())
	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			h := heights[z*size+x]
			for y := 0; y < h; y++ {
				i := s.Linearize([3]uint32{uint32(x) + 1, uint32(y) + 1, uint32(z) + 1})
				voxels[i] = true
			}
		}
	}
	return voxels, s, nil
}

func writeOBJ(path string, mesh *meshing.MeshBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output file")
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "# generated by blockmesh heightmap")
	for _, p := range mesh.Positions {
		fmt.Fprintf(w, "v %g %g %g\n", p.X(), p.Y(), p.Z())
	}
	for _, uv := range mesh.UVs {
		fmt.Fprintf(w, "vt %g %g\n", uv.X(), uv.Y())
	}
	for _, n := range mesh.Normals {
		fmt.Fprintf(w, "vn %g %g %g\n", n.X(), n.Y(), n.Z())
	}
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a := mesh.Indices[i] + 1
		b := mesh.Indices[i+1] + 1
		c := mesh.Indices[i+2] + 1
		fmt.Fprintf(w, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return errors.Wrap(err, "write OBJ")
	}
	return errors.Wrap(f.Close(), "close OBJ")
}
