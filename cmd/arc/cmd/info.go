package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/arc-engines/arc/pkg/document"
	"github.com/arc-engines/arc/pkg/geom"
	"github.com/spf13/cobra"
)

var (
	infoJSON     bool
	infoStoreDir string
)

// DocumentInfo represents structured document information
type DocumentInfo struct {
	Name    string       `json:"name"`
	Objects []ObjectInfo `json:"objects"`
}

// ObjectInfo represents one object and its mass properties
type ObjectInfo struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Kind     string        `json:"kind"`
	Centroid [3]float64    `json:"centroid"`
	Normal   [3]float64    `json:"normal"`
	Size     [3]float64    `json:"size"`
	Support  string        `json:"support,omitempty"`
	Inertia  *geom.Inertia `json:"inertia,omitempty"`
}

var infoCmd = &cobra.Command{
	Use:   "info [document]",
	Short: "Show objects in a document",
	Long: `Lists the objects in an .arc document with their centers of mass,
normals, bounding box sizes and, where defined, second moments of inertia.

With --store the argument is a document name in the store directory;
without an argument the documents in the store are listed.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if infoStoreDir != "" {
			return cobra.MaximumNArgs(1)(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "output as JSON")
	infoCmd.Flags().StringVar(&infoStoreDir, "store", "", "directory of named documents")
}

func runInfo(cmd *cobra.Command, args []string) error {
	var (
		doc *document.Document
		err error
	)
	if infoStoreDir != "" {
		store := document.DirStore{Root: infoStoreDir}
		if len(args) == 0 {
			return listStore(cmd, store)
		}
		doc, err = store.Load(args[0])
	} else {
		doc, err = document.ReadFile(args[0])
	}
	if err != nil {
		return err
	}
	info, err := collectInfo(doc)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if infoJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintf(out, "Document: %s\n", info.Name)
	fmt.Fprintf(out, "Objects: %d\n", len(info.Objects))
	for _, o := range info.Objects {
		fmt.Fprintf(out, "\n[%d] %s (%s)\n", o.ID, o.Name, o.Kind)
		fmt.Fprintf(out, "  Center:  (%.4f, %.4f, %.4f)\n", o.Centroid[0], o.Centroid[1], o.Centroid[2])
		fmt.Fprintf(out, "  Normal:  (%.4f, %.4f, %.4f)\n", o.Normal[0], o.Normal[1], o.Normal[2])
		fmt.Fprintf(out, "  Size:    %.4f x %.4f x %.4f\n", o.Size[0], o.Size[1], o.Size[2])
		if o.Support != "" {
			fmt.Fprintf(out, "  Support: %s\n", o.Support)
		}
		if o.Inertia != nil {
			fmt.Fprintf(out, "  Inertia: Ixx=%.4f Iyy=%.4f J=%.4f\n", o.Inertia.Ixx, o.Inertia.Iyy, o.Inertia.Polar)
		}
	}
	return nil
}

func collectInfo(doc *document.Document) (*DocumentInfo, error) {
	info := &DocumentInfo{Name: doc.Name(), Objects: []ObjectInfo{}}
	for _, obj := range doc.Objects() {
		com := geom.CenterOfMass(obj.Shape)
		normal := com.RotateVector(geom.Vec(0, 0, 1))
		size := obj.Shape.Bounds().Size()
		oi := ObjectInfo{
			ID:       obj.ID,
			Name:     obj.Name,
			Kind:     obj.Kind.String(),
			Centroid: [3]float64{com.Base.X, com.Base.Y, com.Base.Z},
			Normal:   [3]float64{normal.X, normal.Y, normal.Z},
			Size:     [3]float64{size.X, size.Y, size.Z},
		}
		if obj.Support != 0 {
			support, err := doc.Get(obj.Support)
			if err != nil {
				return nil, err
			}
			oi.Support = support.Name
		}
		moments, err := geom.MomentOfInertia(obj.Shape)
		switch {
		case err == nil:
			oi.Inertia = &moments
		case !errors.Is(err, geom.ErrUnsupported):
			return nil, err
		}
		info.Objects = append(info.Objects, oi)
	}
	return info, nil
}

// listStore prints the names of the documents in store.
func listStore(cmd *cobra.Command, store document.Store) error {
	names, err := store.List()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if infoJSON {
		if names == nil {
			names = []string{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(names)
	}

	fmt.Fprintf(out, "Documents: %d\n", len(names))
	for _, name := range names {
		doc, err := store.Load(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %s (%d objects)\n", name, doc.Len())
	}
	return nil
}
