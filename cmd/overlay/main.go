package main

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/overlay"
)

type Intersect struct {
	Area bool   `short:"a" desc:"Print the intersection area instead of the boundary rings"`
	A    string `index:"0" desc:"First polygon as WKT"`
	B    string `index:"1" desc:"Second polygon as WKT"`
}

type Union struct {
	A string `index:"0" desc:"First polygon as WKT"`
	B string `index:"1" desc:"Second polygon as WKT"`
}

type Difference struct {
	A string `index:"0" desc:"First polygon as WKT"`
	B string `index:"1" desc:"Second polygon as WKT"`
}

func main() {
	root := argp.NewCmd(&Intersect{}, "Boolean overlay of planar polygons by Taco de Wolff")
	root.AddCmd(&Union{}, "union", "Union of two polygons")
	root.AddCmd(&Difference{}, "difference", "Difference of two polygons")
	root.Parse()
	root.PrintHelp()
}

func polygons(a, b string) (orb.Polygon, orb.Polygon, error) {
	A, err := wkt.UnmarshalPolygon(a)
	if err != nil {
		return nil, nil, fmt.Errorf("first polygon: %v", err)
	}
	B, err := wkt.UnmarshalPolygon(b)
	if err != nil {
		return nil, nil, fmt.Errorf("second polygon: %v", err)
	}
	return A, B, nil
}

func printRings(rings []orb.Ring) {
	for _, ring := range rings {
		fmt.Println(wkt.MarshalString(orb.Polygon{ring}))
	}
}

func (cmd *Intersect) Run() error {
	if cmd.A == "" || cmd.B == "" {
		return argp.ShowUsage
	}
	a, b, err := polygons(cmd.A, cmd.B)
	if err != nil {
		return err
	}

	if cmd.Area {
		area, err := overlay.IntersectionArea(a, b)
		if err != nil {
			return err
		}
		fmt.Println(area)
		return nil
	}

	rings, err := overlay.Intersection(a, b)
	if err != nil {
		return err
	}
	printRings(rings)
	return nil
}

func (cmd *Union) Run() error {
	if cmd.A == "" || cmd.B == "" {
		return argp.ShowUsage
	}
	a, b, err := polygons(cmd.A, cmd.B)
	if err != nil {
		return err
	}

	rings, err := overlay.Union(a, b)
	if err != nil {
		return err
	}
	printRings(rings)
	return nil
}

func (cmd *Difference) Run() error {
	if cmd.A == "" || cmd.B == "" {
		return argp.ShowUsage
	}
	a, b, err := polygons(cmd.A, cmd.B)
	if err != nil {
		return err
	}

	rings, err := overlay.Difference(a, b)
	if err != nil {
		return err
	}
	printRings(rings)
	return nil
}
