package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/draftkit/draftkit"
	"github.com/draftkit/draftkit/document"
	"github.com/draftkit/draftkit/model"
)

var (
	heading = color.New(color.FgCyan, color.Bold).SprintFunc()
	label   = color.New(color.FgYellow).SprintFunc()
	dim     = color.New(color.Faint).SprintFunc()
)

func printSummary(w io.Writer, sum document.Summary) error {
	fmt.Fprintln(w, heading("Drawing summary"))
	fmt.Fprintf(w, "%s %d\n", label("Layers:"), sum.LayerCount)
	fmt.Fprintf(w, "%s %d\n", label("Entities:"), sum.EntityCount)
	if sum.Extents != nil {
		fmt.Fprintf(w, "%s (%.2f, %.2f) to (%.2f, %.2f)\n", label("Extents:"),
			sum.Extents.Min.X, sum.Extents.Min.Y, sum.Extents.Max.X, sum.Extents.Max.Y)
	}

	for _, layer := range sum.Layers {
		name := layer.Name
		if cn := model.ColorName(layer.Color); cn != "" {
			name = fmt.Sprintf("%s %s", layer.Name, dim("("+cn+")"))
		}
		fmt.Fprintf(w, "\n%s %d entities\n", heading(name), layer.Total)
		kinds := make([]string, 0, len(layer.Counts))
		for kind := range layer.Counts {
			kinds = append(kinds, kind)
		}
		sort.Strings(kinds)
		for _, kind := range kinds {
			fmt.Fprintf(w, "  %-10s %d\n", kind, layer.Counts[kind])
		}
	}
	return nil
}

func printLayers(w io.Writer, layers []document.LayerInfo) error {
	for _, layer := range layers {
		cn := model.ColorName(layer.Color)
		if cn == "" {
			cn = fmt.Sprintf("aci %d", layer.Color)
		}
		fmt.Fprintf(w, "%-20s %-8s %d\n", layer.Name, cn, layer.EntityCount)
	}
	return nil
}

func printTexts(w io.Writer, sum document.Summary) error {
	if len(sum.Texts) == 0 {
		fmt.Fprintln(w, dim("no text entities"))
		return nil
	}
	for _, item := range sum.Texts {
		fmt.Fprintf(w, "%s %s %q\n", dim(item.ID), label(item.Layer), item.Content)
	}
	return nil
}

func callTool(w io.Writer, session *draftkit.Session, name, args string) error {
	res, err := session.Tools().Dispatch(name, json.RawMessage(args))
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(out))
	return nil
}
