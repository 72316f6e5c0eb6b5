// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"cogentcore.org/orbit/gpu"
	"github.com/spf13/cobra"
)

func newLayoutCmd() *cobra.Command {
	var attrs []string
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the standard vertex layout, or one built from attributes",
		Long: `Print the standard vertex layout, or, if any --attr flags are given,
the layout made by adding the attributes in order, each given as
name:kind or name:kind:normalized, where kind is one of Float, Vector2,
Vector3, Vector4, Int, IntVector2, IntVector3, IntVector4, Uint and Bool.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ly, err := buildLayout(attrs)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), ly.String())
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&attrs, "attr", "a", nil, "attribute to add, as name:kind[:normalized]")
	return cmd
}

// buildLayout returns the layout of the given attribute specs,
// or the standard [gpu.Vertex] layout if there are none.
func buildLayout(attrs []string) (*gpu.Layout, error) {
	if len(attrs) == 0 {
		ly := gpu.VertexLayout()
		return &ly, nil
	}
	ly := &gpu.Layout{}
	for _, spec := range attrs {
		parts := strings.Split(spec, ":")
		if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
			return nil, fmt.Errorf("attribute %q: must be name:kind[:normalized]", spec)
		}
		kind, ok := gpu.AttributeKindFromString(parts[1])
		if !ok {
			return nil, fmt.Errorf("attribute %q: unknown kind %q", spec, parts[1])
		}
		var opts []gpu.AttributeOption
		if len(parts) == 3 {
			if parts[2] != "normalized" {
				return nil, fmt.Errorf("attribute %q: unknown option %q", spec, parts[2])
			}
			opts = append(opts, gpu.WithNormalized())
		}
		ly.Add(parts[0], kind, opts...)
	}
	if err := ly.Validate(); err != nil {
		return nil, err
	}
	return ly, nil
}
