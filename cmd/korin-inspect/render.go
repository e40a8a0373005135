package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/korindev/inspect"
	"github.com/korindev/inspect/layout"
	"github.com/korindev/inspect/memory"
	"github.com/korindev/inspect/render"
	"github.com/korindev/inspect/value"
)

var renderFlags struct {
	snapshotPath string
	layoutPath   string
	base         string
	addr         string
	typeName     string
	depth        int
	asJSON       bool
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one value from the snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender()
	},
}

func init() {
	flags := renderCmd.Flags()
	flags.StringVar(&renderFlags.snapshotPath, "snapshot", "", "raw snapshot file")
	flags.StringVar(&renderFlags.layoutPath, "layout", "", "YAML layout sidecar")
	flags.StringVar(&renderFlags.base, "base", "0x0", "snapshot base address")
	flags.StringVar(&renderFlags.addr, "addr", "", "value address")
	flags.StringVar(&renderFlags.typeName, "type", "", "declared type name")
	flags.IntVar(&renderFlags.depth, "depth", 2, "child expansion depth")
	flags.BoolVar(&renderFlags.asJSON, "json", false, "emit JSON instead of a tree")
	for _, required := range []string{"snapshot", "layout", "addr", "type"} {
		_ = renderCmd.MarkFlagRequired(required)
	}
}

func runRender() error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	base, err := parseAddr(renderFlags.base)
	if err != nil {
		return err
	}
	addr, err := parseAddr(renderFlags.addr)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(renderFlags.snapshotPath)
	if err != nil {
		return errors.Wrap(err, "reading snapshot")
	}
	snapshot := memory.NewSnapshot(base, data)
	logger.Debug("snapshot mapped",
		zap.Uint64("base", base), zap.Int("size", snapshot.Len()))

	table, err := layout.Load(renderFlags.layoutPath)
	if err != nil {
		return err
	}
	typ := table.Lookup(renderFlags.typeName)
	if typ == nil {
		return errors.Wrapf(layout.ErrUnknownType, "%q", renderFlags.typeName)
	}

	obj := &inspect.ObjectFile{}
	inspect.Register(obj, inspect.NewKorinRegistry())

	label := fmt.Sprintf("(%s) 0x%x", renderFlags.typeName, addr)
	node := render.Value(obj, label, value.At(snapshot, typ, addr), renderFlags.depth)

	if renderFlags.asJSON {
		encoded, err := render.JSON(node)
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
		return nil
	}
	return pterm.DefaultTree.WithRoot(treeNode(node)).Render()
}

func treeNode(node *render.Node) pterm.TreeNode {
	text := node.Name
	if node.Summary != "" {
		text += ": " + node.Summary
	}
	if node.Err != "" {
		text += " <error: " + node.Err + ">"
	}
	result := pterm.TreeNode{Text: text}
	for _, child := range node.Children {
		result.Children = append(result.Children, treeNode(child))
	}
	return result
}

func parseAddr(text string) (uint64, error) {
	addr, err := strconv.ParseUint(text, 0, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing address %q", text)
	}
	return addr, nil
}
